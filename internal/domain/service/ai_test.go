package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/database"
	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	svc, m, dm := newTestService(t, Options{DecisionTimeout: 48 * time.Hour, MonthlyAILimit: 2})

	require.NoError(t, dm.Decision().Create(&entity.Decision{
		Text:                "Should we order pizza for the retro?",
		Status:              domain.StatusApproved,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		CreatedAt:           time.Now().UTC(),
	}))

	m.ai.EXPECT().SummarizeDecisions(gomock.Any(), gomock.Any()).Return("One decision was approved.", nil)

	summary, err := svc.Summarize(ctx, "C100", "T100")
	require.NoError(t, err)
	assert.Equal(t, "One decision was approved.", summary)
}

func TestSummarize_LimitExceeded(t *testing.T) {
	ctx := context.Background()
	svc, m, dm := newTestService(t, Options{DecisionTimeout: 48 * time.Hour, MonthlyAILimit: 2})

	require.NoError(t, dm.Decision().Create(&entity.Decision{
		Text:                "Should we order pizza for the retro?",
		Status:              domain.StatusPending,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		CreatedAt:           time.Now().UTC(),
	}))

	m.ai.EXPECT().SummarizeDecisions(gomock.Any(), gomock.Any()).Return("summary", nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := svc.Summarize(ctx, "C100", "T100")
		require.NoError(t, err, "Call %d is within the limit", i+1)
	}

	_, err := svc.Summarize(ctx, "C100", "T100")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAILimitExceeded)

	// Workspaces without a CRM link are metered by team ID.
	usage, err := dm.AIUsage().GetOrCreate("T100", time.Now().UTC().Format("2006-01"), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, usage.CommandCount)
}

func TestSummarize_EmptyChannel(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, defaultTestOptions())

	_, err := svc.Summarize(ctx, "C100", "T100")
	require.Error(t, err)

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSummarize_AIDisabled(t *testing.T) {
	ctx := context.Background()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	instance := NewInstance(database.NewInstance(db), nil, nil, nil, defaultTestOptions())

	_, err := instance.Decision.Summarize(ctx, "C100", "T100")
	require.Error(t, err)

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	svc, m, dm := newTestService(t, defaultTestOptions())

	require.NoError(t, dm.Decision().Create(&entity.Decision{
		Text:                "Switch team lunch to tacos",
		Status:              domain.StatusRejected,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		CreatedAt:           time.Now().UTC(),
	}))

	m.ai.EXPECT().SuggestNextSteps(gomock.Any(), gomock.Any()).Return("Revisit the lunch budget.", nil)

	suggestion, err := svc.Suggest(ctx, "C100", "T100")
	require.NoError(t, err)
	assert.Equal(t, "Revisit the lunch budget.", suggestion)
}
