package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChannelDecisions(t *testing.T, dm contract.DataManager, count int, status string) {
	t.Helper()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < count; i++ {
		require.NoError(t, dm.Decision().Create(&entity.Decision{
			Text:                fmt.Sprintf("Decision number %d about team process", i+1),
			Status:              status,
			ProposerID:          "U111",
			ProposerName:        "alice",
			ChannelID:           "C100",
			GroupSizeAtCreation: 10,
			ApprovalThreshold:   6,
			CreatedAt:           base.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func TestGetDecision(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestService(t, defaultTestOptions())

	created := proposeTestDecision(t, svc, m, 10)

	_, err := svc.Vote(ctx, created.ID, "U222", "bob", domain.VoteApprove, false)
	require.NoError(t, err)

	decision, votes, err := svc.GetDecision(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, decision.ID)
	require.Len(t, votes, 1)
	assert.Equal(t, "U222", votes[0].VoterID)
}

func TestGetDecision_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, defaultTestOptions())

	_, _, err := svc.GetDecision(ctx, 99999)
	assert.ErrorIs(t, err, domain.ErrDecisionNotFound)
}

func TestGetUserVote_NoVote(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestService(t, defaultTestOptions())

	created := proposeTestDecision(t, svc, m, 10)

	decision, vote, err := svc.GetUserVote(ctx, created.ID, "U222")
	require.NoError(t, err)
	assert.Equal(t, created.ID, decision.ID)
	assert.Nil(t, vote, "No vote yet is not an error")
}

func TestListDecisions(t *testing.T) {
	ctx := context.Background()
	svc, _, dm := newTestService(t, defaultTestOptions())

	seedChannelDecisions(t, dm, 12, domain.StatusPending)
	seedChannelDecisions(t, dm, 2, domain.StatusApproved)

	t.Run("first page is capped", func(t *testing.T) {
		decisions, summary, err := svc.ListDecisions(ctx, "C100", "", 1)
		require.NoError(t, err)
		assert.Len(t, decisions, ListPageSize)
		assert.Equal(t, 14, summary.Total)
		assert.Equal(t, 12, summary.Pending)
		assert.Equal(t, 2, summary.Approved)
	})

	t.Run("second page has the rest", func(t *testing.T) {
		decisions, _, err := svc.ListDecisions(ctx, "C100", "", 2)
		require.NoError(t, err)
		assert.Len(t, decisions, 4)
	})

	t.Run("status filter", func(t *testing.T) {
		decisions, _, err := svc.ListDecisions(ctx, "C100", domain.StatusApproved, 1)
		require.NoError(t, err)
		assert.Len(t, decisions, 2)
	})

	t.Run("page below one is clamped", func(t *testing.T) {
		decisions, _, err := svc.ListDecisions(ctx, "C100", "", 0)
		require.NoError(t, err)
		assert.Len(t, decisions, ListPageSize)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, _, err := svc.ListDecisions(ctx, "C100", "bananas", 1)
		require.Error(t, err)

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestListDecisions_ExpiredFilterCoversVariants(t *testing.T) {
	ctx := context.Background()
	svc, _, dm := newTestService(t, defaultTestOptions())

	seedChannelDecisions(t, dm, 1, domain.StatusPending)
	seedChannelDecisions(t, dm, 1, domain.StatusExpired)
	seedChannelDecisions(t, dm, 1, domain.StatusExpiredNoConsensus)
	seedChannelDecisions(t, dm, 1, domain.StatusExpiredUnreachable)

	// Listing "expired" returns every expired variant, including decisions
	// the sweep closed without consensus and decisions closed as unreachable.
	decisions, _, err := svc.ListDecisions(ctx, "C100", domain.StatusExpired, 1)
	require.NoError(t, err)
	require.Len(t, decisions, 3)
	for _, d := range decisions {
		assert.NotEqual(t, domain.StatusPending, d.Status)
	}
}

func TestSearchDecisions(t *testing.T) {
	ctx := context.Background()
	svc, _, dm := newTestService(t, defaultTestOptions())

	require.NoError(t, dm.Decision().Create(&entity.Decision{
		Text:                "Should we order Pizza for the retro?",
		Status:              domain.StatusPending,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		CreatedAt:           time.Now().UTC(),
	}))

	results, err := svc.SearchDecisions(ctx, "C100", "pizza")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.SearchDecisions(ctx, "C100", "kubernetes")
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.SearchDecisions(ctx, "C100", "   ")
	require.Error(t, err)

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
