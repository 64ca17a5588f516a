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
	"go.uber.org/mock/gomock"
)

func seedStaleDecision(t *testing.T, dm contract.DataManager, approvals, rejections int) *entity.Decision {
	t.Helper()

	decision := &entity.Decision{
		Text:                "Should we adopt trunk-based development?",
		Status:              domain.StatusPending,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		TeamID:              "T100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		ApprovalCount:       approvals,
		RejectionCount:      rejections,
		CreatedAt:           time.Now().UTC().Add(-72 * time.Hour),
	}
	require.NoError(t, dm.Decision().Create(decision))

	for i := 0; i < approvals; i++ {
		require.NoError(t, dm.Vote().Create(&entity.Vote{
			DecisionID: decision.ID,
			VoterID:    fmt.Sprintf("U-approve-%d", i),
			VoterName:  fmt.Sprintf("approver-%d", i),
			VoteType:   domain.VoteApprove,
			VotedAt:    decision.CreatedAt,
		}))
	}
	for i := 0; i < rejections; i++ {
		require.NoError(t, dm.Vote().Create(&entity.Vote{
			DecisionID: decision.ID,
			VoterID:    fmt.Sprintf("U-reject-%d", i),
			VoterName:  fmt.Sprintf("rejecter-%d", i),
			VoteType:   domain.VoteReject,
			VotedAt:    decision.CreatedAt,
		}))
	}
	return decision
}

func TestSweepStale(t *testing.T) {
	tests := []struct {
		name       string
		approvals  int
		rejections int
		wantStatus string
	}{
		{"majority approves", 4, 2, domain.StatusApproved},
		{"majority rejects", 1, 3, domain.StatusRejected},
		{"tie expires without consensus", 2, 2, domain.StatusExpiredNoConsensus},
		{"no votes is a tie", 0, 0, domain.StatusExpiredNoConsensus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m, dm := newTestService(t, defaultTestOptions())

			decision := seedStaleDecision(t, dm, tt.approvals, tt.rejections)

			m.slack.EXPECT().PostMessage("C100", gomock.Any()).Return("", nil)

			closed, err := svc.SweepStale(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, closed)

			got, err := dm.Decision().GetByID(decision.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			require.NotNil(t, got.ClosedAt)
		})
	}
}

func TestSweepStale_ClosesOnVoteRows(t *testing.T) {
	ctx := context.Background()
	svc, m, dm := newTestService(t, defaultTestOptions())

	// The counters on the row claim an approval majority, but the votes
	// table only holds rejections. The sweep closes on the votes.
	decision := &entity.Decision{
		Text:                "Should we adopt trunk-based development?",
		Status:              domain.StatusPending,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		TeamID:              "T100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		ApprovalCount:       3,
		CreatedAt:           time.Now().UTC().Add(-72 * time.Hour),
	}
	require.NoError(t, dm.Decision().Create(decision))
	for i := 0; i < 2; i++ {
		require.NoError(t, dm.Vote().Create(&entity.Vote{
			DecisionID: decision.ID,
			VoterID:    fmt.Sprintf("U-reject-%d", i),
			VoterName:  fmt.Sprintf("rejecter-%d", i),
			VoteType:   domain.VoteReject,
			VotedAt:    decision.CreatedAt,
		}))
	}

	m.slack.EXPECT().PostMessage("C100", gomock.Any()).Return("", nil)

	closed, err := svc.SweepStale(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	got, err := dm.Decision().GetByID(decision.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
}

func TestSweepStale_SkipsFreshDecisions(t *testing.T) {
	ctx := context.Background()
	svc, _, dm := newTestService(t, defaultTestOptions())

	fresh := &entity.Decision{
		Text:                "Should we adopt trunk-based development?",
		Status:              domain.StatusPending,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		CreatedAt:           time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, dm.Decision().Create(fresh))

	closed, err := svc.SweepStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)

	got, err := dm.Decision().GetByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestSweepStale_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, m, dm := newTestService(t, defaultTestOptions())

	seedStaleDecision(t, dm, 3, 1)

	m.slack.EXPECT().PostMessage("C100", gomock.Any()).Return("", nil)

	closed, err := svc.SweepStale(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	// Second pass finds nothing pending; no second notification.
	closed, err = svc.SweepStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestSweepStale_NotificationContent(t *testing.T) {
	ctx := context.Background()
	svc, m, dm := newTestService(t, defaultTestOptions())

	decision := seedStaleDecision(t, dm, 4, 2)

	var sent string
	m.slack.EXPECT().PostMessage("C100", gomock.Any()).
		DoAndReturn(func(channelID, text string) (string, error) {
			sent = text
			return "", nil
		})

	_, err := svc.SweepStale(ctx)
	require.NoError(t, err)

	assert.Contains(t, sent, "Auto-Closed")
	assert.Contains(t, sent, "APPROVED")
	assert.Contains(t, sent, decision.Text)
	assert.Contains(t, sent, "Approvals: 4")
	assert.Contains(t, sent, "Rejections: 2")
	assert.Contains(t, sent, "48 hours")
}
