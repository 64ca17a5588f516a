package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
	"github.com/diegoclair/slack-decision-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingDecision(id int64) *entity.Decision {
	return &entity.Decision{
		ID:                  id,
		Text:                "Should we order pizza?",
		Status:              domain.StatusPending,
		ProposerID:          "U111",
		ProposerName:        "alice",
		ChannelID:           "C100",
		TeamID:              "T100",
		GroupSizeAtCreation: 10,
		ApprovalThreshold:   6,
		CreatedAt:           time.Now().UTC(),
	}
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, recorder.Code)

	var msg slack.Msg
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &msg))
	return msg
}

func TestHandleSlashCommand(t *testing.T) {
	tests := []struct {
		name          string
		commandText   string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, msg slack.Msg)
	}{
		{
			name:        "propose announces to the channel",
			commandText: `propose "Should we order pizza?"`,
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Propose(gomock.Any(), "C100", "T100", "Should we order pizza?", "U111", "alice").
					Return(pendingDecision(7), nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "New Decision Proposal")
				assert.Contains(t, msg.Text, "Decision #7")
				assert.Contains(t, msg.Text, "6/10")
			},
		},
		{
			name:        "propose validation failure",
			commandText: `propose "short txt"`,
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Propose(gomock.Any(), "C100", "T100", "short txt", "U111", "alice").
					Return(nil, domain.NewValidationError("decision text must be at least 10 characters"))
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "❌")
				assert.Contains(t, msg.Text, "at least 10 characters")
			},
		},
		{
			name:        "add records a pre-approved decision",
			commandText: `add "We use Go for backend services"`,
			buildMocks: func(m test.ServiceMocks) {
				now := time.Now().UTC()
				approved := pendingDecision(8)
				approved.Text = "We use Go for backend services"
				approved.Status = domain.StatusApproved
				approved.ClosedAt = &now
				m.DecisionServiceMock.EXPECT().
					AddApproved(gomock.Any(), "C100", "T100", "We use Go for backend services", "U111", "alice").
					Return(approved, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "Pre-approved decision recorded")
				assert.Contains(t, msg.Text, "Decision #8")
			},
		},
		{
			name:        "approve stays pending",
			commandText: "approve 7",
			buildMocks: func(m test.ServiceMocks) {
				voted := pendingDecision(7)
				voted.ApprovalCount = 3
				m.DecisionServiceMock.EXPECT().
					Vote(gomock.Any(), int64(7), "U111", "alice", domain.VoteApprove, false).
					Return(voted, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Vote Recorded")
				assert.Contains(t, msg.Text, "Approvals: 3/6")
				assert.Contains(t, msg.Text, "3 more approval(s) needed")
			},
		},
		{
			name:        "anonymous approve",
			commandText: "approve 7 --anonymous",
			buildMocks: func(m test.ServiceMocks) {
				voted := pendingDecision(7)
				voted.ApprovalCount = 1
				m.DecisionServiceMock.EXPECT().
					Vote(gomock.Any(), int64(7), "U111", "alice", domain.VoteApprove, true).
					Return(voted, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "anonymously")
				assert.Contains(t, msg.Text, "your identity won't be shown")
			},
		},
		{
			name:        "closing vote announces the outcome",
			commandText: "approve 7",
			buildMocks: func(m test.ServiceMocks) {
				now := time.Now().UTC()
				closed := pendingDecision(7)
				closed.Status = domain.StatusApproved
				closed.ApprovalCount = 6
				closed.ClosedAt = &now

				m.DecisionServiceMock.EXPECT().
					Vote(gomock.Any(), int64(7), "U111", "alice", domain.VoteApprove, false).
					Return(closed, nil)
				m.DecisionServiceMock.EXPECT().
					GetDecision(gomock.Any(), int64(7)).
					Return(closed, []*entity.Vote{
						{VoterID: "U111", VoteType: domain.VoteApprove},
						{VoterID: "U222", VoteType: domain.VoteApprove, IsAnonymous: true},
					}, nil)
				m.SlackClientMock.EXPECT().
					PostMessage("C100", gomock.Any()).
					DoAndReturn(func(channelID, text string) (string, error) {
						assert.Contains(t, text, "DECISION APPROVED")
						assert.Contains(t, text, "<@U111>")
						assert.Contains(t, text, "🔒 Anonymous")
						assert.NotContains(t, text, "U222", "Anonymous voter identity must not leak")
						return "", nil
					})
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Status: APPROVED")
			},
		},
		{
			name:        "double vote",
			commandText: "reject 7",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Vote(gomock.Any(), int64(7), "U111", "alice", domain.VoteReject, false).
					Return(nil, &domain.AlreadyVotedError{VoteType: domain.VoteApprove})
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "already voted")
				assert.Contains(t, msg.Text, "APPROVE")
			},
		},
		{
			name:        "vote on closed decision",
			commandText: "approve 7",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Vote(gomock.Any(), int64(7), "U111", "alice", domain.VoteApprove, false).
					Return(nil, &domain.DecisionClosedError{Status: domain.StatusRejected})
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "already *REJECTED*")
			},
		},
		{
			name:        "vote on missing decision",
			commandText: "approve 999",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Vote(gomock.Any(), int64(999), "U111", "alice", domain.VoteApprove, false).
					Return(nil, domain.ErrDecisionNotFound)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Decision not found")
			},
		},
		{
			name:        "show decision",
			commandText: "show 7",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					GetDecision(gomock.Any(), int64(7)).
					Return(pendingDecision(7), nil, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Decision #7")
				assert.Contains(t, msg.Text, "_No votes yet_")
			},
		},
		{
			name:        "myvote without a vote",
			commandText: "myvote 7",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					GetUserVote(gomock.Any(), int64(7), "U111").
					Return(pendingDecision(7), nil, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "You have not voted on decision #7")
			},
		},
		{
			name:        "myvote with an anonymous vote",
			commandText: "myvote 7",
			buildMocks: func(m test.ServiceMocks) {
				vote := &entity.Vote{
					DecisionID:  7,
					VoterID:     "U111",
					VoteType:    domain.VoteApprove,
					IsAnonymous: true,
					VotedAt:     time.Now().UTC(),
				}
				m.DecisionServiceMock.EXPECT().
					GetUserVote(gomock.Any(), int64(7), "U111").
					Return(pendingDecision(7), vote, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "You approved this decision")
				assert.Contains(t, msg.Text, "Anonymous vote")
			},
		},
		{
			name:        "list with status filter",
			commandText: "list pending 2",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					ListDecisions(gomock.Any(), "C100", domain.StatusPending, 2).
					Return([]*entity.Decision{pendingDecision(7)},
						&entity.DecisionSummary{Total: 11, Pending: 11}, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Decision Summary")
				assert.Contains(t, msg.Text, "Pending Decisions* (Page 2)")
			},
		},
		{
			name:        "search",
			commandText: `search "pizza"`,
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					SearchDecisions(gomock.Any(), "C100", "pizza").
					Return([]*entity.Decision{pendingDecision(7)}, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "1 decision matching `pizza`")
			},
		},
		{
			name:        "config show",
			commandText: "config show",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					GetChannelConfig(gomock.Any(), "C100").
					Return(&entity.ChannelConfig{ChannelID: "C100", ApprovalPercentage: 60}, nil, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Channel Configuration")
				assert.Contains(t, msg.Text, "60%")
			},
		},
		{
			name:        "config set announces to the channel",
			commandText: "config set approval_percentage 70",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					UpdateChannelConfig(gomock.Any(), "C100", "approval_percentage", 70, "U111", "alice").
					Return(&entity.ChannelConfig{ChannelID: "C100", ApprovalPercentage: 70}, nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "configuration updated")
				assert.Contains(t, msg.Text, "70%")
			},
		},
		{
			name:        "summarize",
			commandText: "summarize",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Summarize(gomock.Any(), "C100", "T100").
					Return("The team approved two decisions this week.", nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Decision Summary")
				assert.Contains(t, msg.Text, "approved two decisions")
			},
		},
		{
			name:        "summarize over the limit",
			commandText: "summarize",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Summarize(gomock.Any(), "C100", "T100").
					Return("", domain.ErrAILimitExceeded)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "monthly AI usage limit")
			},
		},
		{
			name:        "suggest",
			commandText: "suggest",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					Suggest(gomock.Any(), "C100", "T100").
					Return("Schedule a follow-up on the lunch budget.", nil)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Suggested Next Steps")
			},
		},
		{
			name:        "unknown action needs no service call",
			commandText: "dance 42",
			buildMocks:  func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "❌")
				assert.Contains(t, msg.Text, "Unknown action")
			},
		},
		{
			name:        "help",
			commandText: "help",
			buildMocks:  func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Command Reference")
			},
		},
		{
			name:        "storage failure stays generic",
			commandText: "show 7",
			buildMocks: func(m test.ServiceMocks) {
				m.DecisionServiceMock.EXPECT().
					GetDecision(gomock.Any(), int64(7)).
					Return(nil, nil, errors.New("disk exploded"))
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Something went wrong")
				assert.NotContains(t, msg.Text, "disk exploded")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, test.SlashCommandParams{Text: tt.commandText})
			recorder := httptest.NewRecorder()
			handler.HandleSlashCommand(recorder, req)

			tt.checkResponse(t, decodeResponse(t, recorder))
		})
	}
}

func TestHandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, test.SlashCommandParams{Text: "list"})
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")

	recorder := httptest.NewRecorder()
	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandleSlashCommand_MissingSignatureHeaders(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader("text=list"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
