package contract

import (
	"context"

	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// DecisionService is the decision lifecycle engine: proposal creation,
// vote recording, status transitions and the queries behind the slash
// command surface.
type DecisionService interface {
	Propose(ctx context.Context, channelID, teamID, text, userID, userName string) (*entity.Decision, error)
	AddApproved(ctx context.Context, channelID, teamID, text, userID, userName string) (*entity.Decision, error)
	Vote(ctx context.Context, decisionID int64, voterID, voterName, voteType string, anonymous bool) (*entity.Decision, error)
	GetDecision(ctx context.Context, decisionID int64) (*entity.Decision, []*entity.Vote, error)
	GetUserVote(ctx context.Context, decisionID int64, voterID string) (*entity.Decision, *entity.Vote, error)
	ListDecisions(ctx context.Context, channelID, status string, page int) ([]*entity.Decision, *entity.DecisionSummary, error)
	SearchDecisions(ctx context.Context, channelID, term string) ([]*entity.Decision, error)

	GetChannelConfig(ctx context.Context, channelID string) (*entity.ChannelConfig, []*entity.ConfigChangeLog, error)
	UpdateChannelConfig(ctx context.Context, channelID, setting string, value int, updatedBy, updatedByName string) (*entity.ChannelConfig, error)

	Summarize(ctx context.Context, channelID, teamID string) (string, error)
	Suggest(ctx context.Context, channelID, teamID string) (string, error)

	SweepStale(ctx context.Context) (int, error)
	HandleMemberLeft(ctx context.Context, channelID, userID, userName string) error
	HandleMemberJoined(ctx context.Context, channelID, userID, userName string) error
}
