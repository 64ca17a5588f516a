package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Decision() DecisionRepo
	Vote() VoteRepo
	ChannelConfig() ChannelConfigRepo
	Installation() InstallationRepo
	AIUsage() AIUsageRepo
}

// DecisionRepo defines the contract for the decision repository
type DecisionRepo interface {
	Create(decision *entity.Decision) error
	GetByID(id int64) (*entity.Decision, error)
	GetByChannel(channelID, status string, limit, offset int) ([]*entity.Decision, error)
	GetPendingByChannel(channelID string) ([]*entity.Decision, error)
	GetPendingOlderThan(cutoff time.Time) ([]*entity.Decision, error)
	Search(channelID, term string) ([]*entity.Decision, error)
	GetSummaryByChannel(channelID string) (*entity.DecisionSummary, error)
	IncrementVoteCount(id int64, voteType string) error
	UpdateStatus(id int64, status string, closedAt time.Time) error
	SetCRMSynced(id int64, synced bool) error
}

// VoteRepo defines the contract for the vote repository
type VoteRepo interface {
	Create(vote *entity.Vote) error
	GetByDecisionAndVoter(decisionID int64, voterID string) (*entity.Vote, error)
	GetByDecision(decisionID int64) ([]*entity.Vote, error)
	CountByDecision(decisionID int64, voteType string) (int, error)
}

// ChannelConfigRepo defines the contract for channel configuration and its
// append-only change log
type ChannelConfigRepo interface {
	Get(channelID string) (*entity.ChannelConfig, error)
	Create(config *entity.ChannelConfig) error
	Update(config *entity.ChannelConfig) error
	AppendChangeLog(log *entity.ConfigChangeLog) error
	GetChangeLogs(channelID string, limit int) ([]*entity.ConfigChangeLog, error)
}

// InstallationRepo defines the contract for workspace and CRM installations
type InstallationRepo interface {
	UpsertCRM(install *entity.CRMInstallation) error
	GetCRMByOrgID(orgID string) (*entity.CRMInstallation, error)
	UpdateCRMTokens(orgID, accessToken, refreshToken string, expiresAt *time.Time) error
	UpsertSlack(install *entity.SlackInstallation) error
	GetSlackByTeamID(teamID string) (*entity.SlackInstallation, error)
	DeleteCRM(orgID string) error
}

// AIUsageRepo defines the contract for the monthly AI usage counters
type AIUsageRepo interface {
	GetOrCreate(orgID, monthYear string, defaultLimit int) (*entity.AIUsage, error)
	// TryIncrement bumps the counter only while it is below the monthly
	// limit and reports whether the increment happened.
	TryIncrement(orgID, monthYear string) (bool, error)
}
