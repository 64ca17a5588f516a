package entity

import "time"

// Decision is a proposal under vote within one channel. Vote counters are
// denormalized from the votes table and must stay consistent with it under
// every code path that mutates them.
type Decision struct {
	ID                  int64
	Text                string
	Status              string
	ProposerID          string
	ProposerName        string
	ChannelID           string
	TeamID              string
	CRMOrgID            string
	GroupSizeAtCreation int
	ApprovalThreshold   int
	ApprovalCount       int
	RejectionCount      int
	CreatedAt           time.Time
	ClosedAt            *time.Time
	CRMSynced           bool
}

// TotalVotes returns the sum of both counters.
func (d *Decision) TotalVotes() int {
	return d.ApprovalCount + d.RejectionCount
}

// Vote records one voter's choice on one decision. Immutable once created;
// at most one per (decision, voter), enforced by a unique constraint.
type Vote struct {
	ID          int64
	DecisionID  int64
	VoterID     string
	VoterName   string
	VoteType    string
	IsAnonymous bool
	VotedAt     time.Time
}

// ChannelConfig holds the per-channel approval percentage. Group size is
// not stored here; it is fetched from Slack at proposal time.
type ChannelConfig struct {
	ChannelID          string
	ApprovalPercentage int
	UpdatedAt          time.Time
	UpdatedBy          string
}

// ConfigChangeLog is one append-only audit entry for a config change.
type ConfigChangeLog struct {
	ID            int64
	ChannelID     string
	SettingName   string
	OldValue      int
	NewValue      int
	ChangedBy     string
	ChangedByName string
	ChangedAt     time.Time
}

// CRMInstallation is the tenant root: one row per connected CRM
// organization. Tokens are stored encrypted.
type CRMInstallation struct {
	ID             int64
	CRMOrgID       string
	CRMDomain      string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt *time.Time
	InstalledAt    time.Time
	InstalledBy    string
}

// SlackInstallation links one Slack workspace to a CRM organization.
type SlackInstallation struct {
	TeamID      string
	TeamName    string
	AccessToken string
	BotUserID   string
	InstalledAt time.Time
	CRMOrgID    string
}

// AIUsage is the monthly AI command counter for one organization.
// MonthYear uses the "YYYY-MM" format.
type AIUsage struct {
	ID           int64
	CRMOrgID     string
	MonthYear    string
	MonthlyLimit int
	CommandCount int
	LastUsedAt   time.Time
}

// Remaining returns how many AI commands are left this month.
func (u *AIUsage) Remaining() int {
	if u.CommandCount >= u.MonthlyLimit {
		return 0
	}
	return u.MonthlyLimit - u.CommandCount
}

// DecisionSummary holds per-status decision counts for one channel.
type DecisionSummary struct {
	Total              int
	Pending            int
	Approved           int
	Rejected           int
	Expired            int
	ExpiredNoConsensus int
	ExpiredUnreachable int
}
