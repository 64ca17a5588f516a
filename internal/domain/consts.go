package domain

// Decision statuses. A decision starts as pending and ends in exactly one
// of the terminal statuses; there are no transitions out of a terminal
// status.
const (
	StatusPending            = "pending"
	StatusApproved           = "approved"
	StatusRejected           = "rejected"
	StatusExpired            = "expired"
	StatusExpiredNoConsensus = "expired_no_consensus"
	StatusExpiredUnreachable = "expired_unreachable"
)

// ValidStatuses lists every status a decision row may carry.
var ValidStatuses = []string{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusExpired,
	StatusExpiredNoConsensus,
	StatusExpiredUnreachable,
}

// Vote types.
const (
	VoteApprove = "approve"
	VoteReject  = "reject"
)

// Proposal text limits.
const (
	MinProposalLength = 10
	MaxProposalLength = 500
)

// DefaultApprovalPercentage is used for channels that never configured
// their own percentage.
const DefaultApprovalPercentage = 60

// DefaultMonthlyAILimit caps AI commands per organization per calendar
// month when no custom limit is set.
const DefaultMonthlyAILimit = 100

// StatusEmoji maps a decision status to its display emoji.
var StatusEmoji = map[string]string{
	StatusPending:            "⏳",
	StatusApproved:           "✅",
	StatusRejected:           "❌",
	StatusExpired:            "⌛",
	StatusExpiredNoConsensus: "🤝",
	StatusExpiredUnreachable: "🚫",
}

// IsTerminalStatus reports whether a status allows no further votes.
func IsTerminalStatus(status string) bool {
	return status != StatusPending
}
