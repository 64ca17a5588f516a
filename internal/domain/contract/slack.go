package contract

// SlackClient defines the outbound Slack operations the bot needs.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a channel and returns its timestamp.
	PostMessage(channelID, text string) (string, error)

	// PostEphemeral sends a message visible only to one user.
	PostEphemeral(channelID, userID, text string) error

	// GetUserDisplayName resolves a user ID to a display name.
	GetUserDisplayName(userID string) (string, error)

	// GetChannelMemberCount returns the number of human members in a
	// channel, excluding the bot itself.
	GetChannelMemberCount(channelID string) (int, error)
}
