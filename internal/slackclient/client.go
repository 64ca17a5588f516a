// Package slackclient adapts the slack-go API client to the narrow
// interface the domain layer depends on.
package slackclient

import (
	"fmt"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

type client struct {
	api *slack.Client
}

// New wraps a slack-go client.
func New(api *slack.Client) contract.SlackClient {
	return &client{api: api}
}

// NewFromToken builds a client from a bot token.
func NewFromToken(botToken string) contract.SlackClient {
	return New(slack.New(botToken))
}

func (c *client) PostMessage(channelID, text string) (string, error) {
	_, ts, err := c.api.PostMessage(channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return ts, nil
}

func (c *client) PostEphemeral(channelID, userID, text string) error {
	_, err := c.api.PostEphemeral(channelID, userID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post ephemeral message: %w", err)
	}
	return nil
}

func (c *client) GetUserDisplayName(userID string) (string, error) {
	user, err := c.api.GetUserInfo(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName, nil
	}
	if user.RealName != "" {
		return user.RealName, nil
	}
	return user.Name, nil
}

// GetChannelMemberCount reads num_members from channel info and subtracts
// the bot itself. Falls back to paging through the member list when the
// count is missing (some channel types omit it).
func (c *client) GetChannelMemberCount(channelID string) (int, error) {
	info, err := c.api.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID:         channelID,
		IncludeNumMembers: true,
	})
	if err == nil && info.NumMembers > 0 {
		count := info.NumMembers - 1
		if count < 1 {
			count = 1
		}
		return count, nil
	}

	total := 0
	cursor := ""
	for {
		members, next, err := c.api.GetUsersInConversation(&slack.GetUsersInConversationParameters{
			ChannelID: channelID,
			Cursor:    cursor,
			Limit:     200,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to get channel members: %w", err)
		}
		total += len(members)
		if next == "" {
			break
		}
		cursor = next
	}

	count := total - 1
	if count < 1 {
		count = 1
	}
	return count, nil
}
