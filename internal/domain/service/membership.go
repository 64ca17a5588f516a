package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// HandleMemberLeft closes pending decisions whose approval threshold is now
// above the channel's member count and announces the closures.
func (s *decisionService) HandleMemberLeft(ctx context.Context, channelID, userID, userName string) error {
	memberCount, err := s.slackClient.GetChannelMemberCount(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel member count: %w", err)
	}

	pending, err := s.dm.Decision().GetPendingByChannel(channelID)
	if err != nil {
		return fmt.Errorf("failed to get pending decisions: %w", err)
	}

	var closed []*entity.Decision
	now := time.Now().UTC()
	for _, decision := range pending {
		if decision.ApprovalThreshold <= memberCount {
			continue
		}

		err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
			current, err := dm.Decision().GetByID(decision.ID)
			if err != nil {
				return err
			}
			if current == nil || domain.IsTerminalStatus(current.Status) {
				return nil
			}
			return dm.Decision().UpdateStatus(decision.ID, domain.StatusExpiredUnreachable, now)
		})
		if err != nil {
			log.Printf("Failed to close unreachable decision %d: %v", decision.ID, err)
			continue
		}

		decision.Status = domain.StatusExpiredUnreachable
		decision.ClosedAt = &now
		closed = append(closed, decision)
		s.syncToCRM(ctx, decision)
	}

	if len(closed) == 0 {
		return nil
	}

	message := formatUnreachableNotification(closed, userName, memberCount)
	if _, err := s.slackClient.PostMessage(channelID, message); err != nil {
		log.Printf("Failed to send unreachable notification: %v", err)
	}
	return nil
}

// HandleMemberJoined greets the new member with the channel's pending
// decisions, visible only to them.
func (s *decisionService) HandleMemberJoined(ctx context.Context, channelID, userID, userName string) error {
	pending, err := s.dm.Decision().GetPendingByChannel(channelID)
	if err != nil {
		return fmt.Errorf("failed to get pending decisions: %w", err)
	}

	message := formatWelcomeMessage(userName, pending)
	if err := s.slackClient.PostEphemeral(channelID, userID, message); err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}
	return nil
}

func formatUnreachableNotification(closed []*entity.Decision, leavingMember string, memberCount int) string {
	var b strings.Builder

	plural := "s"
	if len(closed) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "⚠️ *%d decision%s closed due to member departure*\n\n", len(closed), plural)
	fmt.Fprintf(&b, "_%s left the channel. The following pending decisions can no longer reach their approval threshold:_\n\n", leavingMember)

	for _, d := range closed {
		fmt.Fprintf(&b,
			"*Decision #%d* - 🚫 Closed as Unreachable\n"+
				"_%s_\n"+
				"• Required: %d approvals\n"+
				"• Current members: %d\n"+
				"• Had: %d approvals, %d rejections\n"+
				"• Proposed by: %s\n\n",
			d.ID, d.Text, d.ApprovalThreshold, memberCount,
			d.ApprovalCount, d.RejectionCount, d.ProposerName)
	}

	b.WriteString("💡 *Note:* Vote history has been preserved. " +
		"You can view these decisions with `/decision show <id>` or `/decision list`.")
	return b.String()
}

func formatWelcomeMessage(userName string, pending []*entity.Decision) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 *Welcome to the channel, %s!*\n", userName)
	b.WriteString("I'm the decision bot. I help teams make decisions together.\n")

	if len(pending) == 0 {
		b.WriteString("\n✨ There are currently no pending decisions in this channel.\n\n" +
			"💡 *How to use me:*\n" +
			"• `/decision propose \"Your decision text\"` - Propose a new decision\n" +
			"• `/decision add \"Decision text\"` - Add a pre-approved decision\n" +
			"• `/decision list` - View all decisions\n" +
			"• `/decision help` - See all available commands")
		return b.String()
	}

	verb, plural := "are", "s"
	if len(pending) == 1 {
		verb, plural = "is", ""
	}
	fmt.Fprintf(&b, "\n📋 *There %s %d pending decision%s awaiting votes:*\n", verb, len(pending), plural)

	shown := pending
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, d := range shown {
		needed := d.ApprovalThreshold - d.ApprovalCount
		fmt.Fprintf(&b,
			"\n*Decision #%d*\n"+
				"_%s_\n"+
				"👍 %d/%d approvals (%d more needed)\n"+
				"👎 %d rejections\n"+
				"Proposed by: %s\n",
			d.ID, d.Text, d.ApprovalCount, d.ApprovalThreshold, needed,
			d.RejectionCount, d.ProposerName)
	}
	if len(pending) > 5 {
		fmt.Fprintf(&b, "\n_...and %d more_\n", len(pending)-5)
	}

	b.WriteString("\n💡 *You can vote on these decisions:*\n" +
		"• `/decision approve <id>` - Vote to approve\n" +
		"• `/decision reject <id>` - Vote to reject\n" +
		"• `/decision show <id>` - View decision details\n" +
		"• `/decision list pending` - See all pending decisions\n\n" +
		"Use `/decision help` to see all available commands.")
	return b.String()
}
