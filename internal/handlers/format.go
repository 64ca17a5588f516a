package handlers

import (
	"fmt"
	"strings"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
	"github.com/diegoclair/slack-decision-bot/internal/domain/service"
)

func formatProposalSuccess(d *entity.Decision) string {
	return fmt.Sprintf(`🗳️ *New Decision Proposal*

*Decision #%d*
%s

📊 *Status:* PENDING ⏳
👤 *Proposed by:* %s
✅ *Required approvals:* %d/%d
📈 *Current votes:* 0 approvals, 0 rejections

*How to vote:*
- `+"`/decision approve %d`"+` - Vote to approve
- `+"`/decision reject %d`"+` - Vote to reject
- `+"`/decision approve %d --anonymous`"+` - Vote anonymously

💡 *Tip:* Use `+"`/decision show %d`"+` to see details anytime`,
		d.ID, d.Text, d.ProposerName, d.ApprovalThreshold, d.GroupSizeAtCreation,
		d.ID, d.ID, d.ID, d.ID)
}

func formatVoteConfirmation(d *entity.Decision, voteType string, anonymous bool) string {
	emoji, voteWord := "✅", "approve"
	if voteType == domain.VoteReject {
		emoji, voteWord = "❌", "reject"
	}
	anonText := ""
	if anonymous {
		anonText = " anonymously"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *Vote Recorded%s*\n\n", emoji, anonText)
	fmt.Fprintf(&b, "You voted to *%s* this decision%s:\n\"%s\"\n\n", voteWord, anonText, d.Text)
	fmt.Fprintf(&b, "📊 *Current Status:*\n")
	fmt.Fprintf(&b, "- ✅ Approvals: %d/%d\n", d.ApprovalCount, d.ApprovalThreshold)
	fmt.Fprintf(&b, "- ❌ Rejections: %d\n", d.RejectionCount)
	fmt.Fprintf(&b, "- 📈 Status: %s\n", strings.ToUpper(d.Status))

	if d.Status == domain.StatusPending {
		remaining := d.ApprovalThreshold - d.ApprovalCount
		fmt.Fprintf(&b, "\n💡 *%d more approval(s) needed to pass this decision*", remaining)
	}
	if anonymous {
		b.WriteString("\n\n🔒 Your vote is anonymous - your identity won't be shown to others.")
	}
	fmt.Fprintf(&b, "\n\n💡 Use `/decision myvote %d` to check your vote anytime", d.ID)
	return b.String()
}

// formatDecisionClosed announces a vote-triggered closure to the channel.
func formatDecisionClosed(d *entity.Decision, votes []*entity.Vote) string {
	closedAt := ""
	if d.ClosedAt != nil {
		closedAt = d.ClosedAt.Format("2006-01-02 15:04 UTC")
	}

	if d.Status == domain.StatusApproved {
		return fmt.Sprintf(`🎉 *DECISION APPROVED!*

*Decision #%d*
%s

✅ *Final Vote:* %d/%d approvals
📊 *Rejections:* %d
👤 *Proposed by:* %s
⏰ *Closed:* %s

*Votes:*
%s

The team has approved this proposal! 🎊`,
			d.ID, d.Text, d.ApprovalCount, d.GroupSizeAtCreation, d.RejectionCount,
			d.ProposerName, closedAt, formatVoteSummary(votes))
	}

	return fmt.Sprintf(`❌ *DECISION REJECTED*

*Decision #%d*
%s

❌ *Final Vote:* %d/%d rejections
📊 *Approvals:* %d
👤 *Proposed by:* %s
⏰ *Closed:* %s

*Votes:*
%s

The team has rejected this proposal.`,
		d.ID, d.Text, d.RejectionCount, d.GroupSizeAtCreation, d.ApprovalCount,
		d.ProposerName, closedAt, formatVoteSummary(votes))
}

// formatVoteSummary lists voters by vote type, hiding anonymous identities.
func formatVoteSummary(votes []*entity.Vote) string {
	var approvals, rejections []string
	for _, v := range votes {
		display := "🔒 Anonymous"
		if !v.IsAnonymous {
			display = fmt.Sprintf("<@%s>", v.VoterID)
		}
		if v.VoteType == domain.VoteApprove {
			approvals = append(approvals, "👍 "+display)
		} else {
			rejections = append(rejections, "👎 "+display)
		}
	}

	var sections []string
	if len(approvals) > 0 {
		sections = append(sections, "*Approvals:*\n"+strings.Join(approvals, "\n"))
	}
	if len(rejections) > 0 {
		sections = append(sections, "*Rejections:*\n"+strings.Join(rejections, "\n"))
	}
	if len(sections) == 0 {
		return "_No votes yet_"
	}
	return strings.Join(sections, "\n\n")
}

func formatDecisionDetail(d *entity.Decision, votes []*entity.Vote) string {
	emoji := domain.StatusEmoji[d.Status]
	if emoji == "" {
		emoji = "❓"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Decision #%d*\n\n", d.ID)
	fmt.Fprintf(&b, "*Proposal:*\n%s\n\n", d.Text)
	fmt.Fprintf(&b, "📊 *Status:* %s %s\n", emoji, strings.ToUpper(d.Status))
	fmt.Fprintf(&b, "👤 *Proposed by:* %s\n", d.ProposerName)
	fmt.Fprintf(&b, "✅ *Approval threshold:* %d/%d\n", d.ApprovalThreshold, d.GroupSizeAtCreation)
	fmt.Fprintf(&b, "📈 *Current votes:* %d approvals, %d rejections\n", d.ApprovalCount, d.RejectionCount)
	if d.ClosedAt != nil {
		fmt.Fprintf(&b, "⏰ *Closed:* %s\n", d.ClosedAt.Format("2006-01-02 15:04 UTC"))
	}
	fmt.Fprintf(&b, "\n*Votes:*\n%s", formatVoteSummary(votes))

	if d.Status == domain.StatusPending {
		fmt.Fprintf(&b, "\n\n*How to vote:*\n- `/decision approve %d` - Vote to approve\n- `/decision reject %d` - Vote to reject\n- Add `--anonymous` to vote anonymously", d.ID, d.ID)
	}
	return b.String()
}

func formatUserVoteDetail(v *entity.Vote, d *entity.Decision) string {
	voteEmoji, voteText := "👍", "approved"
	if v.VoteType == domain.VoteReject {
		voteEmoji, voteText = "👎", "rejected"
	}
	anonymity := "👤 Public vote"
	if v.IsAnonymous {
		anonymity = "🔒 Anonymous vote"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Your Vote on Decision #%d*\n\n", d.ID)
	fmt.Fprintf(&b, "*Decision:*\n%s\n\n", d.Text)
	fmt.Fprintf(&b, "%s You %s this decision\n%s\n", voteEmoji, voteText, anonymity)
	fmt.Fprintf(&b, "\n📅 *Voted on:* %s", v.VotedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "\n📊 *Decision status:* %s\n", strings.ToUpper(d.Status))

	if v.IsAnonymous {
		b.WriteString("\n🔒 Your identity is hidden from other users")
	} else {
		b.WriteString("\n👤 Your vote is visible to other users")
	}
	return b.String()
}

func formatDecisionList(decisions []*entity.Decision, summary *entity.DecisionSummary, status string, page int) string {
	filterTitle := "All"
	if status != "" {
		filterTitle = strings.ToUpper(status[:1]) + status[1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Decision Summary*\n")
	fmt.Fprintf(&b, "Total: *%d* decisions (⏳ *%d* pending, ✅ *%d* approved, ❌ *%d* rejected)\n\n",
		summary.Total, summary.Pending, summary.Approved, summary.Rejected)
	fmt.Fprintf(&b, "*%s Decisions* (Page %d)\n---\n", filterTitle, page)

	if len(decisions) == 0 {
		b.WriteString("_No decisions on this page._")
		return b.String()
	}

	for _, d := range decisions {
		emoji := domain.StatusEmoji[d.Status]
		if emoji == "" {
			emoji = "❓"
		}
		fmt.Fprintf(&b, "*%d:* %s (%s %s) [👍 %d | 👎 %d] _(%s)_\n",
			d.ID, truncate(d.Text, 50), emoji, titleStatus(d.Status),
			d.ApprovalCount, d.RejectionCount, d.CreatedAt.Format("2006-01-02"))
	}

	if len(decisions) == service.ListPageSize {
		filterArg := ""
		if status != "" {
			filterArg = status + " "
		}
		fmt.Fprintf(&b, "\n---\nNext: `/decision list %s%d`", filterArg, page+1)
	}
	return b.String()
}

func formatSearchResults(decisions []*entity.Decision, term string) string {
	if len(decisions) == 0 {
		return fmt.Sprintf("🔍 No decisions matching `%s` in this channel.", term)
	}

	var b strings.Builder
	plural := "s"
	if len(decisions) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "🔍 *%d decision%s matching `%s`:*\n\n", len(decisions), plural, term)
	for _, d := range decisions {
		emoji := domain.StatusEmoji[d.Status]
		if emoji == "" {
			emoji = "❓"
		}
		fmt.Fprintf(&b, "*%d:* %s (%s %s) [👍 %d | 👎 %d]\n",
			d.ID, truncate(d.Text, 50), emoji, titleStatus(d.Status),
			d.ApprovalCount, d.RejectionCount)
	}
	b.WriteString("\n💡 Use `/decision show <id>` to see details.")
	return b.String()
}

func formatChannelConfig(config *entity.ChannelConfig, logs []*entity.ConfigChangeLog) string {
	var b strings.Builder
	b.WriteString("⚙️ *Channel Configuration*\n\n")
	fmt.Fprintf(&b, "• *Approval percentage:* %d%%\n", config.ApprovalPercentage)
	b.WriteString("\n_New proposals need that share of channel members to approve._\n")

	if len(logs) > 0 {
		b.WriteString("\n*Recent changes:*\n")
		for _, l := range logs {
			fmt.Fprintf(&b, "• %s: %s %d%% → %d%% by %s\n",
				l.ChangedAt.Format("2006-01-02"), l.SettingName, l.OldValue, l.NewValue, l.ChangedByName)
		}
	}

	b.WriteString("\n💡 Change with `/decision config set approval_percentage <1-100>`")
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func titleStatus(status string) string {
	if status == "" {
		return status
	}
	return strings.ToUpper(status[:1]) + status[1:]
}
