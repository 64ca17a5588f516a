package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// SweepStale closes every pending decision older than the configured
// timeout. Each row is processed independently so one bad row cannot block
// the rest of the sweep. Returns how many decisions were closed.
func (s *decisionService) SweepStale(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.opts.DecisionTimeout)

	stale, err := s.dm.Decision().GetPendingOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to load stale decisions: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	log.Printf("Sweep found %d stale decision(s) to process", len(stale))

	closed := 0
	for _, decision := range stale {
		didClose, err := s.closeStaleDecision(ctx, decision)
		if err != nil {
			log.Printf("Failed to close stale decision %d: %v", decision.ID, err)
			continue
		}
		if didClose {
			closed++
		}
	}

	log.Printf("Sweep closed %d/%d stale decision(s)", closed, len(stale))
	return closed, nil
}

func (s *decisionService) closeStaleDecision(ctx context.Context, decision *entity.Decision) (bool, error) {
	now := time.Now().UTC()

	var finalStatus string
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		// Re-check under the transaction; a vote may have closed it since
		// the stale query ran.
		current, err := dm.Decision().GetByID(decision.ID)
		if err != nil {
			return err
		}
		if current == nil || domain.IsTerminalStatus(current.Status) {
			return nil
		}

		// Close on the votes table, not the denormalized counters on the
		// decision row.
		approvals, err := dm.Vote().CountByDecision(decision.ID, domain.VoteApprove)
		if err != nil {
			return err
		}
		rejections, err := dm.Vote().CountByDecision(decision.ID, domain.VoteReject)
		if err != nil {
			return err
		}
		decision.ApprovalCount = approvals
		decision.RejectionCount = rejections

		finalStatus = sweepFinalStatus(decision)
		return dm.Decision().UpdateStatus(decision.ID, finalStatus, now)
	})
	if err != nil || finalStatus == "" {
		return false, err
	}

	decision.Status = finalStatus
	decision.ClosedAt = &now

	s.notifySweepClosure(decision)
	s.syncToCRM(ctx, decision)
	return true, nil
}

// sweepFinalStatus decides where a timed-out decision lands: a majority in
// either direction closes it that way, a tie expires it without consensus.
func sweepFinalStatus(d *entity.Decision) string {
	switch {
	case d.ApprovalCount > d.RejectionCount:
		return domain.StatusApproved
	case d.RejectionCount > d.ApprovalCount:
		return domain.StatusRejected
	default:
		return domain.StatusExpiredNoConsensus
	}
}

func (s *decisionService) notifySweepClosure(d *entity.Decision) {
	var result, reason string
	switch d.Status {
	case domain.StatusApproved:
		result = "APPROVED"
		reason = "received more approvals than rejections"
	case domain.StatusRejected:
		result = "REJECTED"
		reason = "received more rejections than approvals"
	default:
		result = "EXPIRED (NO CONSENSUS)"
		reason = "ended in a tie"
	}

	hours := int(s.opts.DecisionTimeout.Hours())
	message := fmt.Sprintf(
		"%s *Decision #%d Auto-Closed: %s*\n\n"+
			"*Proposal:* %s\n\n"+
			"*Final Vote Count:*\n"+
			"👍 Approvals: %d\n"+
			"👎 Rejections: %d\n\n"+
			"*Reason:* This decision %s after %d hours of pending.\n"+
			"*Proposed by:* %s\n"+
			"*Closed at:* %s",
		domain.StatusEmoji[d.Status], d.ID, result,
		d.Text,
		d.ApprovalCount,
		d.RejectionCount,
		reason, hours,
		d.ProposerName,
		d.ClosedAt.Format("2006-01-02 15:04 UTC"),
	)

	if _, err := s.slackClient.PostMessage(d.ChannelID, message); err != nil {
		log.Printf("Failed to send sweep notification for decision %d: %v", d.ID, err)
	}
}
