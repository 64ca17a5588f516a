package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

type decisionRepo struct {
	db dbConn
}

func newDecisionRepo(db dbConn) contract.DecisionRepo {
	return &decisionRepo{db: db}
}

const decisionColumns = `id, text, status, proposer_id, proposer_name, channel_id, team_id, crm_org_id,
		group_size_at_creation, approval_threshold, approval_count, rejection_count,
		created_at, closed_at, crm_synced`

func (r *decisionRepo) Create(decision *entity.Decision) error {
	query := `
		INSERT INTO decisions (text, status, proposer_id, proposer_name, channel_id, team_id, crm_org_id,
			group_size_at_creation, approval_threshold, approval_count, rejection_count,
			created_at, closed_at, crm_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		decision.Text,
		decision.Status,
		decision.ProposerID,
		decision.ProposerName,
		decision.ChannelID,
		decision.TeamID,
		decision.CRMOrgID,
		decision.GroupSizeAtCreation,
		decision.ApprovalThreshold,
		decision.ApprovalCount,
		decision.RejectionCount,
		decision.CreatedAt,
		decision.ClosedAt,
		decision.CRMSynced,
	)
	if err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	decision.ID = id
	return nil
}

func (r *decisionRepo) scanDecision(scan func(dest ...interface{}) error) (*entity.Decision, error) {
	decision := &entity.Decision{}
	var closedAt sql.NullTime

	err := scan(
		&decision.ID,
		&decision.Text,
		&decision.Status,
		&decision.ProposerID,
		&decision.ProposerName,
		&decision.ChannelID,
		&decision.TeamID,
		&decision.CRMOrgID,
		&decision.GroupSizeAtCreation,
		&decision.ApprovalThreshold,
		&decision.ApprovalCount,
		&decision.RejectionCount,
		&decision.CreatedAt,
		&closedAt,
		&decision.CRMSynced,
	)
	if err != nil {
		return nil, err
	}

	if closedAt.Valid {
		t := closedAt.Time
		decision.ClosedAt = &t
	}
	return decision, nil
}

func (r *decisionRepo) GetByID(id int64) (*entity.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE id = ?`

	row := r.db.QueryRow(query, id)
	decision, err := r.scanDecision(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}

	return decision, nil
}

func (r *decisionRepo) GetByChannel(channelID, status string, limit, offset int) ([]*entity.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE channel_id = ?`
	args := []interface{}{channelID}

	// The user-facing "expired" filter covers every expired variant.
	if status == domain.StatusExpired {
		query += ` AND status IN (?, ?, ?)`
		args = append(args, domain.StatusExpired, domain.StatusExpiredNoConsensus, domain.StatusExpiredUnreachable)
	} else if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}

	query += ` ORDER BY created_at DESC`

	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	return r.queryDecisions(query, args...)
}

func (r *decisionRepo) GetPendingByChannel(channelID string) ([]*entity.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions
		WHERE channel_id = ? AND status = ?
		ORDER BY created_at DESC`

	return r.queryDecisions(query, channelID, domain.StatusPending)
}

func (r *decisionRepo) GetPendingOlderThan(cutoff time.Time) ([]*entity.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions
		WHERE status = ? AND created_at < ?
		ORDER BY created_at ASC`

	return r.queryDecisions(query, domain.StatusPending, cutoff)
}

func (r *decisionRepo) Search(channelID, term string) ([]*entity.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions
		WHERE channel_id = ? AND LOWER(text) LIKE '%' || LOWER(?) || '%'
		ORDER BY created_at DESC`

	return r.queryDecisions(query, channelID, term)
}

func (r *decisionRepo) queryDecisions(query string, args ...interface{}) ([]*entity.Decision, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var decisions []*entity.Decision
	for rows.Next() {
		decision, err := r.scanDecision(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		decisions = append(decisions, decision)
	}

	return decisions, rows.Err()
}

func (r *decisionRepo) GetSummaryByChannel(channelID string) (*entity.DecisionSummary, error) {
	query := `SELECT status, COUNT(*) FROM decisions WHERE channel_id = ? GROUP BY status`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get decision summary: %w", err)
	}
	defer rows.Close()

	summary := &entity.DecisionSummary{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}

		summary.Total += count
		switch status {
		case domain.StatusPending:
			summary.Pending = count
		case domain.StatusApproved:
			summary.Approved = count
		case domain.StatusRejected:
			summary.Rejected = count
		case domain.StatusExpired:
			summary.Expired = count
		case domain.StatusExpiredNoConsensus:
			summary.ExpiredNoConsensus = count
		case domain.StatusExpiredUnreachable:
			summary.ExpiredUnreachable = count
		}
	}

	return summary, rows.Err()
}

func (r *decisionRepo) IncrementVoteCount(id int64, voteType string) error {
	var query string
	switch voteType {
	case domain.VoteApprove:
		query = `UPDATE decisions SET approval_count = approval_count + 1 WHERE id = ?`
	case domain.VoteReject:
		query = `UPDATE decisions SET rejection_count = rejection_count + 1 WHERE id = ?`
	default:
		return fmt.Errorf("invalid vote type: %s", voteType)
	}

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to increment vote count: %w", err)
	}
	return nil
}

func (r *decisionRepo) UpdateStatus(id int64, status string, closedAt time.Time) error {
	query := `UPDATE decisions SET status = ?, closed_at = ? WHERE id = ?`

	if _, err := r.db.Exec(query, status, closedAt, id); err != nil {
		return fmt.Errorf("failed to update decision status: %w", err)
	}
	return nil
}

func (r *decisionRepo) SetCRMSynced(id int64, synced bool) error {
	query := `UPDATE decisions SET crm_synced = ? WHERE id = ?`

	if _, err := r.db.Exec(query, synced, id); err != nil {
		return fmt.Errorf("failed to update crm_synced: %w", err)
	}
	return nil
}
