package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

type aiUsageRepo struct {
	db dbConn
}

func newAIUsageRepo(db dbConn) contract.AIUsageRepo {
	return &aiUsageRepo{db: db}
}

func (r *aiUsageRepo) GetOrCreate(orgID, monthYear string, defaultLimit int) (*entity.AIUsage, error) {
	// Insert-if-missing first so two concurrent callers converge on the
	// same row; the unique constraint makes the second insert a no-op.
	insert := `
		INSERT INTO organization_ai_limits (crm_org_id, month_year, monthly_limit, command_count, last_used_at)
		VALUES (?, ?, ?, 0, ?)
		ON CONFLICT(crm_org_id, month_year) DO NOTHING
	`
	if _, err := r.db.Exec(insert, orgID, monthYear, defaultLimit, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to create ai usage row: %w", err)
	}

	usage := &entity.AIUsage{}
	query := `
		SELECT id, crm_org_id, month_year, monthly_limit, command_count, last_used_at
		FROM organization_ai_limits
		WHERE crm_org_id = ? AND month_year = ?
	`

	err := r.db.QueryRow(query, orgID, monthYear).Scan(
		&usage.ID,
		&usage.CRMOrgID,
		&usage.MonthYear,
		&usage.MonthlyLimit,
		&usage.CommandCount,
		&usage.LastUsedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ai usage row missing after insert for org %s", orgID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ai usage: %w", err)
	}

	return usage, nil
}

// TryIncrement is the atomic read-check-increment of the usage gate: the
// guard lives in the WHERE clause, so concurrent callers cannot push the
// counter past the monthly limit.
func (r *aiUsageRepo) TryIncrement(orgID, monthYear string) (bool, error) {
	query := `
		UPDATE organization_ai_limits
		SET command_count = command_count + 1, last_used_at = ?
		WHERE crm_org_id = ? AND month_year = ? AND command_count < monthly_limit
	`

	result, err := r.db.Exec(query, time.Now().UTC(), orgID, monthYear)
	if err != nil {
		return false, fmt.Errorf("failed to increment ai usage: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}
