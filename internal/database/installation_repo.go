package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

type installationRepo struct {
	db dbConn
}

func newInstallationRepo(db dbConn) contract.InstallationRepo {
	return &installationRepo{db: db}
}

func (r *installationRepo) UpsertCRM(install *entity.CRMInstallation) error {
	query := `
		INSERT INTO crm_installations (crm_org_id, crm_domain, access_token, refresh_token,
			token_expires_at, installed_at, installed_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(crm_org_id) DO UPDATE SET
			crm_domain = excluded.crm_domain,
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_expires_at = excluded.token_expires_at,
			installed_by = excluded.installed_by
	`

	_, err := r.db.Exec(query,
		install.CRMOrgID,
		install.CRMDomain,
		install.AccessToken,
		install.RefreshToken,
		install.TokenExpiresAt,
		install.InstalledAt,
		install.InstalledBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert crm installation: %w", err)
	}

	return nil
}

func (r *installationRepo) GetCRMByOrgID(orgID string) (*entity.CRMInstallation, error) {
	install := &entity.CRMInstallation{}
	var expiresAt sql.NullTime
	query := `
		SELECT id, crm_org_id, crm_domain, access_token, refresh_token,
			token_expires_at, installed_at, installed_by
		FROM crm_installations
		WHERE crm_org_id = ?
	`

	err := r.db.QueryRow(query, orgID).Scan(
		&install.ID,
		&install.CRMOrgID,
		&install.CRMDomain,
		&install.AccessToken,
		&install.RefreshToken,
		&expiresAt,
		&install.InstalledAt,
		&install.InstalledBy,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get crm installation: %w", err)
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		install.TokenExpiresAt = &t
	}
	return install, nil
}

func (r *installationRepo) UpdateCRMTokens(orgID, accessToken, refreshToken string, expiresAt *time.Time) error {
	query := `
		UPDATE crm_installations SET
			access_token = ?,
			refresh_token = ?,
			token_expires_at = ?
		WHERE crm_org_id = ?
	`

	_, err := r.db.Exec(query, accessToken, refreshToken, expiresAt, orgID)
	if err != nil {
		return fmt.Errorf("failed to update crm tokens: %w", err)
	}

	return nil
}

func (r *installationRepo) UpsertSlack(install *entity.SlackInstallation) error {
	query := `
		INSERT INTO slack_installations (team_id, team_name, access_token, bot_user_id, installed_at, crm_org_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(team_id) DO UPDATE SET
			team_name = excluded.team_name,
			access_token = excluded.access_token,
			bot_user_id = excluded.bot_user_id,
			crm_org_id = excluded.crm_org_id
	`

	_, err := r.db.Exec(query,
		install.TeamID,
		install.TeamName,
		install.AccessToken,
		install.BotUserID,
		install.InstalledAt,
		install.CRMOrgID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert slack installation: %w", err)
	}

	return nil
}

func (r *installationRepo) GetSlackByTeamID(teamID string) (*entity.SlackInstallation, error) {
	install := &entity.SlackInstallation{}
	query := `
		SELECT team_id, team_name, access_token, bot_user_id, installed_at, crm_org_id
		FROM slack_installations
		WHERE team_id = ?
	`

	err := r.db.QueryRow(query, teamID).Scan(
		&install.TeamID,
		&install.TeamName,
		&install.AccessToken,
		&install.BotUserID,
		&install.InstalledAt,
		&install.CRMOrgID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slack installation: %w", err)
	}

	return install, nil
}

// DeleteCRM removes the tenant root along with the org's decisions and AI
// usage rows. Slack installations are kept so the workspace can relink
// after a reinstall.
func (r *installationRepo) DeleteCRM(orgID string) error {
	if _, err := r.db.Exec(`DELETE FROM organization_ai_limits WHERE crm_org_id = ?`, orgID); err != nil {
		return fmt.Errorf("failed to delete ai usage rows: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM decisions WHERE crm_org_id = ?`, orgID); err != nil {
		return fmt.Errorf("failed to delete tenant decisions: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM crm_installations WHERE crm_org_id = ?`, orgID); err != nil {
		return fmt.Errorf("failed to delete crm installation: %w", err)
	}
	return nil
}
