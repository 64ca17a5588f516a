package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

type channelConfigRepo struct {
	db dbConn
}

func newChannelConfigRepo(db dbConn) contract.ChannelConfigRepo {
	return &channelConfigRepo{db: db}
}

func (r *channelConfigRepo) Get(channelID string) (*entity.ChannelConfig, error) {
	config := &entity.ChannelConfig{}
	query := `
		SELECT channel_id, approval_percentage, updated_at, updated_by
		FROM channel_configs
		WHERE channel_id = ?
	`

	err := r.db.QueryRow(query, channelID).Scan(
		&config.ChannelID,
		&config.ApprovalPercentage,
		&config.UpdatedAt,
		&config.UpdatedBy,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel config: %w", err)
	}

	return config, nil
}

func (r *channelConfigRepo) Create(config *entity.ChannelConfig) error {
	query := `
		INSERT INTO channel_configs (channel_id, approval_percentage, updated_at, updated_by)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		config.ChannelID,
		config.ApprovalPercentage,
		config.UpdatedAt,
		config.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel config: %w", err)
	}

	return nil
}

func (r *channelConfigRepo) Update(config *entity.ChannelConfig) error {
	query := `
		UPDATE channel_configs SET
			approval_percentage = ?,
			updated_at = ?,
			updated_by = ?
		WHERE channel_id = ?
	`

	_, err := r.db.Exec(query,
		config.ApprovalPercentage,
		config.UpdatedAt,
		config.UpdatedBy,
		config.ChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel config: %w", err)
	}

	return nil
}

func (r *channelConfigRepo) AppendChangeLog(log *entity.ConfigChangeLog) error {
	query := `
		INSERT INTO config_change_logs (channel_id, setting_name, old_value, new_value,
			changed_by, changed_by_name, changed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		log.ChannelID,
		log.SettingName,
		log.OldValue,
		log.NewValue,
		log.ChangedBy,
		log.ChangedByName,
		log.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append config change log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	log.ID = id
	return nil
}

func (r *channelConfigRepo) GetChangeLogs(channelID string, limit int) ([]*entity.ConfigChangeLog, error) {
	query := `
		SELECT id, channel_id, setting_name, old_value, new_value, changed_by, changed_by_name, changed_at
		FROM config_change_logs
		WHERE channel_id = ?
		ORDER BY changed_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get config change logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.ConfigChangeLog
	for rows.Next() {
		log := &entity.ConfigChangeLog{}
		err := rows.Scan(
			&log.ID,
			&log.ChannelID,
			&log.SettingName,
			&log.OldValue,
			&log.NewValue,
			&log.ChangedBy,
			&log.ChangedByName,
			&log.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan config change log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
