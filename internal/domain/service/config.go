package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// SettingApprovalPercentage is the only channel setting today.
const SettingApprovalPercentage = "approval_percentage"

// changeLogDisplayLimit caps how many audit entries config show renders.
const changeLogDisplayLimit = 5

func (s *decisionService) GetChannelConfig(ctx context.Context, channelID string) (*entity.ChannelConfig, []*entity.ConfigChangeLog, error) {
	config, err := s.dm.ChannelConfig().Get(channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get channel config: %w", err)
	}
	if config == nil {
		// Unconfigured channels run on defaults; report them as-is.
		config = &entity.ChannelConfig{
			ChannelID:          channelID,
			ApprovalPercentage: domain.DefaultApprovalPercentage,
		}
	}

	logs, err := s.dm.ChannelConfig().GetChangeLogs(channelID, changeLogDisplayLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config change logs: %w", err)
	}

	return config, logs, nil
}

// UpdateChannelConfig writes the new value and its audit entry in one
// transaction so the change log never drifts from the config row.
func (s *decisionService) UpdateChannelConfig(ctx context.Context, channelID, setting string, value int, updatedBy, updatedByName string) (*entity.ChannelConfig, error) {
	if setting != SettingApprovalPercentage {
		return nil, domain.NewValidationError(
			"unknown setting %q, only %s can be configured", setting, SettingApprovalPercentage)
	}
	if value < 1 || value > 100 {
		return nil, domain.NewValidationError(
			"approval percentage must be between 1 and 100, got %d", value)
	}

	var result *entity.ChannelConfig
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		now := time.Now().UTC()

		config, err := dm.ChannelConfig().Get(channelID)
		if err != nil {
			return fmt.Errorf("failed to get channel config: %w", err)
		}

		oldValue := domain.DefaultApprovalPercentage
		if config != nil {
			oldValue = config.ApprovalPercentage
		}

		// Setting the value it already has is a no-op: no write, no audit row.
		if oldValue == value {
			if config == nil {
				config = &entity.ChannelConfig{
					ChannelID:          channelID,
					ApprovalPercentage: value,
				}
			}
			result = config
			return nil
		}

		if config == nil {
			config = &entity.ChannelConfig{
				ChannelID:          channelID,
				ApprovalPercentage: value,
				UpdatedAt:          now,
				UpdatedBy:          updatedBy,
			}
			if err := dm.ChannelConfig().Create(config); err != nil {
				return err
			}
		} else {
			config.ApprovalPercentage = value
			config.UpdatedAt = now
			config.UpdatedBy = updatedBy
			if err := dm.ChannelConfig().Update(config); err != nil {
				return err
			}
		}

		logEntry := &entity.ConfigChangeLog{
			ChannelID:     channelID,
			SettingName:   setting,
			OldValue:      oldValue,
			NewValue:      value,
			ChangedBy:     updatedBy,
			ChangedByName: updatedByName,
			ChangedAt:     now,
		}
		if err := dm.ChannelConfig().AppendChangeLog(logEntry); err != nil {
			return err
		}

		result = config
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
