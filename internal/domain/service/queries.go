package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// ListPageSize is how many decisions one list page shows.
const ListPageSize = 10

func (s *decisionService) GetDecision(ctx context.Context, decisionID int64) (*entity.Decision, []*entity.Vote, error) {
	decision, err := s.dm.Decision().GetByID(decisionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get decision: %w", err)
	}
	if decision == nil {
		return nil, nil, domain.ErrDecisionNotFound
	}

	votes, err := s.dm.Vote().GetByDecision(decisionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get votes: %w", err)
	}

	return decision, votes, nil
}

func (s *decisionService) GetUserVote(ctx context.Context, decisionID int64, voterID string) (*entity.Decision, *entity.Vote, error) {
	decision, err := s.dm.Decision().GetByID(decisionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get decision: %w", err)
	}
	if decision == nil {
		return nil, nil, domain.ErrDecisionNotFound
	}

	vote, err := s.dm.Vote().GetByDecisionAndVoter(decisionID, voterID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return decision, vote, nil
}

func (s *decisionService) ListDecisions(ctx context.Context, channelID, status string, page int) ([]*entity.Decision, *entity.DecisionSummary, error) {
	if status != "" && !isValidStatus(status) {
		return nil, nil, domain.NewValidationError(
			"unknown status %q, valid values: %s", status, strings.Join(domain.ValidStatuses, ", "))
	}
	if page < 1 {
		page = 1
	}

	decisions, err := s.dm.Decision().GetByChannel(channelID, status, ListPageSize, (page-1)*ListPageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	summary, err := s.dm.Decision().GetSummaryByChannel(channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get decision summary: %w", err)
	}

	return decisions, summary, nil
}

func (s *decisionService) SearchDecisions(ctx context.Context, channelID, term string) ([]*entity.Decision, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("search term must not be empty")
	}

	decisions, err := s.dm.Decision().Search(channelID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search decisions: %w", err)
	}
	return decisions, nil
}

func isValidStatus(status string) bool {
	for _, s := range domain.ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
