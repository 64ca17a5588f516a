package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// aiContextSize caps how many recent decisions feed one AI prompt.
const aiContextSize = 20

func (s *decisionService) Summarize(ctx context.Context, channelID, teamID string) (string, error) {
	decisions, err := s.prepareAIRequest(ctx, channelID, teamID)
	if err != nil {
		return "", err
	}
	return s.ai.SummarizeDecisions(ctx, decisions)
}

func (s *decisionService) Suggest(ctx context.Context, channelID, teamID string) (string, error) {
	decisions, err := s.prepareAIRequest(ctx, channelID, teamID)
	if err != nil {
		return "", err
	}
	return s.ai.SuggestNextSteps(ctx, decisions)
}

// prepareAIRequest runs the usage gate and loads the prompt context. The
// gate increments before the AI call, so a failed call still consumes one
// command; refunding would reopen the race the conditional update closes.
func (s *decisionService) prepareAIRequest(ctx context.Context, channelID, teamID string) ([]*entity.Decision, error) {
	if s.ai == nil {
		return nil, domain.NewValidationError("AI features are not configured for this bot")
	}

	orgID := s.orgIDForTeam(teamID)
	if orgID == "" {
		// Workspaces without a CRM organization are metered by team ID.
		orgID = teamID
	}

	monthYear := time.Now().UTC().Format("2006-01")
	usage, err := s.dm.AIUsage().GetOrCreate(orgID, monthYear, s.opts.MonthlyAILimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load ai usage: %w", err)
	}

	allowed, err := s.dm.AIUsage().TryIncrement(orgID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to increment ai usage: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("%w (limit: %d per month)", domain.ErrAILimitExceeded, usage.MonthlyLimit)
	}

	decisions, err := s.dm.Decision().GetByChannel(channelID, "", aiContextSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}
	if len(decisions) == 0 {
		return nil, domain.NewValidationError("no decisions in this channel to analyze yet")
	}

	return decisions, nil
}
