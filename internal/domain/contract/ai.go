package contract

import (
	"context"

	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// AISummarizer generates natural-language summaries and next-step
// suggestions from decision data via a hosted LLM.
type AISummarizer interface {
	SummarizeDecisions(ctx context.Context, decisions []*entity.Decision) (string, error)
	SuggestNextSteps(ctx context.Context, decisions []*entity.Decision) (string, error)
}
