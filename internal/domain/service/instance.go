package service

import (
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
)

type Instance struct {
	Decision contract.DecisionService
}

// Options carries the tunables the decision engine needs.
type Options struct {
	// DecisionTimeout is how long a decision may stay pending before the
	// sweep closes it.
	DecisionTimeout time.Duration

	// MonthlyAILimit caps AI commands per organization per month.
	MonthlyAILimit int
}

// NewInstance wires the decision service. AI and CRM collaborators may be
// nil, which disables those features without disabling voting.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient,
	ai contract.AISummarizer, crm contract.CRMSyncer, opts Options) *Instance {
	return &Instance{
		Decision: newDecision(dm, slackClient, ai, crm, opts),
	}
}
