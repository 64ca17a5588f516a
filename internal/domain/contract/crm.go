package contract

import (
	"context"

	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// CRMSyncer pushes decision records to the connected CRM. Implementations
// are best-effort collaborators: a sync failure is logged by the caller and
// never rolls back the decision state that triggered it.
type CRMSyncer interface {
	SyncDecision(ctx context.Context, decision *entity.Decision) error
}
