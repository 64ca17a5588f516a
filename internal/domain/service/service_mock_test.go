package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/database"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/mocks"
	"go.uber.org/mock/gomock"
)

// testMocks bundles the mocked collaborators; storage is a real in-memory
// database so transitions run against the actual SQL.
type testMocks struct {
	slack *mocks.MockSlackClient
	ai    *mocks.MockAISummarizer
	crm   *mocks.MockCRMSyncer
}

func newTestService(t *testing.T, opts Options) (contract.DecisionService, testMocks, contract.DataManager) {
	t.Helper()

	ctrl := gomock.NewController(t)

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	m := testMocks{
		slack: mocks.NewMockSlackClient(ctrl),
		ai:    mocks.NewMockAISummarizer(ctrl),
		crm:   mocks.NewMockCRMSyncer(ctrl),
	}

	dm := database.NewInstance(db)
	instance := NewInstance(dm, m.slack, m.ai, m.crm, opts)
	return instance.Decision, m, dm
}

func defaultTestOptions() Options {
	return Options{
		DecisionTimeout: 48 * time.Hour,
		MonthlyAILimit:  100,
	}
}
