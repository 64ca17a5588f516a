package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	decisionRepo     contract.DecisionRepo
	voteRepo         contract.VoteRepo
	configRepo       contract.ChannelConfigRepo
	installationRepo contract.InstallationRepo
	aiUsageRepo      contract.AIUsageRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.decisionRepo = newDecisionRepo(db.conn)
	i.voteRepo = newVoteRepo(db.conn)
	i.configRepo = newChannelConfigRepo(db.conn)
	i.installationRepo = newInstallationRepo(db.conn)
	i.aiUsageRepo = newAIUsageRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		decisionRepo:     newDecisionRepo(db),
		voteRepo:         newVoteRepo(db),
		configRepo:       newChannelConfigRepo(db),
		installationRepo: newInstallationRepo(db),
		aiUsageRepo:      newAIUsageRepo(db),
	}
}

func (i *instance) Decision() contract.DecisionRepo {
	return i.decisionRepo
}

func (i *instance) Vote() contract.VoteRepo {
	return i.voteRepo
}

func (i *instance) ChannelConfig() contract.ChannelConfigRepo {
	return i.configRepo
}

func (i *instance) Installation() contract.InstallationRepo {
	return i.installationRepo
}

func (i *instance) AIUsage() contract.AIUsageRepo {
	return i.aiUsageRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// Already inside a transaction; reuse the same connection.
		return fn(i)
	}

	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
