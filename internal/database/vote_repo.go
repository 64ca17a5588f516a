package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

type voteRepo struct {
	db dbConn
}

func newVoteRepo(db dbConn) contract.VoteRepo {
	return &voteRepo{db: db}
}

func (r *voteRepo) Create(vote *entity.Vote) error {
	query := `
		INSERT INTO votes (decision_id, voter_id, voter_name, vote_type, is_anonymous, voted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		vote.DecisionID,
		vote.VoterID,
		vote.VoterName,
		vote.VoteType,
		vote.IsAnonymous,
		vote.VotedAt,
	)
	if err != nil {
		// The unique constraint on (decision_id, voter_id) is the real
		// guard against double-voting races.
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicateVote
		}
		return fmt.Errorf("failed to create vote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	vote.ID = id
	return nil
}

func (r *voteRepo) GetByDecisionAndVoter(decisionID int64, voterID string) (*entity.Vote, error) {
	vote := &entity.Vote{}
	query := `
		SELECT id, decision_id, voter_id, voter_name, vote_type, is_anonymous, voted_at
		FROM votes
		WHERE decision_id = ? AND voter_id = ?
	`

	err := r.db.QueryRow(query, decisionID, voterID).Scan(
		&vote.ID,
		&vote.DecisionID,
		&vote.VoterID,
		&vote.VoterName,
		&vote.VoteType,
		&vote.IsAnonymous,
		&vote.VotedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return vote, nil
}

func (r *voteRepo) GetByDecision(decisionID int64) ([]*entity.Vote, error) {
	query := `
		SELECT id, decision_id, voter_id, voter_name, vote_type, is_anonymous, voted_at
		FROM votes
		WHERE decision_id = ?
		ORDER BY voted_at ASC
	`

	rows, err := r.db.Query(query, decisionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	defer rows.Close()

	var votes []*entity.Vote
	for rows.Next() {
		vote := &entity.Vote{}
		err := rows.Scan(
			&vote.ID,
			&vote.DecisionID,
			&vote.VoterID,
			&vote.VoterName,
			&vote.VoteType,
			&vote.IsAnonymous,
			&vote.VotedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}

	return votes, rows.Err()
}

func (r *voteRepo) CountByDecision(decisionID int64, voteType string) (int, error) {
	query := `SELECT COUNT(*) FROM votes WHERE decision_id = ? AND vote_type = ?`

	var count int
	if err := r.db.QueryRow(query, decisionID, voteType).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
