package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VoteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVoteRepo(db *dbpg.DB) *VoteRepository {
	return &VoteRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VoteRepository) Create(ctx context.Context, v *domain.Vote) error {
	query := `INSERT INTO event_votes (id, event_id, voter_id, nominee_id, award_category, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.EventID, v.VoterID, v.NomineeID, v.AwardCategory, v.Reason, v.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("insert vote: %w", err)
	}

	return nil
}

// ListByEvent returns the individual vote records in casting order.
func (r *VoteRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Vote, error) {
	query := `SELECT id, event_id, voter_id, nominee_id, award_category, reason, created_at
			  FROM event_votes
			  WHERE event_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err = rows.Scan(&v.ID, &v.EventID, &v.VoterID, &v.NomineeID, &v.AwardCategory, &v.Reason, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
