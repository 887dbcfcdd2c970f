package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EndorsementRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEndorsementRepo(db *dbpg.DB) *EndorsementRepository {
	return &EndorsementRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EndorsementRepository) Create(ctx context.Context, e *domain.Endorsement) error {
	query := `INSERT INTO endorsements (id, giver_id, receiver_id, category, message, event_id, skills, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.GiverID, e.ReceiverID, e.Category, e.Message, e.EventID, e.Skills, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert endorsement: %w", err)
	}

	return nil
}

func (r *EndorsementRepository) List(ctx context.Context) ([]*domain.Endorsement, error) {
	query := `SELECT id, giver_id, receiver_id, category, message, event_id, skills, created_at
			  FROM endorsements
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list endorsements: %w", err)
	}
	defer rows.Close()

	var res []*domain.Endorsement
	for rows.Next() {
		var e domain.Endorsement
		if err = rows.Scan(&e.ID, &e.GiverID, &e.ReceiverID, &e.Category, &e.Message, &e.EventID, &e.Skills, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan endorsement: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// SummariesByEvent returns the compact endorsement rows embedded in an
// event aggregate, newest first.
func (r *EndorsementRepository) SummariesByEvent(ctx context.Context, eventID string) ([]*domain.EndorsementSummary, error) {
	query := `SELECT e.id, e.category, u.name, e.created_at
			  FROM endorsements e
			  JOIN users u ON u.id = e.giver_id
			  WHERE e.event_id = $1
			  ORDER BY e.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list endorsement summaries: %w", err)
	}
	defer rows.Close()

	var res []*domain.EndorsementSummary
	for rows.Next() {
		var s domain.EndorsementSummary
		if err = rows.Scan(&s.ID, &s.Category, &s.GiverName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan endorsement summary: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
