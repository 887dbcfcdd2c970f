package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert inserts the RSVP record or, if one exists for (event, user),
// replaces its status. At most one row per pair is kept by the unique
// constraint.
func (r *ParticipantRepository) Upsert(ctx context.Context, p *domain.Participant) error {
	query := `INSERT INTO event_participants (id, event_id, user_id, rsvp_status, attended)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (event_id, user_id)
			  DO UPDATE SET rsvp_status = EXCLUDED.rsvp_status, attended = EXCLUDED.attended`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.UserID, p.RSVPStatus, p.Attended,
	)
	if err != nil {
		return fmt.Errorf("upsert participant: %w", err)
	}

	return nil
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	query := `SELECT p.id, p.event_id, p.user_id, u.name, p.rsvp_status, p.attended
			  FROM event_participants p
			  JOIN users u ON u.id = p.user_id
			  WHERE p.event_id = $1
			  ORDER BY u.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.UserName, &p.RSVPStatus, &p.Attended); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
