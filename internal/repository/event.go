package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, name, date_time, end_time, timezone, meeting_link, event_type,
			status, agenda, organizer_id, has_awards, voting_required, award_categories, created_at`

func scanEvent(row interface{ Scan(...any) error }, e *domain.Event) error {
	return row.Scan(
		&e.ID, &e.Name, &e.DateTime, &e.EndTime, &e.Timezone, &e.MeetingLink,
		&e.EventType, &e.Status, &e.Agenda, &e.OrganizerID,
		&e.HasAwards, &e.VotingRequired, &e.AwardCategories, &e.CreatedAt,
	)
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, date_time, end_time, timezone, meeting_link, event_type,
				status, agenda, organizer_id, has_awards, voting_required, award_categories, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.DateTime, e.EndTime, e.Timezone, e.MeetingLink, e.EventType,
		e.Status, e.Agenda, e.OrganizerID, e.HasAwards, e.VotingRequired, e.AwardCategories, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// GetDetails loads the event together with its organizer's display name.
// Participants and endorsements are attached by the service layer.
func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.name, e.date_time, e.end_time, e.timezone, e.meeting_link, e.event_type,
			e.status, e.agenda, e.organizer_id, e.has_awards, e.voting_required, e.award_categories,
			e.created_at, u.name AS organizer_name
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	e := &d.Event
	err = row.Scan(
		&e.ID, &e.Name, &e.DateTime, &e.EndTime, &e.Timezone, &e.MeetingLink,
		&e.EventType, &e.Status, &e.Agenda, &e.OrganizerID,
		&e.HasAwards, &e.VotingRequired, &e.AwardCategories, &e.CreatedAt,
		&d.OrganizerName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status=$2 WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// CompleteElapsed flips every UPCOMING event whose window has passed to
// COMPLETED and returns the affected rows.
func (r *EventRepository) CompleteElapsed(ctx context.Context) ([]*domain.Event, error) {
	query := `
		UPDATE events
		SET status = $2
		WHERE status = $1
		  AND COALESCE(end_time, date_time) < NOW()
		RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusUpcoming, domain.EventStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
