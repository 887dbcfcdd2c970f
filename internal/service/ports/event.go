package ports

import (
	"context"

	"github.com/teampulse/teampulse/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
	Delete(ctx context.Context, id string) error
	CompleteElapsed(ctx context.Context) ([]*domain.Event, error)
}

type ParticipantRepo interface {
	Upsert(ctx context.Context, p *domain.Participant) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Participant, error)
}

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error)
}
