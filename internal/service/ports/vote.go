package ports

import (
	"context"

	"github.com/teampulse/teampulse/internal/domain"
)

type VoteRepo interface {
	Create(ctx context.Context, v *domain.Vote) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Vote, error)
}

type EndorsementRepo interface {
	Create(ctx context.Context, e *domain.Endorsement) error
	List(ctx context.Context) ([]*domain.Endorsement, error)
	SummariesByEvent(ctx context.Context, eventID string) ([]*domain.EndorsementSummary, error)
}
