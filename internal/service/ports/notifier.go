package ports

import (
	"context"

	"github.com/teampulse/teampulse/internal/domain"
)

type AwardNotifier interface {
	NotifyEndorsementReceived(ctx context.Context, receiver *domain.User, e *domain.Endorsement, eventName string)
	NotifyAwardsPending(ctx context.Context, organizer *domain.User, event *domain.Event)
}
