// Package workflow holds the client-side state machines behind the event
// detail screen: tab navigation, RSVP, discussion, the award voting poll
// and the grant-award form. Components talk to the service through the
// Backend port so they can be driven against the real HTTP client or a
// test double alike.
package workflow

import (
	"context"

	"github.com/teampulse/teampulse/internal/domain"
)

// Backend is the slice of the TeamPulse API the workflow components need.
// The HTTP implementation lives in the client package.
type Backend interface {
	GetEvent(ctx context.Context, eventID string) (*domain.EventDetails, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListComments(ctx context.Context, eventID string) ([]domain.Comment, error)
	PostComment(ctx context.Context, eventID, content string) (*domain.Comment, error)
	SubmitRSVP(ctx context.Context, eventID, userID string, status domain.RSVPStatus) error
	ListVotes(ctx context.Context, eventID string) ([]domain.Vote, error)
	CastVote(ctx context.Context, eventID string, input domain.CastVoteInput) error
	CreateEndorsement(ctx context.Context, input domain.CreateEndorsementInput) (*domain.Endorsement, error)
}
