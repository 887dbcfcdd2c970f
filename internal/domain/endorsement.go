package domain

import (
	"fmt"
	"time"
)

// Endorsement is a permanent award record, distinct from a Vote. It may be
// granted in the context of an event or stand alone.
type Endorsement struct {
	ID         string    `json:"id"`
	GiverID    string    `json:"giver_id"`
	ReceiverID string    `json:"receiver_id"`
	Category   string    `json:"category"`
	Message    string    `json:"message"`
	EventID    *string   `json:"event_id,omitempty"`
	Skills     string    `json:"skills,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// EndorsementSummary is the compact shape embedded in an event aggregate.
type EndorsementSummary struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	GiverName string    `json:"giver_name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateEndorsementInput struct {
	ReceiverID string
	Category   string
	Message    string
	EventID    *string
	Skills     string
}

// DefaultEndorsementMessage builds the message used when the grantor
// supplies none. eventName may be empty for endorsements without an event.
func DefaultEndorsementMessage(category, eventName string) string {
	if eventName == "" {
		return fmt.Sprintf("Awarded for %s", category)
	}
	return fmt.Sprintf("Awarded for %s during %s", category, eventName)
}
