package domain

import "time"

type Vote struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	VoterID       string    `json:"voter_id"`
	NomineeID     string    `json:"nominee_id"`
	AwardCategory string    `json:"award_category"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// VoteCount is a derived per-nominee tally within one award category.
// It is never persisted; it is recomputed from the raw vote records.
type VoteCount struct {
	AwardCategory string `json:"award_category"`
	NomineeID     string `json:"nominee_id"`
	NomineeName   string `json:"nominee_name"`
	NomineeAvatar string `json:"nominee_avatar"`
	Count         int    `json:"count"`
}

type CastVoteInput struct {
	NomineeID     string
	AwardCategory string
	Reason        string
}
