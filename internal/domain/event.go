package domain

import (
	"strings"
	"time"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	DateTime        time.Time   `json:"date_time"`
	EndTime         *time.Time  `json:"end_time,omitempty"`
	Timezone        string      `json:"timezone"`
	MeetingLink     string      `json:"meeting_link"`
	EventType       string      `json:"event_type,omitempty"`
	Status          EventStatus `json:"status"`
	Agenda          string      `json:"agenda,omitempty"`
	OrganizerID     string      `json:"organizer_id"`
	HasAwards       bool        `json:"has_awards"`
	VotingRequired  bool        `json:"voting_required"`
	AwardCategories string      `json:"award_categories"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Categories splits the comma-delimited award category list. Labels are
// trimmed and empty entries dropped; duplicates are kept as entered.
func (e *Event) Categories() []string {
	if e.AwardCategories == "" {
		return nil
	}

	var res []string
	for _, c := range strings.Split(e.AwardCategories, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			res = append(res, c)
		}
	}

	return res
}

// IsOrganizer reports whether userID owns this event.
func (e *Event) IsOrganizer(userID string) bool {
	return userID != "" && userID == e.OrganizerID
}

// Elapsed reports whether the event's scheduled window has passed.
// Events with an end time are over at that end time.
func (e *Event) Elapsed(now time.Time) bool {
	end := e.DateTime
	if e.EndTime != nil {
		end = *e.EndTime
	}
	return end.Before(now)
}

type EventDetails struct {
	Event         Event                `json:"event"`
	OrganizerName string               `json:"organizer_name"`
	Participants  []Participant        `json:"participants"`
	Endorsements  []EndorsementSummary `json:"endorsements"`
}

// ParticipantFor returns the RSVP record of userID, if one exists.
func (d *EventDetails) ParticipantFor(userID string) (*Participant, bool) {
	for i := range d.Participants {
		if d.Participants[i].UserID == userID {
			return &d.Participants[i], true
		}
	}
	return nil, false
}

type CreateEventInput struct {
	Name            string
	DateTime        time.Time
	EndTime         *time.Time
	Timezone        string
	MeetingLink     string
	EventType       string
	Agenda          string
	OrganizerID     string
	HasAwards       bool
	VotingRequired  bool
	AwardCategories string
}
