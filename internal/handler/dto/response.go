package dto

import (
	"time"

	"github.com/teampulse/teampulse/internal/domain"
)

type EventResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DateTime        string `json:"date_time"`
	EndTime         string `json:"end_time,omitempty"`
	Timezone        string `json:"timezone"`
	MeetingLink     string `json:"meeting_link"`
	EventType       string `json:"event_type,omitempty"`
	Status          string `json:"status"`
	Agenda          string `json:"agenda,omitempty"`
	OrganizerID     string `json:"organizer_id"`
	HasAwards       bool   `json:"has_awards"`
	VotingRequired  bool   `json:"voting_required"`
	AwardCategories string `json:"award_categories"`
	CreatedAt       string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event         EventResponse                `json:"event"`
	OrganizerName string                       `json:"organizer_name"`
	Participants  []ParticipantResponse        `json:"participants"`
	Endorsements  []EndorsementSummaryResponse `json:"endorsements"`
}

type ParticipantResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	RSVPStatus string `json:"rsvp_status"`
	Attended   bool   `json:"attended"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type VoteResponse struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	NomineeID     string `json:"nominee_id"`
	AwardCategory string `json:"award_category"`
	Reason        string `json:"reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type EndorsementResponse struct {
	ID         string  `json:"id"`
	GiverID    string  `json:"giver_id"`
	ReceiverID string  `json:"receiver_id"`
	Category   string  `json:"category"`
	Message    string  `json:"message"`
	EventID    *string `json:"event_id,omitempty"`
	Skills     string  `json:"skills,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type EndorsementSummaryResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	GiverName string `json:"giver_name"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	var endTime string
	if e.EndTime != nil {
		endTime = e.EndTime.Format(time.RFC3339)
	}

	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		DateTime:        e.DateTime.Format(time.RFC3339),
		EndTime:         endTime,
		Timezone:        e.Timezone,
		MeetingLink:     e.MeetingLink,
		EventType:       e.EventType,
		Status:          string(e.Status),
		Agenda:          e.Agenda,
		OrganizerID:     e.OrganizerID,
		HasAwards:       e.HasAwards,
		VotingRequired:  e.VotingRequired,
		AwardCategories: e.AwardCategories,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	participants := make([]ParticipantResponse, 0, len(d.Participants))
	for i := range d.Participants {
		participants = append(participants, ToParticipantResponse(&d.Participants[i]))
	}

	endorsements := make([]EndorsementSummaryResponse, 0, len(d.Endorsements))
	for _, e := range d.Endorsements {
		endorsements = append(endorsements, EndorsementSummaryResponse{
			ID:        e.ID,
			Category:  e.Category,
			GiverName: e.GiverName,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}

	return EventDetailsResponse{
		Event:         ToEventResponse(&d.Event),
		OrganizerName: d.OrganizerName,
		Participants:  participants,
		Endorsements:  endorsements,
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		UserName:   p.UserName,
		RSVPStatus: string(p.RSVPStatus),
		Attended:   p.Attended,
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// ToVoteResponse deliberately omits the voter id; ballots read back from the
// organizer view stay anonymous at the API surface.
func ToVoteResponse(v *domain.Vote) VoteResponse {
	return VoteResponse{
		ID:            v.ID,
		EventID:       v.EventID,
		NomineeID:     v.NomineeID,
		AwardCategory: v.AwardCategory,
		Reason:        v.Reason,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
}

func ToEndorsementResponse(e *domain.Endorsement) EndorsementResponse {
	return EndorsementResponse{
		ID:         e.ID,
		GiverID:    e.GiverID,
		ReceiverID: e.ReceiverID,
		Category:   e.Category,
		Message:    e.Message,
		EventID:    e.EventID,
		Skills:     e.Skills,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Avatar:    u.AvatarURL(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
