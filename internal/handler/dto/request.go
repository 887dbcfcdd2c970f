package dto

type CreateEventRequest struct {
	Name            string `json:"name" binding:"required"`
	DateTime        string `json:"date_time" binding:"required"`
	EndTime         string `json:"end_time"`
	Timezone        string `json:"timezone"`
	MeetingLink     string `json:"meeting_link"`
	EventType       string `json:"event_type"`
	Agenda          string `json:"agenda"`
	OrganizerID     string `json:"organizer_id"`
	HasAwards       bool   `json:"has_awards"`
	VotingRequired  bool   `json:"voting_required"`
	AwardCategories string `json:"award_categories"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RSVPRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	RSVPStatus string `json:"rsvp_status" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CastVoteRequest struct {
	NomineeID     string `json:"nominee_id" binding:"required,uuid"`
	AwardCategory string `json:"award_category" binding:"required"`
	Reason        string `json:"reason"`
}

type CreateEndorsementRequest struct {
	ReceiverID string  `json:"receiver_id" binding:"required,uuid"`
	Category   string  `json:"category" binding:"required"`
	Message    string  `json:"message"`
	EventID    *string `json:"event_id"`
	Skills     string  `json:"skills"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
