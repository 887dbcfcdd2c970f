package domain

type RSVPStatus string

const (
	RSVPAccepted   RSVPStatus = "ACCEPTED"
	RSVPDeclined   RSVPStatus = "DECLINED"
	RSVPNoResponse RSVPStatus = "NO_RESPONSE"
)

// Valid reports whether s is one of the three known RSVP states.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPAccepted, RSVPDeclined, RSVPNoResponse:
		return true
	}
	return false
}

type Participant struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	UserID     string     `json:"user_id"`
	UserName   string     `json:"user_name"`
	RSVPStatus RSVPStatus `json:"rsvp_status"`
	Attended   bool       `json:"attended"`
}
