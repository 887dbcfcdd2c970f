package workflow

import "github.com/teampulse/teampulse/internal/domain"

type Role int

const (
	RoleAttendee Role = iota
	RoleOrganizer
)

// Viewer is the authenticated user driving the workflow.
type Viewer struct {
	User domain.User
}

// RoleFor resolves the viewer's role for an event. The role is decided per
// event and does not change while the screen is open.
func (v Viewer) RoleFor(e *domain.Event) Role {
	if e != nil && e.IsOrganizer(v.User.ID) {
		return RoleOrganizer
	}
	return RoleAttendee
}
