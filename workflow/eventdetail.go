package workflow

import (
	"context"
	"strings"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Tab string

const (
	TabOverview     Tab = "overview"
	TabParticipants Tab = "participants"
	TabDiscussion   Tab = "discussion"
	TabAwards       Tab = "awards"
	TabVote         Tab = "vote"
)

// EventDetail is the controller behind the event detail screen. It owns the
// event aggregate, tab navigation, RSVP, the discussion thread and the
// grant-award modal state.
type EventDetail struct {
	backend Backend
	log     logger.Logger
	viewer  Viewer

	event      *domain.EventDetails
	loadFailed bool

	activeTab      Tab
	comments       []domain.Comment
	commentsLoaded bool

	grantOpen      bool
	grantCategory  string
	grantRecipient string

	notice *Notice
}

func NewEventDetail(backend Backend, log logger.Logger, viewer Viewer) *EventDetail {
	return &EventDetail{
		backend:   backend,
		log:       log,
		viewer:    viewer,
		activeTab: TabOverview,
	}
}

// Load fetches the event aggregate. On failure the screen shows a
// not-found state and no actions are available until Load succeeds.
func (d *EventDetail) Load(ctx context.Context, eventID string) {
	details, err := d.backend.GetEvent(ctx, eventID)
	if err != nil {
		d.log.Error("failed to load event",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		d.event = nil
		d.loadFailed = true
		return
	}

	d.event = details
	d.loadFailed = false
}

func (d *EventDetail) Event() *domain.EventDetails { return d.event }
func (d *EventDetail) LoadFailed() bool            { return d.loadFailed }
func (d *EventDetail) Viewer() Viewer              { return d.viewer }

func (d *EventDetail) IsOrganizer() bool {
	if d.event == nil {
		return false
	}
	return d.viewer.RoleFor(&d.event.Event) == RoleOrganizer
}

// Tabs lists the tabs visible to the viewer. Awards requires the event to
// carry awards; Vote additionally requires voting to be open to attendees,
// unless the viewer organizes the event.
func (d *EventDetail) Tabs() []Tab {
	tabs := []Tab{TabOverview, TabParticipants, TabDiscussion}
	if d.event == nil {
		return tabs
	}

	e := &d.event.Event
	if e.HasAwards {
		tabs = append(tabs, TabAwards)
		if e.VotingRequired || d.IsOrganizer() {
			tabs = append(tabs, TabVote)
		}
	}

	return tabs
}

func (d *EventDetail) TabVisible(tab Tab) bool {
	for _, t := range d.Tabs() {
		if t == tab {
			return true
		}
	}
	return false
}

// ActivateTab switches to the given tab. Hidden tabs cannot be activated.
// The discussion thread is fetched on first activation and kept afterwards;
// a failed fetch is retried on the next activation.
func (d *EventDetail) ActivateTab(ctx context.Context, tab Tab) bool {
	if d.event == nil || !d.TabVisible(tab) {
		return false
	}

	d.activeTab = tab

	if tab == TabDiscussion && !d.commentsLoaded {
		comments, err := d.backend.ListComments(ctx, d.event.Event.ID)
		if err != nil {
			d.log.Error("failed to load comments",
				logger.String("event_id", d.event.Event.ID),
				logger.String("error", err.Error()),
			)
			return true
		}
		d.comments = comments
		d.commentsLoaded = true
	}

	return true
}

func (d *EventDetail) ActiveTab() Tab             { return d.activeTab }
func (d *EventDetail) Comments() []domain.Comment { return d.comments }

// MyRSVP reports the viewer's participant record, if any.
func (d *EventDetail) MyRSVP() (domain.RSVPStatus, bool) {
	if d.event == nil {
		return "", false
	}
	p, ok := d.event.ParticipantFor(d.viewer.User.ID)
	if !ok {
		return "", false
	}
	return p.RSVPStatus, true
}

// CanRSVP reports whether the viewer may still answer the invitation.
// Organizers never RSVP, and a recorded accept or decline is final.
func (d *EventDetail) CanRSVP() bool {
	if d.event == nil || d.viewer.User.ID == "" || d.IsOrganizer() {
		return false
	}
	status, ok := d.MyRSVP()
	if !ok {
		return true
	}
	return status == domain.RSVPNoResponse
}

// SubmitRSVP records the viewer's answer and reloads the aggregate so the
// participants list reflects it. On failure the aggregate is kept and an
// error notice is raised.
func (d *EventDetail) SubmitRSVP(ctx context.Context, status domain.RSVPStatus) error {
	if d.event == nil || d.viewer.User.ID == "" {
		return nil
	}

	eventID := d.event.Event.ID
	if err := d.backend.SubmitRSVP(ctx, eventID, d.viewer.User.ID, status); err != nil {
		d.log.Error("failed to submit rsvp",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		d.notice = &Notice{
			Kind:    NoticeError,
			Title:   "Update Failed",
			Message: "Failed to update RSVP status. Please try again.",
		}
		return err
	}

	d.Load(ctx, eventID)
	return nil
}

// PostComment appends a comment to the thread. Whitespace-only input is
// dropped without a request.
func (d *EventDetail) PostComment(ctx context.Context, content string) error {
	if d.event == nil || strings.TrimSpace(content) == "" {
		return nil
	}

	comment, err := d.backend.PostComment(ctx, d.event.Event.ID, content)
	if err != nil {
		d.log.Error("failed to post comment",
			logger.String("event_id", d.event.Event.ID),
			logger.String("error", err.Error()),
		)
		return err
	}

	d.comments = append(d.comments, *comment)
	return nil
}

// OpenGrantAward opens the grant-award modal, remembering the category and
// recipient the organizer picked from the tally.
func (d *EventDetail) OpenGrantAward(category, recipientID string) {
	d.grantOpen = true
	d.grantCategory = category
	d.grantRecipient = recipientID
}

func (d *EventDetail) CloseGrantAward() {
	d.grantOpen = false
	d.grantCategory = ""
	d.grantRecipient = ""
}

func (d *EventDetail) GrantAwardOpen() bool { return d.grantOpen }

func (d *EventDetail) GrantPrefill() (category, recipientID string) {
	return d.grantCategory, d.grantRecipient
}

// AwardGranted closes the modal and reloads the aggregate so the awards
// panel shows the new endorsement.
func (d *EventDetail) AwardGranted(ctx context.Context) {
	d.CloseGrantAward()
	if d.event != nil {
		d.Load(ctx, d.event.Event.ID)
	}
}

func (d *EventDetail) Notice() *Notice { return d.notice }
func (d *EventDetail) ClearNotice()    { d.notice = nil }
