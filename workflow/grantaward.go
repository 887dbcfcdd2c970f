package workflow

import (
	"context"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// GrantAwardForm backs the grant-award modal. The category is constrained
// to the event's declared list; when the event declares none the form is
// disabled entirely.
type GrantAwardForm struct {
	backend Backend
	log     logger.Logger
	event   domain.Event

	categories []string
	recipients []domain.User

	category    string
	recipientID string
	message     string
	submitting  bool

	notice    *Notice
	onGranted func()
}

// NewGrantAwardForm builds the form for one event. onGranted runs after a
// successful grant so the caller can refresh the awards panel; it may be
// nil.
func NewGrantAwardForm(backend Backend, log logger.Logger, event domain.Event, onGranted func()) *GrantAwardForm {
	return &GrantAwardForm{
		backend:    backend,
		log:        log,
		event:      event,
		categories: event.Categories(),
		onGranted:  onGranted,
	}
}

func (f *GrantAwardForm) Categories() []string { return f.categories }

// Disabled reports whether the form is unusable because the event declares
// no award categories.
func (f *GrantAwardForm) Disabled() bool { return len(f.categories) == 0 }

func (f *GrantAwardForm) DisabledReason() string {
	if !f.Disabled() {
		return ""
	}
	return "This event has no award categories configured."
}

// LoadRecipients fetches the recipient pool. Unlike the ballot, organizers
// may grant an award to anyone, themselves included.
func (f *GrantAwardForm) LoadRecipients(ctx context.Context) error {
	users, err := f.backend.ListUsers(ctx)
	if err != nil {
		f.log.Error("failed to load recipients",
			logger.String("event_id", f.event.ID),
			logger.String("error", err.Error()),
		)
		return err
	}

	f.recipients = users
	return nil
}

func (f *GrantAwardForm) Recipients() []domain.User { return f.recipients }

// Prefill seeds the form from a tally row.
func (f *GrantAwardForm) Prefill(category, recipientID string) {
	f.SetCategory(category)
	f.recipientID = recipientID
}

// SetCategory accepts only categories the event declares.
func (f *GrantAwardForm) SetCategory(category string) {
	for _, c := range f.categories {
		if c == category {
			f.category = category
			return
		}
	}
}

func (f *GrantAwardForm) SetRecipient(recipientID string) { f.recipientID = recipientID }
func (f *GrantAwardForm) SetMessage(message string)       { f.message = message }

func (f *GrantAwardForm) Category() string    { return f.category }
func (f *GrantAwardForm) RecipientID() string { return f.recipientID }
func (f *GrantAwardForm) Message() string     { return f.message }

// CanSubmit reports whether a category and recipient are chosen. The
// message is optional; a default is filled in on submit.
func (f *GrantAwardForm) CanSubmit() bool {
	return !f.submitting && !f.Disabled() && f.category != "" && f.recipientID != ""
}

// Submit grants the award. On success the fields reset for the next grant;
// on failure they are kept so the organizer can retry.
func (f *GrantAwardForm) Submit(ctx context.Context) error {
	if !f.CanSubmit() {
		return nil
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	message := f.message
	if message == "" {
		message = domain.DefaultEndorsementMessage(f.category, f.event.Name)
	}

	eventID := f.event.ID
	input := domain.CreateEndorsementInput{
		ReceiverID: f.recipientID,
		Category:   f.category,
		Message:    message,
		EventID:    &eventID,
	}
	if _, err := f.backend.CreateEndorsement(ctx, input); err != nil {
		f.log.Error("failed to grant award",
			logger.String("event_id", eventID),
			logger.String("category", f.category),
			logger.String("error", err.Error()),
		)
		f.notice = &Notice{
			Kind:    NoticeError,
			Title:   "Grant Failed",
			Message: "Failed to grant the award. Please try again.",
		}
		return err
	}

	f.notice = &Notice{
		Kind:    NoticeSuccess,
		Title:   "Award Granted",
		Message: "The award has been granted.",
	}
	f.category = ""
	f.recipientID = ""
	f.message = ""

	if f.onGranted != nil {
		f.onGranted()
	}

	return nil
}

func (f *GrantAwardForm) Notice() *Notice { return f.notice }
func (f *GrantAwardForm) ClearNotice()    { f.notice = nil }
