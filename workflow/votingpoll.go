package workflow

import (
	"context"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type PollMode int

const (
	// PollModeBallot lets the viewer cast votes.
	PollModeBallot PollMode = iota
	// PollModeTally shows the organizer the ranked results.
	PollModeTally
)

// VotingPoll is the state machine behind the vote tab. The mode is picked
// once from the viewer's role when the poll is created and never changes.
type VotingPoll struct {
	backend Backend
	log     logger.Logger
	viewer  Viewer
	event   domain.Event
	mode    PollMode

	// ballot state
	nominees       []domain.User
	nomineesLoaded bool
	category       string
	nomineeID      string
	reason         string
	submitting     bool
	voted          bool

	// tally state
	votes     []domain.Vote
	directory []domain.User

	notice  *Notice
	onGrant func(category, recipientID string)
}

// NewVotingPoll builds the poll for one event. onGrant is invoked when the
// organizer picks a nominee from the tally to grant an award to; it may be
// nil for attendees.
func NewVotingPoll(backend Backend, log logger.Logger, viewer Viewer, event domain.Event, onGrant func(category, recipientID string)) *VotingPoll {
	p := &VotingPoll{
		backend: backend,
		log:     log,
		viewer:  viewer,
		event:   event,
		onGrant: onGrant,
	}

	if viewer.RoleFor(&event) == RoleOrganizer {
		p.mode = PollModeTally
	}

	if categories := event.Categories(); len(categories) > 0 {
		p.category = categories[0]
	}

	return p
}

func (p *VotingPoll) Mode() PollMode       { return p.mode }
func (p *VotingPoll) Categories() []string { return p.event.Categories() }

// LoadNominees fetches the ballot's nominee pool: every user except the
// viewer.
func (p *VotingPoll) LoadNominees(ctx context.Context) error {
	users, err := p.backend.ListUsers(ctx)
	if err != nil {
		p.log.Error("failed to load nominees",
			logger.String("event_id", p.event.ID),
			logger.String("error", err.Error()),
		)
		return err
	}

	nominees := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID == p.viewer.User.ID {
			continue
		}
		nominees = append(nominees, u)
	}

	p.nominees = nominees
	p.nomineesLoaded = true
	return nil
}

func (p *VotingPoll) Nominees() []domain.User { return p.nominees }

func (p *VotingPoll) SelectCategory(category string) { p.category = category }
func (p *VotingPoll) SelectNominee(nomineeID string) { p.nomineeID = nomineeID }
func (p *VotingPoll) SetReason(reason string)        { p.reason = reason }

func (p *VotingPoll) SelectedCategory() string { return p.category }
func (p *VotingPoll) SelectedNominee() string  { return p.nomineeID }
func (p *VotingPoll) Reason() string           { return p.reason }

// CanSubmit reports whether the ballot is complete. The reason is optional.
func (p *VotingPoll) CanSubmit() bool {
	return !p.submitting && p.category != "" && p.nomineeID != ""
}

// Submit casts the ballot. On success the poll moves to its voted state;
// on failure the ballot selections are kept so the viewer can adjust and
// retry.
func (p *VotingPoll) Submit(ctx context.Context) error {
	if !p.CanSubmit() {
		return nil
	}

	p.submitting = true
	defer func() { p.submitting = false }()

	input := domain.CastVoteInput{
		NomineeID:     p.nomineeID,
		AwardCategory: p.category,
		Reason:        p.reason,
	}
	if err := p.backend.CastVote(ctx, p.event.ID, input); err != nil {
		p.log.Error("failed to cast vote",
			logger.String("event_id", p.event.ID),
			logger.String("category", p.category),
			logger.String("error", err.Error()),
		)
		p.notice = &Notice{
			Kind:    NoticeError,
			Title:   "Submission Failed",
			Message: "Failed to submit vote. You may have already voted.",
		}
		return err
	}

	p.voted = true

	// Organizers voting in tally mode see their own vote land immediately.
	if p.mode == PollModeTally {
		_ = p.Refresh(ctx)
	}

	return nil
}

func (p *VotingPoll) HasVoted() bool { return p.voted }

// CastAnother returns the poll to the ballot so the viewer can vote in a
// different category.
func (p *VotingPoll) CastAnother() { p.voted = false }

// Refresh pulls the raw vote records and the user directory used to label
// them. Organizer only; the service rejects everyone else.
func (p *VotingPoll) Refresh(ctx context.Context) error {
	votes, err := p.backend.ListVotes(ctx, p.event.ID)
	if err != nil {
		p.log.Error("failed to load votes",
			logger.String("event_id", p.event.ID),
			logger.String("error", err.Error()),
		)
		return err
	}

	directory, err := p.backend.ListUsers(ctx)
	if err != nil {
		p.log.Error("failed to load user directory",
			logger.String("event_id", p.event.ID),
			logger.String("error", err.Error()),
		)
		return err
	}

	p.votes = votes
	p.directory = directory
	return nil
}

// HasResults reports whether any votes have been recorded; without them the
// tally shows an empty state.
func (p *VotingPoll) HasResults() bool { return len(p.votes) > 0 }

// Tally groups the fetched votes into ranked per-category results.
func (p *VotingPoll) Tally() []CategoryTally {
	return TallyVotes(&p.event, p.votes, p.directory)
}

// GrantAward hands a tally row to the grant-award flow.
func (p *VotingPoll) GrantAward(category, recipientID string) {
	if p.onGrant != nil {
		p.onGrant(category, recipientID)
	}
}

func (p *VotingPoll) Notice() *Notice { return p.notice }
func (p *VotingPoll) ClearNotice()    { p.notice = nil }
