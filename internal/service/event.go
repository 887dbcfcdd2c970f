package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultTimezone = "UTC"

type EventService struct {
	repo            ports.EventRepo
	participantRepo ports.ParticipantRepo
	commentRepo     ports.CommentRepo
	endorsementRepo ports.EndorsementRepo
	userRepo        ports.UserRepo
	notifier        ports.AwardNotifier
	logger          logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	participantRepo ports.ParticipantRepo,
	commentRepo ports.CommentRepo,
	endorsementRepo ports.EndorsementRepo,
	userRepo ports.UserRepo,
	notifier ports.AwardNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:            repo,
		participantRepo: participantRepo,
		commentRepo:     commentRepo,
		endorsementRepo: endorsementRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: date_time is required", domain.ErrValidation)
	}
	if input.OrganizerID == "" {
		return nil, fmt.Errorf("%w: organizer_id is required", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.OrganizerID); err != nil {
		return nil, fmt.Errorf("check organizer: %w", err)
	}

	tz := input.Timezone
	if tz == "" {
		tz = defaultTimezone
	}

	event := &domain.Event{
		ID:              uuid.New().String(),
		Name:            input.Name,
		DateTime:        input.DateTime,
		EndTime:         input.EndTime,
		Timezone:        tz,
		MeetingLink:     input.MeetingLink,
		EventType:       input.EventType,
		Status:          domain.EventStatusUpcoming,
		Agenda:          input.Agenda,
		OrganizerID:     input.OrganizerID,
		HasAwards:       input.HasAwards,
		VotingRequired:  input.VotingRequired,
		AwardCategories: input.AwardCategories,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	// The organizer is a participant from the start.
	organizer := &domain.Participant{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		UserID:     input.OrganizerID,
		RSVPStatus: domain.RSVPAccepted,
		Attended:   true,
	}
	if err := s.participantRepo.Upsert(ctx, organizer); err != nil {
		return nil, fmt.Errorf("add organizer participant: %w", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// GetDetails assembles the full event aggregate: the event, its organizer's
// name, the RSVP records and the endorsements granted in its context.
func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	details.Participants = make([]domain.Participant, len(participants))
	for i, p := range participants {
		details.Participants[i] = *p
	}

	endorsements, err := s.endorsementRepo.SummariesByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list endorsements: %w", err)
	}
	details.Endorsements = make([]domain.EndorsementSummary, len(endorsements))
	for i, e := range endorsements {
		details.Endorsements[i] = *e
	}

	return details, nil
}

func (s *EventService) ChangeStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, id, requesterID string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !event.IsOrganizer(requesterID) {
		return domain.ErrNotOrganizer
	}

	return s.repo.Delete(ctx, id)
}

// SubmitRSVP upserts the (event, user) RSVP record with the given status.
func (s *EventService) SubmitRSVP(ctx context.Context, eventID, userID string, status domain.RSVPStatus) (*domain.Participant, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown rsvp status %q", domain.ErrValidation, status)
	}

	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	participant := &domain.Participant{
		ID:         uuid.New().String(),
		EventID:    eventID,
		UserID:     userID,
		UserName:   user.Name,
		RSVPStatus: status,
	}
	if err = s.participantRepo.Upsert(ctx, participant); err != nil {
		return nil, fmt.Errorf("upsert participant: %w", err)
	}

	s.logger.Info("rsvp recorded",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("status", string(status)),
	)

	return participant, nil
}

func (s *EventService) ListComments(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	return s.commentRepo.ListByEvent(ctx, eventID)
}

func (s *EventService) PostComment(ctx context.Context, eventID, userID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		UserName:  user.Name,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// CompleteElapsed closes the voting window of every upcoming event whose
// scheduled time has passed and reminds organizers of award-bearing events
// to grant them.
func (s *EventService) CompleteElapsed(ctx context.Context) ([]*domain.Event, error) {
	completed, err := s.repo.CompleteElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed events completed",
			logger.Int("count", len(completed)),
		)

		go s.notifyOrganizers(context.WithoutCancel(ctx), completed)
	}

	return completed, nil
}

func (s *EventService) notifyOrganizers(ctx context.Context, events []*domain.Event) {
	for _, e := range events {
		if !e.HasAwards {
			continue
		}

		organizer, err := s.userRepo.GetByID(ctx, e.OrganizerID)
		if err != nil {
			s.logger.Error("failed to get organizer for awards notification",
				logger.String("event_id", e.ID),
				logger.String("user_id", e.OrganizerID),
			)
			continue
		}

		s.notifier.NotifyAwardsPending(ctx, organizer, e)
	}
}
