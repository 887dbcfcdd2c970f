package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type VoteService struct {
	voteRepo  ports.VoteRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	logger    logger.Logger
}

func NewVoteService(
	voteRepo ports.VoteRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *VoteService {
	return &VoteService{
		voteRepo:  voteRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Cast records one ballot for (event, voter, category). The uniqueness of
// that triple is enforced by storage; a second ballot in the same category
// surfaces as domain.ErrAlreadyVoted.
func (s *VoteService) Cast(ctx context.Context, eventID, voterID string, input domain.CastVoteInput) (*domain.Vote, error) {
	if input.AwardCategory == "" {
		return nil, fmt.Errorf("%w: award_category is required", domain.ErrValidation)
	}
	if input.NomineeID == "" {
		return nil, fmt.Errorf("%w: nominee_id is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !event.HasAwards {
		return nil, fmt.Errorf("%w: event has no awards", domain.ErrValidation)
	}

	if _, err = s.userRepo.GetByID(ctx, voterID); err != nil {
		return nil, fmt.Errorf("check voter: %w", err)
	}
	if _, err = s.userRepo.GetByID(ctx, input.NomineeID); err != nil {
		return nil, fmt.Errorf("check nominee: %w", err)
	}

	vote := &domain.Vote{
		ID:            uuid.New().String(),
		EventID:       eventID,
		VoterID:       voterID,
		NomineeID:     input.NomineeID,
		AwardCategory: input.AwardCategory,
		Reason:        input.Reason,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.voteRepo.Create(ctx, vote); err != nil {
		return nil, fmt.Errorf("create vote: %w", err)
	}

	s.logger.Info("vote cast",
		logger.String("vote_id", vote.ID),
		logger.String("event_id", eventID),
		logger.String("category", input.AwardCategory),
	)

	return vote, nil
}

// ListByEvent returns the raw vote records of an event. Only the organizer
// may see them; everyone else gets domain.ErrNotOrganizer.
func (s *VoteService) ListByEvent(ctx context.Context, eventID, requesterID string) ([]*domain.Vote, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if !event.IsOrganizer(requesterID) {
		return nil, domain.ErrNotOrganizer
	}

	return s.voteRepo.ListByEvent(ctx, eventID)
}
