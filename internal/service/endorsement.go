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

type EndorsementService struct {
	repo      ports.EndorsementRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.AwardNotifier
	logger    logger.Logger
}

func NewEndorsementService(
	repo ports.EndorsementRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.AwardNotifier,
	logger logger.Logger,
) *EndorsementService {
	return &EndorsementService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Create grants one endorsement. A missing message is replaced by the
// derived default sentence; an event id, when present, ties the record to
// that event and must refer to an existing one.
func (s *EndorsementService) Create(ctx context.Context, giverID string, input domain.CreateEndorsementInput) (*domain.Endorsement, error) {
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.ReceiverID == "" {
		return nil, fmt.Errorf("%w: receiver_id is required", domain.ErrValidation)
	}

	receiver, err := s.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("check receiver: %w", err)
	}
	if _, err = s.userRepo.GetByID(ctx, giverID); err != nil {
		return nil, fmt.Errorf("check giver: %w", err)
	}

	var eventName string
	if input.EventID != nil {
		event, err := s.eventRepo.GetByID(ctx, *input.EventID)
		if err != nil {
			return nil, fmt.Errorf("check event: %w", err)
		}
		eventName = event.Name
	}

	message := input.Message
	if message == "" {
		message = domain.DefaultEndorsementMessage(input.Category, eventName)
	}

	endorsement := &domain.Endorsement{
		ID:         uuid.New().String(),
		GiverID:    giverID,
		ReceiverID: input.ReceiverID,
		Category:   input.Category,
		Message:    message,
		EventID:    input.EventID,
		Skills:     input.Skills,
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, endorsement); err != nil {
		return nil, fmt.Errorf("create endorsement: %w", err)
	}

	s.logger.Info("endorsement granted",
		logger.String("endorsement_id", endorsement.ID),
		logger.String("receiver_id", input.ReceiverID),
		logger.String("category", input.Category),
	)

	go s.notifier.NotifyEndorsementReceived(context.WithoutCancel(ctx), receiver, endorsement, eventName)

	return endorsement, nil
}

func (s *EndorsementService) List(ctx context.Context) ([]*domain.Endorsement, error) {
	return s.repo.List(ctx)
}
