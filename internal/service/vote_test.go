package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service/ports/mocks"
)

func newVoteService(t *testing.T) (*VoteService, *mocks.MockVoteRepo, *mocks.MockEventRepo, *mocks.MockUserRepo) {
	t.Helper()
	voteRepo := mocks.NewMockVoteRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewVoteService(voteRepo, eventRepo, userRepo, newTestLogger(t))
	return svc, voteRepo, eventRepo, userRepo
}

func TestVoteService_Cast_Success(t *testing.T) {
	svc, voteRepo, eventRepo, userRepo := newVoteService(t)

	eventID := uuid.New().String()
	voterID := uuid.New().String()
	nomineeID := uuid.New().String()

	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:              eventID,
		HasAwards:       true,
		AwardCategories: "MVP",
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, voterID).Return(&domain.User{ID: voterID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, nomineeID).Return(&domain.User{ID: nomineeID}, nil)

	var created *domain.Vote
	voteRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, v *domain.Vote) { created = v }).
		Return(nil)

	vote, err := svc.Cast(context.Background(), eventID, voterID, domain.CastVoteInput{
		NomineeID:     nomineeID,
		AwardCategory: "MVP",
		Reason:        "carried the release",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, vote.ID)
	assert.Equal(t, voterID, vote.VoterID)
	assert.Equal(t, nomineeID, vote.NomineeID)
	assert.Equal(t, "MVP", vote.AwardCategory)
	assert.Equal(t, "carried the release", vote.Reason)

	require.NotNil(t, created)
	assert.Equal(t, vote.ID, created.ID)
}

func TestVoteService_Cast_MissingCategory(t *testing.T) {
	svc := NewVoteService(nil, nil, nil, newTestLogger(t))

	_, err := svc.Cast(context.Background(), uuid.New().String(), uuid.New().String(), domain.CastVoteInput{
		NomineeID: uuid.New().String(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVoteService_Cast_MissingNominee(t *testing.T) {
	svc := NewVoteService(nil, nil, nil, newTestLogger(t))

	_, err := svc.Cast(context.Background(), uuid.New().String(), uuid.New().String(), domain.CastVoteInput{
		AwardCategory: "MVP",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVoteService_Cast_EventWithoutAwards(t *testing.T) {
	svc, _, eventRepo, _ := newVoteService(t)

	eventID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:        eventID,
		HasAwards: false,
	}, nil)

	_, err := svc.Cast(context.Background(), eventID, uuid.New().String(), domain.CastVoteInput{
		NomineeID:     uuid.New().String(),
		AwardCategory: "MVP",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVoteService_Cast_DuplicateInCategory(t *testing.T) {
	svc, voteRepo, eventRepo, userRepo := newVoteService(t)

	eventID := uuid.New().String()
	voterID := uuid.New().String()
	nomineeID := uuid.New().String()

	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:        eventID,
		HasAwards: true,
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, voterID).Return(&domain.User{ID: voterID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, nomineeID).Return(&domain.User{ID: nomineeID}, nil)
	voteRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyVoted)

	_, err := svc.Cast(context.Background(), eventID, voterID, domain.CastVoteInput{
		NomineeID:     nomineeID,
		AwardCategory: "MVP",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestVoteService_ListByEvent_OrganizerOnly(t *testing.T) {
	svc, _, eventRepo, _ := newVoteService(t)

	eventID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:          eventID,
		OrganizerID: uuid.New().String(),
	}, nil)

	_, err := svc.ListByEvent(context.Background(), eventID, uuid.New().String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestVoteService_ListByEvent_Success(t *testing.T) {
	svc, voteRepo, eventRepo, _ := newVoteService(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:          eventID,
		OrganizerID: organizerID,
	}, nil)
	voteRepo.EXPECT().ListByEvent(mock.Anything, eventID).Return([]*domain.Vote{
		{ID: "v1", EventID: eventID, AwardCategory: "MVP"},
	}, nil)

	votes, err := svc.ListByEvent(context.Background(), eventID, organizerID)

	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, "v1", votes[0].ID)
}
