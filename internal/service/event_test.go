package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockParticipantRepo, *mocks.MockCommentRepo, *mocks.MockEndorsementRepo, *mocks.MockUserRepo, *mocks.MockAwardNotifier) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	commentRepo := mocks.NewMockCommentRepo(t)
	endorsementRepo := mocks.NewMockEndorsementRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockAwardNotifier(t)

	svc := NewEventService(eventRepo, participantRepo, commentRepo, endorsementRepo, userRepo, notifier, newTestLogger(t))
	return svc, eventRepo, participantRepo, commentRepo, endorsementRepo, userRepo, notifier
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo, participantRepo, _, _, userRepo, _ := newEventService(t)

	organizerID := uuid.New().String()
	userRepo.EXPECT().GetByID(mock.Anything, organizerID).Return(&domain.User{ID: organizerID, Name: "Alice"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	var organizer *domain.Participant
	participantRepo.EXPECT().Upsert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Participant) { organizer = p }).
		Return(nil)

	input := domain.CreateEventInput{
		Name:            "Sprint Demo",
		DateTime:        time.Now().Add(24 * time.Hour),
		OrganizerID:     organizerID,
		HasAwards:       true,
		VotingRequired:  true,
		AwardCategories: "MVP, Best Helper",
	}

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.Equal(t, "UTC", event.Timezone)
	assert.True(t, event.HasAwards)

	require.NotNil(t, organizer)
	assert.Equal(t, organizerID, organizer.UserID)
	assert.Equal(t, domain.RSVPAccepted, organizer.RSVPStatus)
	assert.True(t, organizer.Attended)
}

func TestEventService_CreateEvent_EmptyName(t *testing.T) {
	svc := NewEventService(nil, nil, nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		DateTime:    time.Now(),
		OrganizerID: uuid.New().String(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_UnknownOrganizer(t *testing.T) {
	svc, _, _, _, _, userRepo, _ := newEventService(t)

	organizerID := uuid.New().String()
	userRepo.EXPECT().GetByID(mock.Anything, organizerID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Name:        "Retro",
		DateTime:    time.Now(),
		OrganizerID: organizerID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_GetDetails_AssemblesAggregate(t *testing.T) {
	svc, eventRepo, participantRepo, _, endorsementRepo, _, _ := newEventService(t)

	eventID := uuid.New().String()
	eventRepo.EXPECT().GetDetails(mock.Anything, eventID).Return(&domain.EventDetails{
		Event:         domain.Event{ID: eventID, Name: "Demo Day"},
		OrganizerName: "Alice",
	}, nil)
	participantRepo.EXPECT().ListByEvent(mock.Anything, eventID).Return([]*domain.Participant{
		{UserID: "u1", RSVPStatus: domain.RSVPAccepted},
	}, nil)
	endorsementRepo.EXPECT().SummariesByEvent(mock.Anything, eventID).Return([]*domain.EndorsementSummary{
		{Category: "MVP", GiverName: "Alice"},
	}, nil)

	details, err := svc.GetDetails(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, "Alice", details.OrganizerName)
	require.Len(t, details.Participants, 1)
	assert.Equal(t, "u1", details.Participants[0].UserID)
	require.Len(t, details.Endorsements, 1)
	assert.Equal(t, "MVP", details.Endorsements[0].Category)
}

func TestEventService_ChangeStatus_Invalid(t *testing.T) {
	svc := NewEventService(nil, nil, nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.ChangeStatus(context.Background(), uuid.New().String(), "WRONG")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Delete_NotOrganizer(t *testing.T) {
	svc, eventRepo, _, _, _, _, _ := newEventService(t)

	eventID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:          eventID,
		OrganizerID: uuid.New().String(),
	}, nil)

	err := svc.Delete(context.Background(), eventID, uuid.New().String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, eventRepo, _, _, _, _, _ := newEventService(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{
		ID:          eventID,
		OrganizerID: organizerID,
	}, nil)
	eventRepo.EXPECT().Delete(mock.Anything, eventID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), eventID, organizerID))
}

func TestEventService_SubmitRSVP_Success(t *testing.T) {
	svc, eventRepo, participantRepo, _, _, userRepo, _ := newEventService(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID, Name: "Bob"}, nil)
	participantRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	participant, err := svc.SubmitRSVP(context.Background(), eventID, userID, domain.RSVPDeclined)

	require.NoError(t, err)
	assert.Equal(t, domain.RSVPDeclined, participant.RSVPStatus)
	assert.Equal(t, "Bob", participant.UserName)
}

func TestEventService_SubmitRSVP_InvalidStatus(t *testing.T) {
	svc := NewEventService(nil, nil, nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.SubmitRSVP(context.Background(), uuid.New().String(), uuid.New().String(), "MAYBE")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_SubmitRSVP_EventNotFound(t *testing.T) {
	svc, eventRepo, _, _, _, _, _ := newEventService(t)

	eventID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	_, err := svc.SubmitRSVP(context.Background(), eventID, uuid.New().String(), domain.RSVPAccepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_PostComment_Success(t *testing.T) {
	svc, eventRepo, _, commentRepo, _, userRepo, _ := newEventService(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID, Name: "Carol"}, nil)
	commentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.PostComment(context.Background(), eventID, userID, "  great demo  ")

	require.NoError(t, err)
	assert.Equal(t, "great demo", comment.Content)
	assert.Equal(t, "Carol", comment.UserName)
}

func TestEventService_PostComment_Blank(t *testing.T) {
	svc := NewEventService(nil, nil, nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.PostComment(context.Background(), uuid.New().String(), uuid.New().String(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CompleteElapsed_NotifiesOrganizers(t *testing.T) {
	svc, eventRepo, _, _, _, userRepo, notifier := newEventService(t)

	organizerID := uuid.New().String()
	completed := []*domain.Event{
		{ID: "e1", Name: "Plain Standup", OrganizerID: organizerID, HasAwards: false},
		{ID: "e2", Name: "Award Night", OrganizerID: organizerID, HasAwards: true},
	}
	eventRepo.EXPECT().CompleteElapsed(mock.Anything).Return(completed, nil)
	userRepo.EXPECT().GetByID(mock.Anything, organizerID).Return(&domain.User{ID: organizerID, Name: "Alice"}, nil)

	notified := make(chan string, 1)
	notifier.EXPECT().NotifyAwardsPending(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.User, event *domain.Event) { notified <- event.ID }).
		Return().
		Once()

	events, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, events, 2)

	select {
	case eventID := <-notified:
		assert.Equal(t, "e2", eventID)
	case <-time.After(time.Second):
		t.Fatal("expected an awards-pending notification")
	}
}

func TestEventService_CompleteElapsed_RepoError(t *testing.T) {
	svc, eventRepo, _, _, _, _, _ := newEventService(t)

	eventRepo.EXPECT().CompleteElapsed(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CompleteElapsed(context.Background())

	require.Error(t, err)
}
