package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service/ports/mocks"
)

func newEndorsementService(t *testing.T) (*EndorsementService, *mocks.MockEndorsementRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockAwardNotifier) {
	t.Helper()
	repo := mocks.NewMockEndorsementRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockAwardNotifier(t)

	svc := NewEndorsementService(repo, eventRepo, userRepo, notifier, newTestLogger(t))
	return svc, repo, eventRepo, userRepo, notifier
}

func TestEndorsementService_Create_DefaultMessageWithEvent(t *testing.T) {
	svc, repo, eventRepo, userRepo, notifier := newEndorsementService(t)

	giverID := uuid.New().String()
	receiverID := uuid.New().String()
	eventID := uuid.New().String()

	userRepo.EXPECT().GetByID(mock.Anything, receiverID).Return(&domain.User{ID: receiverID, Name: "Bob"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, giverID).Return(&domain.User{ID: giverID, Name: "Alice"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID, Name: "Demo Day"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyEndorsementReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	endorsement, err := svc.Create(context.Background(), giverID, domain.CreateEndorsementInput{
		ReceiverID: receiverID,
		Category:   "MVP",
		EventID:    &eventID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Awarded for MVP during Demo Day", endorsement.Message)
	assert.Equal(t, giverID, endorsement.GiverID)
	require.NotNil(t, endorsement.EventID)
	assert.Equal(t, eventID, *endorsement.EventID)
}

func TestEndorsementService_Create_DefaultMessageWithoutEvent(t *testing.T) {
	svc, repo, _, userRepo, notifier := newEndorsementService(t)

	giverID := uuid.New().String()
	receiverID := uuid.New().String()

	userRepo.EXPECT().GetByID(mock.Anything, receiverID).Return(&domain.User{ID: receiverID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, giverID).Return(&domain.User{ID: giverID}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyEndorsementReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	endorsement, err := svc.Create(context.Background(), giverID, domain.CreateEndorsementInput{
		ReceiverID: receiverID,
		Category:   "Team Player",
	})

	require.NoError(t, err)
	assert.Equal(t, "Awarded for Team Player", endorsement.Message)
}

func TestEndorsementService_Create_KeepsExplicitMessage(t *testing.T) {
	svc, repo, _, userRepo, notifier := newEndorsementService(t)

	giverID := uuid.New().String()
	receiverID := uuid.New().String()

	userRepo.EXPECT().GetByID(mock.Anything, receiverID).Return(&domain.User{ID: receiverID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, giverID).Return(&domain.User{ID: giverID}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyEndorsementReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	endorsement, err := svc.Create(context.Background(), giverID, domain.CreateEndorsementInput{
		ReceiverID: receiverID,
		Category:   "MVP",
		Message:    "Outstanding work on the launch",
	})

	require.NoError(t, err)
	assert.Equal(t, "Outstanding work on the launch", endorsement.Message)
}

func TestEndorsementService_Create_MissingCategory(t *testing.T) {
	svc := NewEndorsementService(nil, nil, nil, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), uuid.New().String(), domain.CreateEndorsementInput{
		ReceiverID: uuid.New().String(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEndorsementService_Create_ReceiverNotFound(t *testing.T) {
	svc, _, _, userRepo, _ := newEndorsementService(t)

	receiverID := uuid.New().String()
	userRepo.EXPECT().GetByID(mock.Anything, receiverID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), uuid.New().String(), domain.CreateEndorsementInput{
		ReceiverID: receiverID,
		Category:   "MVP",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEndorsementService_Create_UnknownEvent(t *testing.T) {
	svc, _, eventRepo, userRepo, _ := newEndorsementService(t)

	giverID := uuid.New().String()
	receiverID := uuid.New().String()
	eventID := uuid.New().String()

	userRepo.EXPECT().GetByID(mock.Anything, receiverID).Return(&domain.User{ID: receiverID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, giverID).Return(&domain.User{ID: giverID}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), giverID, domain.CreateEndorsementInput{
		ReceiverID: receiverID,
		Category:   "MVP",
		EventID:    &eventID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEndorsementService_Create_NotifiesReceiver(t *testing.T) {
	svc, repo, eventRepo, userRepo, notifier := newEndorsementService(t)

	giverID := uuid.New().String()
	receiverID := uuid.New().String()
	eventID := uuid.New().String()

	userRepo.EXPECT().GetByID(mock.Anything, receiverID).Return(&domain.User{ID: receiverID, Name: "Bob"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, giverID).Return(&domain.User{ID: giverID}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID, Name: "Demo Day"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	notified := make(chan string, 1)
	notifier.EXPECT().NotifyEndorsementReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, receiver *domain.User, _ *domain.Endorsement, eventName string) {
			notified <- receiver.ID + "/" + eventName
		}).
		Return().
		Once()

	_, err := svc.Create(context.Background(), giverID, domain.CreateEndorsementInput{
		ReceiverID: receiverID,
		Category:   "MVP",
		EventID:    &eventID,
	})
	require.NoError(t, err)

	select {
	case got := <-notified:
		assert.Equal(t, receiverID+"/Demo Day", got)
	case <-time.After(time.Second):
		t.Fatal("expected a notification for the receiver")
	}
}
