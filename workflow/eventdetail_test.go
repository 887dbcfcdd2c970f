package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/workflow/mocks"
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

func detailsFor(event domain.Event, participants ...domain.Participant) *domain.EventDetails {
	return &domain.EventDetails{
		Event:         event,
		OrganizerName: "Alice",
		Participants:  participants,
	}
}

func loadedDetail(t *testing.T, backend *mocks.MockBackend, viewer Viewer, details *domain.EventDetails) *EventDetail {
	t.Helper()
	backend.EXPECT().GetEvent(mock.Anything, details.Event.ID).Return(details, nil).Once()

	d := NewEventDetail(backend, newTestLogger(t), viewer)
	d.Load(context.Background(), details.Event.ID)
	require.NotNil(t, d.Event())
	return d
}

func TestEventDetail_Load_Failure(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	backend.EXPECT().GetEvent(mock.Anything, "e1").Return(nil, errors.New("boom"))

	d := NewEventDetail(backend, newTestLogger(t), Viewer{})
	d.Load(context.Background(), "e1")

	assert.True(t, d.LoadFailed())
	assert.Nil(t, d.Event())
	assert.False(t, d.ActivateTab(context.Background(), TabDiscussion))
}

func TestEventDetail_Tabs_NoAwards(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:          "e1",
		OrganizerID: "org",
		HasAwards:   false,
	}))

	assert.Equal(t, []Tab{TabOverview, TabParticipants, TabDiscussion}, d.Tabs())
	assert.False(t, d.TabVisible(TabAwards))
	assert.False(t, d.TabVisible(TabVote))
}

func TestEventDetail_Tabs_AwardsWithoutVoting_Attendee(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:             "e1",
		OrganizerID:    "org",
		HasAwards:      true,
		VotingRequired: false,
	}))

	assert.True(t, d.TabVisible(TabAwards))
	assert.False(t, d.TabVisible(TabVote))
}

func TestEventDetail_Tabs_AwardsWithoutVoting_Organizer(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "org"}}, detailsFor(domain.Event{
		ID:             "e1",
		OrganizerID:    "org",
		HasAwards:      true,
		VotingRequired: false,
	}))

	// The organizer always sees the vote tab on award events.
	assert.True(t, d.TabVisible(TabVote))
}

func TestEventDetail_Tabs_VotingOpenToAttendees(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:             "e1",
		OrganizerID:    "org",
		HasAwards:      true,
		VotingRequired: true,
	}))

	assert.True(t, d.TabVisible(TabVote))
}

func TestEventDetail_ActivateTab_HiddenTabRejected(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:          "e1",
		OrganizerID: "org",
	}))

	assert.False(t, d.ActivateTab(context.Background(), TabVote))
	assert.Equal(t, TabOverview, d.ActiveTab())
}

func TestEventDetail_ActivateTab_CommentsFetchedOnce(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:          "e1",
		OrganizerID: "org",
	}))

	backend.EXPECT().ListComments(mock.Anything, "e1").Return([]domain.Comment{
		{ID: "c1", Content: "hello"},
	}, nil).Once()

	require.True(t, d.ActivateTab(context.Background(), TabDiscussion))
	require.True(t, d.ActivateTab(context.Background(), TabOverview))
	require.True(t, d.ActivateTab(context.Background(), TabDiscussion))

	require.Len(t, d.Comments(), 1)
}

func TestEventDetail_ActivateTab_CommentsRetriedAfterFailure(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:          "e1",
		OrganizerID: "org",
	}))

	backend.EXPECT().ListComments(mock.Anything, "e1").Return(nil, errors.New("boom")).Once()
	backend.EXPECT().ListComments(mock.Anything, "e1").Return([]domain.Comment{{ID: "c1"}}, nil).Once()

	require.True(t, d.ActivateTab(context.Background(), TabDiscussion))
	assert.Empty(t, d.Comments())

	require.True(t, d.ActivateTab(context.Background(), TabDiscussion))
	assert.Len(t, d.Comments(), 1)
}

func TestEventDetail_PostComment_BlankIsNoOp(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:          "e1",
		OrganizerID: "org",
	}))

	// No PostComment expectation: any request would fail the test.
	require.NoError(t, d.PostComment(context.Background(), "   "))
	assert.Empty(t, d.Comments())
}

func TestEventDetail_PostComment_Appends(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(domain.Event{
		ID:          "e1",
		OrganizerID: "org",
	}))

	backend.EXPECT().PostComment(mock.Anything, "e1", "great demo").Return(&domain.Comment{
		ID:      "c1",
		Content: "great demo",
	}, nil)

	require.NoError(t, d.PostComment(context.Background(), "great demo"))
	require.Len(t, d.Comments(), 1)
	assert.Equal(t, "great demo", d.Comments()[0].Content)
}

func TestEventDetail_CanRSVP(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	event := domain.Event{ID: "e1", OrganizerID: "org"}

	// No record yet: may answer.
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(event))
	assert.True(t, d.CanRSVP())

	// NO_RESPONSE keeps the choice open.
	d = loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(event,
		domain.Participant{UserID: "u1", RSVPStatus: domain.RSVPNoResponse},
	))
	assert.True(t, d.CanRSVP())

	// A recorded answer is final.
	d = loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(event,
		domain.Participant{UserID: "u1", RSVPStatus: domain.RSVPAccepted},
	))
	assert.False(t, d.CanRSVP())
	status, ok := d.MyRSVP()
	require.True(t, ok)
	assert.Equal(t, domain.RSVPAccepted, status)

	// Organizers never RSVP.
	d = loadedDetail(t, backend, Viewer{User: domain.User{ID: "org"}}, detailsFor(event))
	assert.False(t, d.CanRSVP())
}

func TestEventDetail_SubmitRSVP_ReloadsOnSuccess(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	event := domain.Event{ID: "e1", OrganizerID: "org"}
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(event))

	backend.EXPECT().SubmitRSVP(mock.Anything, "e1", "u1", domain.RSVPAccepted).Return(nil)
	backend.EXPECT().GetEvent(mock.Anything, "e1").Return(detailsFor(event,
		domain.Participant{UserID: "u1", RSVPStatus: domain.RSVPAccepted},
	), nil).Once()

	require.NoError(t, d.SubmitRSVP(context.Background(), domain.RSVPAccepted))

	status, ok := d.MyRSVP()
	require.True(t, ok)
	assert.Equal(t, domain.RSVPAccepted, status)
	assert.Nil(t, d.Notice())
}

func TestEventDetail_SubmitRSVP_NoticeOnFailure(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	event := domain.Event{ID: "e1", OrganizerID: "org"}
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "u1"}}, detailsFor(event))

	backend.EXPECT().SubmitRSVP(mock.Anything, "e1", "u1", domain.RSVPDeclined).Return(errors.New("boom"))

	require.Error(t, d.SubmitRSVP(context.Background(), domain.RSVPDeclined))

	// The aggregate stays; only a notice appears.
	require.NotNil(t, d.Event())
	require.NotNil(t, d.Notice())
	assert.Equal(t, NoticeError, d.Notice().Kind)

	d.ClearNotice()
	assert.Nil(t, d.Notice())
}

func TestEventDetail_GrantAwardModal(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	event := domain.Event{ID: "e1", OrganizerID: "org", HasAwards: true, AwardCategories: "MVP"}
	d := loadedDetail(t, backend, Viewer{User: domain.User{ID: "org"}}, detailsFor(event))

	assert.False(t, d.GrantAwardOpen())

	d.OpenGrantAward("MVP", "u2")
	assert.True(t, d.GrantAwardOpen())
	category, recipient := d.GrantPrefill()
	assert.Equal(t, "MVP", category)
	assert.Equal(t, "u2", recipient)

	backend.EXPECT().GetEvent(mock.Anything, "e1").Return(detailsFor(event), nil).Once()
	d.AwardGranted(context.Background())

	assert.False(t, d.GrantAwardOpen())
}
