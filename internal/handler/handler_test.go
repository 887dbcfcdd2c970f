package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/handler/dto"
	hmocks "github.com/teampulse/teampulse/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockVoteSvc, *hmocks.MockEndorsementSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	voteSvc := hmocks.NewMockVoteSvc(t)
	endorsementSvc := hmocks.NewMockEndorsementSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(eventSvc, voteSvc, endorsementSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id/status", h.ChangeEventStatus)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/participants", h.SubmitRSVP)
		api.GET("/events/:id/comments", h.ListComments)
		api.POST("/events/:id/comments", h.PostComment)
		api.GET("/events/:id/votes", h.ListVotes)
		api.POST("/events/:id/votes", h.CastVote)
		api.POST("/endorsements", h.CreateEndorsement)
		api.GET("/endorsements", h.ListEndorsements)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
	}

	return eventSvc, voteSvc, endorsementSvc, userSvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	organizerID := uuid.New().String()
	event := &domain.Event{
		ID:              uuid.New().String(),
		Name:            "Demo Day",
		DateTime:        time.Now().Add(24 * time.Hour),
		Timezone:        "UTC",
		Status:          domain.EventStatusUpcoming,
		OrganizerID:     organizerID,
		HasAwards:       true,
		VotingRequired:  true,
		AwardCategories: "MVP, Best Helper",
		CreatedAt:       time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:            "Demo Day",
		DateTime:        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		OrganizerID:     organizerID,
		HasAwards:       true,
		VotingRequired:  true,
		AwardCategories: "MVP, Best Helper",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Demo Day", resp.Name)
	assert.True(t, resp.HasAwards)
	assert.Equal(t, "MVP, Best Helper", resp.AwardCategories)
}

func TestHandler_CreateEvent_OrganizerFromHeader(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	organizerID := uuid.New().String()
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(input domain.CreateEventInput) bool {
		return input.OrganizerID == organizerID
	})).Return(&domain.Event{ID: uuid.New().String(), OrganizerID: organizerID}, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:     "Retro",
		DateTime: time.Now().Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", organizerID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_BadDateTime(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:     "Demo Day",
		DateTime: "tomorrow",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(&domain.EventDetails{
		Event:         domain.Event{ID: eventID, Name: "Demo Day", HasAwards: true},
		OrganizerName: "Alice",
		Participants:  []domain.Participant{{UserID: "u1", RSVPStatus: domain.RSVPAccepted}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.OrganizerName)
	assert.Equal(t, "Demo Day", resp.Event.Name)
	require.Len(t, resp.Participants, 1)
}

func TestHandler_DeleteEvent_RequiresUser(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_DeleteEvent_Forbidden(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	requesterID := uuid.New().String()
	eventSvc.EXPECT().Delete(mock.Anything, eventID, requesterID).Return(domain.ErrNotOrganizer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	req.Header.Set("X-User-ID", requesterID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- RSVP ---

func TestHandler_SubmitRSVP_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	eventSvc.EXPECT().SubmitRSVP(mock.Anything, eventID, userID, domain.RSVPAccepted).Return(&domain.Participant{
		EventID:    eventID,
		UserID:     userID,
		UserName:   "Bob",
		RSVPStatus: domain.RSVPAccepted,
	}, nil)

	body, _ := json.Marshal(dto.RSVPRequest{UserID: userID, RSVPStatus: "ACCEPTED"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ParticipantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCEPTED", resp.RSVPStatus)
}

// --- Comments ---

func TestHandler_PostComment_RequiresUser(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CommentRequest{Content: "hello"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.New().String()+"/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_PostComment_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	eventSvc.EXPECT().PostComment(mock.Anything, eventID, userID, "great demo").Return(&domain.Comment{
		ID:       uuid.New().String(),
		EventID:  eventID,
		UserID:   userID,
		UserName: "Carol",
		Content:  "great demo",
	}, nil)

	body, _ := json.Marshal(dto.CommentRequest{Content: "great demo"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Carol", resp.UserName)
}

// --- Votes ---

func TestHandler_CastVote_Success(t *testing.T) {
	_, voteSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	voterID := uuid.New().String()
	nomineeID := uuid.New().String()

	voteSvc.EXPECT().Cast(mock.Anything, eventID, voterID, domain.CastVoteInput{
		NomineeID:     nomineeID,
		AwardCategory: "MVP",
		Reason:        "great work",
	}).Return(&domain.Vote{
		ID:            uuid.New().String(),
		EventID:       eventID,
		VoterID:       voterID,
		NomineeID:     nomineeID,
		AwardCategory: "MVP",
		Reason:        "great work",
	}, nil)

	body, _ := json.Marshal(dto.CastVoteRequest{
		NomineeID:     nomineeID,
		AwardCategory: "MVP",
		Reason:        "great work",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/votes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", voterID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// The voter never appears in the response body.
	assert.NotContains(t, w.Body.String(), voterID)
}

func TestHandler_CastVote_Duplicate(t *testing.T) {
	_, voteSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	voterID := uuid.New().String()
	voteSvc.EXPECT().Cast(mock.Anything, eventID, voterID, mock.Anything).Return(nil, domain.ErrAlreadyVoted)

	body, _ := json.Marshal(dto.CastVoteRequest{
		NomineeID:     uuid.New().String(),
		AwardCategory: "MVP",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/votes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", voterID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CastVote_RequiresUser(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CastVoteRequest{
		NomineeID:     uuid.New().String(),
		AwardCategory: "MVP",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.New().String()+"/votes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ListVotes_Forbidden(t *testing.T) {
	_, voteSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	requesterID := uuid.New().String()
	voteSvc.EXPECT().ListByEvent(mock.Anything, eventID, requesterID).Return(nil, domain.ErrNotOrganizer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/votes", nil)
	req.Header.Set("X-User-ID", requesterID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListVotes_Success(t *testing.T) {
	_, voteSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	voteSvc.EXPECT().ListByEvent(mock.Anything, eventID, organizerID).Return([]*domain.Vote{
		{ID: "v1", EventID: eventID, NomineeID: "n1", AwardCategory: "MVP"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/votes", nil)
	req.Header.Set("X-User-ID", organizerID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "MVP", resp[0].AwardCategory)
}

// --- Endorsements ---

func TestHandler_CreateEndorsement_Success(t *testing.T) {
	_, _, endorsementSvc, _, r := setupRouter(t)

	giverID := uuid.New().String()
	receiverID := uuid.New().String()
	endorsementSvc.EXPECT().Create(mock.Anything, giverID, mock.Anything).Return(&domain.Endorsement{
		ID:         uuid.New().String(),
		GiverID:    giverID,
		ReceiverID: receiverID,
		Category:   "MVP",
		Message:    "Awarded for MVP during Demo Day",
	}, nil)

	body, _ := json.Marshal(dto.CreateEndorsementRequest{
		ReceiverID: receiverID,
		Category:   "MVP",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/endorsements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", giverID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EndorsementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Awarded for MVP during Demo Day", resp.Message)
}

func TestHandler_CreateEndorsement_RequiresUser(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateEndorsementRequest{
		ReceiverID: uuid.New().String(),
		Category:   "MVP",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/endorsements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Users ---

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().List(mock.Anything).Return([]*domain.User{
		{ID: uuid.New().String(), Name: "Alice"},
		{ID: uuid.New().String(), Name: "Bob"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "https://api.dicebear.com/7.x/adventurer/svg?seed=Alice", resp[0].Avatar)
}

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.User{
		ID:   uuid.New().String(),
		Name: "Alice",
	}, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
