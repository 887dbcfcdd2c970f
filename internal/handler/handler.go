package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// userIDHeader carries the authenticated principal. Session handling is the
// gateway's job; by the time a request lands here the header is trusted.
const userIDHeader = "X-User-ID"

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	ChangeStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	Delete(ctx context.Context, id, requesterID string) error
	SubmitRSVP(ctx context.Context, eventID, userID string, status domain.RSVPStatus) (*domain.Participant, error)
	ListComments(ctx context.Context, eventID string) ([]*domain.Comment, error)
	PostComment(ctx context.Context, eventID, userID, content string) (*domain.Comment, error)
}

type VoteSvc interface {
	Cast(ctx context.Context, eventID, voterID string, input domain.CastVoteInput) (*domain.Vote, error)
	ListByEvent(ctx context.Context, eventID, requesterID string) ([]*domain.Vote, error)
}

type EndorsementSvc interface {
	Create(ctx context.Context, giverID string, input domain.CreateEndorsementInput) (*domain.Endorsement, error)
	List(ctx context.Context) ([]*domain.Endorsement, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService       EventSvc
	voteService        VoteSvc
	endorsementService EndorsementSvc
	userService        UserSvc
}

func NewHandler(eventService EventSvc, voteService VoteSvc, endorsementService EndorsementSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:       eventService,
		voteService:        voteService,
		endorsementService: endorsementService,
		userService:        userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_time format, expected RFC3339",
		})
		return
	}

	var endTime *time.Time
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_time format, expected RFC3339",
			})
			return
		}
		endTime = &t
	}

	organizerID := req.OrganizerID
	if organizerID == "" {
		organizerID = c.GetHeader(userIDHeader)
	}

	input := domain.CreateEventInput{
		Name:            req.Name,
		DateTime:        dateTime,
		EndTime:         endTime,
		Timezone:        req.Timezone,
		MeetingLink:     req.MeetingLink,
		EventType:       req.EventType,
		Agenda:          req.Agenda,
		OrganizerID:     organizerID,
		HasAwards:       req.HasAwards,
		VotingRequired:  req.VotingRequired,
		AwardCategories: req.AwardCategories,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ChangeEventStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.ChangeStatus(c.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	requesterID, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, requesterID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Participants

func (h *Handler) SubmitRSVP(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.eventService.SubmitRSVP(
		c.Request.Context(), eventID, req.UserID, domain.RSVPStatus(req.RSVPStatus),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// Comments

func (h *Handler) ListComments(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	comments, err := h.eventService.ListComments(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, dto.ToCommentResponse(comment))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PostComment(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.eventService.PostComment(c.Request.Context(), eventID, userID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// Votes

func (h *Handler) CastVote(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	voterID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CastVoteInput{
		NomineeID:     req.NomineeID,
		AwardCategory: req.AwardCategory,
		Reason:        req.Reason,
	}

	vote, err := h.voteService.Cast(c.Request.Context(), eventID, voterID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoteResponse(vote))
}

func (h *Handler) ListVotes(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	requesterID, ok := h.currentUser(c)
	if !ok {
		return
	}

	votes, err := h.voteService.ListByEvent(c.Request.Context(), eventID, requesterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		resp = append(resp, dto.ToVoteResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Endorsements

func (h *Handler) CreateEndorsement(c *ginext.Context) {
	giverID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateEndorsementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEndorsementInput{
		ReceiverID: req.ReceiverID,
		Category:   req.Category,
		Message:    req.Message,
		EventID:    req.EventID,
		Skills:     req.Skills,
	}

	endorsement, err := h.endorsementService.Create(c.Request.Context(), giverID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEndorsementResponse(endorsement))
}

func (h *Handler) ListEndorsements(c *ginext.Context) {
	endorsements, err := h.endorsementService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EndorsementResponse, 0, len(endorsements))
	for _, e := range endorsements {
		resp = append(resp, dto.ToEndorsementResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) currentUser(c *ginext.Context) (string, bool) {
	id := c.GetHeader(userIDHeader)
	if id == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + userIDHeader + " header"})
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid " + userIDHeader + " header"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEndorsementNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOrganizer):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
