// Package client is a typed HTTP client for the TeamPulse API. It is the
// concrete transport behind the workflow components.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/teampulse/teampulse/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	userIDHeader   = "X-User-ID"

	usersCacheKey = "users"
	usersCacheTTL = 5 * time.Minute
)

// StatusError reports a non-2xx response. Message carries the server's text
// when the body had one, or the generic status text otherwise.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

type Client struct {
	client  *http.Client
	baseURL string
	userID  string
	cache   *cache.Cache
}

// New builds a client that acts as the given user. baseURL points at the
// service root, without the /api prefix.
func New(baseURL, userID string) *Client {
	return &Client{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		cache:   cache.New(usersCacheTTL, 10*time.Minute),
	}
}

func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userID != "" {
		req.Header.Set(userIDHeader, c.userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &StatusError{Code: resp.StatusCode, Message: msg}
}

func (c *Client) GetEvent(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	var details domain.EventDetails
	if err := c.request(ctx, http.MethodGet, "/api/events/"+eventID, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ListUsers returns the user directory. Responses are cached briefly; the
// directory only feeds nominee and recipient pickers, so mild staleness is
// acceptable.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	if cached, ok := c.cache.Get(usersCacheKey); ok {
		return cached.([]domain.User), nil
	}

	var users []domain.User
	if err := c.request(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}

	c.cache.Set(usersCacheKey, users, cache.DefaultExpiration)
	return users, nil
}

func (c *Client) ListComments(ctx context.Context, eventID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.request(ctx, http.MethodGet, "/api/events/"+eventID+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) PostComment(ctx context.Context, eventID, content string) (*domain.Comment, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var comment domain.Comment
	if err := c.request(ctx, http.MethodPost, "/api/events/"+eventID+"/comments", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) SubmitRSVP(ctx context.Context, eventID, userID string, status domain.RSVPStatus) error {
	body := struct {
		UserID     string `json:"user_id"`
		RSVPStatus string `json:"rsvp_status"`
	}{UserID: userID, RSVPStatus: string(status)}

	return c.request(ctx, http.MethodPost, "/api/events/"+eventID+"/participants", body, nil)
}

func (c *Client) ListVotes(ctx context.Context, eventID string) ([]domain.Vote, error) {
	var votes []domain.Vote
	if err := c.request(ctx, http.MethodGet, "/api/events/"+eventID+"/votes", nil, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

func (c *Client) CastVote(ctx context.Context, eventID string, input domain.CastVoteInput) error {
	body := struct {
		NomineeID     string `json:"nominee_id"`
		AwardCategory string `json:"award_category"`
		Reason        string `json:"reason,omitempty"`
	}{NomineeID: input.NomineeID, AwardCategory: input.AwardCategory, Reason: input.Reason}

	return c.request(ctx, http.MethodPost, "/api/events/"+eventID+"/votes", body, nil)
}

func (c *Client) CreateEndorsement(ctx context.Context, input domain.CreateEndorsementInput) (*domain.Endorsement, error) {
	body := struct {
		ReceiverID string  `json:"receiver_id"`
		Category   string  `json:"category"`
		Message    string  `json:"message,omitempty"`
		EventID    *string `json:"event_id,omitempty"`
		Skills     string  `json:"skills,omitempty"`
	}{
		ReceiverID: input.ReceiverID,
		Category:   input.Category,
		Message:    input.Message,
		EventID:    input.EventID,
		Skills:     input.Skills,
	}

	var endorsement domain.Endorsement
	if err := c.request(ctx, http.MethodPost, "/api/endorsements", body, &endorsement); err != nil {
		return nil, err
	}
	return &endorsement, nil
}
