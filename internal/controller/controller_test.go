package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/repository"
	"github.com/gatherly/backend/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopQueue struct{}

func (noopQueue) Publish([]byte) error                  { return nil }
func (noopQueue) Consume(string) (<-chan []byte, error) { return make(chan []byte), nil }
func (noopQueue) StopConsuming(string) error            { return nil }
func (noopQueue) Close() error                          { return nil }

type noopEmail struct{}

func (noopEmail) Send(string, string, string) error { return nil }

type testClients struct{}

func (testClients) Queue() client.QueueClient { return noopQueue{} }
func (testClients) Email() client.EmailClient { return noopEmail{} }

func newTestServer(t *testing.T) (*echo.Echo, service.Services) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	config := dto.Config{
		JWTSecret:       "test-secret",
		JWTIssuer:       "test",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	services := service.NewServices(repository.NewRepositories(db), config, testClients{})

	e := echo.New()
	NewControllers(services).Route(e)
	return e, services
}

func doRequest(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = strings.NewReader(string(payload))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()

	rec := doRequest(e, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
		Password2: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/auth/token", "", dto.TokenRequest{
		Username: username,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pair dto.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	return pair.Access
}

func eventBody(public bool) map[string]interface{} {
	start := time.Now().Add(48 * time.Hour)
	return map[string]interface{}{
		"title":       "Summer picnic",
		"description": "Bring snacks",
		"location":    "Central Park",
		"start_time":  start.Format(time.RFC3339),
		"end_time":    start.Add(2 * time.Hour).Format(time.RFC3339),
		"is_public":   public,
	}
}

func TestAuthEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token := registerAndLogin(t, e, "alice")
	assert.NotEmpty(t, token)

	// Missing email fails validation with a detail message.
	rec := doRequest(e, http.MethodPost, "/auth/register", "", map[string]string{
		"username": "bob", "password": "password123", "password2": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Detail)

	// Refresh issues a fresh pair.
	rec = doRequest(e, http.MethodPost, "/auth/token", "", dto.TokenRequest{Username: "alice", Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code)
	var pair dto.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))

	rec = doRequest(e, http.MethodPost, "/auth/token/refresh", "", dto.RefreshRequest{Refresh: pair.Refresh})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Bad credentials are a 401.
	rec = doRequest(e, http.MethodPost, "/auth/token", "", dto.TokenRequest{Username: "alice", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticationVersusAuthorization(t *testing.T) {
	e, _ := newTestServer(t)

	organizerToken := registerAndLogin(t, e, "organizer")
	strangerToken := registerAndLogin(t, e, "stranger")

	rec := doRequest(e, http.MethodPost, "/events", organizerToken, eventBody(true))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created dto.EventDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// No token at all: 401.
	rec = doRequest(e, http.MethodPost, "/events", "", eventBody(true))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token: 401.
	rec = doRequest(e, http.MethodPost, "/events", "garbage", eventBody(true))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not the organizer: 403.
	path := fmt.Sprintf("/events/%d", created.ID)
	rec = doRequest(e, http.MethodDelete, path, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The organizer can delete.
	rec = doRequest(e, http.MethodDelete, path, organizerToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEventListEnvelope(t *testing.T) {
	e, _ := newTestServer(t)

	token := registerAndLogin(t, e, "organizer")
	rec := doRequest(e, http.MethodPost, "/events", token, eventBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Count   int64             `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 1, page.Count)
	assert.Len(t, page.Results, 1)
}

func TestRSVPAndReviewEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	organizerToken := registerAndLogin(t, e, "organizer")
	attendeeToken := registerAndLogin(t, e, "attendee")

	rec := doRequest(e, http.MethodPost, "/events", organizerToken, eventBody(true))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.EventDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rsvpPath := fmt.Sprintf("/events/%d/rsvp", created.ID)
	rec = doRequest(e, http.MethodPost, rsvpPath, attendeeToken, dto.RSVPRequest{Status: "Going"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rsvp dto.RSVPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rsvp))

	// Second POST conflicts.
	rec = doRequest(e, http.MethodPost, rsvpPath, attendeeToken, dto.RSVPRequest{Status: "Going"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// PATCH updates in place.
	patchPath := fmt.Sprintf("/events/%d/rsvp/%d", created.ID, rsvp.User.ID)
	rec = doRequest(e, http.MethodPatch, patchPath, attendeeToken, dto.RSVPRequest{Status: "Maybe"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.RSVPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, rsvp.ID, updated.ID)
	assert.Equal(t, "Maybe", updated.Status)

	// Updating someone else's RSVP is forbidden.
	rec = doRequest(e, http.MethodPatch, patchPath, organizerToken, dto.RSVPRequest{Status: "Not Going"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Reviews.
	reviewPath := fmt.Sprintf("/events/%d/reviews", created.ID)
	rec = doRequest(e, http.MethodPost, reviewPath, attendeeToken, dto.ReviewRequest{Rating: 5, Comment: "great"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, reviewPath, attendeeToken, dto.ReviewRequest{Rating: 6, Comment: "too good"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, reviewPath, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrivateEventAccessOverHTTP(t *testing.T) {
	e, services := newTestServer(t)

	organizerToken := registerAndLogin(t, e, "organizer")
	strangerToken := registerAndLogin(t, e, "stranger")

	rec := doRequest(e, http.MethodPost, "/events", organizerToken, eventBody(false))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.EventDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/events/%d", created.ID)

	rec = doRequest(e, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodGet, path, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(e, http.MethodGet, path, organizerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Sanity check the policy is evaluated against a loaded resource.
	_, err := services.Event().GetEvent(nil, created.ID)
	assert.ErrorIs(t, err, dto.ErrNotAuthenticated)
}

func TestNotFoundResponses(t *testing.T) {
	e, _ := newTestServer(t)
	token := registerAndLogin(t, e, "alice")

	rec := doRequest(e, http.MethodGet, "/events/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodGet, "/events/not-a-number", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserProfileEndpoint(t *testing.T) {
	e, services := newTestServer(t)

	token := registerAndLogin(t, e, "alice")

	user, err := services.Auth().ValidateAccessToken(token)
	require.NoError(t, err)

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.Username)

	// Profiles require authentication.
	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
