package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paddle-scheduler/models"
	"paddle-scheduler/services"
	"paddle-scheduler/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	players   map[string]*models.Player
	upsertErr error
	upserts   int
}

func (s *stubStore) GetPlayer(id string) (*models.Player, error) {
	return s.players[id], nil
}

func (s *stubStore) UpsertAvailability(weekendEventID, playerID, availability string, respondedAt time.Time) error {
	s.upserts++
	return s.upsertErr
}

func newRSVPApp(store *stubStore) *fiber.App {
	app := fiber.New()
	SetupRSVPRoutes(app, services.NewRSVPService(store))
	return app
}

func postToken(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/availability/respond", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestRespond_Success(t *testing.T) {
	store := &stubStore{players: map[string]*models.Player{
		"p1": {ID: "p1", Name: "Alex Johnson", Email: "alex@example.com"},
	}}
	app := newRSVPApp(store)

	token := utils.EncodeRSVPToken("p1", "w1", models.AvailabilityBoth)
	status, payload := postToken(t, app, `{"token":"`+token+`"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, payload["success"])
	assert.Contains(t, payload["message"], "both days")
	assert.Equal(t, 1, store.upserts)
}

func TestRespond_MissingToken(t *testing.T) {
	store := &stubStore{players: map[string]*models.Player{}}
	app := newRSVPApp(store)

	status, payload := postToken(t, app, `{"token":""}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Token required", payload["error"])
	assert.Zero(t, store.upserts)
}

func TestRespond_InvalidToken(t *testing.T) {
	store := &stubStore{players: map[string]*models.Player{}}
	app := newRSVPApp(store)

	status, payload := postToken(t, app, `{"token":"%%%garbage%%%"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid token", payload["error"])
}

func TestRespond_InvalidChoice(t *testing.T) {
	store := &stubStore{players: map[string]*models.Player{}}
	app := newRSVPApp(store)

	token := utils.EncodeRSVPToken("p1", "w1", "cancel")
	status, payload := postToken(t, app, `{"token":"`+token+`"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid availability option", payload["error"])
	assert.Zero(t, store.upserts)
}

func TestRespond_PlayerNotFound(t *testing.T) {
	store := &stubStore{players: map[string]*models.Player{}}
	app := newRSVPApp(store)

	token := utils.EncodeRSVPToken("ghost", "w1", models.AvailabilitySunday)
	status, payload := postToken(t, app, `{"token":"`+token+`"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Player not found", payload["error"])
	assert.Zero(t, store.upserts)
}

func TestRespond_StoreWriteFailure(t *testing.T) {
	store := &stubStore{
		players:   map[string]*models.Player{"p1": {ID: "p1", Name: "Alex Johnson"}},
		upsertErr: errors.New("connection reset"),
	}
	app := newRSVPApp(store)

	token := utils.EncodeRSVPToken("p1", "w1", models.AvailabilityBoth)
	status, payload := postToken(t, app, `{"token":"`+token+`"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to record response", payload["error"])
}

func TestRSVPPage_ServesHTML(t *testing.T) {
	app := newRSVPApp(&stubStore{players: map[string]*models.Player{}})

	req := httptest.NewRequest(fiber.MethodGet, "/rsvp?token=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Recording your response")
	assert.Contains(t, string(raw), "contact the organizer")
}
