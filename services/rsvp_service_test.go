package services

import (
	"errors"
	"testing"
	"time"

	"paddle-scheduler/models"
	"paddle-scheduler/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedResponse struct {
	Availability string
	RespondedAt  time.Time
}

// fakeRSVPStore is the in-memory substitute the store interface exists for.
type fakeRSVPStore struct {
	players   map[string]*models.Player
	responses map[string]storedResponse // keyed by eventID + "/" + playerID

	playerErr error
	upsertErr error

	upsertCalls int
}

func newFakeRSVPStore() *fakeRSVPStore {
	return &fakeRSVPStore{
		players:   make(map[string]*models.Player),
		responses: make(map[string]storedResponse),
	}
}

func (f *fakeRSVPStore) GetPlayer(id string) (*models.Player, error) {
	if f.playerErr != nil {
		return nil, f.playerErr
	}
	return f.players[id], nil
}

func (f *fakeRSVPStore) UpsertAvailability(weekendEventID, playerID, availability string, respondedAt time.Time) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.responses[weekendEventID+"/"+playerID] = storedResponse{
		Availability: availability,
		RespondedAt:  respondedAt,
	}
	return nil
}

func TestRecordResponse_BothDays(t *testing.T) {
	store := newFakeRSVPStore()
	store.players["p1"] = &models.Player{ID: "p1", Name: "Alex Johnson", Email: "alex@example.com"}
	svc := NewRSVPService(store)

	token := utils.EncodeRSVPToken("p1", "w1", models.AvailabilityBoth)
	message, err := svc.RecordResponse(token)
	require.NoError(t, err)

	assert.Contains(t, message, "Alex")
	assert.Contains(t, message, "both days")

	stored, ok := store.responses["w1/p1"]
	require.True(t, ok, "expected an availability row for (w1, p1)")
	assert.Equal(t, models.AvailabilityBoth, stored.Availability)
}

func TestRecordResponse_MissingToken(t *testing.T) {
	store := newFakeRSVPStore()
	svc := NewRSVPService(store)

	_, err := svc.RecordResponse("")
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Zero(t, store.upsertCalls, "no store interaction expected")
}

func TestRecordResponse_InvalidToken(t *testing.T) {
	store := newFakeRSVPStore()
	svc := NewRSVPService(store)

	_, err := svc.RecordResponse("not-a-real-token-!!!")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
	assert.Zero(t, store.upsertCalls)
}

func TestRecordResponse_InvalidChoice(t *testing.T) {
	store := newFakeRSVPStore()
	store.players["p1"] = &models.Player{ID: "p1", Name: "Alex Johnson"}
	svc := NewRSVPService(store)

	// Decodes fine but carries a choice outside the closed set.
	token := utils.EncodeRSVPToken("p1", "w1", "cancel")
	_, err := svc.RecordResponse(token)
	assert.ErrorIs(t, err, ErrInvalidChoice)
	assert.Zero(t, store.upsertCalls)
}

func TestRecordResponse_PlayerNotFound(t *testing.T) {
	store := newFakeRSVPStore()
	svc := NewRSVPService(store)

	token := utils.EncodeRSVPToken("ghost", "w1", models.AvailabilitySaturday)
	_, err := svc.RecordResponse(token)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Zero(t, store.upsertCalls, "no write may happen for an unknown player")
}

func TestRecordResponse_StoreWriteFailure(t *testing.T) {
	store := newFakeRSVPStore()
	store.players["p1"] = &models.Player{ID: "p1", Name: "Alex Johnson"}
	store.upsertErr = errors.New("connection reset")
	svc := NewRSVPService(store)

	token := utils.EncodeRSVPToken("p1", "w1", models.AvailabilityBoth)
	_, err := svc.RecordResponse(token)
	assert.ErrorIs(t, err, ErrStoreWrite)
}

func TestRecordResponse_IdempotentOnReplay(t *testing.T) {
	store := newFakeRSVPStore()
	store.players["p1"] = &models.Player{ID: "p1", Name: "Alex Johnson"}
	svc := NewRSVPService(store)

	token := utils.EncodeRSVPToken("p1", "w1", models.AvailabilitySunday)
	for i := 0; i < 3; i++ {
		_, err := svc.RecordResponse(token)
		require.NoError(t, err)
	}

	assert.Len(t, store.responses, 1, "replays must not create extra rows")
	assert.Equal(t, models.AvailabilitySunday, store.responses["w1/p1"].Availability)
}

func TestRecordResponse_LastWriteWins(t *testing.T) {
	store := newFakeRSVPStore()
	store.players["p1"] = &models.Player{ID: "p1", Name: "Alex Johnson"}
	svc := NewRSVPService(store)

	_, err := svc.RecordResponse(utils.EncodeRSVPToken("p1", "w1", models.AvailabilityBoth))
	require.NoError(t, err)
	_, err = svc.RecordResponse(utils.EncodeRSVPToken("p1", "w1", models.AvailabilityNone))
	require.NoError(t, err)

	require.Len(t, store.responses, 1, "exactly one row per (event, player) pair")
	assert.Equal(t, models.AvailabilityNone, store.responses["w1/p1"].Availability)
}

func TestConfirmationMessage_PerChoice(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{models.AvailabilityBoth, "both days"},
		{models.AvailabilitySaturday, "Saturday only"},
		{models.AvailabilitySunday, "Sunday only"},
		{models.AvailabilityNone, "next time"},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			msg := confirmationMessage("Sam Lee", tt.choice)
			assert.Contains(t, msg, "Sam")
			assert.NotContains(t, msg, "Lee", "only the first name is used")
			assert.Contains(t, msg, tt.want)
		})
	}
}
