package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRSVPToken_RoundTrip(t *testing.T) {
	for _, choice := range []string{"both", "saturday", "sunday", "none"} {
		t.Run(choice, func(t *testing.T) {
			token := EncodeRSVPToken("player-1", "event-1", choice)

			playerID, eventID, availability, err := DecodeRSVPToken(token)
			require.NoError(t, err)
			assert.Equal(t, "player-1", playerID)
			assert.Equal(t, "event-1", eventID)
			assert.Equal(t, choice, availability)
		})
	}
}

func TestEncodeRSVPToken_Deterministic(t *testing.T) {
	first := EncodeRSVPToken("p1", "w1", "both")
	second := EncodeRSVPToken("p1", "w1", "both")
	assert.Equal(t, first, second)
}

func TestEncodeRSVPToken_URLSafe(t *testing.T) {
	token := EncodeRSVPToken("6ba7b810-9dad-11d1-80b4-00c04fd430c8", "6ba7b811-9dad-11d1-80b4-00c04fd430c8", "saturday")
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
}

func TestDecodeRSVPToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64url", "!!!not-valid!!!"},
		{"one part", base64.RawURLEncoding.EncodeToString([]byte("justoneid"))},
		{"two parts", base64.RawURLEncoding.EncodeToString([]byte("p1:w1"))},
		{"four parts", base64.RawURLEncoding.EncodeToString([]byte("p1:w1:both:extra"))},
		{"empty middle part", base64.RawURLEncoding.EncodeToString([]byte("p1::both"))},
		{"empty string decodes to one empty part", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := DecodeRSVPToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDecodeRSVPToken_TamperedChoiceStillDecodes(t *testing.T) {
	// The codec does not police the closed set; that is the handler's job.
	token := EncodeRSVPToken("p1", "w1", "cancel")

	_, _, availability, err := DecodeRSVPToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cancel", availability)
}
