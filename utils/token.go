package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

// RSVP tokens carry (player id, weekend event id, availability) through an
// email link so nobody has to log in. They are deliberately unsigned and
// never expire: anyone holding the link can replay it, which is the
// accepted trade-off for one-click responses. The mailer and the respond
// handler must agree on this exact scheme.
const tokenDelimiter = ":"

var ErrInvalidToken = errors.New("invalid token")

// EncodeRSVPToken builds the URL-safe token embedded in RSVP links.
// Deterministic: the same triple always yields the same token. The fields
// are UUIDs and a closed-set literal, so the delimiter can never occur
// inside them.
func EncodeRSVPToken(playerID, weekendEventID, availability string) string {
	data := playerID + tokenDelimiter + weekendEventID + tokenDelimiter + availability
	return base64.RawURLEncoding.EncodeToString([]byte(data))
}

// DecodeRSVPToken reverses EncodeRSVPToken. Anything that is not valid
// unpadded base64url, or does not split into exactly three non-empty
// parts, is ErrInvalidToken.
func DecodeRSVPToken(token string) (playerID, weekendEventID, availability string, err error) {
	raw, decErr := base64.RawURLEncoding.DecodeString(token)
	if decErr != nil {
		return "", "", "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), tokenDelimiter)
	if len(parts) != 3 {
		return "", "", "", ErrInvalidToken
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", ErrInvalidToken
		}
	}

	return parts[0], parts[1], parts[2], nil
}
