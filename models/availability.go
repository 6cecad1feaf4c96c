package models

import "time"

const (
	AvailabilityBoth     = "both"
	AvailabilitySaturday = "saturday"
	AvailabilitySunday   = "sunday"
	AvailabilityNone     = "none"
)

// ValidAvailability reports whether v is one of the four RSVP choices.
// Tokens are unsigned, so any string can arrive here; everything outside
// the closed set is rejected before a write happens.
func ValidAvailability(v string) bool {
	switch v {
	case AvailabilityBoth, AvailabilitySaturday, AvailabilitySunday, AvailabilityNone:
		return true
	}
	return false
}

// PlayerAvailability is a player's answer for one weekend event. Exactly
// one row per (weekend_event_id, player_id); a later answer overwrites the
// earlier one together with its timestamp.
type PlayerAvailability struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	WeekendEventID string    `json:"weekend_event_id" gorm:"not null;uniqueIndex:idx_event_player"`
	PlayerID       string    `json:"player_id" gorm:"not null;uniqueIndex:idx_event_player"`
	Availability   string    `json:"availability" gorm:"not null"`
	RespondedAt    time.Time `json:"responded_at"`
}

func (PlayerAvailability) TableName() string { return "player_availability" }
