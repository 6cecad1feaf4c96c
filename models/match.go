package models

import "time"

// Match is a concrete assignment of up to four players to a match block on
// a specific date. Assignments are made by a human through the admin API;
// there is no pairing algorithm.
type Match struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	WeekendEventID string    `json:"weekend_event_id" gorm:"not null;index"`
	MatchBlockID   string    `json:"match_block_id" gorm:"not null;index"`
	MatchDate      time.Time `json:"match_date" gorm:"type:date;not null;index"`
	Player1ID      *string   `json:"player1_id,omitempty"`
	Player2ID      *string   `json:"player2_id,omitempty"`
	Player3ID      *string   `json:"player3_id,omitempty"`
	Player4ID      *string   `json:"player4_id,omitempty"`
	ReminderSent   bool      `json:"reminder_sent" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// PlayerIDs returns the assigned player ids, skipping empty slots.
func (m *Match) PlayerIDs() []string {
	var ids []string
	for _, p := range []*string{m.Player1ID, m.Player2ID, m.Player3ID, m.Player4ID} {
		if p != nil && *p != "" {
			ids = append(ids, *p)
		}
	}
	return ids
}
