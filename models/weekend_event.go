package models

import "time"

const (
	EventStatusDraft       = "draft"
	EventStatusInvitesSent = "invites_sent"
	EventStatusCompleted   = "completed"
)

// eventTransitions is the full status machine for a weekend event.
// invites_sent → invites_sent is allowed so a send pass can be re-run;
// completed is terminal and never moves backward.
var eventTransitions = map[string][]string{
	EventStatusDraft:       {EventStatusInvitesSent},
	EventStatusInvitesSent: {EventStatusInvitesSent, EventStatusCompleted},
	EventStatusCompleted:   {},
}

func ValidEventStatus(status string) bool {
	_, ok := eventTransitions[status]
	return ok
}

func CanTransitionEventStatus(from, to string) bool {
	for _, next := range eventTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// WeekendEvent is one scheduled weekend players are polled about.
// The two dates are expected to be an adjacent Saturday/Sunday pair; the
// admin supplies them together and the service does not enforce adjacency.
type WeekendEvent struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SaturdayDate time.Time `json:"saturday_date" gorm:"type:date;not null;uniqueIndex:idx_weekend_dates"`
	SundayDate   time.Time `json:"sunday_date" gorm:"type:date;not null;uniqueIndex:idx_weekend_dates"`
	Status       string    `json:"status" gorm:"default:'draft'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
