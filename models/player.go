package models

import "time"

// Player is a roster entry mirrored from the club spreadsheet.
// Owned and written solely by roster sync; the RSVP path only reads it.
type Player struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"` // stored lower-cased
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
