package models

import "time"

const (
	DaySaturday = "Saturday"
	DaySunday   = "Sunday"
)

// MatchBlock is a recurring weekend slot (day + start time + location).
// Immutable once created except by explicit admin delete.
type MatchBlock struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	DayOfWeek string    `json:"day_of_week" gorm:"not null"` // Saturday | Sunday
	StartTime string    `json:"start_time" gorm:"not null"`  // e.g. "09:00"
	Location  string    `json:"location" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"index"` // human-readable handle for admin views and logs
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func ValidDayOfWeek(day string) bool {
	return day == DaySaturday || day == DaySunday
}
