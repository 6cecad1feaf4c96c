package models

import "time"

const (
	EmailTypeAvailabilityRequest  = "availability_request"
	EmailTypeAvailabilityReminder = "reminder_availability"
	EmailTypeMatchReminder        = "match_reminder"
)

// EmailLog is an append-only record of every send attempt. The daily
// reminder sweep reads it to avoid mailing the same player twice a day.
type EmailLog struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	PlayerID       string    `json:"player_id" gorm:"index"`
	WeekendEventID string    `json:"weekend_event_id" gorm:"index"`
	EmailType      string    `json:"email_type" gorm:"not null"`
	Success        bool      `json:"success"`
	SentAt         time.Time `json:"sent_at" gorm:"autoCreateTime;index"`
}

func (EmailLog) TableName() string { return "email_log" }
