package services

import (
	"time"

	"paddle-scheduler/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReminderMailer is the slice of the mailer the daily sweep needs.
type ReminderMailer interface {
	SendAvailabilityRequest(player models.Player, event models.WeekendEvent, blocks []models.MatchBlock, emailType string) bool
	SendMatchReminder(players []models.Player, match models.Match, block models.MatchBlock) (sent, failed int)
}

// ReminderService is the daily sweep: match-day reminders the day before a
// match, and availability nags (weekdays only) for upcoming weekends,
// throttled to one per player per day via the email log.
type ReminderService struct {
	DB     *gorm.DB
	Mailer ReminderMailer
}

func NewReminderService(db *gorm.DB, mailer ReminderMailer) *ReminderService {
	return &ReminderService{DB: db, Mailer: mailer}
}

type SweepResult struct {
	MatchRemindersSent        int    `json:"matchRemindersSent"`
	AvailabilityRemindersSent int    `json:"availabilityRemindersSent"`
	Date                      string `json:"date"`
	DayOfWeek                 string `json:"dayOfWeek"`
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RunDailySweep executes both reminder tasks for the given wall-clock time.
func (s *ReminderService) RunDailySweep(now time.Time) (*SweepResult, error) {
	today := startOfDay(now)
	result := &SweepResult{
		Date:      today.Format(dateLayout),
		DayOfWeek: today.Weekday().String(),
	}

	if err := s.sendMatchReminders(today, result); err != nil {
		return nil, err
	}

	// Availability nags go out on weekdays only; weekend mornings are for
	// playing, not inbox triage.
	if isWeekday(today) {
		if err := s.sendAvailabilityReminders(today, result); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"match_reminders":        result.MatchRemindersSent,
		"availability_reminders": result.AvailabilityRemindersSent,
		"date":                   result.Date,
	}).Info("⏰ daily reminder sweep finished")

	return result, nil
}

func (s *ReminderService) sendMatchReminders(today time.Time, result *SweepResult) error {
	tomorrow := today.AddDate(0, 0, 1)

	var matches []models.Match
	if err := s.DB.Where("match_date = ? AND reminder_sent = ?", tomorrow, false).
		Find(&matches).Error; err != nil {
		return err
	}

	for _, match := range matches {
		playerIDs := match.PlayerIDs()
		if len(playerIDs) == 0 {
			continue
		}

		var players []models.Player
		if err := s.DB.Where("id IN ?", playerIDs).Find(&players).Error; err != nil {
			logrus.WithError(err).WithField("match_id", match.ID).Warn("failed to load match players")
			continue
		}
		var block models.MatchBlock
		if err := s.DB.First(&block, "id = ?", match.MatchBlockID).Error; err != nil {
			logrus.WithError(err).WithField("match_id", match.ID).Warn("failed to load match block")
			continue
		}

		s.Mailer.SendMatchReminder(players, match, block)

		if err := s.DB.Model(&match).Update("reminder_sent", true).Error; err != nil {
			logrus.WithError(err).WithField("match_id", match.ID).Warn("failed to flag reminder as sent")
			continue
		}
		result.MatchRemindersSent++
	}
	return nil
}

func (s *ReminderService) sendAvailabilityReminders(today time.Time, result *SweepResult) error {
	nextWeek := today.AddDate(0, 0, 7)

	var events []models.WeekendEvent
	if err := s.DB.Where("saturday_date >= ? AND saturday_date <= ? AND status <> ?",
		today, nextWeek, models.EventStatusCompleted).
		Find(&events).Error; err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	var blocks []models.MatchBlock
	if err := s.DB.Order("day_of_week").Order("start_time").Find(&blocks).Error; err != nil {
		return err
	}
	var players []models.Player
	if err := s.DB.Order("name").Find(&players).Error; err != nil {
		return err
	}

	for _, event := range events {
		responded, err := s.playerIDSet(
			s.DB.Model(&models.PlayerAvailability{}).
				Where("weekend_event_id = ?", event.ID))
		if err != nil {
			logrus.WithError(err).WithField("weekend_event_id", event.ID).Warn("failed to load responses")
			continue
		}

		remindedToday, err := s.playerIDSet(
			s.DB.Model(&models.EmailLog{}).
				Where("weekend_event_id = ? AND email_type = ? AND sent_at >= ?",
					event.ID, models.EmailTypeAvailabilityReminder, today))
		if err != nil {
			logrus.WithError(err).WithField("weekend_event_id", event.ID).Warn("failed to load today's email log")
			continue
		}

		for _, player := range players {
			if responded[player.ID] || remindedToday[player.ID] {
				continue
			}
			if s.Mailer.SendAvailabilityRequest(player, event, blocks, models.EmailTypeAvailabilityReminder) {
				result.AvailabilityRemindersSent++
			}
		}
	}
	return nil
}

func (s *ReminderService) playerIDSet(query *gorm.DB) (map[string]bool, error) {
	var ids []string
	if err := query.Pluck("player_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// RunDailyReminders handles GET /api/cron/daily-reminders (behind the cron
// shared-secret middleware).
func (s *ReminderService) RunDailyReminders(c *fiber.Ctx) error {
	result, err := s.RunDailySweep(time.Now())
	if err != nil {
		logrus.WithError(err).Error("daily reminder sweep failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(fiber.Map{
		"success":                   true,
		"matchRemindersSent":        result.MatchRemindersSent,
		"availabilityRemindersSent": result.AvailabilityRemindersSent,
		"date":                      result.Date,
		"dayOfWeek":                 result.DayOfWeek,
	})
}
