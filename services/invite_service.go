package services

import (
	"paddle-scheduler/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AvailabilityMailer is the slice of the mailer the send pass needs.
type AvailabilityMailer interface {
	SendAvailabilityRequest(player models.Player, event models.WeekendEvent, blocks []models.MatchBlock, emailType string) bool
}

// InviteService runs the initial availability-request pass for a weekend
// event: everyone on the roster who has not yet answered gets the one-click
// email, then the event is marked invites_sent regardless of how many
// individual sends succeeded.
type InviteService struct {
	DB     *gorm.DB
	Mailer AvailabilityMailer
	Events *EventService
}

func NewInviteService(db *gorm.DB, mailer AvailabilityMailer, events *EventService) *InviteService {
	return &InviteService{DB: db, Mailer: mailer, Events: events}
}

// SendAvailabilityRequests handles POST /api/availability/send.
func (s *InviteService) SendAvailabilityRequests(c *fiber.Ctx) error {
	var body struct {
		WeekendEventID string `json:"weekend_event_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.WeekendEventID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Weekend event ID required"})
	}

	var event models.WeekendEvent
	if err := s.DB.First(&event, "id = ?", body.WeekendEventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Weekend event not found"})
	}
	if event.Status == models.EventStatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Weekend event is already completed"})
	}

	var blocks []models.MatchBlock
	if err := s.DB.Order("day_of_week").Order("start_time").Find(&blocks).Error; err != nil {
		logrus.WithError(err).Error("failed to fetch match blocks")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch match blocks"})
	}

	var players []models.Player
	if err := s.DB.Order("name").Find(&players).Error; err != nil {
		logrus.WithError(err).Error("failed to fetch players")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	responded, err := s.respondedPlayerIDs(event.ID)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch existing responses")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	sent, failed := 0, 0
	for _, player := range players {
		if responded[player.ID] {
			continue
		}
		if s.Mailer.SendAvailabilityRequest(player, event, blocks, models.EmailTypeAvailabilityRequest) {
			sent++
		} else {
			failed++
		}
	}

	// Status advances even if every send failed: it records that a send
	// round was run for this event.
	if err := s.Events.MarkInvitesSent(&event); err != nil {
		logrus.WithError(err).Error("failed to mark invites sent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	logrus.WithFields(logrus.Fields{
		"weekend_event_id": event.ID,
		"sent":             sent,
		"failed":           failed,
	}).Info("📨 availability request pass finished")

	return c.JSON(fiber.Map{
		"success": true,
		"sent":    sent,
		"failed":  failed,
		"total":   sent + failed,
	})
}

func (s *InviteService) respondedPlayerIDs(eventID string) (map[string]bool, error) {
	var responses []models.PlayerAvailability
	if err := s.DB.Select("player_id").
		Where("weekend_event_id = ?", eventID).
		Find(&responses).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(responses))
	for _, r := range responses {
		ids[r.PlayerID] = true
	}
	return ids, nil
}
