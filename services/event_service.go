package services

import (
	"fmt"
	"time"

	"paddle-scheduler/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// MarkInvitesSent advances the event after a send pass has run. It fires
// whether or not individual sends succeeded — the status records "a round
// was run", not "a round succeeded". Completed events are never moved
// backward.
func (s *EventService) MarkInvitesSent(event *models.WeekendEvent) error {
	if !models.CanTransitionEventStatus(event.Status, models.EventStatusInvitesSent) {
		return fmt.Errorf("weekend event %s: cannot move from %s to %s", event.ID, event.Status, models.EventStatusInvitesSent)
	}
	event.Status = models.EventStatusInvitesSent
	return s.DB.Model(event).Update("status", models.EventStatusInvitesSent).Error
}

// GetAllWeekendEvents handles GET /api/weekend-events, newest weekend first.
func (s *EventService) GetAllWeekendEvents(c *fiber.Ctx) error {
	var events []models.WeekendEvent
	if err := s.DB.Order("saturday_date DESC").Find(&events).Error; err != nil {
		logrus.WithError(err).Error("failed to list weekend events")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(events)
}

// CreateWeekendEvent handles POST /api/weekend-events.
func (s *EventService) CreateWeekendEvent(c *fiber.Ctx) error {
	var body struct {
		SaturdayDate string `json:"saturday_date"`
		SundayDate   string `json:"sunday_date"`
	}
	if err := c.BodyParser(&body); err != nil || body.SaturdayDate == "" || body.SundayDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both saturday_date and sunday_date are required (YYYY-MM-DD)",
		})
	}

	saturday, err := time.Parse(dateLayout, body.SaturdayDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid saturday_date (use YYYY-MM-DD)"})
	}
	sunday, err := time.Parse(dateLayout, body.SundayDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sunday_date (use YYYY-MM-DD)"})
	}

	var existing int64
	if err := s.DB.Model(&models.WeekendEvent{}).
		Where("saturday_date = ? AND sunday_date = ?", saturday, sunday).
		Count(&existing).Error; err != nil {
		logrus.WithError(err).Error("failed to check for duplicate weekend event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	if existing > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A weekend event for those dates already exists"})
	}

	event := &models.WeekendEvent{
		ID:           uuid.NewString(),
		SaturdayDate: saturday,
		SundayDate:   sunday,
		Status:       models.EventStatusDraft,
	}
	if err := s.DB.Create(event).Error; err != nil {
		logrus.WithError(err).Error("failed to create weekend event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": event})
}

// UpdateEventStatus handles PATCH /api/weekend-events/:id/status. Only
// transitions permitted by the status machine go through; everything else
// is a 409.
func (s *EventService) UpdateEventStatus(c *fiber.Ctx) error {
	eventID := c.Params("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status is required"})
	}
	if !models.ValidEventStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown status: " + body.Status})
	}

	var event models.WeekendEvent
	if err := s.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Weekend event not found"})
	}

	if !models.CanTransitionEventStatus(event.Status, body.Status) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("cannot move event from %s to %s", event.Status, body.Status),
		})
	}

	if err := s.DB.Model(&event).Update("status", body.Status).Error; err != nil {
		logrus.WithError(err).Error("failed to update event status")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	event.Status = body.Status

	return c.JSON(fiber.Map{"success": true, "data": event})
}
