package services

import (
	"time"

	"paddle-scheduler/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

// CreateMatch handles POST /api/matches. Assignments come from a human;
// the only machine consumer is the match-day reminder sweep.
func (s *MatchService) CreateMatch(c *fiber.Ctx) error {
	var body struct {
		WeekendEventID string  `json:"weekend_event_id"`
		MatchBlockID   string  `json:"match_block_id"`
		MatchDate      string  `json:"match_date"`
		Player1ID      *string `json:"player1_id"`
		Player2ID      *string `json:"player2_id"`
		Player3ID      *string `json:"player3_id"`
		Player4ID      *string `json:"player4_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.WeekendEventID == "" || body.MatchBlockID == "" || body.MatchDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "weekend_event_id, match_block_id and match_date are required",
		})
	}

	matchDate, err := time.Parse(dateLayout, body.MatchDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid match_date (use YYYY-MM-DD)"})
	}

	var event models.WeekendEvent
	if err := s.DB.First(&event, "id = ?", body.WeekendEventID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weekend_event_id not found"})
	}
	var block models.MatchBlock
	if err := s.DB.First(&block, "id = ?", body.MatchBlockID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "match_block_id not found"})
	}

	match := &models.Match{
		ID:             uuid.NewString(),
		WeekendEventID: body.WeekendEventID,
		MatchBlockID:   body.MatchBlockID,
		MatchDate:      matchDate,
		Player1ID:      body.Player1ID,
		Player2ID:      body.Player2ID,
		Player3ID:      body.Player3ID,
		Player4ID:      body.Player4ID,
	}
	if err := s.DB.Create(match).Error; err != nil {
		logrus.WithError(err).Error("failed to create match")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": match})
}

// GetEventMatches handles GET /api/weekend-events/:id/matches.
func (s *MatchService) GetEventMatches(c *fiber.Ctx) error {
	eventID := c.Params("id")

	var matches []models.Match
	if err := s.DB.Where("weekend_event_id = ?", eventID).
		Order("match_date").Find(&matches).Error; err != nil {
		logrus.WithError(err).Error("failed to list matches")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(matches)
}
