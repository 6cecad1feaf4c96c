package services

import (
	"paddle-scheduler/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BlockService struct {
	DB *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{DB: db}
}

// GetAllMatchBlocks handles GET /api/match-blocks, ordered the way they
// appear in emails: day first, then start time.
func (s *BlockService) GetAllMatchBlocks(c *fiber.Ctx) error {
	var blocks []models.MatchBlock
	if err := s.DB.Order("day_of_week").Order("start_time").Find(&blocks).Error; err != nil {
		logrus.WithError(err).Error("failed to list match blocks")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(blocks)
}

// CreateMatchBlock handles POST /api/match-blocks.
func (s *BlockService) CreateMatchBlock(c *fiber.Ctx) error {
	var body struct {
		DayOfWeek string `json:"day_of_week"`
		StartTime string `json:"start_time"`
		Location  string `json:"location"`
	}
	if err := c.BodyParser(&body); err != nil || body.DayOfWeek == "" || body.StartTime == "" || body.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: day_of_week, start_time, location",
		})
	}
	if !models.ValidDayOfWeek(body.DayOfWeek) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day_of_week must be Saturday or Sunday"})
	}

	block := &models.MatchBlock{
		ID:        uuid.NewString(),
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		Location:  body.Location,
		Slug:      slug.Make(body.DayOfWeek + " " + body.StartTime + " " + body.Location),
	}
	if err := s.DB.Create(block).Error; err != nil {
		logrus.WithError(err).Error("failed to create match block")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": block})
}

// DeleteMatchBlock handles DELETE /api/match-blocks/:id.
func (s *BlockService) DeleteMatchBlock(c *fiber.Ctx) error {
	blockID := c.Params("id")
	if blockID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	if err := s.DB.Delete(&models.MatchBlock{}, "id = ?", blockID).Error; err != nil {
		logrus.WithError(err).Error("failed to delete match block")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true})
}
