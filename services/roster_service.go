package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"paddle-scheduler/models"
	"paddle-scheduler/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterService pulls the player roster from the club spreadsheet's
// published CSV export and upserts it into the players table. Players are
// keyed by their normalized email, so re-running the sync is idempotent.
type RosterService struct {
	DB          *gorm.DB
	SheetCSVURL string
}

func NewRosterService(db *gorm.DB, sheetCSVURL string) *RosterService {
	return &RosterService{DB: db, SheetCSVURL: sheetCSVURL}
}

// RosterRow is one normalized spreadsheet row.
type RosterRow struct {
	Name  string
	Email string
	Phone string
}

// ParseRoster reads Name,Email,Phone rows from the CSV export. A header
// row (no "@" in the email column) and rows missing a name or email are
// skipped. Emails are lower-cased; names are whitespace-trimmed and
// title-cased.
func ParseRoster(csvData string) ([]RosterRow, error) {
	reader := csv.NewReader(strings.NewReader(csvData))
	reader.FieldsPerRecord = -1
	nameCaser := cases.Title(language.English)

	var rows []RosterRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading roster CSV: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		name := strings.TrimSpace(record[0])
		email := strings.ToLower(strings.TrimSpace(record[1]))
		if name == "" || email == "" || !strings.Contains(email, "@") {
			continue
		}

		phone := ""
		if len(record) > 2 {
			phone = strings.TrimSpace(record[2])
		}

		rows = append(rows, RosterRow{
			Name:  nameCaser.String(strings.ToLower(name)),
			Email: email,
			Phone: phone,
		})
	}
	return rows, nil
}

// SyncFromSheet fetches the export and upserts every row. Returns the
// number of players written.
func (s *RosterService) SyncFromSheet() (int, error) {
	if s.SheetCSVURL == "" {
		return 0, fmt.Errorf("SHEET_CSV_URL is not configured")
	}

	resp, err := utils.HTTPClient.Get(s.SheetCSVURL)
	if err != nil {
		return 0, fmt.Errorf("fetching roster sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("roster sheet returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading roster sheet: %w", err)
	}

	rows, err := ParseRoster(string(data))
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, row := range rows {
		player := models.Player{
			ID:    uuid.NewString(),
			Name:  row.Name,
			Email: row.Email,
		}
		if row.Phone != "" {
			phone := row.Phone
			player.Phone = &phone
		}

		if err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "updated_at"}),
		}).Create(&player).Error; err != nil {
			logrus.WithError(err).WithField("email", row.Email).Warn("⚠️ failed to upsert player")
			continue
		}
		synced++
	}

	logrus.WithField("count", synced).Info("✅ roster synced from spreadsheet")
	return synced, nil
}

// SyncPlayers handles POST /api/admin/sync-players.
func (s *RosterService) SyncPlayers(c *fiber.Ctx) error {
	count, err := s.SyncFromSheet()
	if err != nil {
		logrus.WithError(err).Error("roster sync failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to sync players",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "count": count})
}

// GetAllPlayers handles GET /api/players.
func (s *RosterService) GetAllPlayers(c *fiber.Ctx) error {
	var players []models.Player
	if err := s.DB.Order("name").Find(&players).Error; err != nil {
		logrus.WithError(err).Error("failed to list players")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(players)
}
