package services

import (
	"errors"
	"time"

	"paddle-scheduler/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RSVPStore is the slice of persistence the RSVP core needs: a player
// lookup and a last-write-wins upsert on the (event, player) pair. It is
// injected so tests can substitute an in-memory store.
type RSVPStore interface {
	// GetPlayer returns (nil, nil) when no such player exists.
	GetPlayer(id string) (*models.Player, error)
	UpsertAvailability(weekendEventID, playerID, availability string, respondedAt time.Time) error
}

type GormRSVPStore struct {
	DB *gorm.DB
}

func NewGormRSVPStore(db *gorm.DB) *GormRSVPStore {
	return &GormRSVPStore{DB: db}
}

func (s *GormRSVPStore) GetPlayer(id string) (*models.Player, error) {
	var player models.Player
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

// UpsertAvailability inserts the response or overwrites an existing one for
// the same (weekend_event_id, player_id) pair. The unique index on the pair
// is the only serialization point between concurrent submissions.
func (s *GormRSVPStore) UpsertAvailability(weekendEventID, playerID, availability string, respondedAt time.Time) error {
	row := models.PlayerAvailability{
		ID:             uuid.NewString(),
		WeekendEventID: weekendEventID,
		PlayerID:       playerID,
		Availability:   availability,
		RespondedAt:    respondedAt,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "weekend_event_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"availability", "responded_at"}),
	}).Create(&row).Error
}
