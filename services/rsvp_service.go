package services

import (
	"errors"
	"fmt"
	"time"

	"paddle-scheduler/models"
	"paddle-scheduler/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RSVPService struct {
	Store RSVPStore
}

func NewRSVPService(store RSVPStore) *RSVPService {
	return &RSVPService{Store: store}
}

// RecordResponse turns a raw RSVP token into a durable availability row and
// returns the confirmation shown to the player. Exactly one upsert happens
// on success; every failure path leaves the store untouched. Replaying the
// same token is idempotent apart from the response timestamp.
func (s *RSVPService) RecordResponse(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	playerID, weekendEventID, availability, err := utils.DecodeRSVPToken(token)
	if err != nil {
		return "", err
	}

	// The token is unsigned, so a well-formed token can still carry a
	// tampered or stale choice.
	if !models.ValidAvailability(availability) {
		return "", ErrInvalidChoice
	}

	player, err := s.Store.GetPlayer(playerID)
	if err != nil {
		return "", fmt.Errorf("looking up player %s: %w", playerID, err)
	}
	if player == nil {
		// Covers players removed from the roster after the email went out.
		return "", ErrPlayerNotFound
	}

	if err := s.Store.UpsertAvailability(weekendEventID, playerID, availability, time.Now()); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"player_id":        playerID,
			"weekend_event_id": weekendEventID,
		}).Error("failed to record availability")
		return "", ErrStoreWrite
	}

	return confirmationMessage(player.Name, availability), nil
}

func confirmationMessage(name, availability string) string {
	first := utils.FirstName(name)
	switch availability {
	case models.AvailabilityBoth:
		return fmt.Sprintf("Thanks %s! We've got you down for both days. See you on the court! 🎾", first)
	case models.AvailabilitySaturday:
		return fmt.Sprintf("Thanks %s! We've got you down for Saturday only. See you there! 🎾", first)
	case models.AvailabilitySunday:
		return fmt.Sprintf("Thanks %s! We've got you down for Sunday only. See you there! 🎾", first)
	default: // none
		return fmt.Sprintf("Thanks for letting us know, %s. Hope to see you next time! 👋", first)
	}
}

// Respond handles POST /api/availability/respond.
func (s *RSVPService) Respond(c *fiber.Ctx) error {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token required"})
	}

	message, err := s.RecordResponse(body.Token)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingToken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token required"})
		case errors.Is(err, utils.ErrInvalidToken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid token"})
		case errors.Is(err, ErrInvalidChoice):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid availability option"})
		case errors.Is(err, ErrPlayerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Player not found"})
		case errors.Is(err, ErrStoreWrite):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record response"})
		default:
			logrus.WithError(err).Error("unhandled RSVP failure")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": message})
}
