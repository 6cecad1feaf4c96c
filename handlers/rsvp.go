package handlers

import (
	"paddle-scheduler/services"

	"github.com/gofiber/fiber/v2"
)

// SetupRSVPRoutes mounts the public RSVP surface: the landing page the
// emailed links point at, and the respond endpoint it posts to.
func SetupRSVPRoutes(app *fiber.App, rsvpService *services.RSVPService) {
	app.Get("/rsvp", rsvpService.RSVPPage)
	app.Post("/api/availability/respond", rsvpService.Respond)
}
