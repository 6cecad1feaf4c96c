package handlers

import (
	"paddle-scheduler/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes mounts the organizer-facing CRUD and send surfaces.
func SetupAdminRoutes(
	app *fiber.App,
	events *services.EventService,
	blocks *services.BlockService,
	matches *services.MatchService,
	roster *services.RosterService,
	invites *services.InviteService,
) {
	app.Get("/api/weekend-events", events.GetAllWeekendEvents)
	app.Post("/api/weekend-events", events.CreateWeekendEvent)
	app.Patch("/api/weekend-events/:id/status", events.UpdateEventStatus)
	app.Get("/api/weekend-events/:id/matches", matches.GetEventMatches)

	app.Get("/api/match-blocks", blocks.GetAllMatchBlocks)
	app.Post("/api/match-blocks", blocks.CreateMatchBlock)
	app.Delete("/api/match-blocks/:id", blocks.DeleteMatchBlock)

	app.Post("/api/matches", matches.CreateMatch)

	app.Get("/api/players", roster.GetAllPlayers)
	app.Post("/api/admin/sync-players", roster.SyncPlayers)

	app.Post("/api/availability/send", invites.SendAvailabilityRequests)
}
