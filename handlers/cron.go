package handlers

import (
	"paddle-scheduler/middleware"
	"paddle-scheduler/services"

	"github.com/gofiber/fiber/v2"
)

// SetupCronRoutes mounts the scheduled-job endpoint behind the shared
// secret. An external cron service is expected to hit it daily at 9am.
func SetupCronRoutes(app *fiber.App, reminders *services.ReminderService, cronSecret string) {
	cron := app.Group("/api/cron", middleware.CronAuthMiddleware(cronSecret))
	cron.Get("/daily-reminders", reminders.RunDailyReminders)
}
