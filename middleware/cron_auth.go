package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CronAuthMiddleware guards the scheduled-job endpoint with a shared
// secret: "Authorization: Bearer <CRON_SECRET>". This is the only
// authentication in the system.
func CronAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || token == authHeader ||
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			logrus.WithField("path", c.Path()).Warn("🚫 rejected cron request with bad or missing secret")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}
