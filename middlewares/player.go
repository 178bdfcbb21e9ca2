package middlewares

import (
	"strings"
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

// PlayerAuthMiddleware requires the X-Player-Code header on every game route
// and stashes it for the handlers.
func PlayerAuthMiddleware(c *fiber.Ctx) error {
	playerCode := strings.TrimSpace(c.Get("X-Player-Code"))

	if playerCode == "" {
		return helpers.JSONError(c, "PLAYER_CODE_REQUIRED")
	}
	if len(playerCode) > 64 {
		return helpers.JSONError(c, "PLAYER_CODE_TOO_LONG")
	}

	c.Locals("playerCode", playerCode)
	return c.Next()
}
