package play

import (
	"errors"

	"tridraw/game"
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the game routes.
type Handler struct {
	Core *game.Manager
}

func playerCode(c *fiber.Ctx) string {
	code, _ := c.Locals("playerCode").(string)
	return code
}

func respondError(c *fiber.Ctx, err error) error {
	var ge *game.GameError
	if errors.As(err, &ge) {
		status := fiber.StatusBadRequest
		switch ge.Code {
		case game.CodeNotFound:
			status = fiber.StatusNotFound
		case game.CodeIllegalState, game.CodeGameTimedOut:
			status = fiber.StatusConflict
		}
		return helpers.JSONErrorStatus(c, status, ge.Message)
	}
	return helpers.JSONError(c, err.Error())
}
