package play

import (
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Status(c *fiber.Ctx) error {
	var err error
	var snap interface{}

	if gameID := c.Query("game_id"); gameID != "" {
		snap, err = h.Core.StatusByGame(gameID)
	} else {
		snap, err = h.Core.Status(playerCode(c))
	}
	if err != nil {
		return respondError(c, err)
	}
	return helpers.JSONSuccess(c, "Session status", snap)
}
