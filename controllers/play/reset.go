package play

import (
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Reset(c *fiber.Ctx) error {
	var req startRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
	}

	snap, err := h.Core.Reset(playerCode(c), req.WalletAddress)
	if err != nil {
		return respondError(c, err)
	}
	return helpers.JSONSuccess(c, "Game reset", snap)
}
