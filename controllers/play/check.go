package play

import (
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Check(c *fiber.Ctx) error {
	snap, err := h.Core.Check(playerCode(c))
	if err != nil {
		return respondError(c, err)
	}
	return helpers.JSONSuccess(c, "Game checked", snap)
}
