package play

import (
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Draw(c *fiber.Ctx) error {
	result, err := h.Core.Draw(playerCode(c))
	if err != nil {
		return respondError(c, err)
	}
	return helpers.JSONSuccess(c, "Cards drawn", result)
}
