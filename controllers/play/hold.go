package play

import (
	"tridraw/helpers"

	"github.com/gofiber/fiber/v2"
)

type holdRequest struct {
	Positions []int `json:"positions"`
}

func (h *Handler) Hold(c *fiber.Ctx) error {
	var req holdRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	snap, err := h.Core.Hold(playerCode(c), req.Positions)
	if err != nil {
		return respondError(c, err)
	}
	return helpers.JSONSuccess(c, "Cards held", snap)
}
