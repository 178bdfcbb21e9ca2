package routes

import (
	"tridraw/controllers/play"
	"tridraw/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, h *play.Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	gameroutes := app.Group("/game", middlewares.PlayerAuthMiddleware)
	gameroutes.Post("/start", h.Start)
	gameroutes.Post("/reset", h.Reset)
	gameroutes.Post("/draw", h.Draw)
	gameroutes.Post("/hold", h.Hold)
	gameroutes.Post("/check", h.Check)
	gameroutes.Get("/status", h.Status)
}
