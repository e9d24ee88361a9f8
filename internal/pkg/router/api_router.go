package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/newsroom/newsdesk/app/controllers"
	"github.com/newsroom/newsdesk/internal/pkg/newsservice"
)

type ApiRouter struct {
	news *controllers.NewsController
}

func NewApiRouter(svc *newsservice.Service) *ApiRouter {
	return &ApiRouter{news: controllers.NewNewsController(svc)}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "pong",
		})
	})

	news := api.Group("/news")
	news.Get("/", h.news.HandleList)
	news.Post("/", h.news.HandleCreate)
	news.Get("/:id", h.news.HandleGet)
	news.Put("/:id", h.news.HandleUpdate)
	news.Patch("/:id/publish", h.news.HandlePublish)
	news.Patch("/:id/unpublish", h.news.HandleUnpublish)
	news.Patch("/:id", h.news.HandleUpdate)
	news.Delete("/:id", h.news.HandleDelete)
}
