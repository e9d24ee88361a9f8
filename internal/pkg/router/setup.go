package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsroom/newsdesk/internal/pkg/newsservice"
)

// Router installs a group of routes on the app
type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, svc *newsservice.Service) {
	app.Use(MethodOverride())
	setup(app, NewApiRouter(svc))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
