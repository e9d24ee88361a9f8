package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/newsroom/newsdesk/app/repository"
	"github.com/newsroom/newsdesk/internal/pkg/database"
	"github.com/newsroom/newsdesk/internal/pkg/env"
	"github.com/newsroom/newsdesk/internal/pkg/newsservice"
	"github.com/newsroom/newsdesk/internal/pkg/router"
	"github.com/newsroom/newsdesk/internal/pkg/storage"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatal(err)
	}
	err = app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, error) {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	store, err := storage.NewBackendFromEnv()
	if err != nil {
		return nil, err
	}
	svc := newsservice.New(repository.GetGlobalRepositories().News, store)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // multipart form with a 5 MiB image plus fields
	})
	app.Use(recover.New(), logger.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// uploaded images are served from the public storage root
	if local, ok := store.(*storage.LocalBackend); ok {
		app.Static("/storage", local.BasePath())
	}

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, svc)

	return app, nil
}
