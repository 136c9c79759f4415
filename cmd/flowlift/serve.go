// Package main provides the flowlift command line interface and API server.
package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	cli "github.com/urfave/cli/v3"

	"github.com/flowlift/flowlift/pkg/log"
	"github.com/flowlift/flowlift/pkg/otelhelper"
	"github.com/flowlift/flowlift/pkg/services"
	"github.com/flowlift/flowlift/pkg/web"
)

const defaultPort = 9080

// ServeCommand starts the translation HTTP API.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the translation API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Report store URL (file path or postgres://...)",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export traces via OTLP",
				Sources: cli.EnvVars("FLOWLIFT_TRACING"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))
			logger := log.WithModule("api")

			logger.InfoContext(ctx, "Initializing flowlift API")

			if command.Bool("tracing") {
				if _, err := otelhelper.NewTracer(ctx, "flowlift-api"); err != nil {
					logger.ErrorContext(ctx, "Failed to initialize tracing", "error", err)
				}
			}

			service, cleanup, err := newTranslationService(ctx, logger, command.String("database-url"))
			if err != nil {
				return err
			}
			defer cleanup(ctx)

			api := NewAPI(logger, service)

			return api.Start(command.Int("port"))
		},
	}
}

type API struct {
	logger   *slog.Logger
	service  *services.Translation
	validate *validator.Validate
}

func NewAPI(logger *slog.Logger, service *services.Translation) *API {
	return &API{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(a.service, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("flowlift API")
	})

	app.Post("/parse", handlers.ParseWorkflow)
	app.Post("/translate", handlers.TranslateWorkflow)

	r := app.Group("/reports")
	r.Get("/", handlers.GetReports)
	r.Get("/:id", handlers.GetReport)
	r.Delete("/:id", handlers.DeleteReport)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
