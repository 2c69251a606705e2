package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weatherchat/backend/internal/ai"
	"github.com/weatherchat/backend/internal/chat"
	"github.com/weatherchat/backend/internal/config"
	httpdelivery "github.com/weatherchat/backend/internal/delivery/http"
	"github.com/weatherchat/backend/internal/forecast"
	"github.com/weatherchat/backend/internal/geocode"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Dependency injection: external collaborators
	geocoder := geocode.NewClient(cfg.GeocodingURL)
	forecasts := forecast.NewClient(cfg.ForecastURL)
	aiClient := ai.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL)
	parser := ai.NewParser(aiClient, cfg.ParseModel)
	insights := ai.NewInsights(aiClient, cfg.InsightModel, cfg.InsightsEnabled)

	if !cfg.AIParsingAvailable() {
		log.Info().Msg("no Groq API key configured, running with regex parsing and no tips")
	}

	manager := chat.NewManager(geocoder, forecasts, parser, insights)

	// Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "WeatherChat API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	httpdelivery.SetupRoutes(app, manager)

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited gracefully")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
