package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/config"
	"github.com/benbeisheim/fairychess-backend/internal/controller"
	"github.com/benbeisheim/fairychess-backend/internal/middleware"
	"github.com/benbeisheim/fairychess-backend/internal/service"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging(os.Stderr)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger())

	// Initialize services
	gameManager := service.NewGameManager(cfg.GameOptions()...)
	gameService := service.NewGameService(gameManager)

	controller.Register(app, gameService, cfg.Origins())

	log.Info().
		Str("addr", cfg.Addr).
		Str("eligibility", string(cfg.Eligibility)).
		Msg("fairy chess server listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
