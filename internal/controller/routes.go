package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/fairychess-backend/internal/middleware"
	"github.com/benbeisheim/fairychess-backend/internal/service"
)

// Register mounts the REST, WebSocket and health routes on app.
func Register(app *fiber.App, gameService *service.GameService, origins []string) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/ws/game/:gameId",
		middleware.EnsurePlayerID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         origins,
		}),
	)

	api := app.Group("/api", middleware.EnsurePlayerID())
	gameRoutes := api.Group("/game")

	// matchmaking first so "matchmaking" is never taken for a game id
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Get("/matchmaking/status", gameController.MatchmakingStatus)
	gameRoutes.Delete("/matchmaking", gameController.LeaveMatchmaking)

	gameRoutes.Post("/", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/join", gameController.JoinGame)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/fairy", gameController.PlaceFairyPiece)
}
