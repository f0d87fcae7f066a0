package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/middleware"
	"github.com/benbeisheim/fairychess-backend/internal/model"
	"github.com/benbeisheim/fairychess-backend/internal/service"
)

// ruleErrors are rejections of a well-formed request by the game rules.
var ruleErrors = []error{
	model.ErrOutOfBounds,
	model.ErrNoPiece,
	model.ErrFriendlyFire,
	model.ErrPathBlocked,
	model.ErrIllegalMove,
	model.ErrNotFairyPiece,
	model.ErrInvalidSide,
	model.ErrFairyAlreadyUsed,
	model.ErrSquareOccupied,
	model.ErrNotHomeRank,
	model.ErrNotEligible,
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotSeated):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrAlreadyQueued),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrGameOver),
		errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	}
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return fiber.StatusUnprocessableEntity
		}
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := middleware.PlayerID(c)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move: " + err.Error(),
		})
	}

	gameState, err := gc.gameService.HandleMove(c.Params("gameId"), middleware.PlayerID(c), move)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) PlaceFairyPiece(c *fiber.Ctx) error {
	var req model.FairyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid placement: " + err.Error(),
		})
	}

	gameState, err := gc.gameService.HandleFairy(c.Params("gameId"), middleware.PlayerID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := middleware.PlayerID(c)

	match, matched, err := gc.gameService.JoinMatchmaking(playerID)
	if err != nil {
		return respondError(c, err)
	}
	if !matched {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.JSON(fiber.Map{
		"status": "matched",
		"gameId": match.GameID,
		"color":  match.Color,
	})
}

// MatchmakingStatus reports "matched" with the game, "queued" while waiting,
// or "idle" for a player who is in neither state.
func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	playerID := middleware.PlayerID(c)
	match, matched := gc.gameService.MatchStatus(playerID)
	if !matched {
		status := "idle"
		if gc.gameService.InQueue(playerID) {
			status = "queued"
		}
		return c.JSON(fiber.Map{
			"status": status,
		})
	}
	return c.JSON(fiber.Map{
		"status": "matched",
		"gameId": match.GameID,
		"color":  match.Color,
	})
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	if !gc.gameService.LeaveMatchmaking(middleware.PlayerID(c)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "player not in queue",
		})
	}
	return c.JSON(fiber.Map{
		"status": "left",
	})
}
