package service

import (
	"fmt"

	"github.com/benbeisheim/fairychess-backend/internal/model"
	"github.com/benbeisheim/fairychess-backend/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Side, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := gs.gameManager.NewGameID()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinMatchmaking(playerID string) (MatchFoundEvent, bool, error) {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) MatchStatus(playerID string) (MatchFoundEvent, bool) {
	return gs.gameManager.MatchStatus(playerID)
}

func (gs *GameService) InQueue(playerID string) bool {
	return gs.gameManager.InQueue(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) bool {
	return gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) GetGameState(gameID string) (GameView, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.MoveRequest) (GameView, error) {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) HandleFairy(gameID string, playerID string, req model.FairyRequest) (GameView, error) {
	return gs.gameManager.PlaceFairyPiece(gameID, playerID, req)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) SendError(gameID string, playerID string, errorMsg string) error {
	return gs.gameManager.SendToPlayer(gameID, playerID, ws.NewErrorMessage(errorMsg))
}
