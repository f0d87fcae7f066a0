package controller

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/middleware"
	"github.com/benbeisheim/fairychess-backend/internal/model"
	"github.com/benbeisheim/fairychess-backend/internal/service"
	"github.com/benbeisheim/fairychess-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals(middleware.WSGameIDKey).(string)
	playerID, _ := c.Locals(middleware.WSPlayerIDKey).(string)
	logger := log.With().Str("game", gameID).Str("player", playerID).Logger()

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		logger.Warn().Err(err).Msg("failed to register connection")
		c.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()),
		)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug().Err(err).Msg("read error")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debug().Err(err).Msg("parse error")
			wsc.sendError(gameID, playerID, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			logger.Debug().Err(err).Str("type", string(msg.Type)).Msg("handle error")
			wsc.sendError(gameID, playerID, err.Error())
		}
	}
}

// handleMessage applies one client message. Successful actions reach the
// client through the state broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move)
		return err

	case ws.MessageTypeFairy:
		var req model.FairyRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleFairy(gameID, playerID, req)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(gameID, playerID, errorMsg string) {
	if err := wsc.gameService.SendError(gameID, playerID, errorMsg); err != nil {
		log.Warn().Err(err).Str("game", gameID).Str("player", playerID).Msg("failed to send error")
	}
}
