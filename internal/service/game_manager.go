// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/model"
	"github.com/benbeisheim/fairychess-backend/internal/ws"
)

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrGameExists          = errors.New("game already exists")
	ErrNotSeated           = errors.New("player is not seated in this game")
	ErrDuplicateConnection = errors.New("connection already exists")
)

// Conn is the write side of a client connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
}

// GameView is a game's state as sent to clients.
type GameView struct {
	ID      string      `json:"id"`
	Players model.Seats `json:"players"`
	model.GameState
}

type MatchFoundEvent struct {
	GameID string     `json:"gameId"`
	Color  model.Side `json:"color"`
}

type connection struct {
	conn Conn
	mu   sync.Mutex
}

func (c *connection) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// session serializes every access to one game. The engine itself is not safe
// for concurrent use.
type session struct {
	id      string
	mu      sync.Mutex
	game    *model.Game
	players model.Seats

	connMu sync.RWMutex
	conns  map[string]*connection // playerID -> connection
}

func newSession(id string, opts ...model.Option) *session {
	return &session{
		id:    id,
		game:  model.NewGame(opts...),
		conns: make(map[string]*connection),
	}
}

// view must be called with s.mu held.
func (s *session) view() GameView {
	return GameView{
		ID:        s.id,
		Players:   s.players,
		GameState: s.game.State(),
	}
}

// broadcast must be called with s.mu held.
func (s *session) broadcast(view GameView) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, view)
	if err != nil {
		log.Error().Err(err).Str("game", s.id).Msg("failed to marshal state")
		return
	}

	s.connMu.RLock()
	active := make(map[string]*connection, len(s.conns))
	for playerID, c := range s.conns {
		active[playerID] = c
	}
	s.connMu.RUnlock()

	for playerID, c := range active {
		if err := c.send(msg); err != nil {
			log.Warn().Err(err).Str("game", s.id).Str("player", playerID).Msg("dropping connection after failed send")
			s.connMu.Lock()
			if s.conns[playerID] == c {
				delete(s.conns, playerID)
			}
			s.connMu.Unlock()
		}
	}
}

type GameManager struct {
	games   map[string]*session
	queue   *model.Queue
	matches map[string]MatchFoundEvent // playerID -> pending match
	opts    []model.Option
	newID   func() string
	mu      sync.RWMutex
}

// NewGameManager creates an empty manager; opts are applied to every game it
// creates.
func NewGameManager(opts ...model.Option) *GameManager {
	return &GameManager{
		games:   make(map[string]*session),
		queue:   model.NewQueue(),
		matches: make(map[string]MatchFoundEvent),
		opts:    opts,
		newID:   func() string { return uuid.New().String() },
	}
}

func (gm *GameManager) NewGameID() string {
	return gm.newID()
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.createGameLocked(gameID)
}

func (gm *GameManager) createGameLocked(gameID string) error {
	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	gm.games[gameID] = newSession(gameID, gm.opts...)
	log.Info().Str("game", gameID).Msg("game created")
	return nil
}

func (gm *GameManager) getSession(gameID string) (*session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Side, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	side, err := s.players.Take(playerID)
	if err != nil {
		return "", err
	}

	log.Info().Str("game", gameID).Str("player", playerID).Str("side", string(side)).Msg("player seated")
	s.broadcast(s.view())
	return side, nil
}

func (gm *GameManager) GetGameState(gameID string) (GameView, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return GameView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// act runs fn against the game on behalf of a seated player and broadcasts the
// new state when fn succeeds. The broadcast happens under the session lock so
// every connection sees states in turn order.
func (gm *GameManager) act(gameID, playerID string, fn func(g *model.Game, side model.Side) error) (GameView, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return GameView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	side, ok := s.players.SideOf(playerID)
	if !ok {
		return GameView{}, ErrNotSeated
	}
	if s.game.Status() != model.Unfinished {
		return GameView{}, model.ErrGameOver
	}
	if side != s.game.SideToMove() {
		return GameView{}, model.ErrNotYourTurn
	}
	if err := fn(s.game, side); err != nil {
		return GameView{}, err
	}
	view := s.view()

	if view.Status != model.Unfinished {
		log.Info().Str("game", gameID).Str("status", string(view.Status)).Msg("king captured")
	}
	s.broadcast(view)
	return view, nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.MoveRequest) (GameView, error) {
	return gm.act(gameID, playerID, func(g *model.Game, side model.Side) error {
		if err := g.ValidateMove(move.From, move.To); err != nil {
			return err
		}
		if !g.AttemptMove(move.From, move.To) {
			return model.ErrIllegalMove
		}
		log.Debug().Str("game", gameID).Str("side", string(side)).
			Stringer("from", move.From).Stringer("to", move.To).Int("turn", g.Turn()).Msg("move applied")
		return nil
	})
}

// PlaceFairyPiece enters a fairy piece for the player's own side. Over the
// network a placement uses up the player's turn.
func (gm *GameManager) PlaceFairyPiece(gameID string, playerID string, req model.FairyRequest) (GameView, error) {
	return gm.act(gameID, playerID, func(g *model.Game, side model.Side) error {
		if err := g.ValidatePlacement(req.Type, side, req.To); err != nil {
			return err
		}
		if !g.PlaceFairyPiece(req.Type, side, req.To) {
			return model.ErrNotEligible
		}
		log.Debug().Str("game", gameID).Str("side", string(side)).
			Str("kind", string(req.Type)).Stringer("to", req.To).Msg("fairy piece entered")
		return nil
	})
}

// JoinMatchmaking queues the player. When an opponent is already waiting a
// game is created, both players are seated and the caller's match is
// returned.
func (gm *GameManager) JoinMatchmaking(playerID string) (MatchFoundEvent, bool, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matches, playerID)
	if err := gm.queue.AddPlayer(model.Player{ID: playerID}); err != nil {
		return MatchFoundEvent{}, false, err
	}

	first, second, ok := gm.queue.NextPair()
	if !ok {
		log.Debug().Str("player", playerID).Msg("queued for matchmaking")
		return MatchFoundEvent{}, false, nil
	}

	gameID := gm.newID()
	if err := gm.createGameLocked(gameID); err != nil {
		return MatchFoundEvent{}, false, fmt.Errorf("matchmaking: %w", err)
	}
	s := gm.games[gameID]
	for _, p := range []model.Player{first, second} {
		side, err := s.players.Take(p.ID)
		if err != nil {
			return MatchFoundEvent{}, false, fmt.Errorf("matchmaking: %w", err)
		}
		gm.matches[p.ID] = MatchFoundEvent{GameID: gameID, Color: side}
	}
	log.Info().Str("game", gameID).Str("white", first.ID).Str("black", second.ID).Msg("match found")

	match, ok := gm.matches[playerID]
	return match, ok, nil
}

// MatchStatus returns the match found for a player, if any.
func (gm *GameManager) MatchStatus(playerID string) (MatchFoundEvent, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	match, ok := gm.matches[playerID]
	return match, ok
}

// InQueue reports whether the player is waiting for an opponent.
func (gm *GameManager) InQueue(playerID string) bool {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.queue.Contains(playerID)
}

func (gm *GameManager) LeaveMatchmaking(playerID string) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matches, playerID)
	return gm.queue.Remove(playerID)
}

// RegisterConnection attaches a client to a game and sends it the current
// state. Anyone may watch; only seated players can act.
func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	s, err := gm.getSession(gameID)
	if err != nil {
		return err
	}

	// Held until the initial state is written so no broadcast can overtake it.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connMu.Lock()
	if _, exists := s.conns[playerID]; exists {
		s.connMu.Unlock()
		return ErrDuplicateConnection
	}
	c := &connection{conn: conn}
	s.conns[playerID] = c
	s.connMu.Unlock()
	log.Info().Str("game", gameID).Str("player", playerID).Msg("connection registered")

	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.view())
	if err != nil {
		return err
	}
	return c.send(msg)
}

// UnregisterConnection detaches conn if it is still the player's current
// connection.
func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return
	}

	s.connMu.Lock()
	defer s.connMu.Unlock()
	if c, exists := s.conns[playerID]; exists && c.conn == conn {
		delete(s.conns, playerID)
		log.Info().Str("game", gameID).Str("player", playerID).Msg("connection unregistered")
	}
}

// SendToPlayer writes v to the player's registered connection.
func (gm *GameManager) SendToPlayer(gameID string, playerID string, v interface{}) error {
	s, err := gm.getSession(gameID)
	if err != nil {
		return err
	}

	s.connMu.RLock()
	c, exists := s.conns[playerID]
	s.connMu.RUnlock()
	if !exists {
		return fmt.Errorf("no connection for player %s", playerID)
	}
	return c.send(v)
}
