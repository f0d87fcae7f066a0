package model

import (
	"fmt"
	"strings"
)

type Status string

const (
	Unfinished Status = "UNFINISHED"
	WhiteWon   Status = "WHITE_WON"
	BlackWon   Status = "BLACK_WON"
)

func wonBy(side Side) Status {
	if side == White {
		return WhiteWon
	}
	return BlackWon
}

// EligibilityRule decides when a side may enter its next fairy piece.
type EligibilityRule string

const (
	// EligibilityOwnLosses requires the side itself to have lost at least
	// threshold rooks, knights, bishops and queens combined.
	EligibilityOwnLosses EligibilityRule = "own-losses"
	// EligibilityAnyCapture accepts any single tracked capture count, of either
	// side, that reaches the placing side's threshold.
	EligibilityAnyCapture EligibilityRule = "any-capture"
)

func ParseEligibilityRule(v string) (EligibilityRule, error) {
	switch rule := EligibilityRule(strings.ToLower(strings.TrimSpace(v))); rule {
	case EligibilityOwnLosses, EligibilityAnyCapture:
		return rule, nil
	case "":
		return EligibilityOwnLosses, nil
	}
	return "", fmt.Errorf("unknown eligibility rule %q", v)
}

// PieceKey identifies a piece kind owned by a side.
type PieceKey struct {
	Type  PieceType
	Color Side
}

// Game holds one board and its rule state. It is not safe for concurrent use.
type Game struct {
	board       *BoardState
	turn        int
	status      Status
	captured    map[PieceKey]int
	fairyUsed   map[PieceKey]bool
	thresholds  map[Side]int
	eligibility EligibilityRule
}

type Option func(*Game)

// WithEligibility selects the fairy entry rule. A side that has only captured
// pieces, such as White right after taking Black's queen, can enter a fairy
// piece only under EligibilityAnyCapture.
func WithEligibility(rule EligibilityRule) Option {
	return func(g *Game) {
		g.eligibility = rule
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		board:       newBoard(),
		turn:        1,
		status:      Unfinished,
		captured:    make(map[PieceKey]int),
		fairyUsed:   make(map[PieceKey]bool),
		thresholds:  map[Side]int{White: 1, Black: 1},
		eligibility: EligibilityOwnLosses,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Turn() int {
	return g.turn
}

// SideToMove is derived from the turn counter: odd turns are White's.
func (g *Game) SideToMove() Side {
	if g.turn%2 == 1 {
		return White
	}
	return Black
}

func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning side once a king has been captured.
func (g *Game) Winner() (Side, bool) {
	switch g.status {
	case WhiteWon:
		return White, true
	case BlackWon:
		return Black, true
	}
	return "", false
}

func (g *Game) Eligibility() EligibilityRule {
	return g.eligibility
}

// CapturedCount is the number of the side's pieces of the given kind that have
// been captured. Only rooks, knights, bishops and queens are counted.
func (g *Game) CapturedCount(pt PieceType, side Side) int {
	return g.captured[PieceKey{Type: pt, Color: side}]
}

// Losses is the number of the side's rooks, knights, bishops and queens that
// have been captured.
func (g *Game) Losses(side Side) int {
	total := 0
	for _, pt := range trackedCaptures {
		total += g.CapturedCount(pt, side)
	}
	return total
}

func (g *Game) FairyUsed(pt PieceType, side Side) bool {
	return g.fairyUsed[PieceKey{Type: pt, Color: side}]
}

// Threshold is the number of losses the side needs before its next fairy
// piece may enter.
func (g *Game) Threshold(side Side) int {
	return g.thresholds[side]
}

func (g *Game) PieceAt(sq Square) (Piece, bool) {
	p := g.board.PieceAt(sq)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (g *Game) Snapshot() Snapshot {
	return g.board.Snapshot()
}

// advance closes an accepted action.
func (g *Game) advance() {
	g.turn++
}

type CapturedPieces struct {
	White map[PieceType]int `json:"white"`
	Black map[PieceType]int `json:"black"`
}

// GameState is the serializable view of a game.
type GameState struct {
	Board           Snapshot             `json:"board"`
	Turn            int                  `json:"turn"`
	ToMove          Side                 `json:"toMove"`
	Status          Status               `json:"status"`
	CapturedPieces  CapturedPieces       `json:"capturedPieces"`
	FairyPiecesUsed map[Side][]PieceType `json:"fairyPiecesUsed"`
	Thresholds      map[Side]int         `json:"thresholds"`
	Eligibility     EligibilityRule      `json:"eligibility"`
}

func (g *Game) State() GameState {
	state := GameState{
		Board:  g.board.Snapshot(),
		Turn:   g.turn,
		ToMove: g.SideToMove(),
		Status: g.status,
		CapturedPieces: CapturedPieces{
			White: make(map[PieceType]int),
			Black: make(map[PieceType]int),
		},
		FairyPiecesUsed: map[Side][]PieceType{White: {}, Black: {}},
		Thresholds:      map[Side]int{White: g.thresholds[White], Black: g.thresholds[Black]},
		Eligibility:     g.eligibility,
	}
	for _, pt := range trackedCaptures {
		state.CapturedPieces.White[pt] = g.CapturedCount(pt, White)
		state.CapturedPieces.Black[pt] = g.CapturedCount(pt, Black)
	}
	for _, side := range []Side{White, Black} {
		for _, pt := range FairyPieces {
			if g.FairyUsed(pt, side) {
				state.FairyPiecesUsed[side] = append(state.FairyPiecesUsed[side], pt)
			}
		}
	}
	return state
}
