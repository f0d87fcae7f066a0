package model

import "fmt"

// MoveRequest is a move as sent by a client, e.g. {"from":"E2","to":"E4"}.
type MoveRequest struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// FairyRequest enters a fairy piece for the caller's side.
type FairyRequest struct {
	Type PieceType `json:"kind"`
	To   Square    `json:"to"`
}

// ParseMove builds a MoveRequest from algebraic squares.
func ParseMove(from, to string) (MoveRequest, error) {
	f, err := ParseSquare(from)
	if err != nil {
		return MoveRequest{}, fmt.Errorf("from: %w", err)
	}
	t, err := ParseSquare(to)
	if err != nil {
		return MoveRequest{}, fmt.Errorf("to: %w", err)
	}
	return MoveRequest{From: f, To: t}, nil
}

// ValidateMove reports why from->to would be rejected, or nil if AttemptMove
// would apply it. It never mutates the game.
func (g *Game) ValidateMove(from, to Square) error {
	if g.status != Unfinished {
		return ErrGameOver
	}
	if !from.Valid() || !to.Valid() {
		return ErrOutOfBounds
	}

	piece := g.board.PieceAt(from)
	if piece == nil {
		return ErrNoPiece
	}
	if piece.Color != g.SideToMove() {
		return ErrNotYourTurn
	}

	target := g.board.PieceAt(to)
	if target != nil && target.Color == piece.Color {
		return ErrFriendlyFire
	}

	// Obstruction is checked ahead of the piece's shape, so a blocked move is
	// reported as blocked even if its shape is also wrong.
	if piece.Type != Knight && !g.board.IsPathClear(from, to) {
		return ErrPathBlocked
	}

	if !IsLegalMove(piece, target, from, to) {
		return fmt.Errorf("%w: %s %s->%s", ErrIllegalMove, piece.Type, from, to)
	}
	return nil
}

// AttemptMove applies from->to if it is legal and reports whether it did.
// A rejected move leaves the game untouched.
func (g *Game) AttemptMove(from, to Square) bool {
	if err := g.ValidateMove(from, to); err != nil {
		return false
	}
	g.executeMove(from, to)
	return true
}

func (g *Game) executeMove(from, to Square) {
	piece := g.board.PieceAt(from)
	captured := g.board.PieceAt(to)

	if piece.Type == Pawn {
		piece.HasMoved = true
	}

	if captured != nil {
		if captured.Type == King {
			g.status = wonBy(captured.Color.Opponent())
		}
		if captured.Type.isTracked() {
			g.captured[PieceKey{Type: captured.Type, Color: captured.Color}]++
		}
	}

	g.board.Set(to, piece)
	g.board.Clear(from)
	g.advance()
}
