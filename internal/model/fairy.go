package model

// ValidatePlacement reports why entering a fairy piece of type pt for side on
// to would be rejected, or nil if PlaceFairyPiece would accept it. Placement
// is not bound to the side to move.
func (g *Game) ValidatePlacement(pt PieceType, side Side, to Square) error {
	if g.status != Unfinished {
		return ErrGameOver
	}
	if !pt.IsFairy() {
		return ErrNotFairyPiece
	}
	if !side.Valid() {
		return ErrInvalidSide
	}
	if !to.Valid() {
		return ErrOutOfBounds
	}
	if g.FairyUsed(pt, side) {
		return ErrFairyAlreadyUsed
	}
	if g.board.PieceAt(to) != nil {
		return ErrSquareOccupied
	}
	if !side.isHomeRank(to.Rank) {
		return ErrNotHomeRank
	}
	if !g.isEligible(side) {
		return ErrNotEligible
	}
	return nil
}

// PlaceFairyPiece enters a new fairy piece and reports whether it did. Each
// side may enter each fairy type once; every entry raises the side's
// threshold by one.
func (g *Game) PlaceFairyPiece(pt PieceType, side Side, to Square) bool {
	if err := g.ValidatePlacement(pt, side, to); err != nil {
		return false
	}
	g.board.Set(to, &Piece{Type: pt, Color: side})
	g.fairyUsed[PieceKey{Type: pt, Color: side}] = true
	g.thresholds[side]++
	g.advance()
	return true
}

func (g *Game) isEligible(side Side) bool {
	threshold := g.thresholds[side]
	switch g.eligibility {
	case EligibilityAnyCapture:
		for key, n := range g.captured {
			if key.Type.isTracked() && n >= threshold {
				return true
			}
		}
		return false
	default:
		return g.Losses(side) >= threshold
	}
}
