package model

// IsLegalMove reports whether the piece's own movement rule allows from->to.
// The caller has already checked ownership, friendly fire and, for everything
// but knights, that the line between the squares is clear. occupant is the
// enemy piece on to, or nil.
func IsLegalMove(p *Piece, occupant *Piece, from, to Square) bool {
	if p == nil {
		return false
	}
	df := to.File - from.File
	dr := to.Rank - from.Rank
	// positive when advancing toward the opponent
	forward := dr * p.Color.Forward()

	switch p.Type {
	case Pawn:
		return isLegalPawnMove(p, occupant, df, forward)
	case Rook:
		return isStraight(df, dr)
	case Knight:
		adf, adr := abs(df), abs(dr)
		return (adf == 1 && adr == 2) || (adf == 2 && adr == 1)
	case Bishop:
		return isDiagonal(df, dr)
	case Queen:
		return isStraight(df, dr) || isDiagonal(df, dr)
	case King:
		return (df != 0 || dr != 0) && abs(df) <= 1 && abs(dr) <= 1
	case Falcon:
		switch {
		case forward > 0:
			return isDiagonal(df, dr)
		case forward < 0:
			return df == 0
		}
	case Hunter:
		switch {
		case forward > 0:
			return df == 0
		case forward < 0:
			return isDiagonal(df, dr)
		}
	}
	return false
}

func isLegalPawnMove(p *Piece, occupant *Piece, df, forward int) bool {
	if occupant != nil {
		return forward == 1 && abs(df) == 1
	}
	if df != 0 {
		return false
	}
	switch forward {
	case 1:
		return true
	case 2:
		return !p.HasMoved
	}
	return false
}
