package model

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// isStraight reports a horizontal or vertical line of nonzero length.
func isStraight(df, dr int) bool {
	return (df == 0) != (dr == 0)
}

// isDiagonal reports a diagonal line of nonzero length.
func isDiagonal(df, dr int) bool {
	return df != 0 && abs(df) == abs(dr)
}

// lineBetween returns the squares strictly between from and to when they share
// a rank, file or diagonal. Any other pair has no interior and yields nil.
func lineBetween(from, to Square) []Square {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	if !isStraight(df, dr) && !isDiagonal(df, dr) {
		return nil
	}

	distance := max(abs(df), abs(dr)) - 1
	if distance <= 0 {
		return nil
	}

	stepF, stepR := sign(df), sign(dr)
	squares := make([]Square, 0, distance)
	sq := from
	for i := 0; i < distance; i++ {
		sq = Square{File: sq.File + stepF, Rank: sq.Rank + stepR}
		squares = append(squares, sq)
	}
	return squares
}
