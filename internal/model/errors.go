package model

import "errors"

var (
	ErrGameOver     = errors.New("game is over")
	ErrOutOfBounds  = errors.New("square out of bounds")
	ErrBadSquare    = errors.New("malformed square")
	ErrNoPiece      = errors.New("no piece at from square")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrFriendlyFire = errors.New("destination holds a friendly piece")
	ErrPathBlocked  = errors.New("path is blocked")
	ErrIllegalMove  = errors.New("illegal move for piece")

	ErrNotFairyPiece    = errors.New("not a fairy piece")
	ErrInvalidSide      = errors.New("invalid side")
	ErrFairyAlreadyUsed = errors.New("fairy piece already entered")
	ErrSquareOccupied   = errors.New("square is occupied")
	ErrNotHomeRank      = errors.New("square is outside the home ranks")
	ErrNotEligible      = errors.New("not eligible for reinforcement")

	ErrGameFull      = errors.New("game is full")
	ErrAlreadyQueued = errors.New("player already in queue")
)
