package model

import "strings"

// Side is one of the two competing players.
type Side string

const (
	White Side = "white"
	Black Side = "black"
)

func (s Side) Valid() bool {
	return s == White || s == Black
}

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward is the rank direction pointing at the opponent's back rank.
func (s Side) Forward() int {
	if s == Black {
		return -1
	}
	return 1
}

// isHomeRank reports whether rank is one of the two ranks nearest the side's
// starting position.
func (s Side) isHomeRank(rank int) bool {
	switch s {
	case White:
		return rank == 1 || rank == 2
	case Black:
		return rank == 7 || rank == 8
	}
	return false
}

func ParseSide(v string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return "", false
}

type Player struct {
	ID string
}

// Seats records which player controls which side of a game.
type Seats struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// SideOf returns the side the player is seated on.
func (s Seats) SideOf(playerID string) (Side, bool) {
	switch {
	case playerID == "":
		return "", false
	case s.White == playerID:
		return White, true
	case s.Black == playerID:
		return Black, true
	}
	return "", false
}

// Take seats the player on the first free side.
func (s *Seats) Take(playerID string) (Side, error) {
	if side, ok := s.SideOf(playerID); ok {
		return side, nil
	}
	if s.White == "" {
		s.White = playerID
		return White, nil
	}
	if s.Black == "" {
		s.Black = playerID
		return Black, nil
	}
	return "", ErrGameFull
}

func (s Seats) Full() bool {
	return s.White != "" && s.Black != ""
}
