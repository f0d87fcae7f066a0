package model

import (
	"fmt"
	"strings"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
	Falcon PieceType = "falcon"
	Hunter PieceType = "hunter"
)

// FairyPieces lists the reinforcement kinds in the order they are reported.
var FairyPieces = []PieceType{Falcon, Hunter}

// trackedCaptures lists the kinds whose losses count toward reinforcement.
var trackedCaptures = []PieceType{Rook, Knight, Bishop, Queen}

// Notation is the upper case letter of the piece.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	case Falcon:
		return "F"
	case Hunter:
		return "H"
	}
	return ""
}

func (p PieceType) IsFairy() bool {
	return p == Falcon || p == Hunter
}

func (p PieceType) isTracked() bool {
	switch p {
	case Rook, Knight, Bishop, Queen:
		return true
	}
	return false
}

// ParsePieceType accepts a kind name or its letter, in any case.
func ParsePieceType(v string) (PieceType, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, pt := range []PieceType{King, Queen, Rook, Bishop, Knight, Pawn, Falcon, Hunter} {
		if v == string(pt) || v == strings.ToLower(pt.Notation()) {
			return pt, true
		}
	}
	return "", false
}

// UnmarshalText accepts the same spellings as ParsePieceType. An unknown kind
// is kept as given so that validation can name it.
func (p *PieceType) UnmarshalText(text []byte) error {
	if pt, ok := ParsePieceType(string(text)); ok {
		*p = pt
		return nil
	}
	*p = PieceType(text)
	return nil
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Side      `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// Square addresses a cell by file (0-7, A-H) and rank (1-8).
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 1 && s.Rank <= 8
}

func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("?%d%d", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'A'+s.File, s.Rank)
}

func (s Square) row() int {
	return 8 - s.Rank
}

// ParseSquare reads algebraic notation such as "E2" or "e2".
func ParseSquare(v string) (Square, error) {
	v = strings.TrimSpace(v)
	if len(v) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, v)
	}
	file := strings.ToUpper(v[:1])[0]
	if file < 'A' || file > 'Z' || v[1] < '0' || v[1] > '9' {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, v)
	}
	sq := Square{File: int(file - 'A'), Rank: int(v[1] - '0')}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrOutOfBounds, v)
	}
	return sq, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(v string) Square {
	sq, err := ParseSquare(v)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

type BoardState struct {
	cells [8][8]*Piece
}

// SnapshotPiece is the rendering view of an occupied cell.
type SnapshotPiece struct {
	Type  PieceType `json:"type"`
	Color Side      `json:"color"`
}

// Snapshot is the board seen from White: row 0 is rank 8, column 0 is file A.
type Snapshot [8][8]*SnapshotPiece

// At returns the occupant of sq in the snapshot, or nil.
func (s Snapshot) At(sq Square) *SnapshotPiece {
	if !sq.Valid() {
		return nil
	}
	return s[sq.row()][sq.File]
}

func newEmptyBoard() *BoardState {
	return &BoardState{}
}

func newBoard() *BoardState {
	board := newEmptyBoard()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range backRank {
		board.Set(Square{File: file, Rank: 1}, &Piece{Type: pt, Color: White})
		board.Set(Square{File: file, Rank: 2}, &Piece{Type: Pawn, Color: White})
		board.Set(Square{File: file, Rank: 7}, &Piece{Type: Pawn, Color: Black})
		board.Set(Square{File: file, Rank: 8}, &Piece{Type: pt, Color: Black})
	}
	return board
}

// PieceAt returns the occupant of sq, or nil if the cell is empty or sq is off
// the board.
func (b *BoardState) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.cells[sq.row()][sq.File]
}

// Set places p on sq; a nil p clears the cell. Off-board squares are ignored.
func (b *BoardState) Set(sq Square, p *Piece) {
	if !sq.Valid() {
		return
	}
	b.cells[sq.row()][sq.File] = p
}

func (b *BoardState) Clear(sq Square) {
	b.Set(sq, nil)
}

// IsPathClear reports whether every cell strictly between from and to is
// empty. Only rank, file and diagonal lines have interior cells.
func (b *BoardState) IsPathClear(from, to Square) bool {
	for _, sq := range lineBetween(from, to) {
		if b.PieceAt(sq) != nil {
			return false
		}
	}
	return true
}

func (b *BoardState) Clone() *BoardState {
	clone := newEmptyBoard()
	for r := range b.cells {
		for f, p := range b.cells[r] {
			if p != nil {
				cp := *p
				clone.cells[r][f] = &cp
			}
		}
	}
	return clone
}

func (b *BoardState) Snapshot() Snapshot {
	var snap Snapshot
	for r := range b.cells {
		for f, p := range b.cells[r] {
			if p != nil {
				snap[r][f] = &SnapshotPiece{Type: p.Type, Color: p.Color}
			}
		}
	}
	return snap
}
