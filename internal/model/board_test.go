package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr error
	}{
		{in: "A1", want: Square{File: 0, Rank: 1}},
		{in: "h8", want: Square{File: 7, Rank: 8}},
		{in: " e2 ", want: Square{File: 4, Rank: 2}},
		{in: "I1", wantErr: ErrOutOfBounds},
		{in: "A9", wantErr: ErrOutOfBounds},
		{in: "A0", wantErr: ErrOutOfBounds},
		{in: "", wantErr: ErrBadSquare},
		{in: "E22", wantErr: ErrBadSquare},
		{in: "2E", wantErr: ErrBadSquare},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSquareText(t *testing.T) {
	require.Equal(t, "E4", MustSquare("e4").String())

	var req MoveRequest
	require.NoError(t, json.Unmarshal([]byte(`{"from":"e2","to":"E4"}`), &req))
	require.Equal(t, MoveRequest{From: MustSquare("E2"), To: MustSquare("E4")}, req)

	require.Error(t, json.Unmarshal([]byte(`{"from":"z9","to":"E4"}`), &req))

	out, err := json.Marshal(FairyRequest{Type: Falcon, To: MustSquare("B2")})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"falcon","to":"B2"}`, string(out))
}

func TestParsePieceType(t *testing.T) {
	for in, want := range map[string]PieceType{"falcon": Falcon, "F": Falcon, "h": Hunter, "Hunter": Hunter, "n": Knight} {
		got, ok := ParsePieceType(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}
	_, ok := ParsePieceType("dragon")
	require.False(t, ok)
}

func TestFairyRequestKindSpelling(t *testing.T) {
	for _, kind := range []string{"falcon", "Falcon", "FALCON", "f", "F"} {
		var req FairyRequest
		require.NoError(t, json.Unmarshal([]byte(`{"kind":"`+kind+`","to":"A1"}`), &req), kind)
		require.Equal(t, Falcon, req.Type, kind)
	}

	var req FairyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"dragon","to":"A1"}`), &req))
	require.Equal(t, PieceType("dragon"), req.Type)
	require.ErrorIs(t, NewGame().ValidatePlacement(req.Type, White, req.To), ErrNotFairyPiece)
}

func TestInitialLayout(t *testing.T) {
	b := newBoard()
	backRank := "RNBQKBNR"
	for file := 0; file < 8; file++ {
		white := b.PieceAt(Square{File: file, Rank: 1})
		black := b.PieceAt(Square{File: file, Rank: 8})
		require.Equal(t, backRank[file:file+1], white.Type.Notation())
		require.Equal(t, White, white.Color)
		require.Equal(t, white.Type, black.Type)
		require.Equal(t, Black, black.Color)
		require.Equal(t, Pawn, b.PieceAt(Square{File: file, Rank: 2}).Type)
		require.Equal(t, Pawn, b.PieceAt(Square{File: file, Rank: 7}).Type)
		for rank := 3; rank <= 6; rank++ {
			require.Nil(t, b.PieceAt(Square{File: file, Rank: rank}))
		}
	}
}

func TestBoardSetAndClear(t *testing.T) {
	b := newEmptyBoard()
	sq := MustSquare("C5")

	b.Set(sq, &Piece{Type: Falcon, Color: Black})
	require.Equal(t, &Piece{Type: Falcon, Color: Black}, b.PieceAt(sq))
	require.Equal(t, &SnapshotPiece{Type: Falcon, Color: Black}, b.Snapshot()[3][2])

	b.Clear(sq)
	require.Nil(t, b.PieceAt(sq))

	b.Set(Square{File: 9, Rank: 1}, &Piece{Type: Pawn, Color: White})
	require.Nil(t, b.PieceAt(Square{File: 9, Rank: 1}))
}

func TestBoardClone(t *testing.T) {
	b := newBoard()
	clone := b.Clone()
	require.Equal(t, b, clone)

	clone.PieceAt(MustSquare("E2")).HasMoved = true
	clone.Clear(MustSquare("D2"))
	require.False(t, b.PieceAt(MustSquare("E2")).HasMoved)
	require.NotNil(t, b.PieceAt(MustSquare("D2")))
}

func TestLineBetween(t *testing.T) {
	require.Equal(t, []Square{MustSquare("A2"), MustSquare("A3")}, lineBetween(MustSquare("A1"), MustSquare("A4")))
	require.Equal(t, []Square{MustSquare("G7"), MustSquare("F6")}, lineBetween(MustSquare("H8"), MustSquare("E5")))
	require.Equal(t, []Square{MustSquare("C1"), MustSquare("B1")}, lineBetween(MustSquare("D1"), MustSquare("A1")))
	require.Nil(t, lineBetween(MustSquare("A1"), MustSquare("A2")))
	require.Nil(t, lineBetween(MustSquare("B1"), MustSquare("C3")))
	require.Nil(t, lineBetween(MustSquare("E4"), MustSquare("E4")))
}

func TestIsPathClear(t *testing.T) {
	b := newBoard()

	require.False(t, b.IsPathClear(MustSquare("A1"), MustSquare("A3")))
	require.True(t, b.IsPathClear(MustSquare("A2"), MustSquare("A7")), "endpoints are not part of the path")
	require.True(t, b.IsPathClear(MustSquare("B1"), MustSquare("C3")), "knight shapes have no interior")
	require.False(t, b.IsPathClear(MustSquare("C1"), MustSquare("E3")))
	require.True(t, b.IsPathClear(MustSquare("B2"), MustSquare("G7")))
}
