package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benbeisheim/fairychess-backend/internal/model"
)

func TestGlyphsAreDistinct(t *testing.T) {
	kinds := []model.PieceType{
		model.Pawn, model.Rook, model.Knight, model.Bishop,
		model.Queen, model.King, model.Falcon, model.Hunter,
	}
	seen := map[string]bool{}
	for _, side := range []model.Side{model.White, model.Black} {
		for _, pt := range kinds {
			g := Glyph(&model.SnapshotPiece{Type: pt, Color: side})
			require.Len(t, g, 1)
			require.False(t, seen[g], "duplicate glyph %q", g)
			seen[g] = true
		}
	}
	require.Equal(t, " ", Glyph(nil))
}

func TestBoardInitialPosition(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Board(&buf, model.NewGame().Snapshot(), PlainTheme()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, "           BLACK", lines[0])
	require.Equal(t, "8 |r||n||b||q||k||b||n||r|", lines[1])
	require.Equal(t, "7 |p||p||p||p||p||p||p||p|", lines[2])
	require.Equal(t, "5 | || || || || || || || |", lines[4])
	require.Equal(t, "1 |R||N||B||Q||K||B||N||R|", lines[8])
	require.Equal(t, "   A  B  C  D  E  F  G  H ", lines[9])
	require.Equal(t, "           WHITE", lines[10])
}

func TestGameBanner(t *testing.T) {
	g := model.NewGame()
	require.True(t, g.AttemptMove(model.MustSquare("E2"), model.MustSquare("E4")))

	var buf bytes.Buffer
	require.NoError(t, Game(&buf, g.State(), PlainTheme()))
	out := buf.String()
	require.Contains(t, out, "4 | || || || ||P|| || || |")
	require.Contains(t, out, "TURN 2")
	require.Contains(t, out, "BLACK'S TURN")

	buf.Reset()
	require.NoError(t, Status(&buf, model.GameState{Turn: 7, Status: model.WhiteWon}))
	require.Contains(t, buf.String(), "WHITE WON")
}

func TestZeroThemeIsPlain(t *testing.T) {
	var plain, zero bytes.Buffer
	snap := model.NewGame().Snapshot()
	require.NoError(t, Board(&plain, snap, PlainTheme()))
	require.NoError(t, Board(&zero, snap, Theme{}))
	require.Equal(t, plain.String(), zero.String())
}
