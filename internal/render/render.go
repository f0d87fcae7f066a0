// Package render draws a game snapshot as text for terminals and logs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/benbeisheim/fairychess-backend/internal/model"
)

const (
	files      = "ABCDEFGH"
	emptyCell  = "| |"
	cellFormat = "|%s|"
)

// Theme colors pieces by side. The zero value renders plain text.
type Theme struct {
	White *color.Color
	Black *color.Color
	Label *color.Color
}

// DefaultTheme uses bold bright white and red pieces with cyan labels.
func DefaultTheme() Theme {
	return Theme{
		White: color.New(color.FgHiWhite, color.Bold),
		Black: color.New(color.FgRed, color.Bold),
		Label: color.New(color.FgCyan),
	}
}

// PlainTheme never emits escape codes, whatever the terminal supports.
func PlainTheme() Theme {
	t := DefaultTheme()
	t.White.DisableColor()
	t.Black.DisableColor()
	t.Label.DisableColor()
	return t
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// Glyph is the single letter used for a piece: upper case for White, lower
// case for Black. Empty cells render as a space.
func Glyph(p *model.SnapshotPiece) string {
	if p == nil {
		return " "
	}
	letter := p.Type.Notation()
	if p.Color == model.Black {
		return strings.ToLower(letter)
	}
	return letter
}

// Board writes the board with Black at the top, rank labels on the left and
// file labels underneath.
func Board(w io.Writer, snap model.Snapshot, theme Theme) error {
	var b strings.Builder

	b.WriteString("           " + paint(theme.Label, "BLACK") + "\n")
	for row := 0; row < 8; row++ {
		b.WriteString(paint(theme.Label, fmt.Sprintf("%d", 8-row)) + " ")
		for _, p := range snap[row] {
			if p == nil {
				b.WriteString(emptyCell)
				continue
			}
			c := theme.White
			if p.Color == model.Black {
				c = theme.Black
			}
			b.WriteString(fmt.Sprintf(cellFormat, paint(c, Glyph(p))))
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	for _, f := range files {
		b.WriteString(" " + paint(theme.Label, string(f)) + " ")
	}
	b.WriteString("\n")
	b.WriteString("           " + paint(theme.Label, "WHITE") + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Status writes the turn banner that follows the board.
func Status(w io.Writer, state model.GameState) error {
	var line string
	switch state.Status {
	case model.WhiteWon:
		line = "WHITE WON"
	case model.BlackWon:
		line = "BLACK WON"
	default:
		line = fmt.Sprintf("%s'S TURN", strings.ToUpper(string(state.ToMove)))
	}
	_, err := fmt.Fprintf(w, "\n           TURN %d\n        %s\n", state.Turn, line)
	return err
}

// Game writes the board followed by the status banner.
func Game(w io.Writer, state model.GameState, theme Theme) error {
	if err := Board(w, state.Board, theme); err != nil {
		return err
	}
	return Status(w, state)
}
