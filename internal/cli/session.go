// Package cli runs a two-player game at a single terminal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/model"
	"github.com/benbeisheim/fairychess-backend/internal/render"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
)

const usage = `commands:
  move E2 E4             move a piece (the word "move" is optional)
  fairy falcon E1        enter a fairy piece for the side to move
  fairy hunter E8 black  enter a fairy piece for a given side
  board                  show the board
  help                   show this text
  quit                   leave the game
`

type Session struct {
	game  *model.Game
	out   io.Writer
	theme render.Theme
}

func NewSession(out io.Writer, theme render.Theme, opts ...model.Option) *Session {
	return &Session{
		game:  model.NewGame(opts...),
		out:   out,
		theme: theme,
	}
}

func (s *Session) Game() *model.Game {
	return s.game
}

// Run reads commands from in until quit or end of input. Rejected commands are
// reported and the loop continues.
func (s *Session) Run(in io.Reader) error {
	if err := s.printBoard(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		err := s.Execute(scanner.Text())
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Execute runs a single command line.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return ErrQuit
	case "help":
		_, err := io.WriteString(s.out, usage)
		return err
	case "board":
		return s.printBoard()
	case "move":
		if len(fields) != 3 {
			return fmt.Errorf("%w: move FROM TO", ErrUsage)
		}
		return s.move(fields[1], fields[2])
	case "fairy":
		if len(fields) != 3 && len(fields) != 4 {
			return fmt.Errorf("%w: fairy KIND SQUARE [SIDE]", ErrUsage)
		}
		return s.fairy(fields[1:])
	default:
		if len(fields) == 2 {
			return s.move(fields[0], fields[1])
		}
		return fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, cmd)
	}
}

func (s *Session) move(from, to string) error {
	req, err := model.ParseMove(from, to)
	if err != nil {
		return err
	}
	if err := s.game.ValidateMove(req.From, req.To); err != nil {
		return err
	}

	side := s.game.SideToMove()
	if !s.game.AttemptMove(req.From, req.To) {
		return model.ErrIllegalMove
	}
	log.Debug().Str("side", string(side)).Stringer("from", req.From).Stringer("to", req.To).Msg("move")
	return s.printBoard()
}

func (s *Session) fairy(args []string) error {
	pt, ok := model.ParsePieceType(args[0])
	if !ok || !pt.IsFairy() {
		return fmt.Errorf("%w: %q", model.ErrNotFairyPiece, args[0])
	}
	to, err := model.ParseSquare(args[1])
	if err != nil {
		return err
	}
	side := s.game.SideToMove()
	if len(args) == 3 {
		if side, ok = model.ParseSide(args[2]); !ok {
			return fmt.Errorf("%w: %q", model.ErrInvalidSide, args[2])
		}
	}

	if err := s.game.ValidatePlacement(pt, side, to); err != nil {
		return err
	}
	if !s.game.PlaceFairyPiece(pt, side, to) {
		return model.ErrNotEligible
	}
	log.Debug().Str("side", string(side)).Str("kind", string(pt)).Stringer("to", to).Msg("fairy piece entered")
	return s.printBoard()
}

func (s *Session) printBoard() error {
	return render.Game(s.out, s.game.State(), s.theme)
}
