package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/config"
	"github.com/jtulayan/chessgo/internal/engine"
	"github.com/jtulayan/chessgo/internal/errors"
	"github.com/jtulayan/chessgo/internal/game"
	"github.com/jtulayan/chessgo/internal/render"
)

var (
	errQuit   = errors.New("quit")
	errRedraw = errors.New("redraw")
)

// loop runs one game: print the board, read a move, apply it.
type loop struct {
	cfg      *config.Config
	game     *game.Game
	renderer *render.Renderer
	in       *bufio.Scanner
	out      io.Writer
}

func newLoop(cfg *config.Config, g *game.Game, r *render.Renderer, in io.Reader) *loop {
	return &loop{
		cfg:      cfg,
		game:     g,
		renderer: r,
		in:       bufio.NewScanner(in),
		out:      cfg.OutputFile,
	}
}

// run plays until the game is over, the player quits, input ends or ctx is
// cancelled.
func (l *loop) run(ctx context.Context) error {
	logf(l.cfg, 1, "new game from %s", l.game.FEN())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(l.out, l.renderer.Render(l.game.Board()))

		status := l.game.Status()
		if msg := statusMessage(status, l.game.SideToMove()); msg != "" {
			fmt.Fprintln(l.out, msg)
		}
		if status.IsOver() {
			logf(l.cfg, 1, "game over at ply %d: %s (%s)", l.game.Ply(), status, l.game.FEN())
			return nil
		}

		moves := l.game.ListMoves()
		logf(l.cfg, 2, "ply %d %s to move: %s", l.game.Ply(), l.game.SideToMove(), moves)

		text, err := l.readMove(moves)
		switch {
		case err == nil:
		case errors.Is(err, errRedraw):
			continue
		case errors.Is(err, errQuit):
			logf(l.cfg, 1, "quit at ply %d", l.game.Ply())
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.out)
			return nil
		default:
			return err
		}

		ply := l.game.Ply()
		desc, err := l.game.MakeMove(text)
		if err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}
		fmt.Fprintln(l.out, desc)
		logf(l.cfg, 1, "ply %d: %s", ply, desc)
	}
}

// readMove prompts for an origin and a destination until they name an
// entry of moves, and returns the move text. Commands typed at the origin
// prompt are handled here.
func (l *loop) readMove(moves string) (string, error) {
	for {
		from, err := l.prompt("Pick a location: ")
		if err != nil {
			return "", err
		}
		if handled, err := l.command(from, moves); handled {
			if err != nil {
				return "", err
			}
			continue
		}
		if _, err := chess.CoordinateToSquare(from); err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}

		to, err := l.prompt("Pick a destination: ")
		if err != nil {
			return "", err
		}
		var promo string
		if len(to) == 3 {
			to, promo = to[:2], to[2:]
		}
		if _, err := chess.CoordinateToSquare(to); err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}

		text := from + to
		if !engine.ListContains(moves, text) {
			fmt.Fprintf(l.out, "%s is not a possible move\n", text)
			continue
		}
		return text + promo, nil
	}
}

// command runs a prompt command. It reports whether line was one, and
// returns errRedraw when the position changed.
func (l *loop) command(line, moves string) (bool, error) {
	switch line {
	case "":
		return true, nil
	case "quit", "exit":
		return true, errQuit
	case "moves":
		fmt.Fprintln(l.out, moves)
		return true, nil
	case "fen":
		fmt.Fprintln(l.out, l.game.FEN())
		return true, nil
	case "undo":
		return true, l.changed(l.game.Undo())
	case "redo":
		return true, l.changed(l.game.Redo())
	}
	if fen, ok := strings.CutPrefix(line, "load "); ok {
		return true, l.changed(l.game.Restore(game.NewMemento(strings.TrimSpace(fen))))
	}
	return false, nil
}

// changed reports a failed history or restore command, or asks for a
// redraw after a successful one.
func (l *loop) changed(err error) error {
	if err != nil {
		fmt.Fprintln(l.out, err)
		return nil
	}
	logf(l.cfg, 1, "position now %s", l.game.FEN())
	return errRedraw
}

func (l *loop) prompt(text string) (string, error) {
	fmt.Fprint(l.out, text)
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(l.in.Text()), nil
}

// statusMessage announces anything other than an ongoing game.
func statusMessage(status engine.Status, toMove chess.Colour) string {
	switch status {
	case engine.Ongoing:
		return ""
	case engine.Check:
		return fmt.Sprintf("%s is in check.", toMove)
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate. %s wins.", toMove.Opposite())
	default:
		return fmt.Sprintf("Game drawn: %s.", status)
	}
}

