package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jtulayan/chessgo/internal/config"
	"github.com/jtulayan/chessgo/internal/engine"
	"github.com/jtulayan/chessgo/internal/game"
	"github.com/jtulayan/chessgo/internal/render"
	"github.com/jtulayan/chessgo/internal/testutil"
)

const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

// playScript runs a game from fen on scripted input and returns what the
// player saw and what was logged.
func playScript(t *testing.T, fen string, verbosity int, input string) (out, log string) {
	t.Helper()
	var outBuf, logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithStartFEN(fen).
		WithOutput(&outBuf).
		WithLog(&logBuf).
		WithVerbosity(verbosity).
		Build()

	g, err := game.NewFromFEN(fen, game.WithLegalOnly(true))
	testutil.AssertNoError(t, err)
	r := render.New(render.DefaultTheme, render.Options{})

	err = newLoop(cfg, g, r, strings.NewReader(input)).run(context.Background())
	testutil.AssertNoError(t, err)
	return outBuf.String(), logBuf.String()
}

func TestLoop_FoolsMate(t *testing.T) {
	out, _ := playScript(t, engine.InitialFEN, 0, "f2\nf3\ne7\ne5\ng2\ng4\nd8\nh4\n")

	testutil.AssertContains(t, out, "white pawn f2-f3")
	testutil.AssertContains(t, out, "black queen d8-h4")
	testutil.AssertContains(t, out, "Checkmate. Black wins.")
}

func TestLoop_Check(t *testing.T) {
	out, _ := playScript(t, engine.InitialFEN, 0, "e2\ne4\nf7\nf6\nd1\nh5\n")
	testutil.AssertContains(t, out, "Black is in check.")
}

func TestLoop_RejectsBadInput(t *testing.T) {
	out, _ := playScript(t, engine.InitialFEN, 0, "z9\ne2\ne5\ne2\nx\ne2\ne4\n")

	testutil.AssertContains(t, out, `coordinate: unexpected "z9": invalid format`)
	testutil.AssertContains(t, out, "e2e5 is not a possible move")
	testutil.AssertContains(t, out, `coordinate: expected file letter and rank digit, got "x"`)
	testutil.AssertContains(t, out, "white pawn e2-e4")
}

func TestLoop_Commands(t *testing.T) {
	input := "fen\nmoves\nundo\ne2\ne4\nundo\nfen\nredo\nfen\nquit\n"
	out, _ := playScript(t, engine.InitialFEN, 0, input)

	testutil.AssertEqual(t, strings.Count(out, engine.InitialFEN), 2)
	testutil.AssertContains(t, out, "a2a3/a2a4/b2b3")
	testutil.AssertContains(t, out, "undo: no history")
	testutil.AssertContains(t, out, afterE4)
}

func TestLoop_Load(t *testing.T) {
	t.Run("valid position ends a drawn game", func(t *testing.T) {
		out, _ := playScript(t, engine.InitialFEN, 0, "load 4k3/8/8/8/8/8/8/4K3 w - - 0 1\n")
		testutil.AssertContains(t, out, "Game drawn: draw by insufficient material.")
	})

	t.Run("malformed position is reported", func(t *testing.T) {
		out, _ := playScript(t, engine.InitialFEN, 0, "load 8/8 w - - 0 1\nfen\n")
		testutil.AssertContains(t, out, "restore: ")
		testutil.AssertContains(t, out, "invalid format")
		testutil.AssertContains(t, out, engine.InitialFEN)
	})
}

func TestLoop_Promotion(t *testing.T) {
	out, _ := playScript(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", 0, "a7\na8n\n")
	testutil.AssertContains(t, out, "white pawn a7-a8 (promotes to knight)")
}

func TestLoop_Logging(t *testing.T) {
	t.Run("verbose", func(t *testing.T) {
		_, log := playScript(t, engine.InitialFEN, 2, "e2\ne4\n")
		testutil.AssertContains(t, log, "new game from "+engine.InitialFEN)
		testutil.AssertContains(t, log, "ply 1 White to move: a2a3/")
		testutil.AssertContains(t, log, "ply 1: white pawn e2-e4")
	})

	t.Run("silent", func(t *testing.T) {
		_, log := playScript(t, engine.InitialFEN, 0, "e2\ne4\n")
		testutil.AssertEqual(t, log, "")
	})
}

func TestLoop_Cancelled(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithVerbosity(0).Build()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newLoop(cfg, game.New(), render.New(render.DefaultTheme, render.Options{}), strings.NewReader("")).run(ctx)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		status engine.Status
		want   string
	}{
		{engine.Ongoing, ""},
		{engine.Check, "Black is in check."},
		{engine.Checkmate, "Checkmate. White wins."},
		{engine.Stalemate, "Game drawn: stalemate."},
		{engine.ThreefoldRepetition, "Game drawn: draw by threefold repetition."},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, statusMessage(tt.status, 0), tt.want, tt.status.String())
	}
}
