// chessgo is a two-player chess game for the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/jtulayan/chessgo/internal/config"
	"github.com/jtulayan/chessgo/internal/game"
	"github.com/jtulayan/chessgo/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessgo version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Perft.Depth > 0 {
		if err := runPerft(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, err := game.NewFromFEN(cfg.Rules.StartFEN, game.WithLegalOnly(cfg.Rules.LegalOnly))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	renderer := render.New(render.DefaultTheme, render.Options{
		Colour:      cfg.Display.UseColour(isTerminal(os.Stdout)),
		Coordinates: cfg.Display.ShowCoordinates,
	})

	if err := newLoop(cfg, g, renderer, os.Stdin).run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logf writes a diagnostic line when the verbosity allows it.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity < level || cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(cfg.LogFile, format+"\n", args...)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgo [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nAt the location prompt:\n")
	fmt.Fprintf(os.Stderr, "  e2         a square holding one of your pieces\n")
	fmt.Fprintf(os.Stderr, "  moves      list the possible moves\n")
	fmt.Fprintf(os.Stderr, "  fen        print the position text\n")
	fmt.Fprintf(os.Stderr, "  load FEN   replace the position\n")
	fmt.Fprintf(os.Stderr, "  undo/redo  step through the history\n")
	fmt.Fprintf(os.Stderr, "  quit       leave the game\n")
	fmt.Fprintf(os.Stderr, "\nAdd q, r, b or n to a promoting destination, e.g. a8n.\n")
}
