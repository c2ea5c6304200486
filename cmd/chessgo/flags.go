// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/jtulayan/chessgo/internal/config"
)

var (
	// Game options
	startFEN  = flag.String("fen", "", "Start from this position instead of the initial one")
	legalOnly = flag.Bool("legal", true, "Only offer moves that leave the own king safe")

	// Display options
	colourMode = flag.String("color", "auto", "Colour the board: auto, always, never")
	noCoords   = flag.Bool("nocoords", false, "Don't label ranks and files")

	// Diagnostics
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 every move list")

	// Perft mode
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes to depth N for the start position and exit")
	perftWorkers = flag.Int("workers", runtime.NumCPU(), "Workers counting root moves in parallel")

	// Help
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("help", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyRulesFlags(cfg)
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)
	cfg.Verbosity = *verbosity
	return nil
}

// applyRulesFlags configures the start position and move filter.
func applyRulesFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Rules.StartFEN = *startFEN
	}
	cfg.Rules.LegalOnly = *legalOnly
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) error {
	mode, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return err
	}
	cfg.Display.Colour = mode
	cfg.Display.ShowCoordinates = !*noCoords
	return nil
}

// applyPerftFlags configures perft mode.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *perftWorkers
}
