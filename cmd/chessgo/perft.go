package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jtulayan/chessgo/internal/config"
	"github.com/jtulayan/chessgo/internal/engine"
)

// runPerft prints the node count below every root move and the total.
func runPerft(ctx context.Context, cfg *config.Config) error {
	board, err := engine.Decode(cfg.Rules.StartFEN)
	if err != nil {
		return err
	}

	start := time.Now()
	entries, err := engine.Divide(ctx, board, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, e := range entries {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move.LongText(), e.Nodes)
	}
	total := engine.TotalNodes(entries)
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", total)

	logf(cfg, 1, "perft(%d) with %d workers took %v", cfg.Perft.Depth, cfg.Perft.Workers, elapsed.Round(time.Millisecond))
	return nil
}
