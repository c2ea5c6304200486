package config

import (
	"fmt"

	"github.com/jtulayan/chessgo/internal/errors"
)

// MaxPerftDepth bounds -perft; deeper counts take hours.
const MaxPerftDepth = 8

// PerftConfig holds settings for the node counting mode.
type PerftConfig struct {
	// Depth of the count; 0 disables perft and starts a game
	Depth int

	// Workers counting root moves in parallel
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Validate checks depth and worker bounds.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d, want at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
