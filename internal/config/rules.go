package config

import (
	"fmt"

	"github.com/jtulayan/chessgo/internal/engine"
	"github.com/jtulayan/chessgo/internal/errors"
)

// RulesConfig holds settings for how moves are offered and checked.
type RulesConfig struct {
	// LegalOnly removes moves that leave the own king in check
	LegalOnly bool

	// StartFEN is the position the game starts from
	StartFEN string
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		LegalOnly: true,
		StartFEN:  engine.InitialFEN,
	}
}

// Validate checks that the start position can be decoded.
func (r *RulesConfig) Validate() error {
	if _, err := engine.Decode(r.StartFEN); err != nil {
		return fmt.Errorf("start position %q: %v: %w", r.StartFEN, err, errors.ErrInvalidConfig)
	}
	return nil
}
