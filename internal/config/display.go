package config

import (
	"fmt"

	"github.com/jtulayan/chessgo/internal/errors"
)

// ColourMode selects when the board is coloured.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour when writing to a terminal
	ColourAlways                   // Always colour
	ColourNever                    // Never colour
)

var colourModeNames = []string{"auto", "always", "never"}

// String returns the flag spelling of the mode.
func (m ColourMode) String() string {
	if m >= 0 && int(m) < len(colourModeNames) {
		return colourModeNames[m]
	}
	return "unknown"
}

// ParseColourMode parses "auto", "always" or "never".
func ParseColourMode(s string) (ColourMode, error) {
	for i, name := range colourModeNames {
		if s == name {
			return ColourMode(i), nil
		}
	}
	return ColourAuto, fmt.Errorf("colour mode %q: want auto, always or never: %w", s, errors.ErrInvalidConfig)
}

// DisplayConfig holds settings related to board output.
type DisplayConfig struct {
	// Colour selects coloured rendering
	Colour ColourMode

	// ShowCoordinates labels ranks and files
	ShowCoordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:          ColourAuto,
		ShowCoordinates: true,
	}
}

// Validate checks that the colour mode is known.
func (d *DisplayConfig) Validate() error {
	if d.Colour < ColourAuto || d.Colour > ColourNever {
		return fmt.Errorf("colour mode %d: %w", d.Colour, errors.ErrInvalidConfig)
	}
	return nil
}

// UseColour resolves the mode against whether output is a terminal.
func (d *DisplayConfig) UseColour(terminal bool) bool {
	switch d.Colour {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return terminal
	}
}
