// Package config provides configuration for the chessgo command.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=every move list

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Rules   RulesConfig
	Display DisplayConfig
	Perft   PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Rules:      *NewRulesConfig(),
		Display:    *NewDisplayConfig(),
		Perft:      *NewPerftConfig(),
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
