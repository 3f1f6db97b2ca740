// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/interpreter/chip8"
	"github.com/nikoof/octarou/internal/interpreter/superchip"
	"github.com/nikoof/octarou/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachine creates a machine of the given variant with the program loaded.
func CreateMachine(variant options.Variant, program []byte) (interpreter.Machine, error) {
	var machine interpreter.Machine
	var err error

	switch variant {
	case options.Chip8:
		machine, err = chip8.New(program)
	case options.Superchip:
		machine, err = superchip.New(program)
	default:
		return nil, fmt.Errorf("unsupported variant '%s'", variant)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s machine: %w", variant, err)
	}
	return machine, nil
}
