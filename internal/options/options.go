// Package options contains the program options.
package options

import (
	"fmt"
	"strings"
)

// Variant is the instruction set a program is run with.
type Variant string

// Supported variants.
const (
	Chip8     Variant = "chip8"
	Superchip Variant = "superchip"
)

// Variants lists all supported variants.
var Variants = []Variant{Chip8, Superchip}

// String implements the fmt.Stringer interface.
func (v Variant) String() string {
	return string(v)
}

// Toggle returns the other variant.
func (v Variant) Toggle() Variant {
	if v == Superchip {
		return Chip8
	}
	return Superchip
}

// ParseVariant parses a variant name. The names schip and sc8 are accepted
// as aliases for superchip, ch8 for chip8.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chip8", "chip-8", "ch8":
		return Chip8, nil
	case "superchip", "schip", "sc8":
		return Superchip, nil
	}
	return "", fmt.Errorf("unsupported variant '%s', valid options: %s, %s", s, Chip8, Superchip)
}

// Default option values.
const (
	DefaultSpeed = 700
	DefaultScale = 10
	MaxSpeed     = 100000
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input program file"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"variant: chip8, superchip (default: auto-detect)"`
	Speed    int    `flag:"speed" usage:"instructions per second" default:"700"`
	Scale    int    `flag:"scale" usage:"window pixels per display pixel" default:"10"`
	Headless bool   `flag:"headless" usage:"render to the terminal instead of a window"`
	Frames   int    `flag:"frames" usage:"stop after the given number of frames (0: unlimited)"`
	Mute     bool   `flag:"mute" usage:"disable the beeper"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags

	Variant Variant // resolved from System or the input file extension
}
