// Package interpreter provides the state model shared by the CHIP-8 machine
// variants and the tick driver that runs them in real time.
package interpreter

import "github.com/nikoof/octarou/internal/instruction"

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Keys contains one entry per keypad key 0x0-0xF.
type Keys [KeyCount]bool

// First returns the lowest key that is set.
func (k Keys) First() (byte, bool) {
	for key, set := range k {
		if set {
			return byte(key), true
		}
	}
	return 0, false
}

// Machine is a CHIP-8 variant executing decoded instructions on its state.
type Machine interface {
	// State returns the registers and memory of the machine.
	State() *State
	// Display returns the framebuffer to render.
	Display() *Display
	// Execute runs a decoded instruction. keysDown contains the keys that are
	// currently held, keysReleased the keys released since the last poll.
	Execute(ins instruction.Instruction, keysDown, keysReleased Keys) error
	// Running returns false once the program requested to exit.
	Running() bool
}
