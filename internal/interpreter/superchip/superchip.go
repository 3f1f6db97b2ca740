// Package superchip implements the SUPERCHIP extension of the CHIP-8 machine
// with a 128x64 pixel display, a big font and scrolling.
package superchip

import (
	"fmt"

	"github.com/nikoof/octarou/internal/instruction"
	"github.com/nikoof/octarou/internal/interpreter"
)

// Display dimensions in pixels. In low resolution mode every pixel is drawn
// as a 2x2 block, which results in an apparent resolution of 64x32.
const (
	DisplayWidth  = 128
	DisplayHeight = 64
)

// scrollColumns is the horizontal scroll distance in high resolution pixels.
const scrollColumns = 4

// Compile-time check to ensure Superchip implements interpreter.Machine.
var _ interpreter.Machine = (*Superchip)(nil)

// Superchip implements the SUPERCHIP instruction set.
//
// Quirks: the shift instructions operate on Vx in place and ignore Vy,
// JumpOffset adds Vx of the opcode. Flag save and load are accepted but do
// not store anything.
type Superchip struct {
	state   *interpreter.State
	hires   bool
	running bool
}

// New returns a new SUPERCHIP machine in low resolution mode with the program loaded.
func New(program []byte) (*Superchip, error) {
	state, err := interpreter.NewState(program, DisplayWidth, DisplayHeight)
	if err != nil {
		return nil, fmt.Errorf("creating state: %w", err)
	}
	return &Superchip{
		state:   state,
		running: true,
	}, nil
}

// State returns the registers and memory of the machine.
func (c *Superchip) State() *interpreter.State {
	return c.state
}

// Display returns the 128x64 framebuffer.
func (c *Superchip) Display() *interpreter.Display {
	return c.state.Display
}

// Running returns false after the program executed the exit instruction.
func (c *Superchip) Running() bool {
	return c.running
}

// Hires returns true if the high resolution mode is enabled.
func (c *Superchip) Hires() bool {
	return c.hires
}

// Execute runs a decoded instruction.
func (c *Superchip) Execute(ins instruction.Instruction, keysDown, keysReleased interpreter.Keys) error {
	handled, err := c.state.ExecuteCommon(ins, keysDown, keysReleased)
	if handled {
		return err
	}

	s := c.state
	switch i := ins.(type) {
	case instruction.JumpOffset:
		s.PC = i.Address + uint16(s.V[i.Register])
	case instruction.RightShift:
		s.ShiftRight(i.Lhs, i.Lhs)
	case instruction.LeftShift:
		s.ShiftLeft(i.Lhs, i.Lhs)
	case instruction.SetIndexFont:
		if i.Big {
			s.Index = interpreter.BigFontGlyph(s.V[i.Src])
		} else {
			s.Index = interpreter.FontGlyph(s.V[i.Src])
		}
	case instruction.Draw:
		return c.draw(i)

	case instruction.Hires:
		c.hires = true
	case instruction.Lores:
		c.hires = false
	case instruction.ScrollRight:
		s.Display.ScrollRight(c.scale(scrollColumns))
	case instruction.ScrollLeft:
		s.Display.ScrollLeft(c.scale(scrollColumns))
	case instruction.ScrollDown:
		s.Display.ScrollDown(c.scale(int(i.Amount)))
	case instruction.Exit:
		c.running = false
	case instruction.SaveFlags, instruction.LoadFlags:
		// no flag storage

	default:
		return fmt.Errorf("%w: %s (%T)", interpreter.ErrVariantMismatch, ins.Name(), ins)
	}
	return nil
}

// scale converts a distance in pixels of the current mode into framebuffer pixels.
func (c *Superchip) scale(pixels int) int {
	if c.hires {
		return pixels
	}
	return 2 * pixels
}
