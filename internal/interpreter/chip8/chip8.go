// Package chip8 implements the original CHIP-8 machine with a 64x32 pixel display.
package chip8

import (
	"fmt"

	"github.com/nikoof/octarou/internal/instruction"
	"github.com/nikoof/octarou/internal/interpreter"
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// spriteWidth is the width of a sprite row in pixels.
const spriteWidth = 8

// Compile-time check to ensure Chip8 implements interpreter.Machine.
var _ interpreter.Machine = (*Chip8)(nil)

// Chip8 implements the CHIP-8 instruction set.
//
// Quirks: the shift instructions read Vy and store the shifted value in Vx,
// JumpOffset always adds V0. The load and store instructions do not modify I.
type Chip8 struct {
	state *interpreter.State
}

// New returns a new CHIP-8 machine with the program loaded.
func New(program []byte) (*Chip8, error) {
	state, err := interpreter.NewState(program, DisplayWidth, DisplayHeight)
	if err != nil {
		return nil, fmt.Errorf("creating state: %w", err)
	}
	return &Chip8{state: state}, nil
}

// State returns the registers and memory of the machine.
func (c *Chip8) State() *interpreter.State {
	return c.state
}

// Display returns the 64x32 framebuffer.
func (c *Chip8) Display() *interpreter.Display {
	return c.state.Display
}

// Running always returns true, CHIP-8 programs can not exit.
func (c *Chip8) Running() bool {
	return true
}

// Execute runs a decoded instruction.
func (c *Chip8) Execute(ins instruction.Instruction, keysDown, keysReleased interpreter.Keys) error {
	handled, err := c.state.ExecuteCommon(ins, keysDown, keysReleased)
	if handled {
		return err
	}

	s := c.state
	switch i := ins.(type) {
	case instruction.JumpOffset:
		s.PC = i.Address + uint16(s.V[0])
	case instruction.RightShift:
		s.ShiftRight(i.Lhs, i.Rhs)
	case instruction.LeftShift:
		s.ShiftLeft(i.Lhs, i.Rhs)
	case instruction.SetIndexFont:
		if i.Big {
			return fmt.Errorf("%w: big font", interpreter.ErrVariantMismatch)
		}
		s.Index = interpreter.FontGlyph(s.V[i.Src])
	case instruction.Draw:
		return c.draw(i)
	default:
		return fmt.Errorf("%w: %s (%T)", interpreter.ErrVariantMismatch, ins.Name(), ins)
	}
	return nil
}

// draw XORs a sprite of 8 pixel wide rows read from I onto the display.
// The origin wraps around the display edges, the sprite itself is clipped.
func (c *Chip8) draw(ins instruction.Draw) error {
	s := c.state
	rows, err := s.MemoryRange(int(ins.Height))
	if err != nil {
		return err
	}

	x := int(s.V[ins.X]) % DisplayWidth
	y := int(s.V[ins.Y]) % DisplayHeight
	collision := false

	for row, data := range rows {
		if y+row >= DisplayHeight {
			break
		}
		for col := range spriteWidth {
			if x+col >= DisplayWidth {
				break
			}
			bit := (data >> (spriteWidth - 1 - col)) & 1
			if s.Display.Flip(x+col, y+row, bit) {
				collision = true
			}
		}
	}

	s.SetFlag(collision)
	return nil
}
