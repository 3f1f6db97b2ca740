package chip8

import (
	"errors"
	"testing"
	"time"

	"github.com/nikoof/octarou/internal/instruction"
	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
)

// sleepClock is a clock that only advances when sleeping.
type sleepClock struct {
	now time.Time
}

func (c *sleepClock) Now() time.Time       { return c.now }
func (c *sleepClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newMachine(t *testing.T, program []byte) *Chip8 {
	t.Helper()
	c, err := New(program)
	assert.NoError(t, err)
	return c
}

func execute(t *testing.T, c *Chip8, ins instruction.Instruction) {
	t.Helper()
	assert.NoError(t, c.Execute(ins, interpreter.Keys{}, interpreter.Keys{}))
}

func TestChip8_Program(t *testing.T) {
	// LD V0, 5 / ADD V0, 3 / CLS
	program := []byte{0x60, 0x05, 0x70, 0x03, 0x00, 0xE0}
	c := newMachine(t, program)
	c.Display().Flip(3, 3, 1)

	d := interpreter.NewDriver(c, &sleepClock{now: time.Unix(0, 0)})
	assert.NoError(t, d.Tick(interpreter.Keys{}, interpreter.Keys{}, 150))
	assert.Equal(t, 3, d.Executed())

	assert.Equal(t, byte(8), c.State().V[0])
	assert.Equal(t, uint16(0x206), c.State().PC)
	for _, px := range c.Display().Pixels() {
		assert.Equal(t, byte(0), px)
	}
}

func TestChip8_Display(t *testing.T) {
	c := newMachine(t, nil)
	assert.Equal(t, DisplayWidth, c.Display().Width())
	assert.Equal(t, DisplayHeight, c.Display().Height())
	assert.True(t, c.Running())
}

func TestChip8_Draw(t *testing.T) {
	c := newMachine(t, nil)
	s := c.State()
	s.V[0], s.V[1] = 10, 5

	// glyph 0 is F0 90 90 90 F0
	s.Index = interpreter.FontGlyph(0)
	execute(t, c, instruction.Draw{X: 0, Y: 1, Height: 5})
	assert.Equal(t, byte(0), s.V[0xF])
	assert.Equal(t, byte(1), c.Display().At(10, 5))
	assert.Equal(t, byte(1), c.Display().At(13, 5))
	assert.Equal(t, byte(0), c.Display().At(14, 5))
	assert.Equal(t, byte(0), c.Display().At(11, 6))
	assert.Equal(t, byte(1), c.Display().At(13, 9))

	// drawing the same sprite again erases it
	execute(t, c, instruction.Draw{X: 0, Y: 1, Height: 5})
	assert.Equal(t, byte(1), s.V[0xF])
	for _, px := range c.Display().Pixels() {
		assert.Equal(t, byte(0), px)
	}
}

func TestChip8_DrawWrapAndClip(t *testing.T) {
	c := newMachine(t, nil)
	s := c.State()
	s.Index = 0x300
	s.Memory[0x300] = 0xFF
	s.Memory[0x301] = 0xFF

	// origin wraps around: 70 % 64 = 6, 33 % 32 = 1
	s.V[0], s.V[1] = 70, 33
	execute(t, c, instruction.Draw{X: 0, Y: 1, Height: 1})
	assert.Equal(t, byte(1), c.Display().At(6, 1))
	assert.Equal(t, byte(1), c.Display().At(13, 1))

	// sprite is clipped at the right and bottom edge
	c.Display().Clear()
	s.V[0], s.V[1] = 60, 31
	execute(t, c, instruction.Draw{X: 0, Y: 1, Height: 2})
	assert.Equal(t, byte(1), c.Display().At(63, 31))
	assert.Equal(t, byte(0), c.Display().At(0, 31))
	assert.Equal(t, byte(0), c.Display().At(60, 0))
	assert.Equal(t, byte(0), s.V[0xF])
}

func TestChip8_DrawOutOfMemory(t *testing.T) {
	c := newMachine(t, nil)
	c.State().Index = interpreter.MemorySize - 2

	err := c.Execute(instruction.Draw{Height: 5}, interpreter.Keys{}, interpreter.Keys{})
	assert.True(t, errors.Is(err, interpreter.ErrOutOfMemory))
}

func TestChip8_Shift(t *testing.T) {
	tests := []struct {
		name     string
		ins      instruction.Instruction
		vy       byte
		expected byte
		flag     byte
	}{
		{"right shift", instruction.RightShift{Lhs: 0, Rhs: 1}, 0x05, 0x02, 1},
		{"right shift no carry", instruction.RightShift{Lhs: 0, Rhs: 1}, 0x04, 0x02, 0},
		{"left shift", instruction.LeftShift{Lhs: 0, Rhs: 1}, 0x81, 0x02, 1},
		{"left shift no carry", instruction.LeftShift{Lhs: 0, Rhs: 1}, 0x41, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMachine(t, nil)
			s := c.State()
			s.V[0] = 0xAA
			s.V[1] = tt.vy

			execute(t, c, tt.ins)
			assert.Equal(t, tt.expected, s.V[0])
			assert.Equal(t, tt.vy, s.V[1])
			assert.Equal(t, tt.flag, s.V[0xF])
		})
	}
}

func TestChip8_JumpOffset(t *testing.T) {
	c := newMachine(t, nil)
	s := c.State()
	s.V[0] = 0x10
	s.V[3] = 0x40

	execute(t, c, instruction.JumpOffset{Address: 0x300, Register: 3})
	assert.Equal(t, uint16(0x310), s.PC)
}

func TestChip8_Font(t *testing.T) {
	c := newMachine(t, nil)
	s := c.State()
	s.V[2] = 0x0A

	execute(t, c, instruction.SetIndexFont{Src: 2})
	assert.Equal(t, uint16(interpreter.FontAddress+0x0A*interpreter.FontGlyphSize), s.Index)

	err := c.Execute(instruction.SetIndexFont{Src: 2, Big: true}, interpreter.Keys{}, interpreter.Keys{})
	assert.True(t, errors.Is(err, interpreter.ErrVariantMismatch))
}

func TestChip8_StoreLoadKeepIndex(t *testing.T) {
	c := newMachine(t, nil)
	s := c.State()
	s.Index = 0x400
	s.V[0], s.V[1] = 0x12, 0x34

	execute(t, c, instruction.StoreMemory{Last: 1})
	assert.Equal(t, uint16(0x400), s.Index)
	assert.Equal(t, []byte{0x12, 0x34}, s.Memory[0x400:0x402])

	s.V[0], s.V[1] = 0, 0
	execute(t, c, instruction.LoadMemory{Last: 1})
	assert.Equal(t, byte(0x12), s.V[0])
	assert.Equal(t, byte(0x34), s.V[1])
}

func TestChip8_VariantMismatch(t *testing.T) {
	superchipOnly := []instruction.Instruction{
		instruction.Hires{},
		instruction.Lores{},
		instruction.ScrollRight{},
		instruction.ScrollLeft{},
		instruction.ScrollDown{Amount: 2},
		instruction.Exit{},
		instruction.SaveFlags{X: 1},
		instruction.LoadFlags{X: 1},
	}

	c := newMachine(t, nil)
	for _, ins := range superchipOnly {
		err := c.Execute(ins, interpreter.Keys{}, interpreter.Keys{})
		assert.True(t, errors.Is(err, interpreter.ErrVariantMismatch), ins.Name())
	}
	assert.True(t, c.Running())
}

func TestChip8_UnknownOpcodeIsRecoverable(t *testing.T) {
	// SCR is decoded but not supported, followed by LD V1, 7
	program := []byte{0x00, 0xFB, 0x61, 0x07}
	c := newMachine(t, program)
	d := interpreter.NewDriver(c, &sleepClock{now: time.Unix(0, 0)})

	err := d.Tick(interpreter.Keys{}, interpreter.Keys{}, 120)
	assert.True(t, errors.Is(err, interpreter.ErrVariantMismatch))
	assert.False(t, interpreter.IsFatal(err))
	assert.Equal(t, byte(7), c.State().V[1])
}
