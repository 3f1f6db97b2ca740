// Package instruction contains the decoded form of CHIP-8 and SUPERCHIP opcodes.
package instruction

// Instruction represents a decoded CHIP-8 instruction.
// The set of implementations is closed, every type is declared in this package.
type Instruction interface {
	// Name returns the instruction name.
	Name() string
	// Superchip returns true if the instruction is only defined by the SUPERCHIP extension.
	Superchip() bool

	instruction()
}

type base struct{}

func (base) instruction()    {}
func (base) Superchip() bool { return false }

type schip struct{}

func (schip) instruction()    {}
func (schip) Superchip() bool { return true }

// ClearScreen clears the display (00E0).
type ClearScreen struct{ base }

// Return returns from a subroutine (00EE).
type Return struct{ base }

// Jump jumps to an address (1nnn).
type Jump struct {
	base
	Address uint16
}

// JumpOffset jumps to an address plus the content of a register (Bnnn).
type JumpOffset struct {
	base
	Address  uint16
	Register uint8
}

// Call calls a subroutine (2nnn).
type Call struct {
	base
	Address uint16
}

// SkipEqualLiteral skips the next instruction if Vx == nn (3xnn).
type SkipEqualLiteral struct {
	base
	X     uint8
	Value uint8
}

// SkipNotEqualLiteral skips the next instruction if Vx != nn (4xnn).
type SkipNotEqualLiteral struct {
	base
	X     uint8
	Value uint8
}

// SkipEqual skips the next instruction if Vx == Vy (5xy0).
type SkipEqual struct {
	base
	X, Y uint8
}

// SkipNotEqual skips the next instruction if Vx != Vy (9xy0).
type SkipNotEqual struct {
	base
	X, Y uint8
}

// SetLiteral sets Vx to nn (6xnn).
type SetLiteral struct {
	base
	Dest  uint8
	Value uint8
}

// AddLiteral adds nn to Vx without touching VF (7xnn).
type AddLiteral struct {
	base
	Dest  uint8
	Value uint8
}

// Set copies Vy into Vx (8xy0).
type Set struct {
	base
	Dest, Src uint8
}

// Or sets Vx to Vx | Vy (8xy1).
type Or struct {
	base
	Lhs, Rhs uint8
}

// And sets Vx to Vx & Vy (8xy2).
type And struct {
	base
	Lhs, Rhs uint8
}

// Xor sets Vx to Vx ^ Vy (8xy3).
type Xor struct {
	base
	Lhs, Rhs uint8
}

// Add sets Vx to Vx + Vy, VF is the carry (8xy4).
type Add struct {
	base
	Lhs, Rhs uint8
}

// Sub sets Dest to Lhs - Rhs, VF is 1 if no borrow occurred.
// 8xy5 decodes to Sub{x, y, x} and 8xy7 to Sub{y, x, x}.
type Sub struct {
	base
	Lhs, Rhs, Dest uint8
}

// RightShift shifts right by one bit (8xy6).
type RightShift struct {
	base
	Lhs, Rhs uint8
}

// LeftShift shifts left by one bit (8xyE).
type LeftShift struct {
	base
	Lhs, Rhs uint8
}

// SetIndex sets the index register to an address (Annn).
type SetIndex struct {
	base
	Address uint16
}

// Random sets Vx to a random byte masked with nn (Cxnn).
type Random struct {
	base
	X    uint8
	Mask uint8
}

// Draw draws a sprite at (Vx, Vy) with the given height (Dxyn).
type Draw struct {
	base
	X, Y   uint8
	Height uint8
}

// SkipIfKey skips the next instruction if the key in Vx is down (Ex9E).
type SkipIfKey struct {
	base
	X uint8
}

// SkipIfNotKey skips the next instruction if the key in Vx is not down (ExA1).
type SkipIfNotKey struct {
	base
	X uint8
}

// GetDelay copies the delay timer into Vx (Fx07).
type GetDelay struct {
	base
	Dest uint8
}

// GetKey waits for a key release and stores the key in Vx (Fx0A).
type GetKey struct {
	base
	Dest uint8
}

// SetDelay sets the delay timer to Vx (Fx15).
type SetDelay struct {
	base
	Src uint8
}

// SetSound sets the sound timer to Vx (Fx18).
type SetSound struct {
	base
	Src uint8
}

// AddIndex adds Vx to the index register (Fx1E).
type AddIndex struct {
	base
	Src uint8
}

// SetIndexFont points the index register to the font glyph of the low nibble of Vx.
// Fx29 selects the small font, Fx30 the big SUPERCHIP font.
type SetIndexFont struct {
	Src uint8
	Big bool
}

func (SetIndexFont) instruction() {}

// Superchip returns true for the big font variant.
func (i SetIndexFont) Superchip() bool { return i.Big }

// DecimalConversion stores the decimal digits of Vx at I, I+1 and I+2 (Fx33).
type DecimalConversion struct {
	base
	Src uint8
}

// StoreMemory stores V0 to VLast inclusive at I (Fx55).
type StoreMemory struct {
	base
	Last uint8
}

// LoadMemory loads V0 to VLast inclusive from I (Fx65).
type LoadMemory struct {
	base
	Last uint8
}

// SaveFlags stores V0 to Vx in the RPL user flags (Fx75).
type SaveFlags struct {
	schip
	X uint8
}

// LoadFlags loads V0 to Vx from the RPL user flags (Fx85).
type LoadFlags struct {
	schip
	X uint8
}

// Hires enables the 128x64 high resolution mode (00FF).
type Hires struct{ schip }

// Lores enables the 64x32 low resolution mode (00FE).
type Lores struct{ schip }

// ScrollRight scrolls the display right by 4 pixels (00FB).
type ScrollRight struct{ schip }

// ScrollLeft scrolls the display left by 4 pixels (00FC).
type ScrollLeft struct{ schip }

// ScrollDown scrolls the display down by n pixels (00Cn).
type ScrollDown struct {
	schip
	Amount uint8
}

// Exit stops the interpreter (00FD).
type Exit struct{ schip }
