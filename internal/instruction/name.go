package instruction

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Names of the SUPERCHIP instructions, which are not part of the CHIP-8
// instruction table.
const (
	NameScd  = "scd"
	NameScr  = "scr"
	NameScl  = "scl"
	NameExit = "exit"
	NameLow  = "low"
	NameHigh = "high"
)

func (ClearScreen) Name() string         { return chip8.ClsName }
func (Return) Name() string              { return chip8.RetName }
func (Jump) Name() string                { return chip8.JpName }
func (JumpOffset) Name() string          { return chip8.JpName }
func (Call) Name() string                { return chip8.CallName }
func (SkipEqualLiteral) Name() string    { return chip8.SeName }
func (SkipNotEqualLiteral) Name() string { return chip8.SneName }
func (SkipEqual) Name() string           { return chip8.SeName }
func (SkipNotEqual) Name() string        { return chip8.SneName }
func (SetLiteral) Name() string          { return chip8.LdName }
func (AddLiteral) Name() string          { return chip8.AddName }
func (Set) Name() string                 { return chip8.LdName }
func (Or) Name() string                  { return chip8.OrName }
func (And) Name() string                 { return chip8.AndName }
func (Xor) Name() string                 { return chip8.XorName }
func (Add) Name() string                 { return chip8.AddName }
func (RightShift) Name() string          { return chip8.ShrName }
func (LeftShift) Name() string           { return chip8.ShlName }
func (SetIndex) Name() string            { return chip8.LdName }
func (Random) Name() string              { return chip8.RndName }
func (Draw) Name() string                { return chip8.DrwName }
func (SkipIfKey) Name() string           { return chip8.SkpName }
func (SkipIfNotKey) Name() string        { return chip8.SknpName }
func (GetDelay) Name() string            { return chip8.LdName }
func (GetKey) Name() string              { return chip8.LdName }
func (SetDelay) Name() string            { return chip8.LdName }
func (SetSound) Name() string            { return chip8.LdName }
func (AddIndex) Name() string            { return chip8.AddName }
func (SetIndexFont) Name() string        { return chip8.LdName }
func (DecimalConversion) Name() string   { return chip8.LdName }
func (StoreMemory) Name() string         { return chip8.LdName }
func (LoadMemory) Name() string          { return chip8.LdName }
func (SaveFlags) Name() string           { return chip8.LdName }
func (LoadFlags) Name() string           { return chip8.LdName }
func (Hires) Name() string               { return NameHigh }
func (Lores) Name() string               { return NameLow }
func (ScrollRight) Name() string         { return NameScr }
func (ScrollLeft) Name() string          { return NameScl }
func (ScrollDown) Name() string          { return NameScd }
func (Exit) Name() string                { return NameExit }

// Name returns subn for the reversed operand form (8xy7).
func (i Sub) Name() string {
	if i.Dest != i.Lhs {
		return chip8.SubnName
	}
	return chip8.SubName
}
