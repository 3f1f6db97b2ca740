// Package listing converts CHIP-8 and SUPERCHIP opcodes into assembler mnemonics.
package listing

import (
	"fmt"

	"github.com/nikoof/octarou/internal/instruction"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Format returns the assembler text of an opcode, for example "ld V2, $34".
// Opcodes that do not decode are returned as a data word directive.
func Format(opcode uint16) string {
	ins, err := instruction.Decode(opcode)
	if err != nil {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	return formatCode(opcode, ins)
}

// formatCode returns the assembler text of a decoded opcode.
func formatCode(opcode uint16, ins instruction.Instruction) string {
	name := mnemonic(opcode, ins)
	if params := formatParams(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// mnemonic returns the name of the opcode from the CHIP-8 opcode table.
// SUPERCHIP extensions are not part of the table and use their own names.
func mnemonic(opcode uint16, ins instruction.Instruction) string {
	if !ins.Superchip() {
		if op, ok := lookup(opcode); ok {
			return op.Instruction.Name
		}
	}
	return ins.Name()
}

// formatParams formats the operands of an instruction.
func formatParams(ins instruction.Instruction) string {
	switch i := ins.(type) {
	case instruction.Jump:
		return fmt.Sprintf("$%03X", i.Address)
	case instruction.JumpOffset:
		return fmt.Sprintf("V%X, $%03X", i.Register, i.Address)
	case instruction.Call:
		return fmt.Sprintf("$%03X", i.Address)

	case instruction.SkipEqualLiteral:
		return fmt.Sprintf("V%X, $%02X", i.X, i.Value)
	case instruction.SkipNotEqualLiteral:
		return fmt.Sprintf("V%X, $%02X", i.X, i.Value)
	case instruction.SkipEqual:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case instruction.SkipNotEqual:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case instruction.SkipIfKey:
		return fmt.Sprintf("V%X", i.X)
	case instruction.SkipIfNotKey:
		return fmt.Sprintf("V%X", i.X)

	case instruction.SetLiteral:
		return fmt.Sprintf("V%X, $%02X", i.Dest, i.Value)
	case instruction.AddLiteral:
		return fmt.Sprintf("V%X, $%02X", i.Dest, i.Value)
	case instruction.Set:
		return fmt.Sprintf("V%X, V%X", i.Dest, i.Src)
	case instruction.Or:
		return fmt.Sprintf("V%X, V%X", i.Lhs, i.Rhs)
	case instruction.And:
		return fmt.Sprintf("V%X, V%X", i.Lhs, i.Rhs)
	case instruction.Xor:
		return fmt.Sprintf("V%X, V%X", i.Lhs, i.Rhs)
	case instruction.Add:
		return fmt.Sprintf("V%X, V%X", i.Lhs, i.Rhs)
	case instruction.Sub:
		if i.Dest != i.Lhs {
			return fmt.Sprintf("V%X, V%X", i.Dest, i.Lhs)
		}
		return fmt.Sprintf("V%X, V%X", i.Lhs, i.Rhs)
	case instruction.RightShift:
		return fmt.Sprintf("V%X", i.Lhs)
	case instruction.LeftShift:
		return fmt.Sprintf("V%X", i.Lhs)
	case instruction.Random:
		return fmt.Sprintf("V%X, $%02X", i.X, i.Mask)
	case instruction.Draw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.Height)

	case instruction.SetIndex:
		return fmt.Sprintf("I, $%03X", i.Address)
	case instruction.AddIndex:
		return fmt.Sprintf("I, V%X", i.Src)
	case instruction.GetDelay:
		return fmt.Sprintf("V%X, DT", i.Dest)
	case instruction.GetKey:
		return fmt.Sprintf("V%X, K", i.Dest)
	case instruction.SetDelay:
		return fmt.Sprintf("DT, V%X", i.Src)
	case instruction.SetSound:
		return fmt.Sprintf("ST, V%X", i.Src)
	case instruction.SetIndexFont:
		if i.Big {
			return fmt.Sprintf("HF, V%X", i.Src)
		}
		return fmt.Sprintf("F, V%X", i.Src)
	case instruction.DecimalConversion:
		return fmt.Sprintf("B, V%X", i.Src)
	case instruction.StoreMemory:
		return fmt.Sprintf("[I], V%X", i.Last)
	case instruction.LoadMemory:
		return fmt.Sprintf("V%X, [I]", i.Last)
	case instruction.SaveFlags:
		return fmt.Sprintf("R, V%X", i.X)
	case instruction.LoadFlags:
		return fmt.Sprintf("V%X, R", i.X)

	case instruction.ScrollDown:
		return fmt.Sprintf("%d", i.Amount)
	}
	return ""
}

// lookup returns the CHIP-8 opcode table entry matching the opcode.
// SUPERCHIP extensions are not part of the table.
func lookup(opcode uint16) (chip8.Opcode, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// Access describes the main memory access of an instruction.
type Access struct {
	Reads  bool
	Writes bool
}

// MemoryAccess returns how the instruction of the opcode accesses main memory.
func MemoryAccess(opcode uint16) Access {
	op, ok := lookup(opcode)
	if !ok {
		return Access{}
	}
	name := op.Instruction.Name
	return Access{
		Reads:  chip8.MemoryReadInstructions.Contains(name),
		Writes: chip8.MemoryWriteInstructions.Contains(name),
	}
}

// IsSkip returns whether the opcode conditionally skips the next instruction.
func IsSkip(opcode uint16) bool {
	op, ok := lookup(opcode)
	if !ok {
		return false
	}
	return chip8.SkipInstructions.Contains(op.Instruction.Name)
}
