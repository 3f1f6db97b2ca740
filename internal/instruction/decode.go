package instruction

import (
	"errors"
	"fmt"
)

// Size is the size of every instruction in bytes.
const Size = 2

// ErrUnknownOpcode is returned for opcodes that do not match any instruction.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Decode returns the instruction for the given big-endian opcode.
func Decode(opcode uint16) (Instruction, error) {
	var ins Instruction

	switch opcode & 0xF000 {
	case 0x0000:
		ins = decodeSystem(opcode)
	case 0x1000:
		ins = Jump{Address: nnn(opcode)}
	case 0x2000:
		ins = Call{Address: nnn(opcode)}
	case 0x3000:
		ins = SkipEqualLiteral{X: x(opcode), Value: nn(opcode)}
	case 0x4000:
		ins = SkipNotEqualLiteral{X: x(opcode), Value: nn(opcode)}
	case 0x5000:
		ins = SkipEqual{X: x(opcode), Y: y(opcode)}
	case 0x6000:
		ins = SetLiteral{Dest: x(opcode), Value: nn(opcode)}
	case 0x7000:
		ins = AddLiteral{Dest: x(opcode), Value: nn(opcode)}
	case 0x8000:
		ins = decodeArithmetic(opcode)
	case 0x9000:
		ins = SkipNotEqual{X: x(opcode), Y: y(opcode)}
	case 0xA000:
		ins = SetIndex{Address: nnn(opcode)}
	case 0xB000:
		ins = JumpOffset{Address: nnn(opcode), Register: x(opcode)}
	case 0xC000:
		ins = Random{X: x(opcode), Mask: nn(opcode)}
	case 0xD000:
		ins = Draw{X: x(opcode), Y: y(opcode), Height: n(opcode)}
	case 0xE000:
		ins = decodeKey(opcode)
	case 0xF000:
		ins = decodeMisc(opcode)
	}

	if ins == nil {
		return nil, fmt.Errorf("%w: %04X", ErrUnknownOpcode, opcode)
	}
	return ins, nil
}

// decodeSystem decodes the 0x0nnn family.
func decodeSystem(opcode uint16) Instruction {
	switch opcode {
	case 0x00E0:
		return ClearScreen{}
	case 0x00EE:
		return Return{}
	case 0x00FB:
		return ScrollRight{}
	case 0x00FC:
		return ScrollLeft{}
	case 0x00FD:
		return Exit{}
	case 0x00FE:
		return Lores{}
	case 0x00FF:
		return Hires{}
	}

	if opcode&0xFFF0 == 0x00C0 {
		return ScrollDown{Amount: n(opcode)}
	}
	return nil
}

// decodeArithmetic decodes the 0x8xyn register arithmetic family.
func decodeArithmetic(opcode uint16) Instruction {
	lhs, rhs := x(opcode), y(opcode)

	switch n(opcode) {
	case 0x0:
		return Set{Dest: lhs, Src: rhs}
	case 0x1:
		return Or{Lhs: lhs, Rhs: rhs}
	case 0x2:
		return And{Lhs: lhs, Rhs: rhs}
	case 0x3:
		return Xor{Lhs: lhs, Rhs: rhs}
	case 0x4:
		return Add{Lhs: lhs, Rhs: rhs}
	case 0x5:
		return Sub{Lhs: lhs, Rhs: rhs, Dest: lhs}
	case 0x6:
		return RightShift{Lhs: lhs, Rhs: rhs}
	case 0x7:
		return Sub{Lhs: rhs, Rhs: lhs, Dest: lhs}
	case 0xE:
		return LeftShift{Lhs: lhs, Rhs: rhs}
	}
	return nil
}

// decodeKey decodes the 0xExnn keypad family.
func decodeKey(opcode uint16) Instruction {
	switch nn(opcode) {
	case 0x9E:
		return SkipIfKey{X: x(opcode)}
	case 0xA1:
		return SkipIfNotKey{X: x(opcode)}
	}
	return nil
}

// decodeMisc decodes the 0xFxnn timer, index and memory family.
func decodeMisc(opcode uint16) Instruction {
	reg := x(opcode)

	switch nn(opcode) {
	case 0x07:
		return GetDelay{Dest: reg}
	case 0x0A:
		return GetKey{Dest: reg}
	case 0x15:
		return SetDelay{Src: reg}
	case 0x18:
		return SetSound{Src: reg}
	case 0x1E:
		return AddIndex{Src: reg}
	case 0x29:
		return SetIndexFont{Src: reg}
	case 0x30:
		return SetIndexFont{Src: reg, Big: true}
	case 0x33:
		return DecimalConversion{Src: reg}
	case 0x55:
		return StoreMemory{Last: reg}
	case 0x65:
		return LoadMemory{Last: reg}
	case 0x75:
		return SaveFlags{X: reg}
	case 0x85:
		return LoadFlags{X: reg}
	}
	return nil
}

// x extracts the X register nibble from an opcode.
func x(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// y extracts the Y register nibble from an opcode.
func y(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}

func n(opcode uint16) uint8 {
	return uint8(opcode & 0x000F)
}

func nn(opcode uint16) uint8 {
	return uint8(opcode & 0x00FF)
}

func nnn(opcode uint16) uint16 {
	return opcode & 0x0FFF
}
