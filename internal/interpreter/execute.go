package interpreter

import (
	"github.com/nikoof/octarou/internal/instruction"
)

// ExecuteCommon executes the instructions whose behavior is identical in all
// machine variants. It returns false if the instruction was not handled and
// needs to be executed by the variant.
//
//nolint:cyclop,funlen // one case per instruction
func (s *State) ExecuteCommon(ins instruction.Instruction, keysDown, keysReleased Keys) (bool, error) {
	var err error

	switch i := ins.(type) {
	case instruction.ClearScreen:
		s.Display.Clear()
	case instruction.Jump:
		s.PC = i.Address
	case instruction.Call:
		err = s.Call(i.Address)
	case instruction.Return:
		err = s.Return()

	case instruction.SkipEqualLiteral:
		s.Skip(s.V[i.X] == i.Value)
	case instruction.SkipNotEqualLiteral:
		s.Skip(s.V[i.X] != i.Value)
	case instruction.SkipEqual:
		s.Skip(s.V[i.X] == s.V[i.Y])
	case instruction.SkipNotEqual:
		s.Skip(s.V[i.X] != s.V[i.Y])
	case instruction.SkipIfKey:
		s.Skip(keysDown[s.V[i.X]&0x0F])
	case instruction.SkipIfNotKey:
		s.Skip(!keysDown[s.V[i.X]&0x0F])

	case instruction.SetLiteral:
		s.V[i.Dest] = i.Value
	case instruction.AddLiteral:
		s.V[i.Dest] += i.Value
	case instruction.Set:
		s.V[i.Dest] = s.V[i.Src]
	case instruction.Or:
		s.V[i.Lhs] |= s.V[i.Rhs]
	case instruction.And:
		s.V[i.Lhs] &= s.V[i.Rhs]
	case instruction.Xor:
		s.V[i.Lhs] ^= s.V[i.Rhs]
	case instruction.Add:
		sum := uint16(s.V[i.Lhs]) + uint16(s.V[i.Rhs])
		s.V[i.Lhs] = byte(sum)
		s.SetFlag(sum > 0xFF)
	case instruction.Sub:
		lhs, rhs := s.V[i.Lhs], s.V[i.Rhs]
		s.V[i.Dest] = lhs - rhs
		s.SetFlag(lhs >= rhs)
	case instruction.Random:
		s.V[i.X] = s.Random() & i.Mask

	case instruction.SetIndex:
		s.Index = i.Address
	case instruction.AddIndex:
		s.SetFlag(s.AddIndex(s.V[i.Src]))

	case instruction.GetDelay:
		s.V[i.Dest] = s.DelayTimer
	case instruction.SetDelay:
		s.DelayTimer = s.V[i.Src]
	case instruction.SetSound:
		s.SoundTimer = s.V[i.Src]
	case instruction.GetKey:
		if key, ok := keysReleased.First(); ok {
			s.V[i.Dest] = key
		} else {
			s.Rewind()
		}

	case instruction.DecimalConversion:
		err = s.DecimalConversion(s.V[i.Src])
	case instruction.StoreMemory:
		err = s.StoreRegisters(i.Last)
	case instruction.LoadMemory:
		err = s.LoadRegisters(i.Last)

	default:
		return false, nil
	}

	return true, err
}

// ShiftRight shifts src right by one into register dest, VF receives the
// bit that was shifted out.
func (s *State) ShiftRight(dest, src uint8) {
	value := s.V[src]
	s.V[dest] = value >> 1
	s.V[0xF] = value & 0x01
}

// ShiftLeft shifts src left by one into register dest, VF receives the
// bit that was shifted out.
func (s *State) ShiftLeft(dest, src uint8) {
	value := s.V[src]
	s.V[dest] = value << 1
	s.V[0xF] = value >> 7
}
