package interpreter

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nikoof/octarou/internal/instruction"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// State contains the registers, memory and display shared by all machine variants.
type State struct {
	Memory [MemorySize]byte
	// PC is the address of the next instruction to fetch.
	PC uint16
	// Index is the I address register.
	Index uint16
	// Stack holds the return addresses of pending subroutine calls.
	Stack []uint16
	// V are the general purpose registers V0-VF, VF is used as flag register.
	V [16]byte

	DelayTimer byte
	SoundTimer byte

	Display *Display
	// Rand is the source of the Random instruction.
	Rand *rand.Rand
}

// NewState returns a state with the fonts and the program loaded into memory and
// the program counter pointing to the start of the program.
func NewState(program []byte, width, height int) (*State, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	seed := uint64(time.Now().UnixNano())
	s := &State{
		PC:      ProgramStart,
		Stack:   make([]uint16, 0, StackDepth),
		Display: NewDisplay(width, height),
		Rand:    rand.New(rand.NewPCG(seed, seed>>32)),
	}
	copy(s.Memory[FontAddress:], Font[:])
	copy(s.Memory[BigFontAddress:], BigFont[:])
	copy(s.Memory[ProgramStart:], program)
	return s, nil
}

// UpdateTimers decrements both timers by one, stopping at 0.
func (s *State) UpdateTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

// Fetch reads the big-endian opcode at the program counter and advances
// the program counter past it.
func (s *State) Fetch() (uint16, error) {
	if int(s.PC)+instruction.Size > MemorySize {
		return 0, &ExecError{Address: s.PC, Err: ErrOutOfMemory}
	}
	opcode := uint16(s.Memory[s.PC])<<8 | uint16(s.Memory[s.PC+1])
	s.PC += instruction.Size
	return opcode, nil
}

// NextInstruction fetches and decodes the instruction at the program counter.
// The program counter is advanced even if the opcode can not be decoded.
func (s *State) NextInstruction() (instruction.Instruction, error) {
	address := s.PC
	opcode, err := s.Fetch()
	if err != nil {
		return nil, err
	}

	ins, err := instruction.Decode(opcode)
	if err != nil {
		return nil, &ExecError{Address: address, Opcode: opcode, Err: ErrUnknownOpcode}
	}
	return ins, nil
}

// Opcode returns the opcode at the given address without side effects.
func (s *State) Opcode(address uint16) uint16 {
	if int(address)+instruction.Size > MemorySize {
		return 0
	}
	return uint16(s.Memory[address])<<8 | uint16(s.Memory[address+1])
}

// Skip advances the program counter past the next instruction if cond is true.
func (s *State) Skip(cond bool) {
	if cond {
		s.PC += instruction.Size
	}
}

// Rewind moves the program counter back to the instruction that was just
// fetched, so it is executed again on the next fetch.
func (s *State) Rewind() {
	s.PC -= instruction.Size
}

// Call pushes the program counter and jumps to address.
func (s *State) Call(address uint16) error {
	if len(s.Stack) >= StackDepth {
		return ErrStackOverflow
	}
	s.Stack = append(s.Stack, s.PC)
	s.PC = address
	return nil
}

// Return pops the return address from the stack.
func (s *State) Return() error {
	if len(s.Stack) == 0 {
		return ErrStackUnderflow
	}
	s.PC = s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return nil
}

// MemoryRange returns the memory slice of size bytes starting at the index register.
func (s *State) MemoryRange(size int) ([]byte, error) {
	start := int(s.Index)
	if start+size > MemorySize {
		return nil, fmt.Errorf("%w: %d bytes at %04X", ErrOutOfMemory, size, s.Index)
	}
	return s.Memory[start : start+size], nil
}

// SetFlag sets VF to 1 if flag is true, else to 0.
func (s *State) SetFlag(flag bool) {
	if flag {
		s.V[0xF] = 1
	} else {
		s.V[0xF] = 0
	}
}

// Random returns a random byte.
func (s *State) Random() byte {
	return byte(s.Rand.UintN(256))
}

// AddIndex adds value to the index register. It returns true if the result
// left the 12 bit address space, the index wraps around in that case.
func (s *State) AddIndex(value byte) bool {
	sum := uint32(s.Index) + uint32(value)
	s.Index = uint16(sum & 0x0FFF)
	return sum > 0x0FFF
}

// DecimalConversion stores the hundreds, tens and ones digit of value at I.
func (s *State) DecimalConversion(value byte) error {
	digits, err := s.MemoryRange(3)
	if err != nil {
		return err
	}
	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}

// StoreRegisters copies V0 to Vlast inclusive to memory at I.
func (s *State) StoreRegisters(last uint8) error {
	mem, err := s.MemoryRange(int(last) + 1)
	if err != nil {
		return err
	}
	copy(mem, s.V[:last+1])
	return nil
}

// LoadRegisters copies memory at I to V0 to Vlast inclusive.
func (s *State) LoadRegisters(last uint8) error {
	mem, err := s.MemoryRange(int(last) + 1)
	if err != nil {
		return err
	}
	copy(s.V[:last+1], mem)
	return nil
}
