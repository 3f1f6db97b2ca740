package interpreter

import (
	"errors"
	"fmt"

	"github.com/nikoof/octarou/internal/instruction"
)

var (
	// ErrUnknownOpcode is returned when a fetched opcode can not be decoded.
	ErrUnknownOpcode = instruction.ErrUnknownOpcode
	// ErrVariantMismatch is returned for instructions that the active machine does not support.
	ErrVariantMismatch = errors.New("instruction not supported by machine variant")
	// ErrOutOfMemory is returned when an access crosses the end of memory.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrStackUnderflow is returned when returning with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrStackOverflow is returned when a call exceeds the maximum stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrInvalidSpeed is returned for a non positive instruction rate.
	ErrInvalidSpeed = errors.New("invalid speed")
	// ErrMachineStopped is returned when ticking a machine that has exited.
	ErrMachineStopped = errors.New("machine stopped")
	// ErrProgramTooLarge is returned when a program does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// ExecError wraps an error that occurred while fetching or executing
// the instruction at Address.
type ExecError struct {
	Address uint16
	Opcode  uint16
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("address %04X opcode %04X: %s", e.Address, e.Opcode, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// IsFatal returns true if the error leaves the machine in a state that
// can not be continued.
func IsFatal(err error) bool {
	return errors.Is(err, ErrOutOfMemory) ||
		errors.Is(err, ErrStackUnderflow) ||
		errors.Is(err, ErrStackOverflow)
}
