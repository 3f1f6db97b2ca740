package interpreter

import (
	"errors"
	"fmt"
	"time"

	"github.com/nikoof/octarou/internal/instruction"
)

// TimerFrequency is the rate in Hz at which the delay and sound timers count down.
const TimerFrequency = 60

// TimerCycle is the time budget of a single tick.
const TimerCycle = time.Second / TimerFrequency

// Driver couples the execution of a machine to wall clock time.
type Driver struct {
	machine Machine
	clock   Clock

	executed int
	failed   int
}

// NewDriver returns a tick driver for the machine using the given clock.
func NewDriver(machine Machine, clock Clock) *Driver {
	return &Driver{
		machine: machine,
		clock:   clock,
	}
}

// Executed returns the number of instructions executed by the last tick.
func (d *Driver) Executed() int {
	return d.executed
}

// Failed returns the number of instructions that failed with a recoverable
// error during the last tick.
func (d *Driver) Failed() int {
	return d.failed
}

// Tick decrements the timers once and then executes instructions at the given
// speed in instructions per second until one timer cycle of time has elapsed.
//
// Fatal errors abort the tick immediately. Recoverable errors do not stop the
// tick, the first one is returned after the time budget is used up.
// Released keys are handed to at most one GetKey instruction per tick.
func (d *Driver) Tick(keysDown, keysReleased Keys, speed int) error {
	if speed <= 0 {
		return fmt.Errorf("%w: %d instructions per second", ErrInvalidSpeed, speed)
	}
	if !d.machine.Running() {
		return ErrMachineStopped
	}

	cpuCycle := time.Second / time.Duration(speed)
	sleeper, canSleep := d.clock.(Sleeper)

	d.executed = 0
	d.failed = 0
	var firstErr error

	start := d.clock.Now()
	var total time.Duration

	d.machine.State().UpdateTimers()

	released := keysReleased
	for {
		ins, err := d.step(keysDown, released)
		if _, ok := ins.(instruction.GetKey); ok && err == nil {
			released = Keys{}
		}
		if err != nil {
			if IsFatal(err) {
				return err
			}
			d.failed++
			if firstErr == nil {
				firstErr = err
			}
		}
		d.executed++

		cpuElapsed := d.clock.Now().Sub(start) - total
		total += cpuElapsed

		if canSleep && cpuElapsed < cpuCycle {
			left := cpuCycle - cpuElapsed
			total += left
			sleeper.Sleep(left)
		}

		if total >= TimerCycle || !d.machine.Running() {
			break
		}
	}

	return firstErr
}

// Step fetches, decodes and executes a single instruction. Errors are
// returned as *ExecError.
func (d *Driver) Step(keysDown, keysReleased Keys) error {
	_, err := d.step(keysDown, keysReleased)
	return err
}

// step executes the next instruction and returns it, the instruction is nil
// if the fetch or decode failed.
func (d *Driver) step(keysDown, keysReleased Keys) (instruction.Instruction, error) {
	state := d.machine.State()
	address := state.PC

	ins, err := state.NextInstruction()
	if err != nil {
		return nil, err
	}

	if err := d.machine.Execute(ins, keysDown, keysReleased); err != nil {
		var execErr *ExecError
		if errors.As(err, &execErr) {
			return ins, err
		}
		return ins, &ExecError{
			Address: address,
			Opcode:  state.Opcode(address),
			Err:     err,
		}
	}
	return ins, nil
}
