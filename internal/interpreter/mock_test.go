package interpreter

import (
	"fmt"
	"time"

	"github.com/nikoof/octarou/internal/instruction"
)

// fakeClock is a clock that only advances when sleeping.
type fakeClock struct {
	now    time.Time
	slept  time.Duration
	sleeps int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
	c.sleeps++
}

// steppingClock is a clock without sleep that advances on every read.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// mockMachine is a minimal machine that only supports the common instructions
// and stops running on Exit.
type mockMachine struct {
	state   *State
	running bool
}

func newMockMachine(program []byte) *mockMachine {
	state, err := NewState(program, 64, 32)
	if err != nil {
		panic(err)
	}
	return &mockMachine{state: state, running: true}
}

func (m *mockMachine) State() *State {
	return m.state
}

func (m *mockMachine) Display() *Display {
	return m.state.Display
}

func (m *mockMachine) Running() bool {
	return m.running
}

func (m *mockMachine) Execute(ins instruction.Instruction, keysDown, keysReleased Keys) error {
	handled, err := m.state.ExecuteCommon(ins, keysDown, keysReleased)
	if handled {
		return err
	}
	if _, ok := ins.(instruction.Exit); ok {
		m.running = false
		return nil
	}
	return fmt.Errorf("%w: %s", ErrVariantMismatch, ins.Name())
}
