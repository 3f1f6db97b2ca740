package termview

import (
	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/keypad"
)

// holdFrames is the number of frames a key counts as held down after a key
// press. Terminals only report key presses, not releases.
const holdFrames = 6

// Control keys.
const (
	keyCtrlC  = 0x03
	keyCtrlR  = 0x12
	keyEscape = 0x1b
)

// Action is a non keypad command entered in the terminal.
type Action int

// Terminal actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionReload
)

// Input converts terminal key presses into keypad state.
type Input struct {
	hold  [interpreter.KeyCount]int
	state keypad.State
}

// Press handles a byte read from the terminal.
func (in *Input) Press(b byte) Action {
	switch b {
	case keyCtrlC, keyEscape:
		return ActionQuit
	case keyCtrlR:
		in.Reset()
		return ActionReload
	}

	if index, ok := keypad.Index(rune(b)); ok {
		in.hold[index] = holdFrames
	}
	return ActionNone
}

// Frame advances the key hold counters by one frame and returns the keys
// down and the keys released in this frame.
func (in *Input) Frame() (interpreter.Keys, interpreter.Keys) {
	var down interpreter.Keys
	for i := range in.hold {
		if in.hold[i] > 0 {
			down[i] = true
			in.hold[i]--
		}
	}
	return in.state.Update(down)
}

// Reset releases all keys.
func (in *Input) Reset() {
	in.hold = [interpreter.KeyCount]int{}
	in.state.Reset()
}
