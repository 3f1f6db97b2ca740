// Package keypad maps host keyboard keys to the 16 key hexadecimal keypad.
//
// The keypad is laid out on the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
package keypad

import (
	"unicode"

	"github.com/nikoof/octarou/internal/interpreter"
)

// Layout contains the host key for every keypad key, indexed by the keypad value.
var Layout = [interpreter.KeyCount]rune{
	'X', '1', '2', '3',
	'Q', 'W', 'E', 'A',
	'S', 'D', 'Z', 'C',
	'4', 'R', 'F', 'V',
}

// Index returns the keypad key of a host key character.
func Index(r rune) (byte, bool) {
	r = unicode.ToUpper(r)
	for i, key := range Layout {
		if key == r {
			return byte(i), true
		}
	}
	return 0, false
}

// State tracks the keypad keys over frames and derives the released keys.
type State struct {
	down interpreter.Keys
}

// Update sets the keys that are held down in the current frame and returns
// the keys down and the keys released since the previous frame.
func (s *State) Update(down interpreter.Keys) (interpreter.Keys, interpreter.Keys) {
	var released interpreter.Keys
	for i := range down {
		released[i] = s.down[i] && !down[i]
	}
	s.down = down
	return down, released
}

// Reset releases all keys without reporting them as released.
func (s *State) Reset() {
	s.down = interpreter.Keys{}
}
