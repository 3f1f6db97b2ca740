package keypad

import (
	"testing"

	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		key      rune
		expected byte
		ok       bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'q', 0x4, true},
		{'R', 0xD, true},
		{'x', 0x0, true},
		{'z', 0xA, true},
		{'c', 0xB, true},
		{'v', 0xF, true},
		{'5', 0, false},
		{'p', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			index, ok := Index(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, index)
		})
	}
}

func TestLayout_Unique(t *testing.T) {
	seen := map[rune]bool{}
	for _, key := range Layout {
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestState_Update(t *testing.T) {
	var s State
	var down interpreter.Keys
	down[0x5] = true

	d, released := s.Update(down)
	assert.True(t, d[0x5])
	assert.Equal(t, interpreter.Keys{}, released)

	d, released = s.Update(down)
	assert.True(t, d[0x5])
	assert.False(t, released[0x5])

	d, released = s.Update(interpreter.Keys{})
	assert.False(t, d[0x5])
	assert.True(t, released[0x5])

	_, released = s.Update(interpreter.Keys{})
	assert.False(t, released[0x5])

	s.Update(down)
	s.Reset()
	_, released = s.Update(interpreter.Keys{})
	assert.False(t, released[0x5])
}
