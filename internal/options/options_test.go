package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input    string
		expected Variant
		wantErr  bool
	}{
		{"chip8", Chip8, false},
		{"CHIP-8", Chip8, false},
		{"ch8", Chip8, false},
		{"superchip", Superchip, false},
		{" schip ", Superchip, false},
		{"sc8", Superchip, false},
		{"xochip", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			variant, err := ParseVariant(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, variant)
		})
	}
}

func TestVariant_Toggle(t *testing.T) {
	assert.Equal(t, Superchip, Chip8.Toggle())
	assert.Equal(t, Chip8, Superchip.Toggle())
}
