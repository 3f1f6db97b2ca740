package session

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/interpreter/superchip"
	"github.com/nikoof/octarou/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// sleepClock is a clock that only advances when sleeping.
type sleepClock struct {
	now time.Time
}

func (c *sleepClock) Now() time.Time       { return c.now }
func (c *sleepClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(log.NewTestLogger(t), &sleepClock{now: time.Unix(0, 0)}, 60)
	assert.NoError(t, err)
	return s
}

func writeProgram(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create program file: %v", err)
	}
	return path
}

func TestSession_Load(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "no program", s.Status())
	assert.True(t, s.Display() == nil)
	assert.True(t, errors.Is(s.Tick(interpreter.Keys{}, interpreter.Keys{}), ErrNoProgram))
	assert.True(t, errors.Is(s.Reload(), ErrNoProgram))

	path := writeProgram(t, "scroll.sc8", []byte{0x00, 0xFF, 0x12, 0x02})
	assert.NoError(t, s.Load(options.Program{Parameters: options.Parameters{Input: path}}))
	assert.Equal(t, options.Superchip, s.Variant())
	assert.Equal(t, path, s.Path())
	assert.Equal(t, superchip.DisplayWidth, s.Display().Width())
	assert.Equal(t, "running", s.Status())

	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	sc, ok := s.machine.(*superchip.Superchip)
	assert.True(t, ok)
	assert.True(t, sc.Hires())
}

func TestSession_LoadMissingFile(t *testing.T) {
	s := newSession(t)
	err := s.Load(options.Program{Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "x.ch8")}})
	assert.Error(t, err)
	assert.Nil(t, s.machine)
}

func TestSession_ReloadAndVariant(t *testing.T) {
	s := newSession(t)
	// ADD V0, 1 / JP 200
	assert.NoError(t, s.LoadProgram([]byte{0x70, 0x01, 0x12, 0x00}, options.Chip8))

	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	assert.Equal(t, byte(1), s.machine.State().V[0])

	assert.NoError(t, s.Reload())
	assert.Equal(t, byte(0), s.machine.State().V[0])
	assert.Equal(t, options.Chip8, s.Variant())

	assert.NoError(t, s.ToggleVariant())
	assert.Equal(t, options.Superchip, s.Variant())
	assert.Equal(t, superchip.DisplayWidth, s.Display().Width())

	assert.NoError(t, s.SetVariant(options.Chip8))
	assert.Equal(t, options.Chip8, s.Variant())
}

func TestSession_SetSpeed(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, 60, s.Speed())

	assert.NoError(t, s.SetSpeed(120))
	assert.Equal(t, 120, s.Speed())

	assert.True(t, errors.Is(s.SetSpeed(0), interpreter.ErrInvalidSpeed))
	assert.True(t, errors.Is(s.SetSpeed(options.MaxSpeed+1), interpreter.ErrInvalidSpeed))
	assert.Equal(t, 120, s.Speed())

	_, err := New(log.NewTestLogger(t), interpreter.SpinClock{}, 0)
	assert.True(t, errors.Is(err, interpreter.ErrInvalidSpeed))
}

func TestSession_RecoverableError(t *testing.T) {
	s := newSession(t)
	// unknown opcode / LD V1, 7
	assert.NoError(t, s.LoadProgram([]byte{0xFF, 0xFF, 0x61, 0x07}, options.Chip8))

	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	assert.True(t, s.Running())
	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	assert.Equal(t, byte(7), s.machine.State().V[1])
}

func TestSession_FatalErrorLogsIndex(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{
		Handler: slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: log.DebugLevel}),
	})
	s, err := New(logger, &sleepClock{now: time.Unix(0, 0)}, 60)
	assert.NoError(t, err)
	// LD I, $FFF / DRW V0, V1, 5
	assert.NoError(t, s.LoadProgram([]byte{0xAF, 0xFF, 0xD0, 0x15}, options.Chip8))

	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	err = s.Tick(interpreter.Keys{}, interpreter.Keys{})
	assert.ErrorIs(t, err, interpreter.ErrOutOfMemory)
	assert.Equal(t, "halted", s.Status())

	out := buf.String()
	assert.True(t, strings.Contains(out, "address=0x0202"), out)
	assert.True(t, strings.Contains(out, "index=0x0FFF"), out)
}

func TestSession_FatalError(t *testing.T) {
	s := newSession(t)
	// CLS / RET with an empty stack
	assert.NoError(t, s.LoadProgram([]byte{0x00, 0xE0, 0x00, 0xEE}, options.Chip8))
	s.Display().Flip(1, 1, 1)

	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	err := s.Tick(interpreter.Keys{}, interpreter.Keys{})
	assert.True(t, errors.Is(err, interpreter.ErrStackUnderflow))
	assert.False(t, s.Running())
	assert.Equal(t, "halted", s.Status())
	assert.True(t, errors.Is(s.Err(), interpreter.ErrStackUnderflow))

	// stays halted until reloaded
	err = s.Tick(interpreter.Keys{}, interpreter.Keys{})
	assert.True(t, errors.Is(err, interpreter.ErrStackUnderflow))

	assert.NoError(t, s.Reload())
	assert.NoError(t, s.Err())
	assert.True(t, s.Running())
}

func TestSession_SoundActive(t *testing.T) {
	s := newSession(t)
	// LD V0, 3 / LD ST, V0 / JP 204
	assert.NoError(t, s.LoadProgram([]byte{0x60, 0x03, 0xF0, 0x18, 0x12, 0x04}, options.Chip8))
	assert.False(t, s.SoundActive())

	for range 2 {
		assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	}
	assert.True(t, s.SoundActive())

	for range 3 {
		assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	}
	assert.False(t, s.SoundActive())
}

func TestSession_Exit(t *testing.T) {
	s := newSession(t)
	assert.NoError(t, s.LoadProgram([]byte{0x00, 0xFD}, options.Superchip))

	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
	assert.False(t, s.Running())
	assert.Equal(t, "exited", s.Status())
	assert.NoError(t, s.Tick(interpreter.Keys{}, interpreter.Keys{}))
}
