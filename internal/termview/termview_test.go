package termview

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/options"
	"github.com/nikoof/octarou/internal/session"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// sleepClock is a clock that only advances when sleeping.
type sleepClock struct {
	now time.Time
}

func (c *sleepClock) Now() time.Time       { return c.now }
func (c *sleepClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

type soundRecorder struct {
	active []bool
}

func (s *soundRecorder) SetActive(on bool) {
	s.active = append(s.active, on)
}

func TestRender(t *testing.T) {
	display := interpreter.NewDisplay(4, 4)
	display.Flip(0, 0, 1)
	display.Flip(1, 1, 1)
	display.Flip(2, 0, 1)
	display.Flip(2, 1, 1)
	display.Flip(3, 3, 1)

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, display, "status"))

	expected := cursorHome +
		"▀▄█ \r\n" +
		"   ▄\r\n" +
		"status\x1b[K\r\n"
	assert.Equal(t, expected, buf.String())
}

func TestInput(t *testing.T) {
	var in Input

	assert.Equal(t, ActionQuit, in.Press(keyEscape))
	assert.Equal(t, ActionQuit, in.Press(keyCtrlC))
	assert.Equal(t, ActionNone, in.Press('p'))
	assert.Equal(t, ActionNone, in.Press('w'))

	for range holdFrames {
		down, released := in.Frame()
		assert.True(t, down[0x5])
		assert.False(t, released[0x5])
	}

	down, released := in.Frame()
	assert.False(t, down[0x5])
	assert.True(t, released[0x5])

	in.Press('w')
	assert.Equal(t, ActionReload, in.Press(keyCtrlR))
	down, released = in.Frame()
	assert.Equal(t, interpreter.Keys{}, down)
	assert.Equal(t, interpreter.Keys{}, released)
}

func TestView_Frame(t *testing.T) {
	logger := log.NewTestLogger(t)
	clock := &sleepClock{now: time.Unix(0, 0)}
	sess, err := session.New(logger, clock, 60)
	assert.NoError(t, err)
	// LD V0, 2 / LD ST, V0 / LD I, sprite 0 / DRW V1, V1, 5 / JP 208
	program := []byte{0x60, 0x02, 0xF0, 0x18, 0xF1, 0x29, 0xD1, 0x15, 0x12, 0x08}
	assert.NoError(t, sess.LoadProgram(program, options.Chip8))

	var out bytes.Buffer
	sound := &soundRecorder{}
	v := New(logger, sess, sound, clock, &out, 0)

	for range 4 {
		assert.NoError(t, v.Frame())
	}
	assert.Equal(t, []bool{false, true, true, false}, sound.active)

	frames := strings.Split(out.String(), cursorHome)
	last := frames[len(frames)-1]
	lines := strings.Split(last, "\r\n")
	assert.Equal(t, 64, len([]rune(lines[0])))
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀█"))
	assert.True(t, strings.Contains(last, "chip8  60 ips  running"))
}

func TestView_RunFrameLimit(t *testing.T) {
	logger := log.NewTestLogger(t)
	clock := &sleepClock{now: time.Unix(0, 0)}
	sess, err := session.New(logger, clock, 60)
	assert.NoError(t, err)
	assert.NoError(t, sess.LoadProgram([]byte{0x12, 0x00}, options.Chip8))

	in, err := os.Open(os.DevNull)
	assert.NoError(t, err)
	defer func() { _ = in.Close() }()

	var out bytes.Buffer
	v := New(logger, sess, nil, clock, &out, 3)
	assert.NoError(t, v.Run(context.Background(), in))
	assert.Equal(t, 3, strings.Count(out.String(), cursorHome))
	assert.True(t, strings.HasSuffix(out.String(), showCursor))
}

func TestView_RunPacesFrames(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		variant options.Variant
		status  string
	}{
		{"running", []byte{0x12, 0x00}, options.Chip8, "running"},
		{"exited", []byte{0x00, 0xFD}, options.Superchip, "exited"},
		{"halted", []byte{0x00, 0xEE}, options.Chip8, "halted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.NewTestLogger(t)
			start := time.Unix(0, 0)
			clock := &sleepClock{now: start}
			sess, err := session.New(logger, clock, 60)
			assert.NoError(t, err)
			assert.NoError(t, sess.LoadProgram(tt.program, tt.variant))

			in, err := os.Open(os.DevNull)
			assert.NoError(t, err)
			defer func() { _ = in.Close() }()

			var out bytes.Buffer
			v := New(logger, sess, nil, clock, &out, 10)
			assert.NoError(t, v.Run(context.Background(), in))

			assert.Equal(t, tt.status, sess.Status())
			assert.Equal(t, 10*interpreter.TimerCycle, clock.now.Sub(start))
		})
	}
}
