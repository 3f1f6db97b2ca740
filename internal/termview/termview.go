package termview

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/session"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Sound is switched on while the sound timer of the machine runs.
type Sound interface {
	SetActive(on bool)
}

// View runs a session in a terminal.
type View struct {
	logger  *log.Logger
	session *session.Session
	sound   Sound
	clock   interpreter.Clock
	out     io.Writer
	input   Input
	frames  int // frame limit, 0 for unlimited
}

// New returns a terminal view of the session that writes to out. Frames are
// paced to the timer frequency using clock.
func New(logger *log.Logger, sess *session.Session, sound Sound, clock interpreter.Clock, out io.Writer, frames int) *View {
	return &View{
		logger:  logger,
		session: sess,
		sound:   sound,
		clock:   clock,
		out:     out,
		frames:  frames,
	}
}

// Run reads the keyboard from in and runs the session until the context is
// cancelled, the user quits or the frame limit is reached. Input is only read
// if in is a terminal, which is put into raw mode for the duration of the run.
func (v *View) Run(ctx context.Context, in *os.File) error {
	keys := make(chan byte, 16)

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("setting terminal raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, oldState) }()

		if width, height, err := term.GetSize(fd); err == nil {
			v.checkSize(width, height)
		}
		go readKeys(in, keys)
	}

	if _, err := io.WriteString(v.out, hideCursor+clearScreen); err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}
	defer func() { _, _ = io.WriteString(v.out, showCursor) }()

	for frame := 0; v.frames == 0 || frame < v.frames; frame++ {
		if ctx.Err() != nil {
			return nil
		}

		quit, err := v.handleKeys(keys)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		start := v.clock.Now()
		if err := v.Frame(); err != nil {
			return err
		}
		v.pace(start)
	}
	return nil
}

// pace sleeps out the rest of the frame that started at start. A running
// machine uses up the frame inside the tick already, an exited or halted
// one returns immediately.
func (v *View) pace(start time.Time) {
	sleeper, ok := v.clock.(interpreter.Sleeper)
	if !ok {
		return
	}
	if elapsed := v.clock.Now().Sub(start); elapsed < interpreter.TimerCycle {
		sleeper.Sleep(interpreter.TimerCycle - elapsed)
	}
}

// Frame runs the session for one tick and renders the display.
func (v *View) Frame() error {
	down, released := v.input.Frame()
	// fatal errors are logged by the session and keep the last frame shown
	_ = v.session.Tick(down, released)

	if v.sound != nil {
		v.sound.SetActive(v.session.SoundActive())
	}

	display := v.session.Display()
	if display == nil {
		return session.ErrNoProgram
	}
	status := fmt.Sprintf("%s  %d ips  %s  [esc: quit, ctrl+r: reload]",
		v.session.Variant(), v.session.Speed(), v.session.Status())
	return Render(v.out, display, status)
}

// handleKeys processes all pending key presses.
func (v *View) handleKeys(keys <-chan byte) (bool, error) {
	for {
		select {
		case b, ok := <-keys:
			if !ok {
				return false, nil
			}
			switch v.input.Press(b) {
			case ActionQuit:
				return true, nil
			case ActionReload:
				if err := v.session.Reload(); err != nil {
					return false, fmt.Errorf("reloading program: %w", err)
				}
				if _, err := io.WriteString(v.out, clearScreen); err != nil {
					return false, fmt.Errorf("clearing terminal: %w", err)
				}
			case ActionNone:
			}
		default:
			return false, nil
		}
	}
}

func (v *View) checkSize(width, height int) {
	display := v.session.Display()
	if display == nil {
		return
	}
	needWidth, needHeight := display.Width(), display.Height()/2+1
	if width < needWidth || height < needHeight {
		v.logger.Warn("Terminal is smaller than the display",
			log.String("terminal", fmt.Sprintf("%dx%d", width, height)),
			log.String("required", fmt.Sprintf("%dx%d", needWidth, needHeight)))
	}
}

// readKeys forwards bytes read from the reader until it fails.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			keys <- b
		}
		if err != nil {
			return
		}
	}
}
