// Package session owns a running program: the loaded image, the selected
// variant and speed, the machine and its tick driver.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikoof/octarou/internal/config"
	"github.com/nikoof/octarou/internal/detector"
	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/listing"
	"github.com/nikoof/octarou/internal/loader"
	"github.com/nikoof/octarou/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoProgram is returned when running or reloading without a loaded program.
var ErrNoProgram = errors.New("no program loaded")

// Session runs a program on a machine of the selected variant.
// It is not safe for concurrent use, all methods have to be called from the
// goroutine that ticks the session.
type Session struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	clock    interpreter.Clock

	path    string
	program []byte
	variant options.Variant
	speed   int

	machine interpreter.Machine
	driver  *interpreter.Driver
	err     error // fatal error that stopped the machine
}

// New creates a new session that runs programs at the given speed.
func New(logger *log.Logger, clock interpreter.Clock, speed int) (*Session, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("%w: %d instructions per second", interpreter.ErrInvalidSpeed, speed)
	}
	return &Session{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		clock:    clock,
		speed:    speed,
		variant:  options.Chip8,
	}, nil
}

// Load reads the program file of the options and starts it with the
// explicitly set or auto-detected variant.
func (s *Session) Load(opts options.Program) error {
	variant := s.detector.Detect(opts)

	program, err := s.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	if err := s.LoadProgram(program, variant); err != nil {
		return err
	}
	s.path = opts.Input
	return nil
}

// LoadProgram starts the program image on a new machine of the variant.
func (s *Session) LoadProgram(program []byte, variant options.Variant) error {
	machine, err := config.CreateMachine(variant, program)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	s.program = program
	s.variant = variant
	s.machine = machine
	s.driver = interpreter.NewDriver(machine, s.clock)
	s.err = nil

	s.logger.Debug("Program loaded",
		log.String("variant", variant.String()),
		log.Int("size", len(program)))
	return nil
}

// Reload restarts the current program image on a fresh machine.
func (s *Session) Reload() error {
	if s.machine == nil {
		return ErrNoProgram
	}
	return s.LoadProgram(s.program, s.variant)
}

// SetVariant restarts the current program image with another variant.
func (s *Session) SetVariant(variant options.Variant) error {
	if s.machine == nil {
		s.variant = variant
		return nil
	}
	return s.LoadProgram(s.program, variant)
}

// ToggleVariant switches between the CHIP-8 and SUPERCHIP variants and
// restarts the program.
func (s *Session) ToggleVariant() error {
	return s.SetVariant(s.variant.Toggle())
}

// SetSpeed sets the number of instructions executed per second.
func (s *Session) SetSpeed(speed int) error {
	if speed <= 0 || speed > options.MaxSpeed {
		return fmt.Errorf("%w: %d instructions per second", interpreter.ErrInvalidSpeed, speed)
	}
	s.speed = speed
	return nil
}

// Tick runs the machine for one timer cycle. Recoverable instruction errors
// are logged and do not stop the machine. A fatal error stops the machine,
// keeps the last frame and is returned by this and every following call
// until the program is reloaded.
func (s *Session) Tick(keysDown, keysReleased interpreter.Keys) error {
	if s.machine == nil {
		return ErrNoProgram
	}
	if s.err != nil {
		return s.err
	}
	if !s.machine.Running() {
		return nil
	}

	err := s.driver.Tick(keysDown, keysReleased, s.speed)
	if err == nil {
		return nil
	}

	if interpreter.IsFatal(err) {
		s.err = err
		s.logError("Machine stopped", err)
		return err
	}

	s.logError("Instruction failed", err)
	return nil
}

func (s *Session) logError(msg string, err error) {
	var address, opcode uint16
	var execErr *interpreter.ExecError
	if errors.As(err, &execErr) {
		address, opcode = execErr.Address, execErr.Opcode
	}

	fields := []log.Field{
		log.Err(err),
		log.Hex("address", address),
		log.String("instruction", listing.Format(opcode)),
	}
	if access := listing.MemoryAccess(opcode); access.Reads || access.Writes {
		fields = append(fields, log.Hex("index", s.machine.State().Index))
	}

	if interpreter.IsFatal(err) {
		s.logger.Error(msg, fields...)
		return
	}

	fields = append(fields, log.Int("failed", s.driver.Failed()))
	s.logger.Warn(msg, fields...)
}

// Display returns the framebuffer of the machine or nil if no program is loaded.
func (s *Session) Display() *interpreter.Display {
	if s.machine == nil {
		return nil
	}
	return s.machine.Display()
}

// SoundActive returns whether the sound timer of the machine is running.
func (s *Session) SoundActive() bool {
	if s.machine == nil || s.err != nil || !s.machine.Running() {
		return false
	}
	return s.machine.State().SoundTimer > 0
}

// Running returns whether the machine executes instructions.
func (s *Session) Running() bool {
	return s.machine != nil && s.err == nil && s.machine.Running()
}

// Err returns the fatal error that stopped the machine.
func (s *Session) Err() error {
	return s.err
}

// Variant returns the variant of the current machine.
func (s *Session) Variant() options.Variant {
	return s.variant
}

// Speed returns the number of instructions executed per second.
func (s *Session) Speed() int {
	return s.speed
}

// Path returns the file name of the loaded program.
func (s *Session) Path() string {
	return s.path
}

// Status returns a short description of the session state.
func (s *Session) Status() string {
	switch {
	case s.machine == nil:
		return "no program"
	case s.err != nil:
		return "halted"
	case !s.machine.Running():
		return "exited"
	default:
		return "running"
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("octarou", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints information about the loaded program.
func (s *Session) PrintInfo(quiet bool) {
	if quiet || s.machine == nil {
		return
	}

	display := s.machine.Display()
	s.logger.Info("Running program",
		log.String("file", s.path),
		log.String("variant", s.variant.String()),
		log.Int("size", len(s.program)),
		log.Int("speed", s.speed),
		log.String("display", fmt.Sprintf("%dx%d", display.Width(), display.Height())))
}
