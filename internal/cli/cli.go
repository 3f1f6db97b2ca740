// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nikoof/octarou/internal/options"
)

// ParseFlags parses the process command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return Parse(os.Args[0], os.Args[1:], os.Stderr)
}

// Parse parses the given arguments and returns the program options.
// Flag errors are written to output.
func Parse(name string, arguments []string, output io.Writer) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the usage information and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: octarou [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.System != "" {
		variant, err := options.ParseVariant(opts.System)
		if err != nil {
			return err
		}
		opts.Variant = variant
	}

	if opts.Speed <= 0 || opts.Speed > options.MaxSpeed {
		return fmt.Errorf("invalid speed %d, valid range: 1-%d", opts.Speed, options.MaxSpeed)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program file")
	flags.StringVar(&opts.System, "s", "", "variant to run the program with (chip8, superchip) - if not auto-detected from file extension")
	flags.IntVar(&opts.Speed, "speed", options.DefaultSpeed, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window pixels per display pixel")
	flags.BoolVar(&opts.Headless, "headless", false, "render the display in the terminal instead of opening a window")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until quit")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the beeper")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
