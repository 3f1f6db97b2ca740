// Package main implements the main entry point for a CHIP-8 and SUPERCHIP interpreter
package main

import (
	"errors"
	"os"

	"github.com/nikoof/octarou/internal/beeper"
	"github.com/nikoof/octarou/internal/cli"
	"github.com/nikoof/octarou/internal/config"
	"github.com/nikoof/octarou/internal/frontend"
	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/options"
	"github.com/nikoof/octarou/internal/session"
	"github.com/nikoof/octarou/internal/termview"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			session.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	session.PrintBanner(logger, opts, version, commit, date)

	clock := interpreter.SystemClock{}
	sess, err := session.New(logger, clock, opts.Speed)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := sess.Load(opts); err != nil {
		logger.Fatal("Loading program failed", log.Err(err))
	}
	sess.PrintInfo(opts.Quiet)

	sound := createSound(logger, opts)
	if sound != nil {
		defer sound.Close()
	}

	if opts.Headless {
		view := termview.New(logger, sess, soundOrNil(sound), clock, os.Stdout, opts.Frames)
		err = view.Run(ctx, os.Stdin)
	} else {
		err = frontend.Run(ctx, logger, sess, soundOrNil(sound), opts.Scale, opts.Frames)
	}
	if err != nil {
		logger.Error("Running program failed", log.Err(err))
		os.Exit(1)
	}
}

// createSound opens the audio output, the program runs without sound if
// no audio device is available.
func createSound(logger *log.Logger, opts options.Program) *beeper.Beeper {
	if opts.Mute {
		return nil
	}

	b, err := beeper.New(beeper.DefaultSampleRate, beeper.DefaultFrequency, beeper.DefaultVolume)
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
		return nil
	}
	return b
}

// soundOrNil avoids passing a typed nil pointer as interface.
func soundOrNil(b *beeper.Beeper) termview.Sound {
	if b == nil {
		return nil
	}
	return b
}
