// Package detector handles program variant detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/nikoof/octarou/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles variant detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new variant detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the variant from options or file auto-detection.
// An explicitly set variant takes precedence, otherwise the variant is
// detected from the input filename extension.
func (d *Detector) Detect(opts options.Program) options.Variant {
	if opts.Variant != "" {
		return opts.Variant
	}

	variant := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected variant",
		log.Stringer("variant", variant),
		log.String("file", opts.Input))
	return variant
}

// detectFromFile determines the variant based on file extension.
func (d *Detector) detectFromFile(filename string) options.Variant {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".sc8", ".schip":
		return options.Superchip
	default:
		// .ch8, .rom and unknown extensions
		return options.Chip8
	}
}
