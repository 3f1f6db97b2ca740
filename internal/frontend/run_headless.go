//go:build headless

// Package frontend shows the display of a running session in a window.
// Builds with the headless tag do not contain a window frontend.
package frontend

import (
	"context"
	"errors"

	"github.com/nikoof/octarou/internal/session"
	"github.com/retroenv/retrogolib/log"
)

// ErrNotAvailable is returned by Run in headless builds.
var ErrNotAvailable = errors.New("window frontend is not available in headless builds")

// Sound is switched on while the sound timer of the machine runs.
type Sound interface {
	SetActive(on bool)
}

// Run returns ErrNotAvailable.
func Run(_ context.Context, _ *log.Logger, _ *session.Session, _ Sound, _, _ int) error {
	return ErrNotAvailable
}
