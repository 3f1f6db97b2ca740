//go:build !headless

package frontend

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nikoof/octarou/internal/interpreter/chip8"
	"github.com/nikoof/octarou/internal/session"
	"github.com/retroenv/retrogolib/log"
)

// Run opens a window and runs the session until the window is closed.
// scale is the number of window pixels per pixel of the 64x32 display.
func Run(ctx context.Context, logger *log.Logger, sess *session.Session, sound Sound, scale, frames int) error {
	ebiten.SetWindowSize(chip8.DisplayWidth*scale, chip8.DisplayHeight*scale+statusHeight)
	ebiten.SetWindowTitle("octarou - " + sess.Path())
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(ctx, logger, sess, sound, frames)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
