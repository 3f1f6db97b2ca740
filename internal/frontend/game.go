//go:build !headless

// Package frontend shows the display of a running session in a window and
// feeds the keyboard into the keypad.
package frontend

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/nikoof/octarou/internal/interpreter"
	"github.com/nikoof/octarou/internal/keypad"
	"github.com/nikoof/octarou/internal/session"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

// statusHeight is the height of the status line below the display in pixels.
const statusHeight = 18

// speedStep is the change of the speed per hotkey press in instructions per second.
const speedStep = 100

// hostKeys contains the host key of every keypad key, see keypad.Layout.
var hostKeys = [interpreter.KeyCount]ebiten.Key{
	ebiten.KeyX, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.KeyDigit4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	foregroundColor = color.RGBA{0xe0, 0xe0, 0xd0, 0xff}
	statusColor     = color.RGBA{190, 190, 190, 255}
	haltedColor     = color.RGBA{220, 60, 60, 255}
)

// Sound is switched on while the sound timer of the machine runs.
type Sound interface {
	SetActive(on bool)
}

// Game implements the ebiten.Game interface for a session.
type Game struct {
	ctx     context.Context
	logger  *log.Logger
	session *session.Session
	sound   Sound
	keys    keypad.State

	frames int // frame limit, 0 for unlimited
	frame  int
	screen *ebiten.Image
	pixels []byte
}

// NewGame returns a game that runs the session until the context is
// cancelled, Escape is pressed or the frame limit is reached.
func NewGame(ctx context.Context, logger *log.Logger, sess *session.Session, sound Sound, frames int) *Game {
	return &Game{
		ctx:     ctx,
		logger:  logger,
		session: sess,
		sound:   sound,
		frames:  frames,
	}
}

// Update handles the hotkeys and runs the session for one frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.frames > 0 && g.frame >= g.frames {
		return ebiten.Termination
	}
	g.frame++

	if err := g.handleHotkeys(); err != nil {
		g.logger.Error("Hotkey failed", log.Err(err))
	}

	var down interpreter.Keys
	for i, key := range hostKeys {
		down[i] = ebiten.IsKeyPressed(key)
	}
	down, released := g.keys.Update(down)

	// the session logs errors and keeps the last frame of a halted machine
	_ = g.session.Tick(down, released)
	if g.sound != nil {
		g.sound.SetActive(g.session.SoundActive())
	}
	return nil
}

func (g *Game) handleHotkeys() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.keys.Reset()
		g.logger.Info("Reloading program")
		return g.session.Reload()

	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.keys.Reset()
		if err := g.session.ToggleVariant(); err != nil {
			return err
		}
		g.logger.Info("Switched variant", log.String("variant", g.session.Variant().String()))

	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		return g.changeSpeed(-speedStep)

	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		return g.changeSpeed(speedStep)
	}
	return nil
}

func (g *Game) changeSpeed(delta int) error {
	speed := max(g.session.Speed()+delta, speedStep)
	if err := g.session.SetSpeed(speed); err != nil {
		return fmt.Errorf("changing speed: %w", err)
	}
	g.logger.Debug("Speed changed", log.Int("speed", speed))
	return nil
}

// Draw renders the display scaled to the window and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	display := g.session.Display()
	if display == nil {
		return
	}

	width, height := display.Width(), display.Height()
	if g.screen == nil || g.screen.Bounds().Dx() != width || g.screen.Bounds().Dy() != height {
		g.screen = ebiten.NewImage(width, height)
		g.pixels = make([]byte, 4*width*height)
	}
	fillPixels(g.pixels, display, foregroundColor, backgroundColor)
	g.screen.WritePixels(g.pixels)

	bounds := screen.Bounds()
	areaHeight := bounds.Dy() - statusHeight
	scaleX := float64(bounds.Dx()) / float64(width)
	scaleY := float64(areaHeight) / float64(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	screen.DrawImage(g.screen, op)

	g.drawStatus(screen, areaHeight)
}

func (g *Game) drawStatus(screen *ebiten.Image, y int) {
	line, c := g.status()
	text.Draw(screen, line, basicfont.Face7x13, 4, y+statusHeight-5, c)
}

// status returns the status line, colored red once the machine halted.
func (g *Game) status() (string, color.RGBA) {
	line := fmt.Sprintf("%s  %d ips  %s", g.session.Variant(), g.session.Speed(), g.session.Status())
	if g.session.Err() != nil {
		return line, haltedColor
	}
	return line, statusColor
}

// Layout returns the window size as logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fillPixels converts the display into RGBA pixels.
func fillPixels(pixels []byte, display *interpreter.Display, on, off color.RGBA) {
	for i, px := range display.Pixels() {
		c := off
		if px != 0 {
			c = on
		}
		pixels[4*i] = c.R
		pixels[4*i+1] = c.G
		pixels[4*i+2] = c.B
		pixels[4*i+3] = c.A
	}
}
