//go:build !headless

package beeper

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

type player interface {
	Play()
	Pause()
	Close() error
}

// Beeper outputs a tone on the default audio device.
type Beeper struct {
	tone *Tone

	mutex  sync.Mutex
	ctx    *oto.Context
	player player
}

// New opens the audio device and starts the silent tone playback.
func New(sampleRate, frequency int, volume float32) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		tone: NewTone(sampleRate, frequency, volume),
		ctx:  ctx,
	}
	p := ctx.NewPlayer(b.tone)
	p.Play()
	b.player = p
	return b, nil
}

// SetActive switches the tone on or off.
func (b *Beeper) SetActive(on bool) {
	b.tone.Enable(on)
}

// Active returns whether the tone is on.
func (b *Beeper) Active() bool {
	return b.tone.Enabled()
}

// Close stops the playback and releases the player.
func (b *Beeper) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.player != nil {
		b.player.Pause()
		_ = b.player.Close()
		b.player = nil
	}
}
