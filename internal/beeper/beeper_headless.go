//go:build headless

package beeper

// Beeper tracks the tone state without an audio device.
type Beeper struct {
	tone *Tone
}

// New returns a beeper that does not output any audio.
func New(sampleRate, frequency int, volume float32) (*Beeper, error) {
	return &Beeper{tone: NewTone(sampleRate, frequency, volume)}, nil
}

// SetActive switches the tone on or off.
func (b *Beeper) SetActive(on bool) {
	b.tone.Enable(on)
}

// Active returns whether the tone is on.
func (b *Beeper) Active() bool {
	return b.tone.Enabled()
}

// Close does nothing.
func (b *Beeper) Close() {}
