// Package beeper plays the tone of the CHIP-8 sound timer.
package beeper

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Tone defaults.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440
	DefaultVolume     = 0.2

	bytesPerSample = 4 // mono float32
)

// Tone is an endless square wave in mono 32 bit float little endian samples.
// It outputs silence while it is not enabled. Enable is safe to call
// concurrently with Read.
type Tone struct {
	enabled atomic.Bool

	period int // samples per wave period
	volume float32
	pos    int
}

// NewTone returns a disabled square wave tone.
func NewTone(sampleRate, frequency int, volume float32) *Tone {
	period := 1
	if frequency > 0 {
		period = max(sampleRate/frequency, 2)
	}
	return &Tone{
		period: period,
		volume: volume,
	}
}

// Enable switches the tone on or off.
func (t *Tone) Enable(on bool) {
	t.enabled.Store(on)
}

// Enabled returns whether the tone is on.
func (t *Tone) Enabled() bool {
	return t.enabled.Load()
}

// Read fills p with samples, it never returns an error.
func (t *Tone) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	on := t.enabled.Load()

	for i := range samples {
		var sample float32
		if on {
			sample = t.volume
			if t.pos >= t.period/2 {
				sample = -t.volume
			}
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
		t.pos = (t.pos + 1) % t.period
	}

	// zero a trailing partial sample
	n := samples * bytesPerSample
	clear(p[n:])
	return len(p), nil
}
