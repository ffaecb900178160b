// Package audio provides short tone feedback for key presses. Sound is
// strictly optional: speaker failures disable it without affecting the
// calculator.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback plays key clicks and error tones. The zero value is silent
type Feedback struct {
	enabled bool
}

// NewFeedback opens the speaker
func NewFeedback() (*Feedback, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Feedback{enabled: true}, nil
}

// Disabled returns a Feedback that plays nothing
func Disabled() *Feedback {
	return &Feedback{}
}

// Enabled reports whether the speaker is open
func (f *Feedback) Enabled() bool {
	return f.enabled
}

// Close releases the speaker. Safe on a disabled Feedback
func (f *Feedback) Close() {
	if f.enabled {
		f.enabled = false
		speaker.Close()
	}
}

// KeyClick plays a short high tick for an accepted key
func (f *Feedback) KeyClick() {
	f.tone(880, 30*time.Millisecond)
}

// ErrorTone plays a lower tone when a calculation yields Err
func (f *Feedback) ErrorTone() {
	f.tone(220, 120*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
