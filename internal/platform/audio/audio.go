// Package audio plays the runner's sound cues on the default audio device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/trex-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// cue is a run of sine tones played back to back. Several steps make a
// rising or falling glide.
type cue struct {
	steps  []float64 // frequencies in Hz
	step   time.Duration
	volume float64 // exponent for effects.Volume, base 2
}

var cues = map[core.Event]cue{
	core.EventJump:    {steps: []float64{440, 660, 880}, step: 25 * time.Millisecond, volume: -2},
	core.EventCrash:   {steps: []float64{220, 110, 55}, step: 100 * time.Millisecond, volume: -1},
	core.EventRestart: {steps: []float64{660}, step: 60 * time.Millisecond, volume: -3},
}

// streamer builds the cue at the given sample rate.
func (c cue) streamer(sr beep.SampleRate) (beep.Streamer, error) {
	n := sr.N(c.step)
	tones := make([]beep.Streamer, 0, len(c.steps))
	for _, freq := range c.steps {
		sine, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, err
		}
		tones = append(tones, beep.Take(n, sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(tones...),
		Base:     2,
		Volume:   c.volume,
	}, nil
}

// Speaker plays cues on the default audio device. It implements
// sound.Player.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	s := &Speaker{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play queues the cue of every event that has one.
func (s *Speaker) Play(events []core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	for _, e := range events {
		c, ok := cues[e]
		if !ok {
			continue
		}
		st, err := c.streamer(sampleRate)
		if err != nil {
			continue
		}
		speaker.Lock()
		s.mixer.Add(st)
		speaker.Unlock()
	}
}

// Close silences pending cues and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
