package bell

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate of the generated tone
const SampleRate = beep.SampleRate(44100)

// Tone attack and release
const (
	toneAttack  = 5 * time.Millisecond
	toneRelease = 20 * time.Millisecond
)

// Tone plays a short enveloped sine through the system audio device. The
// speaker is opened on the first ring
type Tone struct {
	freq     float64
	duration time.Duration
	volume   float64

	mu     sync.Mutex
	opened bool
	closed bool

	// Swapped in tests to keep the audio device out
	init  func() error
	play  func(beep.Streamer)
	close func()
}

// NewTone creates a tone bell; volume is linear in [0, 1]
func NewTone(freq float64, duration time.Duration, volume float64) *Tone {
	return &Tone{
		freq:     freq,
		duration: duration,
		volume:   volume,
		init:  func() error {
			return speaker.Init(SampleRate, SampleRate.N(time.Second/10))
		},
		play:  func(s beep.Streamer) { speaker.Play(s) },
		close: speaker.Close,
	}
}

func (t *Tone) Ring() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	if !t.opened {
		if err := t.init(); err != nil {
			return fmt.Errorf("bell: audio init: %w", err)
		}
		t.opened = true
	}
	s, err := t.Streamer()
	if err != nil {
		return err
	}
	t.play(s)
	return nil
}

// Close releases the audio device if it was opened
func (t *Tone) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.opened && !t.closed {
		t.close()
	}
	t.closed = true
}

// Streamer builds one ring of the tone
func (t *Tone) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("bell: tone %gHz: %w", t.freq, err)
	}
	total := SampleRate.N(t.duration)
	shaped := newEnvelope(beep.Take(total, sine), total, SampleRate.N(toneAttack), SampleRate.N(toneRelease))
	return withVolume(shaped, t.volume), nil
}

// envelope fades a stream in over attack samples and out over the last release samples
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	attack = min(attack, total/2)
	release = min(release, total-attack)
	return &envelope{s: s, total: total, attack: attack, release: release}
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.pos < e.attack:
		return float64(e.pos) / float64(e.attack)
	case e.release > 0 && e.pos >= e.total-e.release:
		return float64(e.total-e.pos) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume applies a linear volume; Log2(0) is -Inf so zero is silenced instead
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
