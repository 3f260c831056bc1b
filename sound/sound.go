// Package sound plays short synthesized cues for interaction events.
// Audio is strictly decorative: initialization failure, a muted
// player, or a nil receiver all degrade to silence without error
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker. A nil Player is valid and silent
type Player struct {
	ready bool
}

// New initializes the speaker with a small buffer. The returned error
// is informational; callers keep the Player and it stays silent
func New() (*Player, error) {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, errors.Wrap(err, "speaker init")
	}
	p.ready = true
	return p, nil
}

// Close releases the speaker
func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	if p == nil || !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// PowerFired marks a click power release
func (p *Player) PowerFired() {
	p.tone(880, 50*time.Millisecond)
}

// CataclysmStarted marks the energy threshold crossing
func (p *Player) CataclysmStarted() {
	p.tone(220, 400*time.Millisecond)
}

// UniverseBorn marks regeneration into a fresh universe
func (p *Player) UniverseBorn() {
	p.tone(660, 120*time.Millisecond)
}
