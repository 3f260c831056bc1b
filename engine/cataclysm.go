package engine

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/universe"
)

// cataclysmRun is the end-of-universe script as an explicit state
// machine. The original web incarnation of this idea would drive these
// scripts with timers; here every beat is a deadline tick checked by
// Step, so a recorded input trace replays the whole death of a
// universe exactly
type cataclysmRun struct {
	active    bool
	kind      universe.Cataclysm
	startedAt uint64

	// Interval scripts
	nextBeat  uint64
	beatsLeft int

	// One-shot scripts
	regenAt uint64

	// Vacuum decay bubble
	bubbleRadius float64
}

// startCataclysm arms the script for this universe's drawn cataclysm.
// Called exactly once per universe, from the energy threshold
// transition. Scripted work begins on the next tick
func (u *Universe) startCataclysm() {
	c := &u.cataclysm
	c.active = true
	c.kind = u.Profile.Cataclysm
	c.startedAt = u.Tick

	switch c.kind {
	case universe.CataclysmBigCrunch, universe.CataclysmBigRip:
		c.nextBeat = u.Tick + 1
		c.beatsLeft = 40

	case universe.CataclysmSupernova:
		// Immediate transformation, delayed rebirth
		for i := 0; i < u.Arena.Len(); i++ {
			p := u.Arena.At(i)
			dx, dy := p.X-u.W/2, p.Y-u.H/2
			dist := math.Hypot(dx, dy)
			if dist < 1 {
				dist = 1
			}
			p.VX = dx / dist * 8
			p.VY = dy / dist * 8
			p.Color = core.RGBWhite
			p.ColorLocked = true
		}
		c.regenAt = u.Tick + 90

	case universe.CataclysmHeatDeath:
		c.nextBeat = u.Tick + 1
		c.beatsLeft = 60

	case universe.CataclysmVacuumDecay:
		c.bubbleRadius = 4
		c.nextBeat = u.Tick + 1
	}
}

// advanceCataclysm runs one tick of the active script. On completion
// every script regenerates with a freshly derived seed, never the old
// one, and all script state is zeroed by the regeneration
func (u *Universe) advanceCataclysm() {
	c := &u.cataclysm

	switch c.kind {
	case universe.CataclysmBigCrunch:
		if u.Tick >= c.nextBeat {
			cx, cy := u.W/2, u.H/2
			for i := 0; i < u.Arena.Len(); i++ {
				p := u.Arena.At(i)
				p.X += (cx - p.X) * 0.06
				p.Y += (cy - p.Y) * 0.06
				p.Radius *= 0.985
			}
			c.nextBeat = u.Tick + 2
			c.beatsLeft--
			if c.beatsLeft <= 0 {
				u.Regenerate(u.NextSeed())
			}
		}

	case universe.CataclysmBigRip:
		if u.Tick >= c.nextBeat {
			cx, cy := u.W/2, u.H/2
			for i := 0; i < u.Arena.Len(); i++ {
				p := u.Arena.At(i)
				dx, dy := p.X-cx, p.Y-cy
				p.X += dx * 0.05
				p.Y += dy * 0.05
				p.Opacity *= 0.97
			}
			c.nextBeat = u.Tick + 2
			c.beatsLeft--
			if c.beatsLeft <= 0 {
				u.Regenerate(u.NextSeed())
			}
		}

	case universe.CataclysmSupernova:
		for i := 0; i < u.Arena.Len(); i++ {
			p := u.Arena.At(i)
			p.X += p.VX
			p.Y += p.VY
			p.Opacity *= 0.98
		}
		if u.Tick >= c.regenAt {
			u.Regenerate(u.NextSeed())
		}

	case universe.CataclysmHeatDeath:
		if u.Tick >= c.nextBeat {
			for i := 0; i < u.Arena.Len(); i++ {
				p := u.Arena.At(i)
				p.VX *= 0.9
				p.VY *= 0.9
				p.Opacity *= 0.96
			}
			c.nextBeat = u.Tick + 1
			c.beatsLeft--
			if c.beatsLeft <= 0 {
				u.Regenerate(u.NextSeed())
			}
		}

	case universe.CataclysmVacuumDecay:
		c.bubbleRadius *= 1.04
		cx, cy := u.W/2, u.H/2
		for i := u.Arena.Len() - 1; i >= 0; i-- {
			p := u.Arena.At(i)
			dx, dy := p.X-cx, p.Y-cy
			if dx*dx+dy*dy < c.bubbleRadius*c.bubbleRadius {
				u.Arena.Remove(i)
			}
		}
		if c.bubbleRadius > math.Hypot(u.W, u.H) {
			u.Regenerate(u.NextSeed())
		}
	}
}
