package particle

import (
	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

// Tag stamps simulation metadata onto a particle. It must run on every
// freshly spawned particle (base emitter, anomaly emission, power
// spawns, fragmentation) and on every survivor at regeneration; an
// untagged particle carries stale flags and a zero initial radius,
// which breaks pulsing and bond bookkeeping downstream.
//
// Initial geometry (RadiusInitial, StartX, StartY) is set once: again
// only when initialLoad forces a full restamp
func Tag(p *Particle, profile *universe.Profile, initialLoad bool, rng *vmath.FastRand) {
	if initialLoad || p.RadiusInitial == 0 {
		if p.Radius == 0 {
			p.Radius = rng.Range(1.0, 3.2)
		}
		// Size variance widens the radius distribution once, at birth
		if profile.Has(universe.MutatorSizeVariance) {
			p.Radius *= rng.Range(0.5, 2.4)
		}
		p.RadiusInitial = p.Radius
		p.StartX = p.X
		p.StartY = p.Y
	}

	// Heavy particles: a one-time per-particle draw, not a global rule
	p.Heavy = false
	if profile.Has(universe.MutatorHeavyParticles) && rng.Chance(0.15) {
		p.Heavy = true
	}

	// Transient state always resets to defaults
	p.Crystalized = false
	p.Coral = false
	p.Infected = false
	p.Entangled = false
	p.Unravelling = 0
	p.Fading = 0
	p.Consumed = 0
	p.InfectionAge = 0
	p.ColorLocked = false
	p.Opacity = 1

	if p.Color == (core.RGB{}) {
		p.Color = core.FromHSL(profile.BaseHue+rng.Range(-20, 20), 0.7, rng.Range(0.45, 0.7))
	}

	// Fresh per-particle phase draw, desynchronizing periodic effects
	p.Seed = rng.Float64()
}

// TagAll restamps every live particle, used at universe regeneration
func TagAll(a *Arena, profile *universe.Profile, rng *vmath.FastRand) {
	for i := 0; i < a.Len(); i++ {
		Tag(a.At(i), profile, true, rng)
	}
}
