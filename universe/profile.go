package universe

import (
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/vmath"
)

// Profile is the immutable-per-universe configuration produced from
// one seed. It is created once per generation and read-only until the
// next regeneration
type Profile struct {
	Seed       string
	Blueprint  Blueprint
	LeftPower  Power
	RightPower Power
	Ambient    AmbientEvent
	Cataclysm  Cataclysm
	Mutators   []Mutator // 0-2, no duplicates
	Anomaly    Anomaly   // AnomalyNone when absent
	BaseHue    float64
	Physics    Physics
	MaxEnergy  float64
}

// Has reports whether the profile carries the given mutator
func (p *Profile) Has(m Mutator) bool {
	for _, have := range p.Mutators {
		if have == m {
			return true
		}
	}
	return false
}

// Generate draws a complete universe configuration from the RNG.
//
// The draw order below is a compatibility contract: it is the exact
// sequence in which the generator consumes the RNG, and any change
// invalidates every previously shared seed. Append new draws at the
// end only
func Generate(seed string, rng *vmath.FastRand, w, h float64) (*Profile, *Effects) {
	p := &Profile{Seed: seed}
	e := NewEffects()

	// 1. Blueprint, then its power/physics bindings
	p.Blueprint = Blueprint(rng.Intn(int(blueprintCount)))
	spec := &blueprintTable[p.Blueprint]
	p.Physics = spec.physics
	p.LeftPower = spec.leftPowers[rng.Intn(len(spec.leftPowers))]
	p.RightPower = spec.rightPowers[rng.Intn(len(spec.rightPowers))]

	// 2. Ambient event and cataclysm script
	p.Ambient = AmbientEvent(rng.Intn(int(ambientCount)))
	p.Cataclysm = Cataclysm(rng.Intn(int(cataclysmCount)))

	// 3. Aesthetics and energy threshold
	p.BaseHue = rng.Range(spec.hueLo, spec.hueHi)
	p.MaxEnergy = rng.Range(parameter.MaxEnergyFloor, parameter.MaxEnergyCeil)

	// 4. Mutators: staged split, then uniform draws with no duplicates
	roll := rng.Float64()
	var want int
	switch {
	case roll > 0.85:
		want = 2
	case roll > 0.4:
		want = 1
	}
	for len(p.Mutators) < want {
		m := Mutator(rng.Intn(int(mutatorCount)))
		if p.Has(m) {
			continue
		}
		// Wrap-around and absorbing boundaries are mutually exclusive:
		// a crossing particle cannot both wrap and be absorbed
		if m == MutatorTorusField && p.Has(MutatorEventHorizon) {
			continue
		}
		if m == MutatorEventHorizon && p.Has(MutatorTorusField) {
			continue
		}
		p.Mutators = append(p.Mutators, m)
		SpawnMutator(m, rng, e, w, h)
	}

	// 5. Optional anomaly
	if rng.Float64() > 0.6 {
		p.Anomaly = Anomaly(1 + rng.Intn(int(anomalyCount)-1))
		SpawnAnomaly(p.Anomaly, rng, e, w, h)
	}

	// Boundary overrides from mutators
	if p.Has(MutatorTorusField) {
		p.Physics.Boundary = BoundaryWrap
	}
	if p.Has(MutatorEventHorizon) {
		p.Physics.Boundary = BoundaryAbsorb
	}

	return p, e
}
