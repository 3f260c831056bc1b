package engine

import (
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/universe"
)

// Step advances the simulation by one tick. This is the only mutation
// entry point; the fixed step order below is load-bearing for replay
// compatibility:
//
//  1. tick counter
//  2. cataclysm early-exit (script still advances)
//  3. spatial grid rebuild
//  4. energy bookkeeping and the one-way Unstable transition
//  5. (canvas fade happens in the render layer, via TrailAlpha)
//  6. per-particle resolver chain, reverse order, dilation sub-steps
//  7. entangled group relaxation
//  8. autonomous anomaly behavior and effect lifetimes
//  9. population cap
func (u *Universe) Step(f Frame) {
	u.cur = f
	u.Tick++

	if u.cataclysm.active {
		u.advanceCataclysm()
		u.prev = f
		return
	}

	u.rebuildGrid()
	u.accumulateEnergy(f)
	u.fireClickPowers()

	// Global velocity means for the choral mutator, computed before
	// any particle moves this tick
	if u.Profile.Has(universe.MutatorChoral) {
		u.choralVX, u.choralVY = u.meanVelocity()
	}

	// Reverse index order so self-removal cannot skip a neighbor
	for i := u.Arena.Len() - 1; i >= 0; i-- {
		factor := u.dilationAt(u.Arena.At(i).X, u.Arena.At(i).Y)

		steps := 1
		switch {
		case factor > 1:
			steps = int(factor)
			if u.Rng.Chance(factor - float64(steps)) {
				steps++
			}
		case factor < 1:
			// Expected-value slowdown: skip the whole chain this tick
			// with probability 1-factor
			if !u.Rng.Chance(factor) {
				steps = 0
			}
		}

		for s := 0; s < steps; s++ {
			if u.resolveParticle(i) {
				break // removed; index i now names a different particle
			}
		}
	}

	u.relaxEntangled()
	u.runAutonomous()

	if excess := u.Arena.Len() - parameter.MaxParticleCount; excess > 0 {
		u.Arena.Trim(excess)
	}

	u.prev = f
}

// resolveParticle runs the four resolver passes and boundary handling
// for the particle at index i. Returns true when the particle was
// removed, which aborts further processing this tick
func (u *Universe) resolveParticle(i int) bool {
	if u.applyCountdowns(i) {
		return true
	}
	if u.applyAnomalies(i) {
		return true
	}
	if u.applyMutators(i) {
		return true
	}
	if u.applyPlayer(i) {
		return true
	}
	return u.applyBoundary(i)
}

func (u *Universe) rebuildGrid() {
	u.Grid.Clear()
	for i := 0; i < u.Arena.Len(); i++ {
		u.Grid.Insert(u.Arena.At(i).ID)
	}
}

// accumulateEnergy charges while either button is held, decays toward
// zero otherwise. Crossing the threshold flips Stable -> Unstable and
// starts the cataclysm exactly once per universe; the transition is
// one-way until regeneration
func (u *Universe) accumulateEnergy(f Frame) {
	if f.PrimaryDown || f.SecondaryDown {
		u.Energy += parameter.EnergyChargeRate
	} else {
		u.Energy -= parameter.EnergyDecayRate
		if u.Energy < 0 {
			u.Energy = 0
		}
	}

	if u.Energy > u.Profile.MaxEnergy && u.Stability != StabilityUnstable {
		u.Stability = StabilityUnstable
		u.startCataclysm()
	}
}

// dilationAt returns the local time-dilation factor, 1 outside all
// zones. Overlapping zones multiply
func (u *Universe) dilationAt(x, y float64) float64 {
	factor := 1.0
	for _, z := range u.Effects.DilationZones {
		dx, dy := x-z.X, y-z.Y
		if dx*dx+dy*dy < z.Radius*z.Radius {
			factor *= z.Factor
		}
	}
	for _, r := range u.Effects.TemporalRifts {
		dx, dy := x-r.X, y-r.Y
		if dx*dx+dy*dy < r.Radius*r.Radius {
			factor *= 0.5
		}
	}
	return factor
}

func (u *Universe) meanVelocity() (float64, float64) {
	n := u.Arena.Len()
	if n == 0 {
		return 0, 0
	}
	var sx, sy float64
	for i := 0; i < n; i++ {
		p := u.Arena.At(i)
		sx += p.VX
		sy += p.VY
	}
	return sx / float64(n), sy / float64(n)
}

// inPhaseZone reports whether the point sits inside a phase region,
// which suppresses all player forces
func (u *Universe) inPhaseZone(x, y float64) bool {
	for _, z := range u.Effects.PhaseZones {
		dx, dy := x-z.X, y-z.Y
		if dx*dx+dy*dy < z.Radius*z.Radius {
			return true
		}
	}
	return false
}

// inStasis reports whether the point sits inside a stasis field
func (u *Universe) inStasis(x, y float64) bool {
	for _, z := range u.Effects.StasisFields {
		dx, dy := x-z.X, y-z.Y
		if dx*dx+dy*dy < z.Radius*z.Radius {
			return true
		}
	}
	return false
}
