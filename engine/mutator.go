package engine

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/particle"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

// applyMutators is resolver pass (c): the 0-2 active mutators applied
// in their drawn order. Returns true when the particle was removed
func (u *Universe) applyMutators(i int) bool {
	for _, m := range u.Profile.Mutators {
		if u.applyMutator(m, i) {
			return true
		}
	}
	return false
}

func (u *Universe) applyMutator(m universe.Mutator, i int) bool {
	p := u.Arena.At(i)

	switch m {
	case universe.MutatorRepulsion:
		for _, id := range u.nearby(p.X, p.Y, parameter.PairForceRadius) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID {
				continue
			}
			d := vmath.Dist(p.X, p.Y, q.X, q.Y)
			if d > 0 && d < parameter.PairForceRadius {
				f := parameter.RepulsionStrength * (1 - d/parameter.PairForceRadius)
				p.VX += (p.X - q.X) / d * f
				p.VY += (p.Y - q.Y) / d * f
			}
		}

	case universe.MutatorClustering:
		for _, id := range u.nearby(p.X, p.Y, parameter.PairForceRadius) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID {
				continue
			}
			d := vmath.Dist(p.X, p.Y, q.X, q.Y)
			if d > p.Radius+q.Radius && d < parameter.PairForceRadius {
				f := parameter.ClusterStrength * (d / parameter.PairForceRadius)
				p.VX += (q.X - p.X) / d * f
				p.VY += (q.Y - p.Y) / d * f
			}
		}

	case universe.MutatorElasticCollision:
		for _, id := range u.nearby(p.X, p.Y, parameter.PairForceRadius) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID {
				continue
			}
			d := vmath.Dist(p.X, p.Y, q.X, q.Y)
			overlap := p.Radius + q.Radius - d
			if d > 0 && overlap > 0 {
				nx, ny := (p.X-q.X)/d, (p.Y-q.Y)/d
				// Separate, then exchange the normal velocity component
				p.X += nx * overlap / 2
				p.Y += ny * overlap / 2
				rel := (p.VX-q.VX)*nx + (p.VY-q.VY)*ny
				if rel < 0 {
					p.VX -= rel * nx
					p.VY -= rel * ny
					q.VX += rel * nx
					q.VY += rel * ny
				}
			}
		}

	case universe.MutatorRainbow:
		if !p.ColorLocked {
			hue := math.Mod(float64(u.Tick)*1.5+p.Seed*360, 360)
			p.Color = core.FromHSL(hue, 0.8, 0.6)
		}

	case universe.MutatorFlicker:
		p.Opacity = 0.55 + 0.45*math.Sin(float64(u.Tick)*0.25+p.Seed*2*math.Pi)

	case universe.MutatorCarnival:
		if !p.ColorLocked && u.Rng.Chance(0.02) {
			p.Color = core.FromHSL(u.Rng.Range(0, 360), 0.9, 0.6)
		}

	case universe.MutatorPairBonding:
		u.applyBonding(p)

	case universe.MutatorFragmentation:
		if u.Rng.Chance(parameter.FragmentChance) && p.Radius > 1.0 {
			x, y, r := p.X, p.Y, p.Radius
			vx, vy := p.VX, p.VY
			child := u.Arena.Spawn(x+u.Rng.Range(-2, 2), y+u.Rng.Range(-2, 2))
			child.Radius = r * 0.6
			child.VX = -vx + u.Rng.Range(-0.5, 0.5)
			child.VY = -vy + u.Rng.Range(-0.5, 0.5)
			particle.Tag(child, u.Profile, true, u.Rng)
			// Spawn may have reallocated the arena backing array
			p = u.Arena.At(i)
			p.Radius *= 0.8
		}

	case universe.MutatorChainLink:
		u.applyChain(i)

	case universe.MutatorSelfPropulsion:
		nx, ny := vmath.Normalize(p.VX, p.VY)
		if nx == 0 && ny == 0 {
			angle := p.Seed * 2 * math.Pi
			nx, ny = math.Cos(angle), math.Sin(angle)
		}
		p.VX += nx * parameter.PropulsionGain
		p.VY += ny * parameter.PropulsionGain

	case universe.MutatorBrownian:
		p.VX += u.Rng.Range(-parameter.BrownianJitter, parameter.BrownianJitter)
		p.VY += u.Rng.Range(-parameter.BrownianJitter, parameter.BrownianJitter)

	case universe.MutatorChoral:
		p.VX = vmath.Lerp(p.VX, u.choralVX, parameter.ChoralBlend)
		p.VY = vmath.Lerp(p.VY, u.choralVY, parameter.ChoralBlend)

	case universe.MutatorSilkWeave:
		for _, t := range u.Effects.SilkThreads {
			cx, cy, d := closestOnSegment(p.X, p.Y, t.A.X, t.A.Y, t.B.X, t.B.Y)
			if d < 30 && d > 0 {
				p.VX += (cx - p.X) / d * 0.05
				p.VY += (cy - p.Y) / d * 0.05
			}
		}

	case universe.MutatorCosmicRivers:
		for _, r := range u.Effects.CosmicRivers {
			if math.Abs(p.Y-r.Y) < r.HalfWidth {
				p.VX += r.Flow * 0.1
			}
		}

	case universe.MutatorSizeVariance, universe.MutatorHeavyParticles:
		// One-time effects applied at tag time

	case universe.MutatorPhaseShift, universe.MutatorTimeDilation,
		universe.MutatorStasisPockets:
		// Zone-based; handled by zone membership checks

	case universe.MutatorTorusField, universe.MutatorEventHorizon:
		// Boundary overrides; handled in boundary pass
	}

	return false
}

// applyBonding forms a bond with the nearest unbonded neighbor, pulls
// bonded pairs together, and breaks bonds stretched past the limit
func (u *Universe) applyBonding(p *particle.Particle) {
	rel := u.Arena.Relations()

	partner := rel.BondPartner(p.ID)
	if partner != core.None {
		q, ok := u.Arena.Get(partner)
		if !ok {
			// Dangling reference: partner died this tick
			rel.Unbond(p.ID)
			return
		}
		d := vmath.Dist(p.X, p.Y, q.X, q.Y)
		if d > parameter.BondBreakRadius {
			rel.Unbond(p.ID)
			return
		}
		if d > 0 {
			f := parameter.BondSpring * (d - parameter.BondRadius/2) / d
			p.VX += (q.X - p.X) * f
			p.VY += (q.Y - p.Y) * f
		}
		return
	}

	// Unbonded: look for the nearest unbonded neighbor in range
	var best core.ID
	bestD := parameter.BondRadius
	for _, id := range u.nearby(p.X, p.Y, parameter.BondRadius) {
		q, ok := u.Arena.Get(id)
		if !ok || q.ID == p.ID || rel.BondPartner(q.ID) != core.None {
			continue
		}
		d := vmath.Dist(p.X, p.Y, q.X, q.Y)
		if d < bestD {
			bestD = d
			best = q.ID
		}
	}
	if best != core.None {
		rel.Bond(p.ID, best)
	}
}

// applyChain links free particles into singly-linked chains and
// applies a spring constraint toward the rest length
func (u *Universe) applyChain(i int) {
	p := u.Arena.At(i)
	rel := u.Arena.Relations()

	if child := rel.ChainChild(p.ID); child != core.None {
		q, ok := u.Arena.Get(child)
		if !ok {
			rel.UnlinkChild(p.ID)
		} else {
			d := vmath.Dist(p.X, p.Y, q.X, q.Y)
			if d > 0 {
				f := parameter.ChainSpring * (d - parameter.ChainRestLength) / d
				p.VX += (q.X - p.X) * f
				p.VY += (q.Y - p.Y) * f
				q.VX += (p.X - q.X) * f
				q.VY += (p.Y - q.Y) * f
			}
		}
	}

	// Childless particle adopts a nearby parentless one
	if rel.ChainChild(p.ID) == core.None {
		for _, id := range u.nearby(p.X, p.Y, parameter.ChainRestLength*1.5) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID {
				continue
			}
			if rel.ChainParent(q.ID) != core.None || q.ID == rel.ChainParent(p.ID) {
				continue
			}
			rel.Link(p.ID, q.ID)
			break
		}
	}
}

// closestOnSegment returns the nearest point on segment AB to (px, py)
// and the distance to it
func closestOnSegment(px, py, ax, ay, bx, by float64) (cx, cy, dist float64) {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = vmath.Clamp(((px-ax)*dx+(py-ay)*dy)/lenSq, 0, 1)
	}
	cx = ax + dx*t
	cy = ay + dy*t
	dist = vmath.Dist(px, py, cx, cy)
	return cx, cy, dist
}
