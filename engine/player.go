package engine

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/particle"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

// applyPlayer is resolver pass (d): held-power forces, lingering
// gravity wells, and infection spread. Player forces are suppressed
// for phased, stasis, crystallized and entangled particles; stasis
// additionally zeroes velocity
func (u *Universe) applyPlayer(i int) bool {
	p := u.Arena.At(i)

	stasis := u.inStasis(p.X, p.Y)
	if stasis {
		p.VX = 0
		p.VY = 0
	}

	suppressed := stasis || p.Crystalized || p.Entangled || u.inPhaseZone(p.X, p.Y)

	if !suppressed {
		if u.cur.PrimaryDown && u.Profile.LeftPower.Held() {
			u.applyHeldPower(u.Profile.LeftPower, p)
		}
		if u.cur.SecondaryDown && u.Profile.RightPower.Held() {
			u.applyHeldPower(u.Profile.RightPower, p)
		}

		for _, w := range u.Effects.GravityWells {
			dx, dy := w.X-p.X, w.Y-p.Y
			dist := math.Hypot(dx, dy)
			if dist < w.Radius && dist > 1 {
				f := w.Strength * (1 - dist/w.Radius)
				p.VX += dx / dist * f
				p.VY += dy / dist * f
			}
		}
	}

	// Infection spreads regardless of suppression; disease does not
	// care about phase state
	if p.Infected {
		for _, id := range u.nearby(p.X, p.Y, parameter.InfectionRadius) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID || q.Infected {
				continue
			}
			if vmath.DistSq(p.X, p.Y, q.X, q.Y) < parameter.InfectionRadius*parameter.InfectionRadius &&
				u.Rng.Chance(0.04) {
				q.Infected = true
			}
		}
	}

	return false
}

func (u *Universe) applyHeldPower(pw universe.Power, p *particle.Particle) {
	px, py := u.cur.PointerX, u.cur.PointerY
	dx, dy := px-p.X, py-p.Y
	dist := math.Hypot(dx, dy)
	if dist > parameter.PowerRadius || dist < 1 {
		return
	}
	falloff := 1 - dist/parameter.PowerRadius

	switch pw {
	case universe.PowerGravityWell:
		p.VX += dx / dist * parameter.GravityWellPull * falloff
		p.VY += dy / dist * parameter.GravityWellPull * falloff
	case universe.PowerRepulsor:
		p.VX -= dx / dist * parameter.RepulsorPush * falloff
		p.VY -= dy / dist * parameter.RepulsorPush * falloff
	case universe.PowerVortex:
		// Tangential swirl plus a mild inward pull
		p.VX += (-dy/dist*parameter.VortexSwirl + dx/dist*0.05) * falloff
		p.VY += (dx/dist*parameter.VortexSwirl + dy/dist*0.05) * falloff
	}
}

// fireClickPowers runs once per tick, before the particle pass.
// Single-shot powers fire on the release edge of their button
func (u *Universe) fireClickPowers() {
	if u.prev.PrimaryDown && !u.cur.PrimaryDown && !u.Profile.LeftPower.Held() {
		u.fireClickPower(u.Profile.LeftPower)
	}
	if u.prev.SecondaryDown && !u.cur.SecondaryDown && !u.Profile.RightPower.Held() {
		u.fireClickPower(u.Profile.RightPower)
	}

	// Releasing a held pull power leaves a lingering well behind
	if u.prev.PrimaryDown && !u.cur.PrimaryDown && u.Profile.LeftPower == universe.PowerGravityWell ||
		u.prev.SecondaryDown && !u.cur.SecondaryDown && u.Profile.RightPower == universe.PowerGravityWell {
		u.Effects.GravityWells = append(u.Effects.GravityWells, universe.GravityWell{
			X: u.cur.PointerX, Y: u.cur.PointerY,
			Radius:   parameter.PowerRadius,
			Strength: parameter.GravityWellPull * 0.4,
			DiesAt:   u.Tick + 180,
		})
	}
}

func (u *Universe) fireClickPower(pw universe.Power) {
	px, py := u.cur.PointerX, u.cur.PointerY

	switch pw {
	case universe.PowerShockwave:
		for i := 0; i < u.Arena.Len(); i++ {
			p := u.Arena.At(i)
			dx, dy := p.X-px, p.Y-py
			dist := math.Hypot(dx, dy)
			if dist < parameter.ShockwaveRadius && dist > 1 && !p.Frozen() {
				impulse := parameter.ShockwaveImpulse * (1 - dist/parameter.ShockwaveRadius)
				p.VX += dx / dist * impulse
				p.VY += dy / dist * impulse
			}
		}

	case universe.PowerSpawnBurst:
		u.EmitBurst(px, py, parameter.SpawnBurstCount, 2.0)

	case universe.PowerCrystallize:
		for _, id := range u.nearby(px, py, parameter.PowerRadius/2) {
			if p, ok := u.Arena.Get(id); ok {
				if vmath.DistSq(px, py, p.X, p.Y) < (parameter.PowerRadius/2)*(parameter.PowerRadius/2) {
					p.Crystalized = true
					p.VX, p.VY = 0, 0
				}
			}
		}

	case universe.PowerThaw:
		for _, id := range u.nearby(px, py, parameter.PowerRadius) {
			if p, ok := u.Arena.Get(id); ok {
				p.Crystalized = false
				p.Coral = false
			}
		}

	case universe.PowerInfect:
		// Infect the single nearest particle; patient zero
		var best core.ID
		bestD := parameter.PowerRadius * parameter.PowerRadius
		for _, id := range u.nearby(px, py, parameter.PowerRadius) {
			if p, ok := u.Arena.Get(id); ok {
				if d := vmath.DistSq(px, py, p.X, p.Y); d < bestD {
					bestD = d
					best = id
				}
			}
		}
		if p, ok := u.Arena.Get(best); ok {
			p.Infected = true
		}

	case universe.PowerEntangle:
		u.entangleAround(px, py)

	case universe.PowerUnravel:
		for _, id := range u.nearby(px, py, parameter.PowerRadius/2) {
			if p, ok := u.Arena.Get(id); ok && p.Unravelling == 0 {
				if vmath.DistSq(px, py, p.X, p.Y) < (parameter.PowerRadius/2)*(parameter.PowerRadius/2) {
					p.Unravelling = parameter.UnravelTicks
				}
			}
		}
	}
}

// entangleAround freezes the relative geometry of every particle near
// the pointer into a new rigid group
func (u *Universe) entangleAround(px, py float64) {
	var members []core.ID
	var sumX, sumY float64
	for _, id := range u.nearby(px, py, parameter.PowerRadius/2) {
		p, ok := u.Arena.Get(id)
		if !ok || p.Entangled {
			continue
		}
		if vmath.DistSq(px, py, p.X, p.Y) < (parameter.PowerRadius/2)*(parameter.PowerRadius/2) {
			members = append(members, id)
			sumX += p.X
			sumY += p.Y
		}
	}
	if len(members) < parameter.EntangleGroupMin {
		return
	}

	cx, cy := sumX/float64(len(members)), sumY/float64(len(members))
	offsets := make([]core.Vec2, len(members))
	for mi, id := range members {
		p, _ := u.Arena.Get(id)
		p.Entangled = true
		offsets[mi] = core.Vec2{X: p.X, Y: p.Y}.Sub(core.Vec2{X: cx, Y: cy})
	}
	u.Effects.Entangled = append(u.Effects.Entangled, universe.EntangledGroup{
		Members: members,
		Offsets: offsets,
	})
}

// EmitBurst spawns and tags n particles around (x, y) with random
// outward velocity up to speed. Used by powers, anomaly emissions and
// ambient events
func (u *Universe) EmitBurst(x, y float64, n int, speed float64) {
	for k := 0; k < n; k++ {
		angle := u.Rng.Range(0, 2*math.Pi)
		p := u.Arena.Spawn(
			vmath.Clamp(x+u.Rng.Range(-4, 4), 0, u.W),
			vmath.Clamp(y+u.Rng.Range(-4, 4), 0, u.H),
		)
		v := u.Rng.Range(0.3, 1.0) * speed
		p.VX = math.Cos(angle) * v
		p.VY = math.Sin(angle) * v
		particle.Tag(p, u.Profile, true, u.Rng)
	}
}
