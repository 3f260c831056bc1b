package engine

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/vmath"
)

// applyAnomalies is resolver pass (b): every anomaly field force.
// Effect slices may have been emptied by autonomous bookkeeping since
// the previous tick, so each block ranges defensively over whatever
// records currently exist. Returns true when the particle was removed
func (u *Universe) applyAnomalies(i int) bool {
	p := u.Arena.At(i)

	for _, n := range u.Effects.Nebulae {
		dx, dy := p.X-n.X, p.Y-n.Y
		if dx*dx+dy*dy < n.Radius*n.Radius {
			p.VX *= parameter.NebulaDrag
			p.VY *= parameter.NebulaDrag
			if !p.ColorLocked {
				p.Color = p.Color.Blend(core.FromHSL(n.Hue, 0.6, 0.55), 0.01)
			}
		}
	}

	for _, pl := range u.Effects.Pulsars {
		dx, dy := p.X-pl.X, p.Y-pl.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 || dist > pl.Reach {
			continue
		}
		// Kick particles caught near the rotating beam ray
		beam := math.Atan2(dy, dx) - pl.Angle
		for beam > math.Pi {
			beam -= 2 * math.Pi
		}
		for beam < -math.Pi {
			beam += 2 * math.Pi
		}
		if math.Abs(beam) < 0.12 {
			p.VX += math.Cos(pl.Angle) * parameter.PulsarKick
			p.VY += math.Sin(pl.Angle) * parameter.PulsarKick
		}
	}

	for _, bh := range u.Effects.BlackHoles {
		dx, dy := bh.X-p.X, bh.Y-p.Y
		dist := math.Hypot(dx, dy)
		if dist < bh.Horizon {
			u.Arena.Remove(i)
			return true
		}
		if dist < bh.Radius && dist > 0 {
			pull := bh.Pull * (1 - dist/bh.Radius)
			p.VX += dx / dist * pull
			p.VY += dy / dist * pull
			// Matter inside the accretion band is already lost; it
			// shreds away while spiralling the rest of the way in
			if dist < bh.Horizon*parameter.AccretionBandScale && p.Consumed == 0 {
				p.Consumed = parameter.ConsumedTicks
			}
		}
	}

	for _, wh := range u.Effects.WhiteHoles {
		dx, dy := p.X-wh.X, p.Y-wh.Y
		dist := math.Hypot(dx, dy)
		if dist < wh.Radius && dist > 0 {
			push := wh.Push * (1 - dist/wh.Radius)
			p.VX += dx / dist * push
			p.VY += dy / dist * push
		}
	}

	for wi := range u.Effects.CosmicWebs {
		web := &u.Effects.CosmicWebs[wi]
		if len(web.Nodes) == 0 {
			continue
		}
		// Attract toward the closest node only
		best := 0
		bestD := math.MaxFloat64
		for ni, node := range web.Nodes {
			d := vmath.DistSq(p.X, p.Y, node.X, node.Y)
			if d < bestD {
				bestD = d
				best = ni
			}
		}
		node := web.Nodes[best]
		dx, dy := vmath.Normalize(node.X-p.X, node.Y-p.Y)
		p.VX += dx * parameter.WebNodePull
		p.VY += dy * parameter.WebNodePull
	}

	for _, q := range u.Effects.Quasars {
		if !q.Firing {
			continue
		}
		// Jet corridor: perpendicular distance to the firing axis
		dx, dy := p.X-q.X, p.Y-q.Y
		along := dx*math.Cos(q.Angle) + dy*math.Sin(q.Angle)
		across := -dx*math.Sin(q.Angle) + dy*math.Cos(q.Angle)
		if along > 0 && math.Abs(across) < 18 {
			p.VX += math.Cos(q.Angle) * parameter.QuasarKick
			p.VY += math.Sin(q.Angle) * parameter.QuasarKick
		}
	}

	for _, r := range u.Effects.Rifts {
		dx, dy := p.X-r.X, p.Y-r.Y
		if dx*dx+dy*dy < r.Radius*r.Radius {
			// Teleport out of the rift to a nearby random spot
			angle := u.Rng.Range(0, 2*math.Pi)
			dist := u.Rng.Range(0.4, 1.0) * parameter.RiftTeleportRange
			p.X = vmath.Clamp(r.X+math.Cos(angle)*dist, 0, u.W)
			p.Y = vmath.Clamp(r.Y+math.Sin(angle)*dist, 0, u.H)
		}
	}

	for _, ic := range u.Effects.IonClouds {
		dx, dy := p.X-ic.X, p.Y-ic.Y
		if dx*dx+dy*dy >= ic.Radius*ic.Radius {
			continue
		}
		// Pairwise nudge apart, spatial query not full scan
		for _, id := range u.nearby(p.X, p.Y, parameter.PairForceRadius) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID {
				continue
			}
			d := vmath.Dist(p.X, p.Y, q.X, q.Y)
			if d > 0 && d < parameter.PairForceRadius {
				nx, ny := (p.X-q.X)/d, (p.Y-q.Y)/d
				p.VX += nx * parameter.IonNudge
				p.VY += ny * parameter.IonNudge
			}
		}
	}

	for _, sg := range u.Effects.Supergiants {
		dx, dy := sg.X-p.X, sg.Y-p.Y
		dist := math.Hypot(dx, dy)
		if dist < sg.Radius && dist > 1 {
			p.VX += dx / dist * parameter.SupergiantPull
			p.VY += dy / dist * parameter.SupergiantPull
		}
	}

	for _, cf := range u.Effects.CrystalFields {
		dx, dy := p.X-cf.X, p.Y-cf.Y
		if dx*dx+dy*dy < cf.Radius*cf.Radius {
			p.VX, p.VY = vmath.SnapAngle(p.VX, p.VY, parameter.CrystalSnapStep)
		}
	}

	for _, ns := range u.Effects.NegativeSpaces {
		dx, dy := p.X-ns.X, p.Y-ns.Y
		if dx*dx+dy*dy < ns.Radius*ns.Radius {
			u.Arena.Remove(i)
			return true
		}
	}

	for _, w := range u.Effects.StellarWinds {
		p.VX += w.DirX * parameter.StellarWindPush
		p.VY += w.DirY * parameter.StellarWindPush
	}

	for _, nf := range u.Effects.NoiseFields {
		p.VX += u.Rng.Range(-nf.Amplitude, nf.Amplitude)
		p.VY += u.Rng.Range(-nf.Amplitude, nf.Amplitude)
	}

	for _, ar := range u.Effects.Accelerators {
		dist := vmath.Dist(p.X, p.Y, ar.X, ar.Y)
		if math.Abs(dist-ar.Radius) < ar.Band {
			p.VX *= parameter.AcceleratorBoost
			p.VY *= parameter.AcceleratorBoost
			p.VX, p.VY = vmath.ClampMagnitude(p.VX, p.VY, parameter.MaxSpeed)
		}
	}

	for _, fp := range u.Effects.FoamPatches {
		dx, dy := p.X-fp.X, p.Y-fp.Y
		if dx*dx+dy*dy < fp.Radius*fp.Radius {
			p.VX += u.Rng.Range(-parameter.FoamJitter, parameter.FoamJitter)
			p.VY += u.Rng.Range(-parameter.FoamJitter, parameter.FoamJitter)
		}
	}

	for vi := range u.Effects.EchoVoids {
		ev := &u.Effects.EchoVoids[vi]
		dx, dy := p.X-ev.X, p.Y-ev.Y
		if dx*dx+dy*dy < ev.Radius*ev.Radius {
			ev.History = append(ev.History, core.Vec2{X: p.X, Y: p.Y})
			if len(ev.History) > 512 {
				ev.History = ev.History[len(ev.History)-512:]
			}
		}
	}

	for _, ms := range u.Effects.MagneticStorms {
		p.VX += ms.Polarity * 0.03
	}

	return false
}
