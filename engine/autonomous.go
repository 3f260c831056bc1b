package engine

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/particle"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

// runAutonomous advances every scripted anomaly behavior and expires
// dead effect records. All delayed/repeating behavior lives here as
// deadline ticks; there are no timers anywhere in the engine
func (u *Universe) runAutonomous() {
	e := u.Effects
	now := u.Tick

	for wi := range e.WhiteHoles {
		wh := &e.WhiteHoles[wi]
		if wh.NextEmit == 0 {
			wh.NextEmit = now + parameter.WhiteHoleEmitPeriod
		}
		if now >= wh.NextEmit {
			u.EmitBurst(wh.X, wh.Y, parameter.SpawnBurstCount/2, 2.5)
			wh.NextEmit = now + parameter.WhiteHoleEmitPeriod
		}
	}

	for qi := range e.Quasars {
		q := &e.Quasars[qi]
		phase := (now - q.CycleStart) % parameter.QuasarCyclePeriod
		wasFiring := q.Firing
		q.Firing = phase < parameter.QuasarFiringWindow && now > q.CycleStart
		// New firing window: swing the jet to a fresh heading
		if q.Firing && !wasFiring {
			q.Angle = u.Rng.Range(0, 2*math.Pi)
		}
	}

	for pi := range e.Pulsars {
		e.Pulsars[pi].Angle += e.Pulsars[pi].Spin
	}

	for bi := range e.BlackHoles {
		bh := &e.BlackHoles[bi]
		if bh.Wander {
			bh.X = vmath.Clamp(bh.X+u.Rng.Range(-1.2, 1.2), 0, u.W)
			bh.Y = vmath.Clamp(bh.Y+u.Rng.Range(-1.2, 1.2), 0, u.H)
		}
	}

	for mi := range e.MagneticStorms {
		ms := &e.MagneticStorms[mi]
		if now >= ms.NextFlip {
			ms.Polarity = -ms.Polarity
			ms.NextFlip = now + parameter.StormFlipPeriod
		}
	}

	for si := range e.Supergiants {
		sg := &e.Supergiants[si]
		if sg.NextEmit == 0 {
			sg.NextEmit = now + parameter.SupergiantEmitPeriod
		}
		if now >= sg.NextEmit {
			angle := u.Rng.Range(0, 2*math.Pi)
			u.EmitBurst(sg.X+math.Cos(angle)*30, sg.Y+math.Sin(angle)*30, 3, 1.5)
			sg.NextEmit = now + parameter.SupergiantEmitPeriod
		}
	}

	for gi := range e.Geysers {
		g := &e.Geysers[gi]
		if now >= g.NextEmit {
			for k := 0; k < 4; k++ {
				p := u.Arena.Spawn(g.X+u.Rng.Range(-6, 6), u.H-1)
				p.VX = u.Rng.Range(-0.4, 0.4)
				p.VY = -u.Rng.Range(2.0, 4.5)
				particle.Tag(p, u.Profile, true, u.Rng)
			}
			g.NextEmit = now + parameter.GeyserEmitPeriod
		}
	}

	// Temporal rifts count down and leak particles stochastically
	rifts := e.TemporalRifts[:0]
	for _, tr := range e.TemporalRifts {
		if now >= tr.DiesAt {
			continue
		}
		if u.Rng.Chance(0.02) {
			u.EmitBurst(tr.X, tr.Y, 1, 1.0)
		}
		rifts = append(rifts, tr)
	}
	e.TemporalRifts = rifts

	for fi := range e.SolarFlares {
		fl := &e.SolarFlares[fi]
		if now >= fl.NextBurst {
			u.EmitBurst(fl.X, fl.Y, parameter.SpawnBurstCount/2, 3.5)
			fl.NextBurst = now + parameter.FlareBurstPeriod
		}
	}

	foams := e.FoamPatches[:0]
	for _, fp := range e.FoamPatches {
		if now < fp.DiesAt {
			foams = append(foams, fp)
		}
	}
	e.FoamPatches = foams

	for ni := range e.Nurseries {
		n := &e.Nurseries[ni]
		if now >= n.NextEmit {
			angle := u.Rng.Range(0, 2*math.Pi)
			r := u.Rng.Range(0, n.Radius)
			u.EmitBurst(n.X+math.Cos(angle)*r, n.Y+math.Sin(angle)*r, 2, 0.6)
			n.NextEmit = now + parameter.NurseryEmitPeriod
		}
	}

	// Lingering player gravity wells expire
	wells := e.GravityWells[:0]
	for _, w := range e.GravityWells {
		if w.DiesAt == 0 || now < w.DiesAt {
			wells = append(wells, w)
		}
	}
	e.GravityWells = wells

	u.runAmbient()
}

// runAmbient drives the low-frequency decorative event for this
// universe
func (u *Universe) runAmbient() {
	if u.Tick < u.nextAmbient {
		return
	}

	switch u.Profile.Ambient {
	case universe.AmbientCometShower:
		// A fast bright particle streaks in from a random edge
		p := u.Arena.Spawn(u.Rng.Range(0, u.W), 0)
		p.VX = u.Rng.Range(-1.5, 1.5)
		p.VY = u.Rng.Range(3.0, 5.0)
		p.Radius = u.Rng.Range(2.0, 3.5)
		particle.Tag(p, u.Profile, true, u.Rng)
		u.nextAmbient = u.Tick + 180 + uint64(u.Rng.Intn(240))

	case universe.AmbientMeteorDrizzle:
		p := u.Arena.Spawn(u.Rng.Range(0, u.W), 0)
		p.VX = u.Rng.Range(-0.5, 0.5)
		p.VY = u.Rng.Range(1.5, 2.5)
		particle.Tag(p, u.Profile, true, u.Rng)
		u.nextAmbient = u.Tick + 60 + uint64(u.Rng.Intn(90))

	case universe.AmbientAuroraVeil:
		// Tint the top band with a drifting hue
		hue := math.Mod(u.Profile.BaseHue+float64(u.Tick)*0.1, 360)
		for i := 0; i < u.Arena.Len(); i++ {
			p := u.Arena.At(i)
			if p.Y < u.H*0.25 && !p.ColorLocked {
				p.Color = p.Color.Blend(core.FromHSL(hue, 0.7, 0.6), 0.08)
			}
		}
		u.nextAmbient = u.Tick + 45

	default: // AmbientStillSky
		u.nextAmbient = u.Tick + 600
	}
}
