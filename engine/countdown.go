package engine

import (
	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/vmath"
)

// applyCountdowns is resolver pass (a): ongoing per-particle effects
// that run before any field force. Returns true when the particle was
// removed
func (u *Universe) applyCountdowns(i int) bool {
	p := u.Arena.At(i)

	if p.Unravelling > 0 {
		p.Unravelling--
		p.Radius *= 0.95
		p.Opacity *= 0.95
		p.X += u.Rng.Range(-0.8, 0.8)
		p.Y += u.Rng.Range(-0.8, 0.8)
		if p.Unravelling == 0 || p.Radius < 0.05 {
			u.Arena.Remove(i)
			return true
		}
	}

	if p.Fading > 0 {
		p.Fading--
		p.Opacity = float64(p.Fading) / parameter.FadeTicks
		if p.Fading == 0 {
			u.Arena.Remove(i)
			return true
		}
	}

	if p.Consumed > 0 {
		p.Consumed--
		p.Radius *= 0.9
		if p.Consumed == 0 || p.Radius < 0.05 {
			u.Arena.Remove(i)
			return true
		}
	}

	if p.Infected {
		p.InfectionAge++
		if !p.ColorLocked {
			p.Color = p.Color.Blend(core.RGB{R: 80, G: 220, B: 60}, 0.05)
		}
		if p.InfectionAge > parameter.InfectionLife && p.Fading == 0 {
			p.Fading = parameter.FadeTicks
		}
	}

	// Crystallized and coral particles are pinned until a power thaws them
	if p.Frozen() {
		p.VX = 0
		p.VY = 0
	} else if vmath.MagnitudeSq(p.VX, p.VY) < parameter.CoralStillSpeedSq {
		// Near-still particles touching a frozen neighbor calcify and
		// join the reef
		for _, id := range u.nearby(p.X, p.Y, parameter.CoralAccreteRadius) {
			q, ok := u.Arena.Get(id)
			if !ok || q.ID == p.ID || !q.Frozen() {
				continue
			}
			if u.Rng.Chance(parameter.CoralGrowthChance) {
				p.Coral = true
				p.VX, p.VY = 0, 0
			}
			break
		}
	}

	// Natural decay death, independent of any countdown
	if p.Radius < 0.05 || p.Opacity <= 0 {
		u.Arena.Remove(i)
		return true
	}

	return false
}
