package engine

import (
	"math"

	"github.com/lixenwraith/aether-drift/parameter"
	"github.com/lixenwraith/aether-drift/universe"
	"github.com/lixenwraith/aether-drift/vmath"
)

// applyBoundary integrates motion and handles edge crossings. Runs
// after all four resolver passes within each sub-step. Returns true
// when the particle was absorbed at an edge
func (u *Universe) applyBoundary(i int) bool {
	p := u.Arena.At(i)

	if !p.Frozen() {
		// Passive pointer attraction is part of the blueprint physics
		attr := u.Profile.Physics.Attraction
		if attr != 0 {
			dx, dy := u.cur.PointerX-p.X, u.cur.PointerY-p.Y
			dist := math.Hypot(dx, dy)
			if dist > 1 {
				p.VX += dx / dist * attr
				p.VY += dy / dist * attr
			}
		}

		p.VX *= u.Profile.Physics.Friction
		p.VY *= u.Profile.Physics.Friction
		if p.Heavy {
			p.VX *= 0.92
			p.VY *= 0.92
		}
		p.VX, p.VY = vmath.ClampMagnitude(p.VX, p.VY, parameter.MaxSpeed)

		p.X += p.VX
		p.Y += p.VY
	}

	switch u.Profile.Physics.Boundary {
	case universe.BoundaryWrap:
		if p.X < 0 {
			p.X += u.W
		} else if p.X >= u.W {
			p.X -= u.W
		}
		if p.Y < 0 {
			p.Y += u.H
		} else if p.Y >= u.H {
			p.Y -= u.H
		}

	case universe.BoundaryAbsorb:
		if p.X < -p.Radius || p.X > u.W+p.Radius ||
			p.Y < -p.Radius || p.Y > u.H+p.Radius {
			u.Arena.Remove(i)
			return true
		}

	default: // BoundaryBounce
		if p.X < 0 {
			p.X = 0
			p.VX = -p.VX * parameter.BounceDamping
		} else if p.X > u.W {
			p.X = u.W
			p.VX = -p.VX * parameter.BounceDamping
		}
		if p.Y < 0 {
			p.Y = 0
			p.VY = -p.VY * parameter.BounceDamping
		} else if p.Y > u.H {
			p.Y = u.H
			p.VY = -p.VY * parameter.BounceDamping
		}
	}

	return false
}
