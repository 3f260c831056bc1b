package engine

import (
	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/parameter"
)

// relaxEntangled pulls each entangled group's members toward their
// original offset around the group's current centroid, giving
// rigid-body cohesion without freezing relative motion. Groups that
// drop below the minimum membership are disbanded and their survivors
// released
func (u *Universe) relaxEntangled() {
	if len(u.Effects.Entangled) == 0 {
		return
	}

	kept := u.Effects.Entangled[:0]
	for gi := range u.Effects.Entangled {
		g := &u.Effects.Entangled[gi]

		// Centroid over current live members only
		var cx, cy float64
		live := 0
		for _, id := range g.Members {
			if p, ok := u.Arena.Get(id); ok {
				cx += p.X
				cy += p.Y
				live++
			}
		}

		if live < parameter.EntangleGroupMin {
			for _, id := range g.Members {
				if p, ok := u.Arena.Get(id); ok {
					p.Entangled = false
				}
			}
			continue
		}
		cx /= float64(live)
		cy /= float64(live)

		for mi, id := range g.Members {
			p, ok := u.Arena.Get(id)
			if !ok {
				continue
			}
			t := core.Vec2{X: cx, Y: cy}.Add(g.Offsets[mi])
			p.X += (t.X - p.X) * parameter.EntangleRelax
			p.Y += (t.Y - p.Y) * parameter.EntangleRelax
		}

		kept = append(kept, *g)
	}
	u.Effects.Entangled = kept
}
