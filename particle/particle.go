// Package particle owns the live particle arena, the bond/chain
// relation tables, and lifecycle tagging
package particle

import (
	"github.com/lixenwraith/aether-drift/core"
)

// Particle is one simulated point. All fields are mutated in place by
// the tick driver's resolver passes
type Particle struct {
	ID core.ID

	X, Y   float64
	VX, VY float64

	Radius        float64
	RadiusInitial float64
	Opacity       float64
	Color         core.RGB
	ColorLocked   bool

	// Seed desynchronizes periodic per-particle effects (pulsing,
	// flicker phase) so the population does not beat in unison
	Seed float64

	StartX, StartY float64

	// Status flags
	Crystalized bool
	Coral       bool
	Infected    bool
	Entangled   bool
	Heavy       bool

	// Countdowns in ticks; zero means inactive
	Unravelling  int
	Fading       int
	Consumed     int
	InfectionAge int
}

// Frozen reports whether velocity is pinned to zero by a flag
func (p *Particle) Frozen() bool {
	return p.Crystalized || p.Coral
}
