// Package render draws the universe onto a terminal canvas. Decorative
// content ships as plugins in four families: background architecture,
// cursor effect, cursor trail, and warp field. One variant per family
// is active at a time, chosen by a single seeded index draw, so adding
// variants never touches the simulation
package render

import (
	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/vmath"
)

// Context carries per-frame shared state into plugin calls. Plugins
// own no references to the simulation; everything they may read is
// copied here before the draw pass
type Context struct {
	Rng     *vmath.FastRand
	Canvas  *Canvas
	Palette []core.RGB

	W, H     float64
	PointerX float64
	PointerY float64
	Tick     uint64

	// Speed is mean particle velocity magnitude, driving motion-reactive
	// variants. GravityWell reports whether a held pull power is active
	Speed       float64
	GravityWell bool
}

// Plugin is the contract every decorative variant implements. Init
// seeds internal state from the shared RNG, Update advances it one
// frame, Draw renders onto the shared canvas. Init is called once per
// universe, before any Update
type Plugin interface {
	Init(ctx *Context)
	Update(ctx *Context)
	Draw(ctx *Context)
}

var (
	backgroundVariants = []func() Plugin{
		func() Plugin { return &constellationField{} },
		func() Plugin { return &dustLattice{} },
		func() Plugin { return &driftMotes{} },
	}
	cursorVariants = []func() Plugin{
		func() Plugin { return &haloCursor{} },
		func() Plugin { return &orbitSparks{} },
	}
	trailVariants = []func() Plugin{
		func() Plugin { return &pointTrail{} },
		func() Plugin { return &emberTrail{} },
	}
	warpVariants = []func() Plugin{
		func() Plugin { return &radialWarp{} },
		func() Plugin { return &flowWarp{} },
	}
)

// pickVariant consumes exactly one draw regardless of family size
func pickVariant(rng *vmath.FastRand, family []func() Plugin) Plugin {
	return family[rng.Intn(len(family))]()
}

func PickBackground(rng *vmath.FastRand) Plugin { return pickVariant(rng, backgroundVariants) }
func PickCursor(rng *vmath.FastRand) Plugin     { return pickVariant(rng, cursorVariants) }
func PickTrail(rng *vmath.FastRand) Plugin      { return pickVariant(rng, trailVariants) }
func PickWarp(rng *vmath.FastRand) Plugin       { return pickVariant(rng, warpVariants) }
