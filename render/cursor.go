package render

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
)

// haloCursor draws a pulsing ring at the pointer, tightening while a
// gravity well is held
type haloCursor struct {
	radius float64
	pulse  float64
}

func (h *haloCursor) Init(ctx *Context) {
	h.radius = ctx.Rng.Range(8, 14)
	h.pulse = ctx.Rng.Range(0.03, 0.07)
}

func (h *haloCursor) Update(ctx *Context) {
	target := h.radius
	if ctx.GravityWell {
		target *= 0.5
	}
	// Radius eases toward the target so press and release feel smooth
	h.radius += (target - h.radius) * 0.2
}

func (h *haloCursor) Draw(ctx *Context) {
	r := h.radius * (1 + 0.15*math.Sin(float64(ctx.Tick)*h.pulse))
	col := ctx.Palette[0]
	if ctx.GravityWell {
		col = core.RGBWhite
	}
	ctx.Canvas.Ring(ctx.PointerX, ctx.PointerY, r, col, 0.6)
}

// orbitSparks circles a few bright points around the pointer, speeding
// up with mean particle velocity
type orbitSparks struct {
	count  int
	angles []float64
	radii  []float64
}

func (o *orbitSparks) Init(ctx *Context) {
	o.count = 3 + ctx.Rng.Intn(3)
	o.angles = make([]float64, o.count)
	o.radii = make([]float64, o.count)
	for i := 0; i < o.count; i++ {
		o.angles[i] = ctx.Rng.Range(0, 2*math.Pi)
		o.radii[i] = ctx.Rng.Range(6, 18)
	}
}

func (o *orbitSparks) Update(ctx *Context) {
	step := 0.08 * (1 + ctx.Speed*0.3)
	if ctx.GravityWell {
		step *= 2
	}
	for i := range o.angles {
		o.angles[i] += step * (1 + float64(i)*0.2)
	}
}

func (o *orbitSparks) Draw(ctx *Context) {
	for i := range o.angles {
		x := ctx.PointerX + o.radii[i]*math.Cos(o.angles[i])
		y := ctx.PointerY + o.radii[i]*math.Sin(o.angles[i])
		ctx.Canvas.Plot(x, y, ctx.Palette[i%len(ctx.Palette)], 0.8)
	}
}
