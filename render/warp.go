package render

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
)

type warpStar struct {
	angle float64
	dist  float64
	speed float64
}

// radialWarp streams starlines outward from screen center. Mean
// particle speed stretches the lines; an active gravity well reverses
// the flow inward
type radialWarp struct {
	stars []warpStar
}

func (w *radialWarp) Init(ctx *Context) {
	n := 40 + ctx.Rng.Intn(30)
	w.stars = make([]warpStar, n)
	for i := range w.stars {
		w.stars[i] = w.respawn(ctx)
	}
}

func (w *radialWarp) respawn(ctx *Context) warpStar {
	return warpStar{
		angle: ctx.Rng.Range(0, 2*math.Pi),
		dist:  ctx.Rng.Range(10, 60),
		speed: ctx.Rng.Range(0.3, 1.2),
	}
}

func (w *radialWarp) Update(ctx *Context) {
	maxDist := math.Hypot(ctx.W, ctx.H) / 2
	for i := range w.stars {
		s := &w.stars[i]
		v := s.speed * (0.5 + ctx.Speed*0.4)
		if ctx.GravityWell {
			v = -v * 1.5
		}
		s.dist += v
		if s.dist > maxDist || s.dist < 5 {
			w.stars[i] = w.respawn(ctx)
		}
	}
}

func (w *radialWarp) Draw(ctx *Context) {
	cx, cy := ctx.W/2, ctx.H/2
	for i := range w.stars {
		s := &w.stars[i]
		stretch := 1 + ctx.Speed*0.8
		x0 := cx + s.dist*math.Cos(s.angle)
		y0 := cy + s.dist*math.Sin(s.angle)
		x1 := cx + (s.dist+stretch*3)*math.Cos(s.angle)
		y1 := cy + (s.dist+stretch*3)*math.Sin(s.angle)
		ctx.Canvas.Line(x0, y0, x1, y1, core.RGB{R: 90, G: 90, B: 120}, 0.25)
	}
}

// flowWarp sweeps a slow horizontal current of dashes whose hue comes
// from the universe palette
type flowWarp struct {
	rows    []float64
	offsets []float64
}

func (w *flowWarp) Init(ctx *Context) {
	n := 6 + ctx.Rng.Intn(5)
	w.rows = make([]float64, n)
	w.offsets = make([]float64, n)
	for i := range w.rows {
		w.rows[i] = ctx.Rng.Range(0, ctx.H)
		w.offsets[i] = ctx.Rng.Range(0, ctx.W)
	}
}

func (w *flowWarp) Update(ctx *Context) {
	drift := 0.4 * (1 + ctx.Speed*0.5)
	for i := range w.offsets {
		w.offsets[i] += drift * (1 + float64(i)*0.1)
		if w.offsets[i] >= ctx.W {
			w.offsets[i] -= ctx.W
		}
	}
}

func (w *flowWarp) Draw(ctx *Context) {
	col := ctx.Palette[1%len(ctx.Palette)]
	for i := range w.rows {
		x := w.offsets[i]
		y := w.rows[i]
		ctx.Canvas.Line(x, y, x+20, y, col, 0.15)
	}
}
