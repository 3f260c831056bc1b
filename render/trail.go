package render

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
)

type trailPoint struct {
	x, y      float64
	intensity float64
	bornAt    uint64
}

// pointTrail interpolates segments between successive pointer
// positions and lets them decay over a fixed tick window
type pointTrail struct {
	points     []trailPoint
	lastX      float64
	lastY      float64
	havePrev   bool
	decayTicks uint64
}

func (t *pointTrail) Init(ctx *Context) {
	t.points = t.points[:0]
	t.havePrev = false
	t.decayTicks = uint64(20 + ctx.Rng.Intn(20))
}

func (t *pointTrail) Update(ctx *Context) {
	if t.havePrev && (t.lastX != ctx.PointerX || t.lastY != ctx.PointerY) {
		dx := ctx.PointerX - t.lastX
		dy := ctx.PointerY - t.lastY
		steps := 8
		for i := 1; i <= steps; i++ {
			progress := float64(i) / float64(steps)
			t.points = append(t.points, trailPoint{
				x:         t.lastX + dx*progress,
				y:         t.lastY + dy*progress,
				intensity: 1 - progress*0.8,
				bornAt:    ctx.Tick,
			})
		}
	}
	t.lastX, t.lastY = ctx.PointerX, ctx.PointerY
	t.havePrev = true

	kept := t.points[:0]
	for _, p := range t.points {
		if ctx.Tick-p.bornAt < t.decayTicks {
			kept = append(kept, p)
		}
	}
	t.points = kept
}

func (t *pointTrail) Draw(ctx *Context) {
	for _, p := range t.points {
		age := float64(ctx.Tick-p.bornAt) / float64(t.decayTicks)
		ctx.Canvas.Plot(p.x, p.y, core.RGBWhite, p.intensity*(1-age))
	}
}

// emberTrail drops palette-colored sparks that sink and cool
type emberTrail struct {
	embers []trailPoint
	life   uint64
}

func (t *emberTrail) Init(ctx *Context) {
	t.embers = t.embers[:0]
	t.life = uint64(30 + ctx.Rng.Intn(30))
}

func (t *emberTrail) Update(ctx *Context) {
	t.embers = append(t.embers, trailPoint{
		x:         ctx.PointerX + ctx.Rng.Range(-3, 3),
		y:         ctx.PointerY + ctx.Rng.Range(-3, 3),
		intensity: ctx.Rng.Range(0.5, 1),
		bornAt:    ctx.Tick,
	})

	kept := t.embers[:0]
	for _, e := range t.embers {
		if ctx.Tick-e.bornAt < t.life {
			kept = append(kept, e)
		}
	}
	t.embers = kept
}

func (t *emberTrail) Draw(ctx *Context) {
	warm := ctx.Palette[0]
	for i := range t.embers {
		e := &t.embers[i]
		age := float64(ctx.Tick-e.bornAt) / float64(t.life)
		sink := age * age * 6
		cooled := warm.Blend(core.RGB{R: 60, G: 20, B: 20}, age)
		ctx.Canvas.Plot(e.x, e.y+sink, cooled, e.intensity*math.Max(0, 1-age))
	}
}
