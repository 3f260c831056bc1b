package render

import (
	"math"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/spatial"
)

type bgStar struct {
	x, y  float64
	vx    float64
	phase float64
}

// constellationField scatters slow-drifting stars and links nearby
// pairs with dim lines, rebuilt from a spatial grid each frame
type constellationField struct {
	stars    []bgStar
	grid     *spatial.Grid[int]
	scratch  []int
	linkDist float64
}

func (f *constellationField) Init(ctx *Context) {
	n := int(ctx.W * ctx.H / 12000)
	if n < 24 {
		n = 24
	}
	f.stars = make([]bgStar, n)
	for i := range f.stars {
		f.stars[i] = bgStar{
			x:     ctx.Rng.Range(0, ctx.W),
			y:     ctx.Rng.Range(0, ctx.H),
			vx:    ctx.Rng.Range(-0.08, 0.08),
			phase: ctx.Rng.Range(0, 2*math.Pi),
		}
	}
	f.linkDist = 70
	f.grid = spatial.New[int](ctx.W, ctx.H, f.linkDist, func(i int) (float64, float64) {
		return f.stars[i].x, f.stars[i].y
	})
}

func (f *constellationField) Update(ctx *Context) {
	for i := range f.stars {
		s := &f.stars[i]
		s.x += s.vx * (1 + ctx.Speed*0.2)
		if s.x < 0 {
			s.x += ctx.W
		}
		if s.x >= ctx.W {
			s.x -= ctx.W
		}
	}
	f.grid.Clear()
	for i := range f.stars {
		f.grid.Insert(i)
	}
}

func (f *constellationField) Draw(ctx *Context) {
	line := core.RGB{R: 40, G: 48, B: 70}
	for i := range f.stars {
		s := &f.stars[i]
		tw := 0.25 + 0.2*math.Sin(float64(ctx.Tick)*0.05+s.phase)
		ctx.Canvas.Plot(s.x, s.y, core.RGBWhite, tw)

		f.scratch = f.grid.Nearby(s.x, s.y, f.linkDist, f.scratch[:0])
		for _, j := range f.scratch {
			if j <= i {
				continue
			}
			o := &f.stars[j]
			dx, dy := o.x-s.x, o.y-s.y
			if dx*dx+dy*dy < f.linkDist*f.linkDist {
				ctx.Canvas.Line(s.x, s.y, o.x, o.y, line, 0.10)
			}
		}
	}
}

// dustLattice is a fixed grid of faint points that breathe in unison,
// brightening near the pointer
type dustLattice struct {
	spacing float64
}

func (f *dustLattice) Init(ctx *Context) {
	f.spacing = ctx.Rng.Range(40, 70)
}

func (f *dustLattice) Update(_ *Context) {}

func (f *dustLattice) Draw(ctx *Context) {
	col := ctx.Palette[0]
	breathe := 0.12 + 0.06*math.Sin(float64(ctx.Tick)*0.02)
	for y := f.spacing / 2; y < ctx.H; y += f.spacing {
		for x := f.spacing / 2; x < ctx.W; x += f.spacing {
			dx, dy := x-ctx.PointerX, y-ctx.PointerY
			glow := breathe
			if d := math.Sqrt(dx*dx + dy*dy); d < 160 {
				glow += (1 - d/160) * 0.4
			}
			ctx.Canvas.Plot(x, y, col, glow)
		}
	}
}

// driftMotes are sparse specks falling on independent clocks
type driftMotes struct {
	motes []bgStar
}

func (f *driftMotes) Init(ctx *Context) {
	n := int(ctx.W * ctx.H / 20000)
	if n < 12 {
		n = 12
	}
	f.motes = make([]bgStar, n)
	for i := range f.motes {
		f.motes[i] = bgStar{
			x:     ctx.Rng.Range(0, ctx.W),
			y:     ctx.Rng.Range(0, ctx.H),
			vx:    ctx.Rng.Range(0.1, 0.5),
			phase: ctx.Rng.Range(0, 2*math.Pi),
		}
	}
}

func (f *driftMotes) Update(ctx *Context) {
	for i := range f.motes {
		m := &f.motes[i]
		m.y += m.vx
		m.x += math.Sin(float64(ctx.Tick)*0.03+m.phase) * 0.3
		if m.y >= ctx.H {
			m.y = 0
			m.x = ctx.Rng.Range(0, ctx.W)
		}
	}
}

func (f *driftMotes) Draw(ctx *Context) {
	col := ctx.Palette[len(ctx.Palette)-1]
	for i := range f.motes {
		m := &f.motes[i]
		ctx.Canvas.Plot(m.x, m.y, col, 0.3)
	}
}
