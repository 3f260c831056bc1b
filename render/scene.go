package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aether-drift/core"
	"github.com/lixenwraith/aether-drift/engine"
	"github.com/lixenwraith/aether-drift/vmath"
)

// Scene composites one frame: canvas fade, background plugin, warp
// field, anomaly overlays, particles with bond and chain lines, then
// cursor trail and cursor effect on top.
//
// The scene runs its own RNG, derived from the universe seed but
// separate from the simulation stream. Drawing must never consume a
// simulation draw or replays desynchronize
type Scene struct {
	canvas *Canvas
	ctx    Context

	background Plugin
	cursor     Plugin
	trail      Plugin
	warp       Plugin
}

func NewScene(cols, rows int, worldW, worldH float64) *Scene {
	return &Scene{
		canvas: NewCanvas(cols, rows, worldW, worldH),
	}
}

// Configure rebuilds palette and plugin selection for a universe.
// Called once after every (re)generation
func (s *Scene) Configure(u *engine.Universe) {
	rng := vmath.NewFastRand(vmath.HashSeed(u.Profile.Seed) ^ 0x9E3779B9)

	s.ctx = Context{
		Rng:     rng,
		Canvas:  s.canvas,
		Palette: buildPalette(u.Profile.BaseHue),
		W:       u.W,
		H:       u.H,
	}

	s.background = PickBackground(rng)
	s.cursor = PickCursor(rng)
	s.trail = PickTrail(rng)
	s.warp = PickWarp(rng)

	s.background.Init(&s.ctx)
	s.cursor.Init(&s.ctx)
	s.trail.Init(&s.ctx)
	s.warp.Init(&s.ctx)

	s.canvas.Clear()
}

// Resize adjusts the canvas to new terminal dimensions
func (s *Scene) Resize(cols, rows int, worldW, worldH float64) {
	s.canvas.Resize(cols, rows, worldW, worldH)
	s.ctx.W, s.ctx.H = worldW, worldH
}

// buildPalette derives a small analogous palette from the base hue
func buildPalette(baseHue float64) []core.RGB {
	return []core.RGB{
		core.FromHSL(baseHue, 0.7, 0.6),
		core.FromHSL(math.Mod(baseHue+30, 360), 0.6, 0.5),
		core.FromHSL(math.Mod(baseHue+330, 360), 0.6, 0.5),
		core.FromHSL(baseHue, 0.3, 0.8),
	}
}

// Frame renders one tick of the universe to the screen
func (s *Scene) Frame(u *engine.Universe, screen tcell.Screen) {
	px, py := u.Pointer()
	s.ctx.PointerX, s.ctx.PointerY = px, py
	s.ctx.Tick = u.Tick
	s.ctx.Speed = meanSpeed(u)
	s.ctx.GravityWell = u.GravityWellActive()

	s.canvas.Fade(u.TrailAlpha())

	s.background.Update(&s.ctx)
	s.background.Draw(&s.ctx)
	s.warp.Update(&s.ctx)
	s.warp.Draw(&s.ctx)

	s.drawEffects(u)
	s.drawParticles(u)

	s.trail.Update(&s.ctx)
	s.trail.Draw(&s.ctx)
	s.cursor.Update(&s.ctx)
	s.cursor.Draw(&s.ctx)

	s.canvas.Flush(screen)
}

func meanSpeed(u *engine.Universe) float64 {
	n := u.Arena.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		p := u.Arena.At(i)
		sum += math.Hypot(p.VX, p.VY)
	}
	return sum / float64(n)
}

// drawEffects renders anomaly and power overlays. Only fields with a
// visible spatial footprint get a mark; global pushes stay invisible
func (s *Scene) drawEffects(u *engine.Universe) {
	e := u.Effects
	dim := s.ctx.Palette[3%len(s.ctx.Palette)]

	for _, w := range e.GravityWells {
		s.canvas.Ring(w.X, w.Y, w.Radius*0.3, core.RGBWhite, 0.2)
	}
	for _, b := range e.BlackHoles {
		s.canvas.Ring(b.X, b.Y, b.Horizon, core.RGB{R: 120, G: 40, B: 160}, 0.5)
	}
	for _, w := range e.WhiteHoles {
		s.canvas.Ring(w.X, w.Y, w.Radius*0.2, core.RGBWhite, 0.4)
	}
	for _, p := range e.Pulsars {
		bx := p.X + p.Reach*math.Cos(p.Angle)
		by := p.Y + p.Reach*math.Sin(p.Angle)
		s.canvas.Line(p.X, p.Y, bx, by, dim, 0.3)
	}
	for _, q := range e.Quasars {
		if q.Firing {
			jx := q.X + 400*math.Cos(q.Angle)
			jy := q.Y + 400*math.Sin(q.Angle)
			s.canvas.Line(q.X, q.Y, jx, jy, core.RGBWhite, 0.5)
		}
	}
	for _, w := range e.CosmicWebs {
		for _, node := range w.Nodes {
			s.canvas.Plot(node.X, node.Y, dim, 0.4)
		}
	}
	for _, t := range e.SilkThreads {
		s.canvas.Line(t.A.X, t.A.Y, t.B.X, t.B.Y, dim, 0.15)
	}
	for _, v := range e.EchoVoids {
		for _, h := range v.History {
			s.canvas.Plot(h.X, h.Y, dim, 0.08)
		}
	}
	for _, r := range e.Rifts {
		s.canvas.Ring(r.X, r.Y, r.Radius, dim, 0.25)
	}
	for _, t := range e.TemporalRifts {
		s.canvas.Ring(t.X, t.Y, t.Radius, core.RGB{R: 80, G: 160, B: 200}, 0.3)
	}
	for _, sg := range e.Supergiants {
		s.canvas.Ring(sg.X, sg.Y, sg.Radius*0.15, core.RGB{R: 255, G: 180, B: 80}, 0.6)
	}
	for _, n := range e.Nurseries {
		s.canvas.Ring(n.X, n.Y, n.Radius*0.5, s.ctx.Palette[0], 0.2)
	}
}

func (s *Scene) drawParticles(u *engine.Universe) {
	rel := u.Arena.Relations()

	rel.ForEachBond(func(a, b core.ID) {
		pa, okA := u.Arena.Get(a)
		pb, okB := u.Arena.Get(b)
		if okA && okB {
			s.canvas.Line(pa.X, pa.Y, pb.X, pb.Y, s.ctx.Palette[0], 0.2)
		}
	})
	rel.ForEachChain(func(parent, child core.ID) {
		pp, okP := u.Arena.Get(parent)
		pc, okC := u.Arena.Get(child)
		if okP && okC {
			s.canvas.Line(pp.X, pp.Y, pc.X, pc.Y, s.ctx.Palette[1%len(s.ctx.Palette)], 0.15)
		}
	})

	for i := 0; i < u.Arena.Len(); i++ {
		p := u.Arena.At(i)
		glow := p.Opacity * (0.4 + p.Radius*0.25)
		s.canvas.Plot(p.X, p.Y, p.Color, glow)
		if p.Radius > 2.2 {
			// Large particles bleed into neighbors for a soft body look
			s.canvas.Plot(p.X+1, p.Y, p.Color, glow*0.3)
			s.canvas.Plot(p.X-1, p.Y, p.Color, glow*0.3)
		}
	}
}
