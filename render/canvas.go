package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aether-drift/core"
)

// intensityRamp maps accumulated brightness to glyphs, dim to bright
var intensityRamp = []rune(" ·:+*osO@#")

// fpix is a float accumulation pixel, allowing additive glow without
// clipping until flush
type fpix struct {
	r, g, b float64
}

// Canvas is a float-RGB framebuffer sized in terminal cells. World
// coordinates are continuous; plotting scales them down to cells.
// Fading instead of clearing between frames produces persistent trails
type Canvas struct {
	px     []fpix
	cols   int
	rows   int
	worldW float64
	worldH float64
}

func NewCanvas(cols, rows int, worldW, worldH float64) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows, worldW, worldH)
	return c
}

// Resize adjusts cell dimensions, reallocating only when capacity is
// insufficient
func (c *Canvas) Resize(cols, rows int, worldW, worldH float64) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	size := cols * rows
	if cap(c.px) < size {
		c.px = make([]fpix, size)
	} else {
		c.px = c.px[:size]
	}
	c.cols = cols
	c.rows = rows
	c.worldW = worldW
	c.worldH = worldH
	c.Clear()
}

func (c *Canvas) Clear() {
	if len(c.px) == 0 {
		return
	}
	c.px[0] = fpix{}
	for filled := 1; filled < len(c.px); filled *= 2 {
		copy(c.px[filled:], c.px[:filled])
	}
}

// Fade multiplies every pixel toward black. alpha is the fraction
// removed per frame, so higher alpha means shorter trails
func (c *Canvas) Fade(alpha float64) {
	keep := 1 - alpha
	if keep < 0 {
		keep = 0
	}
	for i := range c.px {
		c.px[i].r *= keep
		c.px[i].g *= keep
		c.px[i].b *= keep
	}
}

func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

// cell maps a world coordinate to a cell index, reporting visibility
func (c *Canvas) cell(x, y float64) (int, bool) {
	cx := int(x / c.worldW * float64(c.cols))
	cy := int(y / c.worldH * float64(c.rows))
	if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
		return 0, false
	}
	return cy*c.cols + cx, true
}

// Plot adds color at a world position, additively. Intensity scales
// the contribution; out-of-bounds positions are dropped
func (c *Canvas) Plot(x, y float64, col core.RGB, intensity float64) {
	idx, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.px[idx].r += float64(col.R) / 255 * intensity
	c.px[idx].g += float64(col.G) / 255 * intensity
	c.px[idx].b += float64(col.B) / 255 * intensity
}

// Line plots a world-space segment by uniform sampling. Step density
// follows cell size so diagonal lines stay unbroken
func (c *Canvas) Line(x0, y0, x1, y1 float64, col core.RGB, intensity float64) {
	dx, dy := x1-x0, y1-y0
	cw := c.worldW / float64(c.cols)
	ch := c.worldH / float64(c.rows)
	steps := int(math.Max(math.Abs(dx/cw), math.Abs(dy/ch))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.Plot(x0+dx*t, y0+dy*t, col, intensity)
	}
}

// Ring plots a world-space circle outline
func (c *Canvas) Ring(x, y, radius float64, col core.RGB, intensity float64) {
	// Sample count proportional to circumference in cells
	n := int(radius*2) + 8
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		c.Plot(x+radius*math.Cos(a), y+radius*math.Sin(a), col, intensity)
	}
}

// Flush writes the framebuffer to the screen. Brightness picks both
// the glyph from the ramp and the foreground color
func (c *Canvas) Flush(s tcell.Screen) {
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			p := c.px[cy*c.cols+cx]
			luma := 0.299*p.r + 0.587*p.g + 0.114*p.b
			if luma > 1 {
				luma = 1
			}
			gi := int(luma * float64(len(intensityRamp)-1))
			r := clamp255(p.r)
			g := clamp255(p.g)
			b := clamp255(p.b)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(r, g, b)).
				Background(tcell.ColorBlack)
			s.SetContent(cx, cy, intensityRamp[gi], nil, style)
		}
	}
	s.Show()
}

func clamp255(v float64) int32 {
	n := int32(v * 255)
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return n
}

