// Package spatial provides a uniform-bucket index over 2D points.
// It is rebuilt from scratch every tick, so insertion and clearing
// must stay allocation-light at several hundred points
package spatial

// Grid buckets values of type T by position. Bucket lookup is O(1);
// Nearby over-returns (whole candidate cells) and callers do their own
// distance filtering. Missing a true neighbor is a correctness bug,
// returning extras is not
type Grid[T any] struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]T
	pos      func(T) (x, y float64)
}

// New creates a grid covering width x height with the given cell size.
// pos extracts a value's current position at insert time
func New[T any](width, height, cellSize float64, pos func(T) (x, y float64)) *Grid[T] {
	g := &Grid[T]{
		cellSize: cellSize,
		pos:      pos,
	}
	g.Resize(width, height)
	return g
}

// Resize rebuilds the bucket array for new dimensions, preserving the
// cell size. All buckets are emptied
func (g *Grid[T]) Resize(width, height float64) {
	cols := int(width/g.cellSize) + 1
	rows := int(height/g.cellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.cols = cols
	g.rows = rows
	g.cells = make([][]T, cols*rows)
}

// Clear empties all buckets without releasing their backing arrays
func (g *Grid[T]) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert files v under its current position. Out-of-bounds positions
// are clamped to the edge bucket so boundary-crossing points remain
// discoverable
func (g *Grid[T]) Insert(v T) {
	x, y := g.pos(v)
	g.cells[g.index(x, y)] = append(g.cells[g.index(x, y)], v)
}

// Nearby appends to out every value whose bucket is within radius of
// (x, y) and returns the extended slice. Pass a reused scratch slice
// to avoid per-query allocation
func (g *Grid[T]) Nearby(x, y, radius float64, out []T) []T {
	if radius < 0 {
		radius = 0
	}
	span := int(radius/g.cellSize) + 1

	cx := g.clampCol(int(x / g.cellSize))
	cy := g.clampRow(int(y / g.cellSize))

	for dy := -span; dy <= span; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		for dx := -span; dx <= span; dx++ {
			nx := cx + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			out = append(out, g.cells[ny*g.cols+nx]...)
		}
	}
	return out
}

// CellSize returns the configured bucket edge length
func (g *Grid[T]) CellSize() float64 {
	return g.cellSize
}

func (g *Grid[T]) index(x, y float64) int {
	cx := g.clampCol(int(x / g.cellSize))
	cy := g.clampRow(int(y / g.cellSize))
	return cy*g.cols + cx
}

func (g *Grid[T]) clampCol(c int) int {
	if c < 0 {
		return 0
	}
	if c >= g.cols {
		return g.cols - 1
	}
	return c
}

func (g *Grid[T]) clampRow(r int) int {
	if r < 0 {
		return 0
	}
	if r >= g.rows {
		return g.rows - 1
	}
	return r
}
