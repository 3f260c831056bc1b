package spatial

import (
	"testing"
)

type point struct {
	x, y float64
}

func pointPos(p point) (float64, float64) { return p.x, p.y }

func TestNearbyFindsNeighbors(t *testing.T) {
	g := New[point](100, 100, 10, pointPos)

	a := point{15, 15}
	b := point{18, 12}
	g.Insert(a)
	g.Insert(b)

	got := g.Nearby(15, 15, 10, nil)
	if len(got) != 2 {
		t.Fatalf("expected both points, got %d", len(got))
	}
}

// Two points within distance d <= radius, radius <= cellSize, must be
// mutually discoverable even when they straddle a cell boundary
func TestNearbyCompletenessAcrossCellBoundary(t *testing.T) {
	g := New[point](100, 100, 10, pointPos)

	a := point{9.5, 5}
	b := point{10.5, 5} // adjacent cell, distance 1
	g.Insert(a)
	g.Insert(b)

	for _, q := range []point{a, b} {
		got := g.Nearby(q.x, q.y, 10, nil)
		if len(got) != 2 {
			t.Errorf("query from (%v, %v): expected 2 points, got %d", q.x, q.y, len(got))
		}
	}
}

func TestNearbyRadiusSpansMultipleCells(t *testing.T) {
	g := New[point](200, 200, 10, pointPos)

	center := point{100, 100}
	far := point{100, 125} // 2.5 cells away
	g.Insert(center)
	g.Insert(far)

	got := g.Nearby(100, 100, 30, nil)
	if len(got) != 2 {
		t.Errorf("radius 30 with cell 10 should cover a point 25 away, got %d", len(got))
	}
}

func TestOutOfBoundsInsertIsClamped(t *testing.T) {
	g := New[point](50, 50, 10, pointPos)

	g.Insert(point{-20, -20})
	g.Insert(point{500, 500})

	if got := g.Nearby(0, 0, 10, nil); len(got) != 1 {
		t.Errorf("expected clamped corner point, got %d", len(got))
	}
	if got := g.Nearby(49, 49, 10, nil); len(got) != 1 {
		t.Errorf("expected clamped far-corner point, got %d", len(got))
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	g := New[point](100, 100, 10, pointPos)
	for i := 0; i < 50; i++ {
		g.Insert(point{float64(i * 2), float64(i)})
	}
	g.Clear()
	if got := g.Nearby(50, 25, 60, nil); len(got) != 0 {
		t.Errorf("grid not empty after Clear: %d", len(got))
	}
}

func TestResizePreservesCellSize(t *testing.T) {
	g := New[point](100, 100, 8, pointPos)
	g.Resize(300, 40)
	if g.CellSize() != 8 {
		t.Errorf("cell size changed on resize: %v", g.CellSize())
	}
	g.Insert(point{299, 39})
	if got := g.Nearby(299, 39, 8, nil); len(got) != 1 {
		t.Errorf("point lost after resize, got %d", len(got))
	}
}

func TestNearbyScratchReuse(t *testing.T) {
	g := New[point](100, 100, 10, pointPos)
	g.Insert(point{5, 5})

	scratch := make([]point, 0, 16)
	out := g.Nearby(5, 5, 10, scratch)
	if len(out) != 1 {
		t.Fatalf("expected 1, got %d", len(out))
	}
	out = g.Nearby(5, 5, 10, out[:0])
	if len(out) != 1 {
		t.Fatalf("reused scratch: expected 1, got %d", len(out))
	}
}
