package core

// ID is a stable handle into the particle arena.
// Zero is the null handle; live handles are never reused within a
// universe, so a stale ID simply fails to resolve
type ID uint64

// None is the null particle handle
const None ID = 0

// Vec2 is a 2D point or vector in canvas coordinates
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}
