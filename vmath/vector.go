package vmath

import "math"

// Normalize returns the unit vector, zero-safe
func Normalize(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// ClampMagnitude limits a vector to maxMag while preserving direction
// Returns the vector unchanged if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := math.Hypot(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// Dist returns the Euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistSq returns squared distance without sqrt
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b by t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SnapAngle quantizes the direction of (x, y) to the nearest multiple
// of step radians, preserving magnitude
func SnapAngle(x, y, step float64) (sx, sy float64) {
	mag := math.Hypot(x, y)
	if mag == 0 || step <= 0 {
		return x, y
	}
	angle := math.Atan2(y, x)
	snapped := math.Round(angle/step) * step
	return math.Cos(snapped) * mag, math.Sin(snapped) * mag
}
