package gamemath

import "math"

// Distance returns the Euclidean distance between two points.
func Distance(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction returns the unit vector from (fromX, fromY) toward (toX, toY) and
// the distance between them. Coincident points yield a zero vector.
func Direction(fromX, fromY, toX, toY float64) (dirX, dirY, dist float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		dirX = dx / dist
		dirY = dy / dist
	}
	return dirX, dirY, dist
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
