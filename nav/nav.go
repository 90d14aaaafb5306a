// Package nav holds the coordinate math the bot uses to pick targets:
// distances between waypoints, ships and asteroids on the 2D system
// grid.
package nav

import "math"

// Point is a 2D coordinate in a system grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the euclidean distance to other.
func (p Point) DistanceTo(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanDistanceTo returns the grid distance to other.
func (p Point) ManhattanDistanceTo(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Positioned is anything sitting on the grid: a waypoint, a ship, an
// asteroid, a whole system.
type Positioned interface {
	Position() Point
}

// Location is a named position. It stands in for every symbol-bearing
// thing the API places on the grid.
type Location struct {
	Symbol string `json:"symbol"`
	Point  Point  `json:"point"`
}

// NewLocation builds a Location from a symbol and grid coordinates.
func NewLocation(symbol string, x, y int) Location {
	return Location{Symbol: symbol, Point: Point{X: x, Y: y}}
}

func (l Location) Position() Point {
	return l.Point
}

// Distance returns the euclidean distance between two positioned
// things.
func Distance(a, b Positioned) float64 {
	return a.Position().DistanceTo(b.Position())
}

// Nearest returns the candidate closest to from, comma-ok style; ok is
// false when candidates is empty. Ties keep the earlier candidate.
func Nearest[T Positioned](from Positioned, candidates []T) (T, bool) {
	var nearest T
	if len(candidates) == 0 {
		return nearest, false
	}
	nearest = candidates[0]
	best := Distance(from, nearest)
	for _, candidate := range candidates[1:] {
		if d := Distance(from, candidate); d < best {
			nearest = candidate
			best = d
		}
	}
	return nearest, true
}
