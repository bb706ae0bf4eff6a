package region

import "fmt"

// Point is a location in viewport coordinates.
type Point struct {
	X, Y float32
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Position is a mouse position that may be unknown, for instance when the
// cursor has left the canvas or a layer in front already claimed it.
type Position struct {
	p     Point
	known bool
}

// Unknown is the position used when there is no usable cursor location.
var Unknown = Position{}

// At returns a known position.
func At(x, y float32) Position {
	return Position{p: Point{X: x, Y: y}, known: true}
}

// AtPoint returns a known position at p.
func AtPoint(p Point) Position {
	return Position{p: p, known: true}
}

// Point returns the location and whether it is known.
func (pos Position) Point() (Point, bool) {
	return pos.p, pos.known
}

// Known reports whether the position carries a location.
func (pos Position) Known() bool { return pos.known }

func (pos Position) String() string {
	if !pos.known {
		return "unknown"
	}
	return pos.p.String()
}
