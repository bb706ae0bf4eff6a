package region

import "fmt"

// Region is an axis-aligned rectangle in viewport coordinates, where the
// visible area spans [-1, 1] on both axes and y grows upwards.
// Callers are expected to keep MinX < MaxX and MinY < MaxY.
type Region struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// New creates a Region from its corner coordinates.
func New(minX, minY, maxX, maxY float32) Region {
	return Region{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// EntireViewport returns the region covering the whole visible area.
func EntireViewport() Region {
	return Region{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
}

// Intersects reports whether r and other share interior area.
// Regions that only touch at an edge or a corner do not intersect.
func (r Region) Intersects(other Region) bool {
	return r.MinX < other.MaxX && r.MinY < other.MaxY &&
		other.MinX < r.MaxX && other.MinY < r.MaxY
}

// Contains reports whether p lies strictly inside r.
// Points on the boundary are outside.
func (r Region) Contains(p Point) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Y > r.MinY && p.Y < r.MaxY
}

// ContainsPosition is Contains for a possibly unknown position.
// An unknown position is never inside.
func (r Region) ContainsPosition(pos Position) bool {
	p, ok := pos.Point()
	return ok && r.Contains(p)
}

// Covers reports whether other lies completely within r (edges included).
func (r Region) Covers(other Region) bool {
	return other.MinX >= r.MinX && other.MinY >= r.MinY &&
		other.MaxX <= r.MaxX && other.MaxY <= r.MaxY
}

func (r Region) Width() float32  { return r.MaxX - r.MinX }
func (r Region) Height() float32 { return r.MaxY - r.MinY }

// Center returns the midpoint of r.
func (r Region) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Intersection returns the overlapping part of r and other.
// The second result is false when they do not intersect.
func (r Region) Intersection(other Region) (Region, bool) {
	if !r.Intersects(other) {
		return Region{}, false
	}
	return Region{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}, true
}

// Uncovered returns the parts of r that are not covered by any of the
// given regions, as a list of disjoint rectangles. An empty result means r
// is fully covered.
func (r Region) Uncovered(covers []Region) []Region {
	remaining := []Region{r}
	for _, c := range covers {
		if len(remaining) == 0 {
			break
		}
		next := remaining[:0:0]
		for _, piece := range remaining {
			next = append(next, piece.subtract(c)...)
		}
		remaining = next
	}
	return remaining
}

// subtract cuts c out of r, returning at most four pieces:
// a full-width strip below and above c, and the side pieces between them.
func (r Region) subtract(c Region) []Region {
	overlap, ok := r.Intersection(c)
	if !ok {
		return []Region{r}
	}

	var pieces []Region
	if overlap.MinY > r.MinY {
		pieces = append(pieces, Region{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: overlap.MinY})
	}
	if overlap.MaxY < r.MaxY {
		pieces = append(pieces, Region{MinX: r.MinX, MinY: overlap.MaxY, MaxX: r.MaxX, MaxY: r.MaxY})
	}
	if overlap.MinX > r.MinX {
		pieces = append(pieces, Region{MinX: r.MinX, MinY: overlap.MinY, MaxX: overlap.MinX, MaxY: overlap.MaxY})
	}
	if overlap.MaxX < r.MaxX {
		pieces = append(pieces, Region{MinX: overlap.MaxX, MinY: overlap.MinY, MaxX: r.MaxX, MaxY: overlap.MaxY})
	}
	return pieces
}

func (r Region) String() string {
	return fmt.Sprintf("[(%g, %g) - (%g, %g)]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
