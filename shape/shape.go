// Package shape loads polygon shapefiles and turns them into triangle meshes.
package shape

import (
	"errors"
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"
	shp "github.com/jonas-p/go-shp"
)

// CRS names the coordinate system of a shapefile.
type CRS string

const (
	// WGS84 is longitude/latitude in degrees.
	WGS84 CRS = "wgs84"
	// WebMercator is EPSG:3857 meters.
	WebMercator CRS = "webmercator"
)

// ErrTooManyVertices is returned for polygons that cannot be indexed with
// 16-bit indices.
var ErrTooManyVertices = errors.New("polygon has too many vertices")

// Polygon is one outer ring with its holes, flattened the way the
// triangulator wants it: x, y pairs with the start offsets of every hole.
type Polygon struct {
	Coords []float64
	Holes  []int
}

// Bounds returns the bounding box of the polygon.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.Coords); i += 2 {
		minX, maxX = math.Min(minX, p.Coords[i]), math.Max(maxX, p.Coords[i])
		minY, maxY = math.Min(minY, p.Coords[i+1]), math.Max(maxY, p.Coords[i+1])
	}
	return minX, minY, maxX, maxY
}

// Mesh is a triangulated polygon. Indices refer to vertex numbers, that is
// x, y pairs in Coords.
type Mesh struct {
	Coords  []float64
	Indices []uint16
}

// Load reads every polygon of a shapefile. Multi-part records are split
// into one Polygon per outer ring.
func Load(path string) ([]Polygon, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	switch r.GeometryType {
	case shp.POLYGON, shp.POLYGONZ, shp.POLYGONM:
	default:
		return nil, fmt.Errorf("shapefile %s: unsupported geometry type %v", path, r.GeometryType)
	}

	var polygons []Polygon
	for r.Next() {
		_, s := r.Shape()
		switch p := s.(type) {
		case *shp.Polygon:
			polygons = append(polygons, FromRings(rings(p.Parts, p.Points))...)
		case *shp.PolygonZ:
			polygons = append(polygons, FromRings(rings(p.Parts, p.Points))...)
		case *shp.PolygonM:
			polygons = append(polygons, FromRings(rings(p.Parts, p.Points))...)
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return polygons, nil
}

// rings splits the points of a record into its parts.
func rings(parts []int32, points []shp.Point) [][]shp.Point {
	out := make([][]shp.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start > end || end > int32(len(points)) {
			continue
		}
		out = append(out, points[start:end])
	}
	return out
}

// FromRings groups rings into polygons. Clockwise rings start a new
// polygon; counter-clockwise rings are holes of the polygon before them.
// The closing point repeated by shapefiles is dropped.
func FromRings(rings [][]shp.Point) []Polygon {
	var polygons []Polygon
	for _, ring := range rings {
		if n := len(ring); n > 1 && ring[0] == ring[n-1] {
			ring = ring[:n-1]
		}
		if len(ring) < 3 {
			continue
		}

		hole := signedArea(ring) > 0
		if !hole || len(polygons) == 0 {
			polygons = append(polygons, Polygon{})
		} else {
			last := &polygons[len(polygons)-1]
			last.Holes = append(last.Holes, len(last.Coords)/2)
		}
		last := &polygons[len(polygons)-1]
		for _, pt := range ring {
			last.Coords = append(last.Coords, pt.X, pt.Y)
		}
	}
	return polygons
}

// signedArea is positive for counter-clockwise rings.
func signedArea(ring []shp.Point) float64 {
	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

// Triangulate converts a polygon into triangles.
func Triangulate(p Polygon) (Mesh, error) {
	if len(p.Coords)/2 > math.MaxUint16+1 {
		return Mesh{}, fmt.Errorf("%w: %d", ErrTooManyVertices, len(p.Coords)/2)
	}

	indices, err := earcut.Earcut(p.Coords, p.Holes, 2)
	if err != nil {
		return Mesh{}, fmt.Errorf("triangulating polygon: %w", err)
	}

	m := Mesh{Coords: p.Coords, Indices: make([]uint16, len(indices))}
	for i, idx := range indices {
		m.Indices[i] = uint16(idx)
	}
	return m, nil
}

// TriangulateAll triangulates every polygon, skipping the ones that fail.
// The first error is returned along with the meshes that succeeded.
func TriangulateAll(polygons []Polygon) ([]Mesh, error) {
	var meshes []Mesh
	var firstErr error
	for _, p := range polygons {
		m, err := Triangulate(p)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(m.Indices) > 0 {
			meshes = append(meshes, m)
		}
	}
	return meshes, firstErr
}
