package proj

import "golang.org/x/image/math/f64"

// RenderContext maps a unit square ([0, 1] on both axes) into the area a
// component draws in, so nested sub-areas can be laid out relative to
// their parent. Its aspect ratio is height divided by width, unlike
// Viewport's.
type RenderContext struct {
	aspectRatio float32
	matrix      f64.Aff3
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// FullContext covers the whole parent area.
func FullContext(aspectRatio float32) RenderContext {
	return RenderContext{aspectRatio: aspectRatio, matrix: identity}
}

// Sub returns a context for the part of c spanning (minX, minY)-(maxX, maxY),
// expressed in c's unit coordinates.
func (c RenderContext) Sub(minX, minY, maxX, maxY float32) RenderContext {
	conversion := f64.Aff3{
		float64(maxX - minX), 0, float64(minX),
		0, float64(maxY - minY), float64(minY),
	}

	return RenderContext{
		aspectRatio: c.aspectRatio * (maxY - minY) / (maxX - minX),
		matrix:      mul(c.matrix, conversion),
	}
}

// AspectRatio of the area covered by c.
func (c RenderContext) AspectRatio() float32 { return c.aspectRatio }

// Apply maps a point in c's unit coordinates to the root area.
func (c RenderContext) Apply(x, y float32) (float32, float32) {
	m := c.matrix
	if m == (f64.Aff3{}) {
		m = identity
	}
	fx, fy := float64(x), float64(y)
	return float32(m[0]*fx + m[1]*fy + m[2]), float32(m[3]*fx + m[4]*fy + m[5])
}

// mul returns a·b: the transform applying b first, then a.
func mul(a, b f64.Aff3) f64.Aff3 {
	if a == (f64.Aff3{}) {
		a = identity
	}
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}
