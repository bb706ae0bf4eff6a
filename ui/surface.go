package ui

import (
	"image"
	"image/color"

	"github.com/OpticalFlyer/strata/region"
)

// Surface is the drawing target handed to renderers. All coordinates are in
// viewport space.
type Surface interface {
	FillRegion(r region.Region, c color.Color)
	StrokeRegion(r region.Region, width float32, c color.Color)
	// Text draws s with its top-left corner at the given point.
	Text(s string, at region.Point, c color.Color)
	// DrawImage draws the src part of img stretched over dst. Passing the
	// same img for different parts lets the target keep one copy of it.
	DrawImage(img image.Image, src image.Rectangle, dst region.Region)
	// FillTriangles fills the triangles described by indices into vertices.
	FillTriangles(vertices []region.Point, indices []uint16, c color.Color)
	// Clip returns a surface drawing onto the same target, limited to r.
	Clip(r region.Region) Surface
	// AspectRatio is the height of the whole target divided by its width.
	AspectRatio() float32
}
