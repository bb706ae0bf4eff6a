package proj

import "github.com/OpticalFlyer/strata/region"

// Viewport is the pixel size of the canvas. It converts between pixel
// offsets (origin top-left, y down) and viewport coordinates
// ([-1, 1] on both axes, y up).
type Viewport struct {
	Width, Height int
}

// Valid reports whether the viewport has a drawable area.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ToViewport converts a pixel position to viewport coordinates.
func (v Viewport) ToViewport(px, py float64) region.Point {
	return region.Point{
		X: float32(2*(px/float64(v.Width)) - 1),
		Y: float32(1 - 2*(py/float64(v.Height))),
	}
}

// ToPixels converts a viewport point to a pixel position.
func (v Viewport) ToPixels(p region.Point) (px, py float64) {
	px = (float64(p.X) + 1) / 2 * float64(v.Width)
	py = (1 - float64(p.Y)) / 2 * float64(v.Height)
	return px, py
}

// RegionToPixels returns the top-left corner and size in pixels of r.
func (v Viewport) RegionToPixels(r region.Region) (x, y, w, h float64) {
	x, y = v.ToPixels(region.Point{X: r.MinX, Y: r.MaxY})
	x2, y2 := v.ToPixels(region.Point{X: r.MaxX, Y: r.MinY})
	return x, y, x2 - x, y2 - y
}

// PixelsToRegion converts a pixel rectangle to viewport coordinates.
func (v Viewport) PixelsToRegion(x, y, w, h float64) region.Region {
	topLeft := v.ToViewport(x, y)
	bottomRight := v.ToViewport(x+w, y+h)
	return region.New(topLeft.X, bottomRight.Y, bottomRight.X, topLeft.Y)
}

// AspectRatio is width divided by height.
func (v Viewport) AspectRatio() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}
