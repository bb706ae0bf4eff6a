package host

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

// maxCachedImages bounds the uploaded image cache. Entries not used during
// the current frame are dropped once it is exceeded.
const maxCachedImages = 256

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	// whitePixel is the source texture for solid triangles.
	whitePixel = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}()
)

type cachedImage struct {
	img   *ebiten.Image
	frame uint64
}

// imageCache holds GPU copies of the images handed to DrawImage.
type imageCache struct {
	images map[image.Image]*cachedImage
	frame  uint64
}

func newImageCache() *imageCache {
	return &imageCache{images: make(map[image.Image]*cachedImage)}
}

func (c *imageCache) get(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	entry, ok := c.images[img]
	if !ok {
		entry = &cachedImage{img: ebiten.NewImageFromImage(img)}
		c.images[img] = entry
	}
	entry.frame = c.frame
	return entry.img
}

// part returns the src part of the copy of img. Parts share the copy.
func (c *imageCache) part(img image.Image, src image.Rectangle) *ebiten.Image {
	full := c.get(img)
	if src == img.Bounds() {
		return full
	}
	return full.SubImage(src.Sub(img.Bounds().Min).Add(full.Bounds().Min)).(*ebiten.Image)
}

// endFrame evicts stale entries when the cache is over its bound.
func (c *imageCache) endFrame() {
	if len(c.images) > maxCachedImages {
		for key, entry := range c.images {
			if entry.frame != c.frame {
				entry.img.Deallocate()
				delete(c.images, key)
			}
		}
	}
	c.frame++
}

// screen is a ui.Surface drawing onto an ebiten image.
type screen struct {
	dst    *ebiten.Image
	vp     proj.Viewport
	images *imageCache
}

var _ ui.Surface = (*screen)(nil)

func (s *screen) rect(r region.Region) (x, y, w, h float32) {
	px, py, pw, ph := s.vp.RegionToPixels(r)
	return float32(px), float32(py), float32(pw), float32(ph)
}

func (s *screen) FillRegion(r region.Region, c color.Color) {
	x, y, w, h := s.rect(r)
	vector.DrawFilledRect(s.dst, x, y, w, h, c, false)
}

func (s *screen) StrokeRegion(r region.Region, width float32, c color.Color) {
	x, y, w, h := s.rect(r)
	vector.StrokeRect(s.dst, x+width/2, y+width/2, w-width, h-width, width, c, false)
}

func (s *screen) Text(str string, at region.Point, c color.Color) {
	px, py := s.vp.ToPixels(at)
	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent
	text.Draw(s.dst, str, face, op)
}

func (s *screen) DrawImage(img image.Image, src image.Rectangle, dst region.Region) {
	b := src.Intersect(img.Bounds())
	if b.Empty() {
		return
	}
	x, y, w, h := s.vp.RegionToPixels(dst)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.images.part(img, b), op)
}

func (s *screen) FillTriangles(vertices []region.Point, indices []uint16, c color.Color) {
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}
	r, g, b, a := c.RGBA()
	vs := make([]ebiten.Vertex, len(vertices))
	for i, p := range vertices {
		px, py := s.vp.ToPixels(p)
		vs[i] = ebiten.Vertex{
			DstX:   float32(px),
			DstY:   float32(py),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	s.dst.DrawTriangles(vs, indices, whitePixel, op)
}

func (s *screen) AspectRatio() float32 {
	if s.vp.Width == 0 {
		return 1
	}
	return float32(s.vp.Height) / float32(s.vp.Width)
}

func (s *screen) Clip(r region.Region) ui.Surface {
	x, y, w, h := s.vp.RegionToPixels(r)
	rect := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5)).Intersect(s.dst.Bounds())
	return &screen{dst: s.dst.SubImage(rect).(*ebiten.Image), vp: s.vp, images: s.images}
}
