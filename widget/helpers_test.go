package widget

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

// recordingSurface records draw calls instead of drawing.
type recordingSurface struct {
	ops    []string
	fills  []region.Region
	aspect float32
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (s *recordingSurface) FillRegion(r region.Region, c color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("fill %v %v", r, rgba(c)))
	s.fills = append(s.fills, r)
}

func (s *recordingSurface) StrokeRegion(r region.Region, width float32, c color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("stroke %v", r))
}

func (s *recordingSurface) Text(text string, at region.Point, c color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("text %q", text))
}

func (s *recordingSurface) DrawImage(img image.Image, src image.Rectangle, dst region.Region) {
	s.ops = append(s.ops, fmt.Sprintf("image %v", dst))
}

func (s *recordingSurface) FillTriangles(vertices []region.Point, indices []uint16, c color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("triangles %d", len(indices)/3))
}

func (s *recordingSurface) Clip(r region.Region) ui.Surface { return s }

func (s *recordingSurface) AspectRatio() float32 {
	if s.aspect == 0 {
		return 1
	}
	return s.aspect
}

func (s *recordingSurface) take() []string {
	ops := s.ops
	s.ops = nil
	return ops
}

// render draws the layer and returns what was drawn.
func render(l *ui.SimpleLayer) []string {
	s := &recordingSurface{}
	l.OnRender(s)
	return s.take()
}

// texts returns the text draws among ops.
func texts(ops []string) []string {
	var out []string
	for _, op := range ops {
		if strings.HasPrefix(op, "text ") {
			out = append(out, op)
		}
	}
	return out
}

func newLayer(components ...ui.Component) *ui.SimpleLayer {
	l := ui.NewLayer(ui.DefaultPhases())
	for _, c := range components {
		l.AddComponent(c)
	}
	return l
}

func key(k string) ui.KeyInfo { return ui.KeyInfo{Key: k} }

var leftClick = ui.ClickInfo{Button: ui.ButtonLeft}
