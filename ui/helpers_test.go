package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/OpticalFlyer/strata/region"
)

// eventLog collects what test behaviors saw, in order.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) take() []string {
	events := l.events
	l.events = nil
	return events
}

// scripted is a behavior that implements every handler and records each call.
type scripted struct {
	name string
	log  *eventLog

	attach  func(c ClaimSet)
	hook    func(ctx *Context)
	consume bool
	cursor  Cursor
	drawn   []region.Region
	copied  ClipboardData
}

func (p *scripted) call(ctx *Context, format string, args ...any) {
	if p.log != nil {
		p.log.add(p.name+" "+format, args...)
	}
	if p.hook != nil {
		p.hook(ctx)
	}
}

func (p *scripted) Attach(c ClaimSet) {
	if p.attach != nil {
		p.attach(c)
	}
}

func (p *scripted) KeyDown(ctx *KeyContext) bool {
	p.call(&ctx.Context, "down %s", ctx.Key.Key)
	return p.consume
}

func (p *scripted) KeyUp(ctx *KeyContext) bool {
	p.call(&ctx.Context, "up %s", ctx.Key.Key)
	return p.consume
}

func (p *scripted) MouseClickInside(ctx *ClickContext)   { p.call(&ctx.Context, "inside") }
func (p *scripted) MouseClickOutside(ctx *ClickContext)  { p.call(&ctx.Context, "outside") }
func (p *scripted) MouseClickAnywhere(ctx *ClickContext) { p.call(&ctx.Context, "anywhere") }

func (p *scripted) MouseMove(ctx *MoveContext) {
	p.call(&ctx.Context, "move %v -> %v", ctx.From, ctx.To)
}

func (p *scripted) MouseScroll(ctx *ScrollContext) bool {
	p.call(&ctx.Context, "scroll %g", ctx.Delta)
	return p.consume
}

func (p *scripted) Render(ctx *DrawContext) RenderResult {
	p.call(&ctx.Context, "render %v", ctx.Region)
	ctx.Surface.FillRegion(ctx.Region, color.White)
	return RenderResult{Cursor: p.cursor, Drawn: p.drawn}
}

func (p *scripted) Cursor(ctx *Context) Cursor { return p.cursor }

func (p *scripted) Update(ctx *Context) { p.call(ctx, "update") }

func (p *scripted) Copy(ctx *Context) ClipboardData {
	p.call(ctx, "copy")
	return p.copied
}

func (p *scripted) Cut(ctx *Context) ClipboardData {
	p.call(ctx, "cut")
	return p.copied
}

func (p *scripted) Paste(ctx *PasteContext) bool {
	p.call(&ctx.Context, "paste %v", ctx.Data)
	return p.consume
}

// inert only attaches; it implements none of the handlers.
type inert struct {
	attach func(c ClaimSet)
}

func (b inert) Attach(c ClaimSet) { b.attach(c) }

func single(b Behavior) Component {
	return ComponentFunc(func() []Behavior { return []Behavior{b} })
}

// recordingSurface records draw calls instead of drawing.
type recordingSurface struct {
	ops    []string
	aspect float32
}

func (s *recordingSurface) FillRegion(r region.Region, c color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("fill %v", r))
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

func (s *recordingSurface) Clip(r region.Region) Surface { return s }

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

func mustClaim(err error) {
	if err != nil {
		panic(err)
	}
}

var (
	left   = region.New(-1, -1, 0, 1)
	right  = region.New(0, -1, 1, 1)
	center = region.New(-0.5, -0.5, 0.5, 0.5)
	unit   = region.New(0, 0, 1, 1)
)
