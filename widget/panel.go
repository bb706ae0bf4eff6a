package widget

import (
	"image/color"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*Panel)(nil)

// DockState tells which window edge a panel is attached to.
type DockState int

const (
	DockNone DockState = iota
	DockLeft
	DockRight
	DockTop
	DockBottom
)

func (d DockState) String() string {
	switch d {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	}
	return "none"
}

// Sizes are in viewport units, where the window spans 2 on both axes.
const (
	titleBarHeight = 0.07
	dockThreshold  = 0.05
	dockedSize     = 0.5
	minPanelWidth  = 0.25
	minPanelHeight = 0.17
	previewAlpha   = 84
	panelAlpha     = 200
)

var (
	panelColor   = color.RGBA{100, 100, 100, panelAlpha}
	titleColor   = color.RGBA{60, 60, 60, panelAlpha}
	grabbedColor = color.RGBA{80, 80, 80, panelAlpha}
	previewColor = color.RGBA{33, 150, 243, previewAlpha}
)

// Panel is a translucent window with a title bar and a few lines of text.
// Clicking the title bar picks the panel up; the next click drops it where
// the pointer is, docking it to a window edge when the pointer is close to
// one. Escape cancels the move.
type Panel struct {
	Title  string
	Lines  []string
	Bounds region.Region
	Dock   DockState

	// Size to return to when undocked.
	undockedWidth, undockedHeight float32
}

func NewPanel(bounds region.Region, title string, lines ...string) *Panel {
	w := max(bounds.Width(), minPanelWidth)
	h := max(bounds.Height(), minPanelHeight)
	return &Panel{
		Title:          title,
		Lines:          lines,
		Bounds:         region.New(bounds.MinX, bounds.MaxY-h, bounds.MinX+w, bounds.MaxY),
		undockedWidth:  w,
		undockedHeight: h,
	}
}

// TitleBar is the draggable strip at the top of the panel.
func (p *Panel) TitleBar() region.Region {
	return region.New(p.Bounds.MinX, p.Bounds.MaxY-titleBarHeight, p.Bounds.MaxX, p.Bounds.MaxY)
}

// Body is the panel below the title bar.
func (p *Panel) Body() region.Region {
	return region.New(p.Bounds.MinX, p.Bounds.MinY, p.Bounds.MaxX, p.Bounds.MaxY-titleBarHeight)
}

func (p *Panel) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&panelTitle{panel: p}, &panelBody{panel: p}}
}

// dockAt returns the edge a panel dropped at pt docks to.
func dockAt(pt region.Point) DockState {
	switch {
	case pt.X < -1+dockThreshold:
		return DockLeft
	case pt.X > 1-dockThreshold:
		return DockRight
	case pt.Y > 1-dockThreshold:
		return DockTop
	case pt.Y < -1+dockThreshold:
		return DockBottom
	}
	return DockNone
}

// grabOffset is the pointer position relative to the top-left corner of
// the undocked panel being moved. A docked panel returns to its undocked
// size under the pointer, keeping the relative horizontal position.
func (p *Panel) grabOffset(pt region.Point) region.Point {
	if p.Dock == DockNone {
		return region.Point{X: pt.X - p.Bounds.MinX, Y: p.Bounds.MaxY - pt.Y}
	}
	rel := (pt.X - p.Bounds.MinX) / p.Bounds.Width()
	return region.Point{X: p.undockedWidth * rel, Y: titleBarHeight / 2}
}

// dropped returns the panel as it lands when released at pt.
func (p *Panel) dropped(pt, grab region.Point) *Panel {
	next := &Panel{
		Title:          p.Title,
		Lines:          p.Lines,
		Dock:           dockAt(pt),
		undockedWidth:  p.undockedWidth,
		undockedHeight: p.undockedHeight,
	}

	switch next.Dock {
	case DockLeft:
		next.Bounds = region.New(-1, -1, -1+dockedSize, 1)
	case DockRight:
		next.Bounds = region.New(1-dockedSize, -1, 1, 1)
	case DockTop:
		next.Bounds = region.New(-1, 1-dockedSize, 1, 1)
	case DockBottom:
		next.Bounds = region.New(-1, -1, 1, -1+dockedSize)
	default:
		w, h := p.undockedWidth, p.undockedHeight
		minX := clamp(pt.X-grab.X, -1, 1-w)
		maxY := clamp(pt.Y+grab.Y, -1+h, 1)
		next.Bounds = region.New(minX, maxY-h, minX+w, maxY)
	}
	return next
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(hi, v))
}

// panelTitle handles moving the panel.
type panelTitle struct {
	panel *Panel

	grabbed bool
	grab    region.Point
	preview DockState
}

func (t *panelTitle) Attach(c ui.ClaimSet) {
	logClaim("panel "+t.panel.Title, c.ClaimRenderSpace(t.panel.TitleBar(), ui.TriggerRequest, ui.OpacityMixed, ui.PhaseBase))
	c.MakeMouseClickListener()
	c.MakeMouseMoveListener()
	c.MakeKeyDownListener(50)
}

func (t *panelTitle) MouseClickAnywhere(ctx *ui.ClickContext) {
	pt, ok := ctx.Mouse.Point()
	if !ok || ctx.Click.Button != ui.ButtonLeft {
		return
	}
	if !t.grabbed {
		if t.panel.TitleBar().Contains(pt) {
			t.grabbed = true
			t.grab = t.panel.grabOffset(pt)
			t.preview = dockAt(pt)
			ctx.Agent.RequestRender()
		}
		return
	}

	ctx.Agent.AddComponent(t.panel.dropped(pt, t.grab))
	ctx.Agent.RemoveThisComponent()
}

func (t *panelTitle) MouseMove(ctx *ui.MoveContext) {
	if !t.grabbed {
		return
	}
	pt, ok := ctx.To.Point()
	if !ok {
		return
	}
	if preview := dockAt(pt); preview != t.preview {
		t.preview = preview
		ctx.Agent.RequestRender()
	}
}

func (t *panelTitle) KeyDown(ctx *ui.KeyContext) bool {
	if !t.grabbed || ctx.Key.Key != "Escape" {
		return false
	}
	t.grabbed = false
	t.preview = DockNone
	ctx.Agent.RequestRender()
	return true
}

func (t *panelTitle) Render(ctx *ui.DrawContext) ui.RenderResult {
	bg := titleColor
	switch {
	case t.grabbed && t.preview != DockNone:
		bg = previewColor
	case t.grabbed:
		bg = grabbedColor
	}
	ctx.Surface.FillRegion(ctx.Region, bg)
	ctx.Surface.Text(t.panel.Title, textOrigin(ctx.Region), textColor)
	return ui.RenderResult{}
}

func (t *panelTitle) Cursor(*ui.Context) ui.Cursor { return ui.CursorMove }

// panelBody draws the content.
type panelBody struct {
	panel *Panel
}

func (b *panelBody) Attach(c ui.ClaimSet) {
	logClaim("panel "+b.panel.Title, c.ClaimRenderSpace(b.panel.Body(), ui.TriggerRequest, ui.OpacityMixed, ui.PhaseBase))
}

func (b *panelBody) Render(ctx *ui.DrawContext) ui.RenderResult {
	ctx.Surface.FillRegion(ctx.Region, panelColor)
	for i, line := range b.panel.Lines {
		p := lineOrigin(ctx.Region, i)
		if p.Y < ctx.Region.MinY+lineHeight {
			break
		}
		ctx.Surface.Text(line, p, textColor)
	}
	return ui.RenderResult{}
}
