package widget

import (
	"image/color"
	"time"

	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/tilemap"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*MapView)(nil)

// zoomThrottle limits wheel zooming to one step per interval.
const zoomThrottle = 100 * time.Millisecond

// Debug crosshair size, as fractions of the map width.
const (
	crossArm   = 0.025
	crossWidth = 0.001
)

// MapView shows a slippy map. The wheel zooms at the pointer, a click
// starts dragging the map and the next click ends it. Arrow keys pan,
// + and - zoom, F1 toggles the tile debug view.
type MapView struct {
	Region region.Region
	Map    *tilemap.TileMap
	Debug  bool

	now   func() time.Time
	moved bool
}

func NewMapView(r region.Region, tm *tilemap.TileMap) *MapView {
	return &MapView{Region: r, Map: tm, now: time.Now}
}

// SetViewport sizes the map to the pixels its region covers.
func (v *MapView) SetViewport(vp proj.Viewport) {
	_, _, w, h := vp.RegionToPixels(v.Region)
	v.Map.Resize(int(w+0.5), int(h+0.5))
}

// CenterOn moves the map center. The view redraws on the next update.
func (v *MapView) CenterOn(lat, lon float64) {
	v.Map.CenterLat, v.Map.CenterLon = proj.ClampLatLon(lat, lon)
	v.moved = true
}

// toPixels converts a point in the region to map pixels.
func (v *MapView) toPixels(p region.Point) (px, py float64) {
	px = float64((p.X - v.Region.MinX) / v.Region.Width() * float32(v.Map.ScreenWidth))
	py = float64((v.Region.MaxY - p.Y) / v.Region.Height() * float32(v.Map.ScreenHeight))
	return px, py
}

// fromPixels converts map pixels to a point in the region.
func (v *MapView) fromPixels(px, py float64) region.Point {
	return region.Point{
		X: v.Region.MinX + float32(px/float64(v.Map.ScreenWidth))*v.Region.Width(),
		Y: v.Region.MaxY - float32(py/float64(v.Map.ScreenHeight))*v.Region.Height(),
	}
}

func (v *MapView) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&mapBehavior{MapView: v}}
}

type mapBehavior struct {
	*MapView

	dragging bool
	lastZoom time.Time
}

func (m *mapBehavior) Attach(c ui.ClaimSet) {
	logClaim("map", c.ClaimRenderSpace(m.Region, ui.TriggerRequest, ui.OpacitySolid, ui.PhaseBase))
	logClaim("map", c.ClaimMouseScrollSpace(m.Region))
	logClaim("map", c.ClaimMouseMoveSpace(m.Region))
	logClaim("map", c.ClaimMouseClickSpace(m.Region))
	c.MakeKeyDownListener(0)
	c.MakeUpdateListener()
}

func (m *mapBehavior) MouseClickInside(ctx *ui.ClickContext) {
	if ctx.Click.Button == ui.ButtonLeft {
		m.dragging = !m.dragging
	}
}

func (m *mapBehavior) MouseClickOutside(*ui.ClickContext) {
	m.dragging = false
}

func (m *mapBehavior) MouseMove(ctx *ui.MoveContext) {
	if !m.dragging {
		return
	}
	from, ok1 := ctx.From.Point()
	to, ok2 := ctx.To.Point()
	if !ok1 || !ok2 {
		m.dragging = false
		return
	}
	fx, fy := m.toPixels(from)
	tx, ty := m.toPixels(to)
	m.Map.PanBy(tx-fx, ty-fy)
	ctx.Agent.RequestRender()
}

func (m *mapBehavior) MouseScroll(ctx *ui.ScrollContext) bool {
	pt, ok := ctx.Mouse.Point()
	if !ok || ctx.Delta == 0 {
		return false
	}
	if now := m.now(); now.Sub(m.lastZoom) >= zoomThrottle {
		m.lastZoom = now
		px, py := m.toPixels(pt)
		m.Map.ZoomAtPoint(ctx.Delta > 0, px, py)
		ctx.Agent.RequestRender()
	}
	return true
}

func (m *mapBehavior) KeyDown(ctx *ui.KeyContext) bool {
	switch ctx.Key.Key {
	case "=", "+":
		m.Map.ZoomIn()
	case "-":
		m.Map.ZoomOut()
	case "ArrowLeft":
		m.Map.Pan(tilemap.PanLeft)
	case "ArrowRight":
		m.Map.Pan(tilemap.PanRight)
	case "ArrowUp":
		m.Map.Pan(tilemap.PanUp)
	case "ArrowDown":
		m.Map.Pan(tilemap.PanDown)
	case "Escape":
		if !m.dragging {
			return false
		}
		m.dragging = false
	case "F1":
		m.Debug = !m.Debug
	default:
		return false
	}
	ctx.Agent.RequestRender()
	return true
}

// Update picks up tiles that finished downloading and moves made through
// CenterOn.
func (m *mapBehavior) Update(ctx *ui.Context) {
	if m.Map.Poll() || m.moved {
		m.moved = false
		ctx.Agent.RequestRender()
	}
}

func (m *mapBehavior) Render(ctx *ui.DrawContext) ui.RenderResult {
	m.Map.Draw(ctx.Surface, ctx.Region, m.Debug)
	if m.Debug {
		// Arms of the crosshair are the same number of pixels long.
		red := color.RGBA{R: 255, A: 255}
		a := ctx.Frame.AspectRatio()
		ctx.Surface.FillRegion(ctx.FrameRegion(0.5-crossArm, 0.5-crossWidth/a, 0.5+crossArm, 0.5+crossWidth/a), red)
		ctx.Surface.FillRegion(ctx.FrameRegion(0.5-crossWidth, 0.5-crossArm/a, 0.5+crossWidth, 0.5+crossArm/a), red)
	}
	return ui.RenderResult{}
}

func (m *mapBehavior) Cursor(*ui.Context) ui.Cursor {
	if m.dragging {
		return ui.CursorGrabbing
	}
	return ui.CursorGrab
}
