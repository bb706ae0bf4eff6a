package widget

import (
	"image/color"

	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/shape"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*ShapeOverlay)(nil)

// ShapeOverlay draws polygons on top of a MapView. It belongs in a layer in
// front of the map, claiming the same region; it redraws whenever the map
// does. It never takes the mouse away from the map.
type ShapeOverlay struct {
	View   *MapView
	Meshes []shape.Mesh
	CRS    shape.CRS
	Fill   color.Color
}

func NewShapeOverlay(view *MapView, meshes []shape.Mesh, crs shape.CRS, fill color.Color) *ShapeOverlay {
	return &ShapeOverlay{View: view, Meshes: meshes, CRS: crs, Fill: fill}
}

func (o *ShapeOverlay) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&shapeBehavior{ShapeOverlay: o}}
}

// project converts a vertex in the overlay's coordinate system to the view.
func (o *ShapeOverlay) project(x, y float64) region.Point {
	tm := o.View.Map
	var tx, ty float64
	if o.CRS == shape.WebMercator {
		tx, ty = proj.WebMercatorToTileCoords(x, y, tm.Zoom)
	} else {
		tx, ty = proj.LatLonToTileCoords(y, x, tm.Zoom)
	}
	return o.View.fromPixels(tm.WorldToScreen(tx, ty))
}

type shapeBehavior struct {
	*ShapeOverlay
	vertices []region.Point
}

func (s *shapeBehavior) Attach(c ui.ClaimSet) {
	logClaim("shapes", c.ClaimRenderSpace(s.View.Region, ui.TriggerRequest, ui.OpacityMixed, ui.PhaseBase))
}

func (s *shapeBehavior) Render(ctx *ui.DrawContext) ui.RenderResult {
	surface := ctx.Surface.Clip(ctx.Region)
	for _, m := range s.Meshes {
		s.vertices = s.vertices[:0]
		bounds := region.Region{MinX: 2, MinY: 2, MaxX: -2, MaxY: -2}
		for i := 0; i+1 < len(m.Coords); i += 2 {
			p := s.project(m.Coords[i], m.Coords[i+1])
			s.vertices = append(s.vertices, p)
			bounds.MinX, bounds.MaxX = min(bounds.MinX, p.X), max(bounds.MaxX, p.X)
			bounds.MinY, bounds.MaxY = min(bounds.MinY, p.Y), max(bounds.MaxY, p.Y)
		}
		if !bounds.Intersects(ctx.Region) {
			continue
		}
		surface.FillTriangles(s.vertices, m.Indices, s.Fill)
	}
	return ui.RenderResult{Drawn: []region.Region{}}
}
