package tilemap

import (
	"math"

	"github.com/OpticalFlyer/strata/proj"
)

// PanDirection represents a direction to pan the map
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanSpeed in pixels per key press
const PanSpeed = 50

// Pan moves the map center in the specified direction by a fixed number of pixels
func (tm *TileMap) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		tm.PanBy(PanSpeed, 0)
	case PanRight:
		tm.PanBy(-PanSpeed, 0)
	case PanUp:
		tm.PanBy(0, PanSpeed)
	case PanDown:
		tm.PanBy(0, -PanSpeed)
	}
}

// PanBy moves the map by pixel offsets.
// Positive dx moves the map east (the view west), positive dy moves the
// map south (the view north), following the pointer during a drag.
func (tm *TileMap) PanBy(dx, dy float64) {
	centerTileX, centerTileY := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)
	tm.setCenterTile(centerTileX-dx/TileSize, centerTileY-dy/TileSize)
}

// setCenterTile moves the center to fractional tile coordinates at the
// current zoom, clamped to the world without wrapping.
func (tm *TileMap) setCenterTile(tileX, tileY float64) {
	n := proj.TileCount(tm.Zoom)
	tileX = math.Max(0, math.Min(n, tileX))
	tileY = math.Max(0, math.Min(n, tileY))
	tm.CenterLat, tm.CenterLon = proj.ClampLatLon(proj.TileCoordsToLatLon(tileX, tileY, tm.Zoom))
}
