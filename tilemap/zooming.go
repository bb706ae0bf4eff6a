package tilemap

import "github.com/OpticalFlyer/strata/proj"

// ZoomIn increases the zoom level if not at max zoom
func (tm *TileMap) ZoomIn() {
	if tm.Zoom < MaxZoomLevel {
		tm.Zoom++
	}
}

// ZoomOut decreases the zoom level if not at minimum zoom
func (tm *TileMap) ZoomOut() {
	if tm.Zoom > 0 {
		tm.Zoom--
	}
}

// ScreenToWorld converts map pixel coordinates to tile coordinates
func (tm *TileMap) ScreenToWorld(screenX, screenY float64) (tileX, tileY float64) {
	centerTileX, centerTileY := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)
	tileX = centerTileX + (screenX-float64(tm.ScreenWidth)/2)/TileSize
	tileY = centerTileY + (screenY-float64(tm.ScreenHeight)/2)/TileSize
	return tileX, tileY
}

// WorldToScreen converts tile coordinates at the current zoom to map pixels.
func (tm *TileMap) WorldToScreen(tileX, tileY float64) (screenX, screenY float64) {
	centerTileX, centerTileY := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)
	screenX = float64(tm.ScreenWidth)/2 + (tileX-centerTileX)*TileSize
	screenY = float64(tm.ScreenHeight)/2 + (tileY-centerTileY)*TileSize
	return screenX, screenY
}

// ZoomAtPoint zooms the map while keeping the world point under the given
// map pixel at the same place. Points outside the world are ignored.
func (tm *TileMap) ZoomAtPoint(zoomIn bool, screenX, screenY float64) {
	if (zoomIn && tm.Zoom >= MaxZoomLevel) || (!zoomIn && tm.Zoom <= 0) {
		return
	}

	mouseWorldX, mouseWorldY := tm.ScreenToWorld(screenX, screenY)
	n := proj.TileCount(tm.Zoom)
	if mouseWorldX < 0 || mouseWorldX > n || mouseWorldY < 0 || mouseWorldY > n {
		return
	}

	scale := 2.0
	if zoomIn {
		tm.Zoom++
	} else {
		tm.Zoom--
		scale = 0.5
	}

	offsetX := (screenX - float64(tm.ScreenWidth)/2) / TileSize
	offsetY := (screenY - float64(tm.ScreenHeight)/2) / TileSize
	tm.setCenterTile(mouseWorldX*scale-offsetX, mouseWorldY*scale-offsetY)
}
