package proj

import "math"

// Web Mercator limits
const (
	maxLat    = 85.0511 // arctan(sinh(π))
	minLat    = -85.0511
	maxMeters = 20037508.34
	degToRad  = math.Pi / 180.0
	radToDeg  = 180.0 / math.Pi
)

// MaxZoom is the highest zoom level the conversions support.
const MaxZoom = 21

// pow2 contains pre-calculated powers of 2 for zoom levels 0-21
var pow2 = [MaxZoom + 1]float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
	1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152,
}

// TileCount returns the number of tiles along one axis at zoom.
func TileCount(zoom int) float64 {
	return pow2[clampZoom(zoom)]
}

func clampZoom(zoom int) int {
	if zoom < 0 {
		return 0
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// LatLonToTileCoords converts WGS84 degrees to fractional Web Mercator tile
// coordinates at zoom. Latitude is clamped to the Mercator limits.
func LatLonToTileCoords(lat, lon float64, zoom int) (x, y float64) {
	if lat > maxLat {
		lat = maxLat
	} else if lat < minLat {
		lat = minLat
	}

	n := TileCount(zoom)
	x = (lon + 180.0) * (n / 360.0)

	if lat >= maxLat {
		return x, 0
	}
	if lat <= minLat {
		return x, n
	}

	sinLat := math.Sin(lat * degToRad)
	y = n * (0.5 - 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi)
	return x, y
}

// TileCoordsToLatLon is the inverse of LatLonToTileCoords.
func TileCoordsToLatLon(x, y float64, zoom int) (lat, lon float64) {
	n := TileCount(zoom)
	lon = x/n*360.0 - 180.0
	lat = math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * radToDeg
	return lat, lon
}

// WebMercatorToTileCoords converts EPSG:3857 meters to fractional tile
// coordinates at zoom.
func WebMercatorToTileCoords(x, y float64, zoom int) (tileX, tileY float64) {
	normalizedX := (x + maxMeters) / (2 * maxMeters)
	normalizedY := 1 - ((y + maxMeters) / (2 * maxMeters))

	n := TileCount(zoom)
	return normalizedX * n, normalizedY * n
}

// ClampLatLon keeps a coordinate inside the range the projection can show.
func ClampLatLon(lat, lon float64) (float64, float64) {
	return math.Max(minLat, math.Min(maxLat, lat)), math.Max(-180, math.Min(180, lon))
}
