package proj

import (
	"math"
	"testing"
)

func TestLatLonToTileCoords(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		zoom     int
		wantX    float64
		wantY    float64
	}{
		{
			name:  "Center of map at zoom 1",
			lat:   0,
			lon:   0,
			zoom:  1,
			wantX: 1.0,
			wantY: 1.0,
		},
		{
			name:  "Top-left corner at zoom 1",
			lat:   maxLat,
			lon:   -180,
			zoom:  1,
			wantX: 0.0,
			wantY: 0.0,
		},
		{
			name:  "Bottom-right corner at zoom 1",
			lat:   minLat,
			lon:   180,
			zoom:  1,
			wantX: 2.0,
			wantY: 2.0,
		},
		{
			name:  "Latitude beyond the limit is clamped",
			lat:   89,
			lon:   0,
			zoom:  2,
			wantX: 2.0,
			wantY: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := LatLonToTileCoords(tt.lat, tt.lon, tt.zoom)
			if math.Abs(gotX-tt.wantX) > 1e-6 || math.Abs(gotY-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTileCoordsRoundTrip(t *testing.T) {
	coords := [][2]float64{
		{0, 0},
		{39.8333, -98.5833},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
	}

	for _, c := range coords {
		x, y := LatLonToTileCoords(c[0], c[1], 10)
		lat, lon := TileCoordsToLatLon(x, y, 10)
		if math.Abs(lat-c[0]) > 1e-6 || math.Abs(lon-c[1]) > 1e-6 {
			t.Errorf("round trip of %v gave (%f, %f)", c, lat, lon)
		}
	}
}

func TestWebMercatorToTileCoords(t *testing.T) {
	x, y := WebMercatorToTileCoords(0, 0, 1)
	if math.Abs(x-1) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("origin at zoom 1 = (%f, %f); want (1, 1)", x, y)
	}
	x, y = WebMercatorToTileCoords(-maxMeters, maxMeters, 3)
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("top-left at zoom 3 = (%f, %f); want (0, 0)", x, y)
	}
}
