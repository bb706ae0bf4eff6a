package tilemap

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

const (
	// TileSize is the size of map tiles in pixels
	TileSize = 256
	// MaxZoomLevel is the maximum zoom level supported
	MaxZoomLevel = 19

	// DefaultTileURL is the OpenStreetMap tile server.
	DefaultTileURL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	// DefaultUserAgent identifies the application to the tile server.
	DefaultUserAgent = "strata 1.0"
)

// TileRange defines the range of tiles needed to cover the viewport
type TileRange struct {
	MinX, MaxX int
	MinY, MaxY int
}

// TileKey uniquely identifies a map tile
type TileKey struct {
	Zoom int
	X    int
	Y    int
}

func (k TileKey) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Zoom, k.X, k.Y)
}

// FetchFunc loads the image of a single tile. It is called from background
// goroutines.
type FetchFunc func(key TileKey) (image.Image, error)

// TileMap manages the slippy map tile system
type TileMap struct {
	// View state
	CenterLat    float64
	CenterLon    float64
	Zoom         int
	ScreenWidth  int
	ScreenHeight int

	fetch FetchFunc

	// Tile management
	tileCache  map[TileKey]image.Image
	arrived    bool
	cacheMu    sync.RWMutex
	fetching   map[TileKey]bool
	fetchingMu sync.Mutex
}

// New creates a new TileMap instance
func New(screenWidth, screenHeight int, lat, lon float64, zoom int, fetch FetchFunc) *TileMap {
	return &TileMap{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		CenterLat:    lat,
		CenterLon:    lon,
		Zoom:         zoom,
		fetch:        fetch,
		tileCache:    make(map[TileKey]image.Image),
		fetching:     make(map[TileKey]bool),
	}
}

// Resize changes the pixel size of the area the map covers.
func (tm *TileMap) Resize(screenWidth, screenHeight int) {
	tm.ScreenWidth = screenWidth
	tm.ScreenHeight = screenHeight
}

// CalculateVisibleTileRange determines which tiles are needed for the current view
func (tm *TileMap) CalculateVisibleTileRange() (TileRange, float64, float64) {
	centerXTileF, centerYTileF := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)

	halfW := float64(tm.ScreenWidth) / 2.0 / TileSize
	halfH := float64(tm.ScreenHeight) / 2.0 / TileSize

	maxCoord := 1 << tm.Zoom
	return TileRange{
		MinX: max(0, int(math.Floor(centerXTileF-halfW))),
		MaxX: min(maxCoord-1, int(math.Floor(centerXTileF+halfW))),
		MinY: max(0, int(math.Floor(centerYTileF-halfH))),
		MaxY: min(maxCoord-1, int(math.Floor(centerYTileF+halfH))),
	}, centerXTileF, centerYTileF
}

// Poll reports whether tiles arrived since the previous call.
func (tm *TileMap) Poll() bool {
	tm.cacheMu.Lock()
	defer tm.cacheMu.Unlock()
	arrived := tm.arrived
	tm.arrived = false
	return arrived
}

// Cached reports whether the tile is in the cache.
func (tm *TileMap) Cached(key TileKey) bool {
	tm.cacheMu.RLock()
	defer tm.cacheMu.RUnlock()
	_, ok := tm.tileCache[key]
	return ok
}

// Draw renders the visible tiles into area, which must correspond to the
// ScreenWidth x ScreenHeight pixels of the map. Tiles are cropped to area.
// Missing tiles are drawn black and fetched in the background.
func (tm *TileMap) Draw(s ui.Surface, area region.Region, debugMode bool) TileRange {
	tileRange, centerXTileF, centerYTileF := tm.CalculateVisibleTileRange()
	s.FillRegion(area, color.Black)

	tm.cacheMu.RLock()
	tm.fetchingMu.Lock()
	defer tm.fetchingMu.Unlock()
	defer tm.cacheMu.RUnlock()

	screen := image.Rect(0, 0, tm.ScreenWidth, tm.ScreenHeight)
	for ty := tileRange.MinY; ty <= tileRange.MaxY; ty++ {
		for tx := tileRange.MinX; tx <= tileRange.MaxX; tx++ {
			key := TileKey{Zoom: tm.Zoom, X: tx, Y: ty}
			tileImg, found := tm.tileCache[key]
			isFetching := tm.fetching[key]

			drawX := int(math.Round(float64(tm.ScreenWidth)/2 - (centerXTileF-float64(tx))*TileSize))
			drawY := int(math.Round(float64(tm.ScreenHeight)/2 - (centerYTileF-float64(ty))*TileSize))
			bounds := image.Rect(drawX, drawY, drawX+TileSize, drawY+TileSize)
			visible := bounds.Intersect(screen)
			if visible.Empty() {
				continue
			}
			dst := tm.pixelsToArea(area, visible)

			if !found && !isFetching && tm.fetch != nil {
				tm.fetching[key] = true
				go tm.fetchAndCacheTile(key)
				isFetching = true
			}

			if found {
				src := visible.Sub(bounds.Min).Add(tileImg.Bounds().Min)
				s.DrawImage(tileImg, src, dst)
			}
			if debugMode {
				drawDebug(s, dst, key, found, isFetching)
			}
		}
	}

	return tileRange
}

func drawDebug(s ui.Surface, dst region.Region, key TileKey, found, isFetching bool) {
	redColor := color.RGBA{R: 255, A: 255}
	label := key.String()
	switch {
	case found:
		s.FillRegion(dst, color.RGBA{B: 100, A: 100})
	case isFetching:
		s.FillRegion(dst, color.RGBA{R: 100, G: 100, A: 50})
		label = "Fetching: " + label
	default:
		s.FillRegion(dst, color.RGBA{R: 50, A: 50})
		label = "Needed: " + label
	}
	s.StrokeRegion(dst, 1, redColor)
	s.Text(label, region.Point{X: dst.MinX, Y: dst.MaxY}, color.White)
}

// pixelsToArea maps a rectangle in map pixels (y down) into area (y up).
func (tm *TileMap) pixelsToArea(area region.Region, r image.Rectangle) region.Region {
	sx := area.Width() / float32(tm.ScreenWidth)
	sy := area.Height() / float32(tm.ScreenHeight)
	return region.New(
		area.MinX+float32(r.Min.X)*sx,
		area.MaxY-float32(r.Max.Y)*sy,
		area.MinX+float32(r.Max.X)*sx,
		area.MaxY-float32(r.Min.Y)*sy,
	)
}

// fetchAndCacheTile fetches and caches a single tile
func (tm *TileMap) fetchAndCacheTile(key TileKey) {
	defer func() {
		tm.fetchingMu.Lock()
		delete(tm.fetching, key)
		tm.fetchingMu.Unlock()
	}()

	tileImg, err := tm.fetch(key)
	if err != nil {
		log.Printf("Error fetching tile %v: %v", key, err)
		return
	}

	tm.cacheMu.Lock()
	tm.tileCache[key] = tileImg
	tm.arrived = true
	tm.cacheMu.Unlock()
}

// TileURL expands the {z}, {x} and {y} placeholders of a URL template.
func TileURL(template string, key TileKey) string {
	return strings.NewReplacer(
		"{z}", strconv.Itoa(key.Zoom),
		"{x}", strconv.Itoa(key.X),
		"{y}", strconv.Itoa(key.Y),
	).Replace(template)
}

// HTTPFetcher returns a FetchFunc downloading tiles from a tile server.
func HTTPFetcher(urlTemplate, userAgent string) FetchFunc {
	client := &http.Client{Timeout: 30 * time.Second}
	return func(key TileKey) (image.Image, error) {
		maxCoord := 1 << key.Zoom
		if key.X < 0 || key.X >= maxCoord || key.Y < 0 || key.Y >= maxCoord {
			return nil, fmt.Errorf("tile coordinates (%d, %d) out of range for zoom %d", key.X, key.Y, key.Zoom)
		}

		tileURL := TileURL(urlTemplate, key)
		req, err := http.NewRequest(http.MethodGet, tileURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request for %s failed: %w", tileURL, err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s failed: %w", tileURL, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch tile %s: %s", tileURL, resp.Status)
		}

		img, _, err := image.Decode(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding image %s failed: %w", tileURL, err)
		}
		return img, nil
	}
}
