// Package config holds the settings of the demo application.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/strata/shape"
	"github.com/OpticalFlyer/strata/tilemap"
)

// Config is the root of the configuration file.
type Config struct {
	Window     Window `yaml:"window"`
	Background Color  `yaml:"background"`
	Map        Map    `yaml:"map"`
	Shapes     Shapes `yaml:"shapes"`
}

// Window describes the host window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// TPS is the number of update ticks per second.
	TPS int `yaml:"tps"`
}

// Map configures the slippy map.
type Map struct {
	Enabled   bool    `yaml:"enabled"`
	Lat       float64 `yaml:"lat"`
	Lon       float64 `yaml:"lon"`
	Zoom      int     `yaml:"zoom"`
	TileURL   string  `yaml:"tile_url"`
	UserAgent string  `yaml:"user_agent"`
}

// Shapes configures the polygon overlay. An empty path disables it.
type Shapes struct {
	Path string    `yaml:"path"`
	CRS  shape.CRS `yaml:"crs"`
	Fill Color     `yaml:"fill"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Strata",
			TPS:    60,
		},
		Background: Color{R: 30, G: 30, B: 30, A: 255},
		Map: Map{
			Enabled:   true,
			Lat:       39.8333,
			Lon:       -98.5833,
			Zoom:      4,
			TileURL:   tilemap.DefaultTileURL,
			UserAgent: tilemap.DefaultUserAgent,
		},
		Shapes: Shapes{
			CRS:  shape.WGS84,
			Fill: Color{R: 33, G: 150, B: 243, A: 120},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > tilemap.MaxZoomLevel {
		errs = append(errs, fmt.Errorf("map zoom %d outside 0..%d", c.Map.Zoom, tilemap.MaxZoomLevel))
	}
	if c.Map.Lat < -90 || c.Map.Lat > 90 || c.Map.Lon < -180 || c.Map.Lon > 180 {
		errs = append(errs, fmt.Errorf("map center (%g, %g) is not a coordinate", c.Map.Lat, c.Map.Lon))
	}
	if c.Map.Enabled {
		for _, p := range []string{"{z}", "{x}", "{y}"} {
			if !strings.Contains(c.Map.TileURL, p) {
				errs = append(errs, fmt.Errorf("map tile_url %q lacks %s", c.Map.TileURL, p))
			}
		}
	}
	switch c.Shapes.CRS {
	case shape.WGS84, shape.WebMercator:
	default:
		errs = append(errs, fmt.Errorf("shapes crs %q is not %q or %q", c.Shapes.CRS, shape.WGS84, shape.WebMercator))
	}
	return errors.Join(errs...)
}

// Color is an RGBA color written as #rrggbb or #rrggbbaa.
type Color color.RGBA

// ParseColor parses #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("malformed color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("malformed color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return color.RGBA(c).RGBA() }

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
