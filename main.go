package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/host"
	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/shape"
	"github.com/OpticalFlyer/strata/tilemap"
	"github.com/OpticalFlyer/strata/ui"
	"github.com/OpticalFlyer/strata/widget"
)

// app holds the containers of the demo and what has to follow the window
// size.
type app struct {
	cfg     config.Config
	mapView *widget.MapView
	main    *ui.LayeredContainer
	about   *ui.FlatContainer
}

func (a *app) OnResize(c *ui.Controller, width, height int) {
	if a.mapView != nil {
		a.mapView.SetViewport(c.Viewport())
	}
	if next := c.Container(); next != nil {
		next.ForceRender()
	}
}

func (a *app) buildMain() error {
	phases := ui.DefaultPhases()
	back := ui.NewLayerWithBackground(phases, color.RGBA(a.cfg.Background))
	layers := []ui.Layer{back}

	if a.cfg.Map.Enabled {
		tm := tilemap.New(a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.Map.Lat, a.cfg.Map.Lon, a.cfg.Map.Zoom,
			tilemap.HTTPFetcher(a.cfg.Map.TileURL, a.cfg.Map.UserAgent))
		a.mapView = widget.NewMapView(region.EntireViewport(), tm)
		back.AddComponent(a.mapView)

		if a.cfg.Shapes.Path != "" {
			meshes, err := loadMeshes(a.cfg.Shapes.Path)
			if err != nil {
				return err
			}
			overlay := ui.NewLayer(phases)
			overlay.AddComponent(widget.NewShapeOverlay(a.mapView, meshes, a.cfg.Shapes.CRS, a.cfg.Shapes.Fill))
			layers = append(layers, overlay)
		}
	}

	middle := ui.NewLayer(phases)
	shapes := "none"
	if a.cfg.Shapes.Path != "" {
		shapes = a.cfg.Shapes.Path
	}
	middle.AddComponent(widget.NewPanel(region.New(-0.95, 0.2, -0.45, 0.85), "Layers",
		"Map: "+mapName(a.cfg.Map),
		"Shapes: "+shapes,
		"F1: tile debug",
		"Click map: drag"))
	middle.AddComponent(widget.NewButton(region.New(0.7, -0.98, 0.98, -0.88), "About", func(agent *ui.Agent) {
		agent.ChangeContainer(a.about)
	}))

	if a.mapView != nil {
		status := widget.NewLabel(region.New(0.3, 0.9, 0.98, 0.98), "")
		status.Source = func() string {
			tm := a.mapView.Map
			return fmt.Sprintf("%.4f, %.4f  z%d", tm.CenterLat, tm.CenterLon, tm.Zoom)
		}
		middle.AddComponent(status)

		search := widget.NewTextField(region.New(-0.3, -0.98, 0.6, -0.88), "Go to lat, lon")
		search.OnSubmit = func(_ *ui.Agent, text string) {
			lat, lon, err := parseLatLon(text)
			if err != nil {
				log.Printf("go to %q: %v", text, err)
				return
			}
			a.mapView.CenterOn(lat, lon)
		}
		middle.AddComponent(search)
	}
	layers = append(layers, middle)

	front := ui.NewLayer(phases)
	front.AddComponent(widget.NewPopup(region.New(-0.5, -0.3, 0.5, 0.3), "Welcome to "+a.cfg.Window.Title,
		"Drag the Layers panel by its title.",
		"Drop it near an edge to dock it.",
		"Click outside or press Enter to close."))
	layers = append(layers, front)

	a.main = ui.NewLayeredContainer(layers...)
	return nil
}

func (a *app) buildAbout() {
	layer := ui.NewLayerWithBackground(ui.DefaultPhases(), color.RGBA{20, 20, 40, 255})
	layer.AddComponent(widget.NewLabel(region.New(-0.6, 0.2, 0.6, 0.3), a.cfg.Window.Title+": layered canvas UI demo"))
	layer.AddComponent(widget.NewLabel(region.New(-0.6, 0.05, 0.6, 0.15), "Map data (c) OpenStreetMap contributors"))
	layer.AddComponent(widget.NewButton(region.New(-0.2, -0.3, 0.2, -0.15), "Back", func(agent *ui.Agent) {
		agent.ChangeContainer(a.main)
	}))
	a.about = ui.NewFlatContainer(layer)
}

func mapName(m config.Map) string {
	if !m.Enabled {
		return "off"
	}
	if m.TileURL == tilemap.DefaultTileURL {
		return "OpenStreetMap"
	}
	return "custom tiles"
}

func loadMeshes(path string) ([]shape.Mesh, error) {
	polygons, err := shape.Load(path)
	if err != nil {
		return nil, err
	}
	meshes, err := shape.TriangulateAll(polygons)
	if err != nil {
		return nil, fmt.Errorf("triangulating %s: %w", path, err)
	}
	log.Printf("loaded %d polygons from %s", len(meshes), path)
	return meshes, nil
}

var errBadLatLon = errors.New(`want "lat, lon"`)

func parseLatLon(s string) (lat, lon float64, err error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errBadLatLon
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
		return 0, 0, errBadLatLon
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
		return 0, 0, errBadLatLon
	}
	return lat, lon, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	a := &app{cfg: cfg}
	a.buildAbout()
	if err := a.buildMain(); err != nil {
		log.Fatal(err)
	}

	ctrl := ui.NewController(a.main, cfg.Window.Width, cfg.Window.Height)
	ctrl.SetResizeListener(a)
	if a.mapView != nil {
		a.mapView.SetViewport(ctrl.Viewport())
	}

	if err := host.Run(ctrl, cfg.Window); err != nil {
		log.Fatal(err)
	}
}
