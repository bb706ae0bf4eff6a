// Package host runs a ui.Controller inside an ebiten window.
package host

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/ui"
)

// Game implements ebiten.Game, feeding native input to the controller and
// drawing its container once per frame.
type Game struct {
	ctrl *ui.Controller

	// canvas persists between frames; only dirty areas get redrawn.
	canvas *ebiten.Image
	images *imageCache

	clipboard string
	keys      []ebiten.Key
	mouseX    int
	mouseY    int
	mouseIn   bool
	touch     touchState
}

func NewGame(ctrl *ui.Controller) *Game {
	return &Game{ctrl: ctrl, images: newImageCache()}
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleMouse()
	g.handleTouchEvents()
	g.ctrl.Update()
	return nil
}

func (g *Game) handleKeys() {
	mods := currentMods()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch clipboardAction(k, mods) {
		case "copy":
			g.store(g.ctrl.Copy())
			continue
		case "cut":
			g.store(g.ctrl.Cut())
			continue
		case "paste":
			if g.clipboard != "" {
				g.ctrl.Paste(ui.ClipboardText(g.clipboard))
			}
			continue
		}
		if info, ok := keyInfo(k, mods); ok {
			g.ctrl.KeyDown(info)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if info, ok := keyInfo(k, mods); ok {
			g.ctrl.KeyUp(info)
		}
	}
}

func (g *Game) store(data ui.ClipboardData) {
	if text, ok := data.(ui.ClipboardText); ok {
		g.clipboard = string(text)
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	vp := g.ctrl.Viewport()
	in := ebiten.IsFocused() && x >= 0 && y >= 0 && x < vp.Width && y < vp.Height
	switch {
	case in && (!g.mouseIn || x != g.mouseX || y != g.mouseY):
		g.ctrl.MouseMove(float64(x), float64(y))
	case !in && g.mouseIn:
		g.ctrl.MouseLeave()
	}
	g.mouseX, g.mouseY, g.mouseIn = x, y, in
	if !in {
		return
	}

	mods := currentMods()
	for _, b := range []struct {
		native ebiten.MouseButton
		button ui.MouseButton
	}{
		{ebiten.MouseButtonLeft, ui.ButtonLeft},
		{ebiten.MouseButtonMiddle, ui.ButtonMiddle},
		{ebiten.MouseButtonRight, ui.ButtonRight},
	} {
		if inpututil.IsMouseButtonJustPressed(b.native) {
			g.ctrl.MouseClick(ui.ClickInfo{Button: b.button, Mods: mods})
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.ctrl.MouseScroll(wheelY)
	}
}

func (g *Game) Draw(screenImage *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	cursor, changed := g.ctrl.Render(&screen{dst: g.canvas, vp: g.ctrl.Viewport(), images: g.images})
	g.images.endFrame()
	if changed {
		ebiten.SetCursorShape(cursorShape(cursor))
	}
	screenImage.DrawImage(g.canvas, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.canvas == nil || g.canvas.Bounds() != image.Rect(0, 0, outsideWidth, outsideHeight) {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(outsideWidth, outsideHeight)
		g.ctrl.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window described by cfg and blocks until it is closed.
func Run(ctrl *ui.Controller, cfg config.Window) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetVsyncEnabled(true)

	log.Printf("host: opening %dx%d window %q", cfg.Width, cfg.Height, cfg.Title)
	if err := ebiten.RunGame(NewGame(ctrl)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
