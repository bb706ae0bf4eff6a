package ui

import (
	"log"

	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
)

// ResizeListener is told when the viewport changes size. Without one, the
// controller simply redraws everything.
type ResizeListener interface {
	OnResize(c *Controller, width, height int)
}

// Controller drives the active container. The host feeds it native input
// in pixels and calls Render once per frame.
type Controller struct {
	container Container
	viewport  proj.Viewport
	mouse     region.Position
	cursor    Cursor
	resize    ResizeListener
}

// NewController creates a controller for a viewport of the given pixel size.
func NewController(container Container, width, height int) *Controller {
	c := &Controller{viewport: proj.Viewport{Width: width, Height: height}}
	c.SetContainer(container)
	return c
}

// SetContainer switches to next and marks it for a full redraw.
func (c *Controller) SetContainer(next Container) {
	c.container = next
	if next == nil {
		return
	}
	next.ForceRender()
	c.apply(next.OnMouseMove(c.mouse))
}

func (c *Controller) Container() Container   { return c.container }
func (c *Controller) Viewport() proj.Viewport { return c.viewport }
func (c *Controller) Mouse() region.Position  { return c.mouse }

func (c *Controller) SetResizeListener(l ResizeListener) {
	c.resize = l
}

func (c *Controller) apply(r Result) {
	if r.Next != nil {
		log.Printf("ui: switching container")
		c.SetContainer(r.Next)
	}
}

// KeyDown returns whether the key press was consumed.
func (c *Controller) KeyDown(key KeyInfo) bool {
	if c.container == nil {
		return false
	}
	r := c.container.OnKeyDown(key)
	c.apply(r.Result)
	return r.Consumed
}

// KeyUp returns whether the key release was consumed.
func (c *Controller) KeyUp(key KeyInfo) bool {
	if c.container == nil {
		return false
	}
	r := c.container.OnKeyUp(key)
	c.apply(r.Result)
	return r.Consumed
}

func (c *Controller) MouseClick(click ClickInfo) {
	if c.container == nil {
		return
	}
	c.apply(c.container.OnMouseClick(click))
}

// MouseMove takes the new mouse position in pixels.
func (c *Controller) MouseMove(px, py float64) {
	if !c.viewport.Valid() {
		return
	}
	c.moveTo(region.AtPoint(c.viewport.ToViewport(px, py)))
}

// MouseLeave is called when the mouse leaves the canvas.
func (c *Controller) MouseLeave() {
	c.moveTo(region.Unknown)
}

func (c *Controller) moveTo(pos region.Position) {
	if pos == c.mouse {
		return
	}
	c.mouse = pos
	if c.container == nil {
		return
	}
	c.apply(c.container.OnMouseMove(pos))
}

// MouseScroll returns whether the wheel event was consumed.
func (c *Controller) MouseScroll(delta float64) bool {
	if c.container == nil {
		return false
	}
	r := c.container.OnMouseScroll(delta)
	c.apply(r.Result)
	return r.Consumed
}

func (c *Controller) Update() {
	if c.container == nil {
		return
	}
	c.apply(c.container.OnUpdate())
}

// Copy returns the data to put on the clipboard, or nil.
func (c *Controller) Copy() ClipboardData {
	if c.container == nil {
		return nil
	}
	data, r := c.container.OnCopy()
	c.apply(r)
	return data
}

// Cut returns the data to put on the clipboard, or nil.
func (c *Controller) Cut() ClipboardData {
	if c.container == nil {
		return nil
	}
	data, r := c.container.OnCut()
	c.apply(r)
	return data
}

// Paste returns whether the data was accepted.
func (c *Controller) Paste(data ClipboardData) bool {
	if c.container == nil {
		return false
	}
	r := c.container.OnPaste(data)
	c.apply(r.Result)
	return r.Consumed
}

// Render draws the active container. The second result reports whether the
// cursor differs from the one returned by the previous call.
func (c *Controller) Render(s Surface) (Cursor, bool) {
	if c.container == nil {
		return c.cursor.Or(CursorDefault), false
	}
	cursor := c.container.Render(s).Or(CursorDefault)
	changed := cursor != c.cursor
	c.cursor = cursor
	return cursor, changed
}

// Resize updates the viewport size.
func (c *Controller) Resize(width, height int) {
	if width == c.viewport.Width && height == c.viewport.Height {
		return
	}
	c.viewport = proj.Viewport{Width: width, Height: height}
	if c.resize != nil {
		c.resize.OnResize(c, width, height)
		return
	}
	if c.container != nil {
		c.container.ForceRender()
	}
}
