package ui

import (
	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
)

// Component is the unit that gets added to a layer. Its only job is to
// produce the behaviors that do the actual work.
type Component interface {
	CreateBehaviors() []Behavior
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func() []Behavior

func (f ComponentFunc) CreateBehaviors() []Behavior { return f() }

// Behavior is an independently dispatched unit of interactive logic.
//
// Attach is called exactly once, when the behavior is added to a layer.
// It declares everything the behavior wants to receive through claims.
// The callbacks themselves are optional: a behavior implements only the
// handler interfaces below that it cares about. A behavior registered for
// a category whose handler it does not implement is skipped.
type Behavior interface {
	Attach(claims ClaimSet)
}

// Context is passed to every behavior callback.
type Context struct {
	// Agent collects the requests of the behavior being called.
	Agent *Agent
	// Mouse is the mouse position as seen by the behavior's layer.
	Mouse region.Position
}

// KeyContext accompanies key events.
type KeyContext struct {
	Context
	Key KeyInfo
}

// ClickContext accompanies mouse clicks.
type ClickContext struct {
	Context
	Click ClickInfo
}

// MoveContext accompanies mouse moves. Mouse equals To.
type MoveContext struct {
	Context
	From, To region.Position
}

// ScrollContext accompanies mouse wheel events.
type ScrollContext struct {
	Context
	Delta float64
}

// DrawContext accompanies render calls.
type DrawContext struct {
	Context
	Surface Surface
	// Region is the claimed render region being drawn.
	Region region.Region
	Phase  PhaseID
	// Frame maps the unit square onto Region, y up, with Region's aspect
	// ratio as it appears on the surface.
	Frame proj.RenderContext
}

// FrameRegion converts a rectangle in Frame's unit coordinates to viewport
// space.
func (c *DrawContext) FrameRegion(minX, minY, maxX, maxY float32) region.Region {
	x0, y0 := c.Frame.Apply(minX, minY)
	x1, y1 := c.Frame.Apply(maxX, maxY)
	return region.New(2*x0-1, 2*y0-1, 2*x1-1, 2*y1-1)
}

// frameOf returns the part of root covered by r.
func frameOf(root proj.RenderContext, r region.Region) proj.RenderContext {
	return root.Sub((r.MinX+1)/2, (r.MinY+1)/2, (r.MaxX+1)/2, (r.MaxY+1)/2)
}

// PasteContext accompanies paste events.
type PasteContext struct {
	Context
	Data ClipboardData
}

// RenderResult is returned by Renderer.Render.
type RenderResult struct {
	// Cursor requested while the mouse is over the claimed region.
	Cursor Cursor
	// Drawn lists the parts of the claimed region that were actually
	// drawn. Nil means the whole claimed region.
	Drawn []region.Region
}

// KeyDownHandler receives key presses. Returning true consumes the event.
type KeyDownHandler interface {
	KeyDown(ctx *KeyContext) bool
}

// KeyUpHandler receives key releases. Returning true consumes the event.
type KeyUpHandler interface {
	KeyUp(ctx *KeyContext) bool
}

// ClickInsideHandler is called when a click lands in the claimed click region.
type ClickInsideHandler interface {
	MouseClickInside(ctx *ClickContext)
}

// ClickOutsideHandler is called when a click lands outside the claimed
// click region, or the mouse position is unknown.
type ClickOutsideHandler interface {
	MouseClickOutside(ctx *ClickContext)
}

// ClickAnywhereHandler is called for every click delivered to a global
// click listener.
type ClickAnywhereHandler interface {
	MouseClickAnywhere(ctx *ClickContext)
}

// MouseMoveHandler receives mouse moves.
type MouseMoveHandler interface {
	MouseMove(ctx *MoveContext)
}

// ScrollHandler receives wheel events. Returning true consumes the event.
type ScrollHandler interface {
	MouseScroll(ctx *ScrollContext) bool
}

// Renderer draws the behavior's claimed region.
type Renderer interface {
	Render(ctx *DrawContext) RenderResult
}

// CursorProvider supplies the cursor when the mouse is over a claimed
// render region that was not redrawn this frame.
type CursorProvider interface {
	Cursor(ctx *Context) Cursor
}

// Updater receives the per-frame update tick.
type Updater interface {
	Update(ctx *Context)
}

// CopyHandler provides data for a copy event. Nil means nothing to copy.
type CopyHandler interface {
	Copy(ctx *Context) ClipboardData
}

// CutHandler provides data for a cut event. Nil means nothing to cut.
type CutHandler interface {
	Cut(ctx *Context) ClipboardData
}

// PasteHandler receives pasted data. Returning true consumes the event.
type PasteHandler interface {
	Paste(ctx *PasteContext) bool
}
