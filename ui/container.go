package ui

import "github.com/OpticalFlyer/strata/region"

// Result is the outcome of dispatching an event.
type Result struct {
	// Next is the container a behavior asked to switch to, if any.
	Next Container
}

// ConsumableResult is the outcome of dispatching an event that can be
// consumed.
type ConsumableResult struct {
	Result
	Consumed bool
}

// Container is a complete screen: one or more layers that together receive
// input and draw.
type Container interface {
	OnKeyDown(key KeyInfo) ConsumableResult
	OnKeyUp(key KeyInfo) ConsumableResult
	OnMouseClick(click ClickInfo) Result
	OnMouseMove(to region.Position) Result
	OnMouseScroll(delta float64) ConsumableResult
	OnUpdate() Result
	OnCopy() (ClipboardData, Result)
	OnPaste(data ClipboardData) ConsumableResult
	OnCut() (ClipboardData, Result)
	// Render draws what changed and returns the cursor to show.
	Render(s Surface) Cursor
	// ForceRender marks everything dirty, for example after a resize.
	ForceRender()
}

// Layer is one plane of a container. Layers of a layered container share
// the viewport and are drawn back to front.
type Layer interface {
	OnKeyDown(key KeyInfo) ConsumableResult
	OnKeyUp(key KeyInfo) ConsumableResult
	OnMouseClick(click ClickInfo) Result
	// OnMouseMove returns whether the layer covers the new position, in
	// which case layers behind it see the mouse as unknown.
	OnMouseMove(to region.Position) ConsumableResult
	OnMouseScroll(delta float64) ConsumableResult
	OnUpdate() Result
	OnCopy() (ClipboardData, Result)
	OnPaste(data ClipboardData) ConsumableResult
	OnCut() (ClipboardData, Result)

	// PredictRender lists what the next OnRender would draw.
	PredictRender() []PlannedAction
	// ForcePartialRender marks everything touching regions dirty and
	// returns the actions that were not planned before.
	ForcePartialRender(regions []region.Region) []PlannedAction
	OnRender(s Surface) RenderResult
	ForceRender()
}
