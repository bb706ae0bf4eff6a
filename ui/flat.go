package ui

import "github.com/OpticalFlyer/strata/region"

// FlatContainer is a container with a single layer.
type FlatContainer struct {
	layer Layer
}

func NewFlatContainer(layer Layer) *FlatContainer {
	return &FlatContainer{layer: layer}
}

func (c *FlatContainer) Layer() Layer { return c.layer }

func (c *FlatContainer) OnKeyDown(key KeyInfo) ConsumableResult { return c.layer.OnKeyDown(key) }
func (c *FlatContainer) OnKeyUp(key KeyInfo) ConsumableResult   { return c.layer.OnKeyUp(key) }
func (c *FlatContainer) OnMouseClick(click ClickInfo) Result    { return c.layer.OnMouseClick(click) }

func (c *FlatContainer) OnMouseMove(to region.Position) Result {
	return c.layer.OnMouseMove(to).Result
}

func (c *FlatContainer) OnMouseScroll(delta float64) ConsumableResult {
	return c.layer.OnMouseScroll(delta)
}

func (c *FlatContainer) OnUpdate() Result                { return c.layer.OnUpdate() }
func (c *FlatContainer) OnCopy() (ClipboardData, Result) { return c.layer.OnCopy() }
func (c *FlatContainer) OnCut() (ClipboardData, Result)  { return c.layer.OnCut() }

func (c *FlatContainer) OnPaste(data ClipboardData) ConsumableResult {
	return c.layer.OnPaste(data)
}

func (c *FlatContainer) Render(s Surface) Cursor {
	return c.layer.OnRender(s).Cursor
}

func (c *FlatContainer) ForceRender() { c.layer.ForceRender() }
