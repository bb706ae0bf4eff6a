package ui

import "github.com/OpticalFlyer/strata/region"

// LayeredContainer stacks layers. Index 0 is the back layer: layers are
// drawn from back to front and receive input from front to back.
type LayeredContainer struct {
	layers []Layer
}

func NewLayeredContainer(layers ...Layer) *LayeredContainer {
	return &LayeredContainer{layers: layers}
}

func (c *LayeredContainer) Layers() []Layer { return c.layers }

// front-to-back dispatch of a consumable event. A container change request
// ends the scan just like consumption does.
func (c *LayeredContainer) consumable(fire func(l Layer) ConsumableResult) ConsumableResult {
	for i := len(c.layers) - 1; i >= 0; i-- {
		r := fire(c.layers[i])
		if r.Next != nil {
			return ConsumableResult{Result: r.Result, Consumed: true}
		}
		if r.Consumed {
			return r
		}
	}
	return ConsumableResult{}
}

func (c *LayeredContainer) OnKeyDown(key KeyInfo) ConsumableResult {
	return c.consumable(func(l Layer) ConsumableResult { return l.OnKeyDown(key) })
}

func (c *LayeredContainer) OnKeyUp(key KeyInfo) ConsumableResult {
	return c.consumable(func(l Layer) ConsumableResult { return l.OnKeyUp(key) })
}

func (c *LayeredContainer) OnMouseScroll(delta float64) ConsumableResult {
	return c.consumable(func(l Layer) ConsumableResult { return l.OnMouseScroll(delta) })
}

func (c *LayeredContainer) OnPaste(data ClipboardData) ConsumableResult {
	return c.consumable(func(l Layer) ConsumableResult { return l.OnPaste(data) })
}

// every dispatches a non-consumable event to all layers. The front-most
// container change request wins.
func (c *LayeredContainer) every(fire func(l Layer) Result) Result {
	var result Result
	for i := len(c.layers) - 1; i >= 0; i-- {
		r := fire(c.layers[i])
		if result.Next == nil {
			result.Next = r.Next
		}
	}
	return result
}

func (c *LayeredContainer) OnMouseClick(click ClickInfo) Result {
	return c.every(func(l Layer) Result { return l.OnMouseClick(click) })
}

func (c *LayeredContainer) OnUpdate() Result {
	return c.every(func(l Layer) Result { return l.OnUpdate() })
}

// OnMouseMove gives the real position to layers up to and including the
// front-most one that covers it. Layers behind that one see the mouse as
// unknown.
func (c *LayeredContainer) OnMouseMove(to region.Position) Result {
	pos := to
	return c.every(func(l Layer) Result {
		r := l.OnMouseMove(pos)
		if r.Consumed {
			pos = region.Unknown
		}
		return r.Result
	})
}

func (c *LayeredContainer) clip(fire func(l Layer) (ClipboardData, Result)) (ClipboardData, Result) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		data, r := fire(c.layers[i])
		if data != nil || r.Next != nil {
			return data, r
		}
	}
	return nil, Result{}
}

func (c *LayeredContainer) OnCopy() (ClipboardData, Result) {
	return c.clip(Layer.OnCopy)
}

func (c *LayeredContainer) OnCut() (ClipboardData, Result) {
	return c.clip(Layer.OnCut)
}

// Render propagates redraws between layers until nothing new gets dirty,
// then draws the layers from back to front. The cursor of the front-most
// layer that asks for one wins.
func (c *LayeredContainer) Render(s Surface) Cursor {
	c.propagate()
	var cursor Cursor
	for _, l := range c.layers {
		cursor = l.OnRender(s).Cursor.Or(cursor)
	}
	return cursor
}

func (c *LayeredContainer) ForceRender() {
	for _, l := range c.layers {
		l.ForceRender()
	}
}

// propagate runs the cross-layer redraw propagation and returns the planned
// actions per layer, including the ones it forced.
//
// Every redraw forces the layers in front of it to redraw the same area,
// since they are drawn afterwards. A redraw that does not occlude also
// forces the layers behind it, since they show through. When a layer
// behind gets new work the scan rewinds to it. This terminates because a
// claim can only go from clean to dirty once.
func (c *LayeredContainer) propagate() [][]PlannedAction {
	n := len(c.layers)
	actions := make([][]PlannedAction, n)
	for i, l := range c.layers {
		actions[i] = l.PredictRender()
	}

	processed := make([]int, n)
	for i := 0; i < n; {
		pending := actions[i][processed[i]:]
		if len(pending) == 0 {
			i++
			continue
		}
		processed[i] = len(actions[i])

		var forward, backward []region.Region
		for _, a := range pending {
			forward = append(forward, a.Region)
			if !a.Opacity.Occludes() {
				backward = append(backward, a.Region)
			}
		}

		for j := i + 1; j < n; j++ {
			actions[j] = append(actions[j], c.layers[j].ForcePartialRender(forward)...)
		}

		next := i + 1
		if len(backward) > 0 {
			for j := i - 1; j >= 0; j-- {
				if forced := c.layers[j].ForcePartialRender(backward); len(forced) > 0 {
					actions[j] = append(actions[j], forced...)
					next = j
				}
			}
		}
		i = next
	}
	return actions
}
