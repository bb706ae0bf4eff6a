package ui

import (
	"fmt"

	"github.com/OpticalFlyer/strata/region"
)

// mouseManager delivers clicks, wheel events and moves within a layer.
type mouseManager struct {
	clickRegions listenerList[region.Region]
	clickGlobal  listenerList[struct{}]

	scroll spatialListeners

	moveRegions  listenerList[region.Region]
	inOutRegions listenerList[region.Region]
	moveGlobal   listenerList[struct{}]
}

func claimIn(l *listenerList[region.Region], a *arena, id behaviorID, r region.Region, kind string) error {
	if l.overlaps(a, r, identityRegion) {
		return fmt.Errorf("%w: %s space %v", ErrRegionAlreadyClaimed, kind, r)
	}
	l.add(id, r)
	return nil
}

func (m *mouseManager) claimClick(a *arena, id behaviorID, r region.Region) error {
	return claimIn(&m.clickRegions, a, id, r, "mouse click")
}

func (m *mouseManager) claimScroll(a *arena, id behaviorID, r region.Region) error {
	return m.scroll.claim(a, id, r, "mouse scroll")
}

func (m *mouseManager) claimMove(a *arena, id behaviorID, r region.Region) error {
	return claimIn(&m.moveRegions, a, id, r, "mouse move")
}

func (m *mouseManager) claimInOut(a *arena, id behaviorID, r region.Region) error {
	return claimIn(&m.inOutRegions, a, id, r, "mouse in/out")
}

// fireClick delivers a click to every interested listener. Clicks are
// never consumed.
func (m *mouseManager) fireClick(a *arena, mouse region.Position, click ClickInfo) {
	m.clickRegions.each(a, func(e *behaviorEntry, r region.Region) bool {
		inside := r.ContainsPosition(mouse)
		e.use(func(b Behavior, agent *Agent) {
			ctx := &ClickContext{Context: Context{Agent: agent, Mouse: mouse}, Click: click}
			if inside {
				if h, ok := b.(ClickInsideHandler); ok {
					h.MouseClickInside(ctx)
				}
			} else if h, ok := b.(ClickOutsideHandler); ok {
				h.MouseClickOutside(ctx)
			}
		})
		return true
	})
	m.clickGlobal.each(a, func(e *behaviorEntry, _ struct{}) bool {
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(ClickAnywhereHandler); ok {
				h.MouseClickAnywhere(&ClickContext{Context: Context{Agent: agent, Mouse: mouse}, Click: click})
			}
		})
		return true
	})
}

// fireScroll returns whether a listener consumed the wheel event.
func (m *mouseManager) fireScroll(a *arena, mouse region.Position, delta float64) bool {
	return m.scroll.dispatch(a, mouse, func(e *behaviorEntry) bool {
		consumed := false
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(ScrollHandler); ok {
				consumed = h.MouseScroll(&ScrollContext{Context: Context{Agent: agent, Mouse: mouse}, Delta: delta})
			}
		})
		return consumed
	})
}

// fireMove delivers a move from one position to another.
func (m *mouseManager) fireMove(a *arena, from, to region.Position) {
	call := func(e *behaviorEntry) {
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(MouseMoveHandler); ok {
				h.MouseMove(&MoveContext{Context: Context{Agent: agent, Mouse: to}, From: from, To: to})
			}
		})
	}
	m.inOutRegions.each(a, func(e *behaviorEntry, r region.Region) bool {
		if r.ContainsPosition(from) != r.ContainsPosition(to) {
			call(e)
		}
		return true
	})
	m.moveRegions.each(a, func(e *behaviorEntry, r region.Region) bool {
		if r.ContainsPosition(from) || r.ContainsPosition(to) {
			call(e)
		}
		return true
	})
	m.moveGlobal.each(a, func(e *behaviorEntry, _ struct{}) bool {
		call(e)
		return true
	})
}
