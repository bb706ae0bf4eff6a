package ui

import "github.com/OpticalFlyer/strata/region"

// clipboardManager delivers copy, paste and cut events within a layer.
type clipboardManager struct {
	copy  spatialListeners
	paste spatialListeners
	cut   spatialListeners
}

// fireCopy returns the data of the first listener that has something to
// copy, or nil.
func (m *clipboardManager) fireCopy(a *arena, mouse region.Position) ClipboardData {
	var data ClipboardData
	m.copy.dispatch(a, mouse, func(e *behaviorEntry) bool {
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(CopyHandler); ok {
				data = h.Copy(&Context{Agent: agent, Mouse: mouse})
			}
		})
		return data != nil
	})
	return data
}

// fireCut is fireCopy for cut events.
func (m *clipboardManager) fireCut(a *arena, mouse region.Position) ClipboardData {
	var data ClipboardData
	m.cut.dispatch(a, mouse, func(e *behaviorEntry) bool {
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(CutHandler); ok {
				data = h.Cut(&Context{Agent: agent, Mouse: mouse})
			}
		})
		return data != nil
	})
	return data
}

// firePaste returns whether a listener accepted the pasted data.
func (m *clipboardManager) firePaste(a *arena, mouse region.Position, data ClipboardData) bool {
	return m.paste.dispatch(a, mouse, func(e *behaviorEntry) bool {
		consumed := false
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(PasteHandler); ok {
				consumed = h.Paste(&PasteContext{Context: Context{Agent: agent, Mouse: mouse}, Data: data})
			}
		})
		return consumed
	})
}
