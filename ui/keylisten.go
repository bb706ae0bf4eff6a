package ui

import "github.com/OpticalFlyer/strata/region"

// keyManager delivers key downs and key ups within a layer.
type keyManager struct {
	down spatialListeners
	up   spatialListeners
}

// fireDown returns whether a listener consumed the key press.
func (m *keyManager) fireDown(a *arena, mouse region.Position, key KeyInfo) bool {
	return m.down.dispatch(a, mouse, func(e *behaviorEntry) bool {
		consumed := false
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(KeyDownHandler); ok {
				consumed = h.KeyDown(&KeyContext{Context: Context{Agent: agent, Mouse: mouse}, Key: key})
			}
		})
		return consumed
	})
}

// fireUp returns whether a listener consumed the key release.
func (m *keyManager) fireUp(a *arena, mouse region.Position, key KeyInfo) bool {
	return m.up.dispatch(a, mouse, func(e *behaviorEntry) bool {
		consumed := false
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(KeyUpHandler); ok {
				consumed = h.KeyUp(&KeyContext{Context: Context{Agent: agent, Mouse: mouse}, Key: key})
			}
		})
		return consumed
	})
}
