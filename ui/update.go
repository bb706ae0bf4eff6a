package ui

import "github.com/OpticalFlyer/strata/region"

// updateManager delivers the per-frame update tick.
type updateManager struct {
	listeners listenerList[struct{}]
}

func (m *updateManager) fire(a *arena, mouse region.Position) {
	m.listeners.each(a, func(e *behaviorEntry, _ struct{}) bool {
		e.use(func(b Behavior, agent *Agent) {
			if h, ok := b.(Updater); ok {
				h.Update(&Context{Agent: agent, Mouse: mouse})
			}
		})
		return true
	})
}
