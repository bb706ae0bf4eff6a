package ui

// Agent is the per-behavior mailbox through which a behavior asks its layer
// for things. Requests are only collected here; the layer acts on them
// after the current event has been dispatched.
type Agent struct {
	requestedRender  bool
	requestedRemoval bool
	componentsToAdd  []Component
	newContainer     Container
	hasChanges       bool
	// dead is set once the behavior has left its layer.
	dead bool
}

// Every behavior starts out needing its first render.
func newAgent() *Agent {
	return &Agent{requestedRender: true}
}

// checkAlive panics when the behavior owning a has been removed. Requests
// made after that would be silently lost.
func (a *Agent) checkAlive() {
	if a.dead {
		panic("ui: agent of a removed behavior used")
	}
}

// RequestRender marks the behavior's render claims as dirty.
func (a *Agent) RequestRender() {
	a.checkAlive()
	a.requestedRender = true
}

// DidRequestRender reports whether a render is pending.
func (a *Agent) DidRequestRender() bool {
	return a.requestedRender
}

// RemoveThisComponent removes the component owning this behavior, including
// all of its sibling behaviors.
func (a *Agent) RemoveThisComponent() {
	a.checkAlive()
	a.requestedRemoval = true
	a.hasChanges = true
}

// DidRequestRemoval reports whether removal of the component was requested.
func (a *Agent) DidRequestRemoval() bool {
	return a.requestedRemoval
}

// AddComponent schedules a component to be added to the same layer.
func (a *Agent) AddComponent(c Component) {
	a.checkAlive()
	a.componentsToAdd = append(a.componentsToAdd, c)
	a.hasChanges = true
}

// ChangeContainer asks the controller to switch to next.
func (a *Agent) ChangeContainer(next Container) {
	a.checkAlive()
	a.newContainer = next
	a.hasChanges = true
}

// DidRequestContainerChange reports whether a container switch is pending.
func (a *Agent) DidRequestContainerChange() bool {
	return a.newContainer != nil
}

func (a *Agent) clearRender() {
	a.requestedRender = false
}
