package ui

// behaviorID refers to a behavior owned by a layer's arena. A stale id
// (its behavior was removed) fails every lookup, so managers can hold ids
// without keeping removed behaviors alive.
type behaviorID struct {
	index      uint32
	generation uint32
}

type behaviorEntry struct {
	behavior Behavior
	agent    *Agent
	borrowed bool
}

// use runs fn with exclusive access to the entry. Re-entering a behavior
// that is already being called is a programming error.
func (e *behaviorEntry) use(fn func(b Behavior, agent *Agent)) {
	if e.borrowed {
		panic("ui: behavior is already in use")
	}
	e.borrowed = true
	defer func() { e.borrowed = false }()
	fn(e.behavior, e.agent)
}

type arenaSlot struct {
	generation uint32
	entry      *behaviorEntry
}

// arena owns the behaviors of one layer.
type arena struct {
	slots []arenaSlot
	free  []uint32
}

func (a *arena) insert(b Behavior) behaviorID {
	entry := &behaviorEntry{behavior: b, agent: newAgent()}
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[index].entry = entry
		return behaviorID{index: index, generation: a.slots[index].generation}
	}
	a.slots = append(a.slots, arenaSlot{entry: entry})
	return behaviorID{index: uint32(len(a.slots) - 1)}
}

func (a *arena) get(id behaviorID) (*behaviorEntry, bool) {
	if int(id.index) >= len(a.slots) {
		return nil, false
	}
	slot := a.slots[id.index]
	if slot.generation != id.generation || slot.entry == nil {
		return nil, false
	}
	return slot.entry, true
}

func (a *arena) alive(id behaviorID) bool {
	_, ok := a.get(id)
	return ok
}

// agent returns the agent of a live behavior.
func (a *arena) agent(id behaviorID) *Agent {
	e, ok := a.get(id)
	if !ok {
		panic("ui: agent of a removed behavior")
	}
	return e.agent
}

func (a *arena) remove(id behaviorID) {
	if !a.alive(id) {
		return
	}
	slot := &a.slots[id.index]
	slot.entry.agent.dead = true
	slot.entry = nil
	slot.generation++
	a.free = append(a.free, id.index)
}

func (a *arena) len() int {
	return len(a.slots) - len(a.free)
}
