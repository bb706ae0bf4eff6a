package ui

import (
	"testing"

	"github.com/OpticalFlyer/strata/region"
	"github.com/google/go-cmp/cmp"
)

func TestArenaStaleIDs(t *testing.T) {
	var a arena
	first := a.insert(&scripted{name: "first"})
	second := a.insert(&scripted{name: "second"})

	a.remove(first)
	if a.alive(first) {
		t.Fatalf("removed id %v is still alive", first)
	}
	if !a.alive(second) {
		t.Fatalf("id %v died with its neighbour", second)
	}

	reused := a.insert(&scripted{name: "third"})
	if reused.index != first.index {
		t.Errorf("slot %d was not reused, got %d", first.index, reused.index)
	}
	if a.alive(first) {
		t.Errorf("stale id %v resolves after its slot was reused", first)
	}
	e, ok := a.get(reused)
	if !ok || e.behavior.(*scripted).name != "third" {
		t.Errorf("get(%v) = %v, %v; want third", reused, e, ok)
	}
	if got := a.len(); got != 2 {
		t.Errorf("len() = %d; want 2", got)
	}

	// Removing twice is harmless.
	a.remove(first)
	if got := a.len(); got != 2 {
		t.Errorf("len() after double remove = %d; want 2", got)
	}
}

func TestArenaAgentOfRemovedBehaviorPanics(t *testing.T) {
	var a arena
	id := a.insert(&scripted{})
	a.remove(id)

	defer func() {
		if recover() == nil {
			t.Error("agent() of a removed behavior did not panic")
		}
	}()
	a.agent(id)
}

func TestAgentOfRemovedComponentPanics(t *testing.T) {
	tests := []struct {
		name string
		use  func(a *Agent)
	}{
		{"RequestRender", func(a *Agent) { a.RequestRender() }},
		{"RemoveThisComponent", func(a *Agent) { a.RemoveThisComponent() }},
		{"AddComponent", func(a *Agent) { a.AddComponent(single(&scripted{})) }},
		{"ChangeContainer", func(a *Agent) { a.ChangeContainer(NewFlatContainer(NewLayer(DefaultPhases()))) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kept *Agent
			layer := NewLayer(DefaultPhases())
			layer.AddComponent(single(&scripted{
				attach: func(c ClaimSet) { mustClaim(c.ClaimKeyDownSpace(region.EntireViewport())) },
				hook: func(ctx *Context) {
					kept = ctx.Agent
					ctx.Agent.RemoveThisComponent()
				},
			}))
			layer.OnMouseMove(region.At(0, 0))
			layer.OnKeyDown(KeyInfo{Key: "a"})
			if kept == nil {
				t.Fatal("behavior never ran")
			}

			defer func() {
				if recover() == nil {
					t.Errorf("%s on the agent of a removed component did not panic", tt.name)
				}
			}()
			tt.use(kept)
		})
	}
}

func TestBehaviorNestedUsePanics(t *testing.T) {
	var a arena
	id := a.insert(&scripted{})
	e, _ := a.get(id)

	defer func() {
		if recover() == nil {
			t.Error("nested use did not panic")
		}
		if e.borrowed {
			t.Error("entry still borrowed after panic")
		}
	}()
	e.use(func(Behavior, *Agent) {
		e.use(func(Behavior, *Agent) {})
	})
}

func TestNewAgentWantsFirstRender(t *testing.T) {
	var a arena
	id := a.insert(&scripted{})
	agent := a.agent(id)
	if !agent.DidRequestRender() {
		t.Error("new agent does not request its first render")
	}
	if agent.hasChanges {
		t.Error("new agent has pending changes")
	}
}

func TestPriorityListOrder(t *testing.T) {
	var a arena
	var l priorityList
	names := map[behaviorID]string{}
	for _, tc := range []struct {
		name     string
		priority int
	}{
		{"low", 0},
		{"high", 10},
		{"mid", 5},
		{"high2", 10},
		{"negative", -3},
		{"mid2", 5},
	} {
		id := a.insert(&scripted{name: tc.name})
		names[id] = tc.name
		l.insert(id, tc.priority)
	}

	var got []string
	for _, it := range l.items {
		got = append(got, names[it.id])
	}
	want := []string{"high", "high2", "mid", "mid2", "low", "negative"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("priority order mismatch (-want +got):\n%s", diff)
	}
}

func TestListenerListPrunesDeadEntries(t *testing.T) {
	var a arena
	var l listenerList[struct{}]
	ids := []behaviorID{a.insert(&scripted{name: "a"}), a.insert(&scripted{name: "b"}), a.insert(&scripted{name: "c"})}
	for _, id := range ids {
		l.add(id, struct{}{})
	}
	a.remove(ids[1])

	var seen []string
	l.each(&a, func(e *behaviorEntry, _ struct{}) bool {
		seen = append(seen, e.behavior.(*scripted).name)
		return true
	})
	if diff := cmp.Diff([]string{"a", "c"}, seen); diff != "" {
		t.Errorf("visited mismatch (-want +got):\n%s", diff)
	}
	if got := l.len(); got != 2 {
		t.Errorf("len() after pruning = %d; want 2", got)
	}
}

func TestListenerListStopStillPrunes(t *testing.T) {
	var a arena
	var l listenerList[struct{}]
	ids := []behaviorID{a.insert(&scripted{}), a.insert(&scripted{}), a.insert(&scripted{})}
	for _, id := range ids {
		l.add(id, struct{}{})
	}
	a.remove(ids[2])

	calls := 0
	l.each(&a, func(*behaviorEntry, struct{}) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("fn called %d times after stopping; want 1", calls)
	}
	if got := l.len(); got != 2 {
		t.Errorf("len() = %d; want 2", got)
	}
}
