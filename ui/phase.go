package ui

import (
	"cmp"
	"fmt"

	"github.com/OpticalFlyer/strata/proj"
)

// PhaseID names a render phase. Phases group render calls so that state
// set up for one kind of drawing (text, overlays) is switched only when
// the kind changes.
type PhaseID struct {
	Namespace string
	Name      string
}

func (id PhaseID) String() string {
	return id.Namespace + ":" + id.Name
}

// Phase is the behavior of a registered render phase.
type Phase interface {
	// Priority orders phases within a render pass, lowest first.
	Priority() int
	// Start is called before the first render call of a phase run. rc
	// covers the whole surface.
	Start(s Surface, rc proj.RenderContext)
	// Stop is called after the last render call of a phase run.
	Stop(s Surface, rc proj.RenderContext)
}

// SimplePhase is a Phase built from a priority and optional hooks.
type SimplePhase struct {
	Order   int
	OnStart func(s Surface, rc proj.RenderContext)
	OnStop  func(s Surface, rc proj.RenderContext)
}

func (p SimplePhase) Priority() int { return p.Order }

func (p SimplePhase) Start(s Surface, rc proj.RenderContext) {
	if p.OnStart != nil {
		p.OnStart(s, rc)
	}
}

func (p SimplePhase) Stop(s Surface, rc proj.RenderContext) {
	if p.OnStop != nil {
		p.OnStop(s, rc)
	}
}

// Built-in phases.
var (
	PhaseBase    = PhaseID{Namespace: "strata", Name: "base"}
	PhaseText    = PhaseID{Namespace: "strata", Name: "text"}
	PhaseOverlay = PhaseID{Namespace: "strata", Name: "overlay"}
)

// PhaseRegistry maps phase ids to phases. A registry is shared by the
// layers that use it and is expected to be filled before they are.
type PhaseRegistry struct {
	phases map[PhaseID]Phase
}

// NewPhaseRegistry returns an empty registry.
func NewPhaseRegistry() *PhaseRegistry {
	return &PhaseRegistry{phases: make(map[PhaseID]Phase)}
}

// DefaultPhases returns a registry holding PhaseBase, PhaseText and
// PhaseOverlay, in that order.
func DefaultPhases() *PhaseRegistry {
	r := NewPhaseRegistry()
	r.Register(PhaseBase, SimplePhase{Order: 0})
	r.Register(PhaseText, SimplePhase{Order: 100})
	r.Register(PhaseOverlay, SimplePhase{Order: 200})
	return r
}

// Register adds a phase. Registering the same id twice panics.
func (r *PhaseRegistry) Register(id PhaseID, p Phase) {
	if _, ok := r.phases[id]; ok {
		panic(fmt.Sprintf("ui: render phase %s registered twice", id))
	}
	r.phases[id] = p
}

// Lookup returns the phase registered under id.
func (r *PhaseRegistry) Lookup(id PhaseID) (Phase, bool) {
	p, ok := r.phases[id]
	return p, ok
}

// compare orders two registered phases. Phases with the same priority are
// ordered by id so that each phase forms one contiguous run.
func (r *PhaseRegistry) compare(a, b PhaseID) int {
	if c := cmp.Compare(r.phases[a].Priority(), r.phases[b].Priority()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
