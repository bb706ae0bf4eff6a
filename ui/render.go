package ui

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/OpticalFlyer/strata/proj"
	"github.com/OpticalFlyer/strata/region"
)

// Trigger decides which mouse movements make a render claim dirty on
// their own, without the behavior requesting a render.
type Trigger int

const (
	// TriggerRequest renders only when the behavior asks for it.
	TriggerRequest Trigger = iota
	// TriggerMouseInOut also renders when the mouse enters or leaves the region.
	TriggerMouseInOut
	// TriggerMouseMoveInside also renders when the mouse moves from or to
	// a position inside the region.
	TriggerMouseMoveInside
	// TriggerMouseMove also renders on every mouse move.
	TriggerMouseMove
	// TriggerAlways renders every frame.
	TriggerAlways
)

func (t Trigger) fires(r region.Region, from, to region.Position) bool {
	switch t {
	case TriggerMouseInOut:
		return r.ContainsPosition(from) != r.ContainsPosition(to)
	case TriggerMouseMoveInside:
		return r.ContainsPosition(from) || r.ContainsPosition(to)
	case TriggerMouseMove, TriggerAlways:
		return true
	}
	return false
}

// Opacity classifies how much of a claimed region a behavior covers when it
// draws. It only decides whether layers behind must be redrawn.
type Opacity int

const (
	// OpacitySolid regions are always fully covered.
	OpacitySolid Opacity = iota
	// OpacityStaticSolidOrNothing regions are either fully covered or left
	// untouched, and which one never changes.
	OpacityStaticSolidOrNothing
	// OpacityDynamicSolidOrNothing regions may switch between fully covered
	// and untouched from one frame to the next.
	OpacityDynamicSolidOrNothing
	// OpacityMixed regions may be partially transparent.
	OpacityMixed
)

// Occludes reports whether a redraw of such a region hides everything
// behind it.
func (o Opacity) Occludes() bool {
	return o == OpacitySolid || o == OpacityStaticSolidOrNothing
}

func (o Opacity) String() string {
	switch o {
	case OpacitySolid:
		return "solid"
	case OpacityStaticSolidOrNothing:
		return "static-solid-or-nothing"
	case OpacityDynamicSolidOrNothing:
		return "dynamic-solid-or-nothing"
	case OpacityMixed:
		return "mixed"
	}
	return fmt.Sprintf("Opacity(%d)", int(o))
}

// PlannedAction is a region a layer is going to redraw in the next render.
type PlannedAction struct {
	Region  region.Region
	Opacity Opacity
}

type renderClaim struct {
	region  region.Region
	trigger Trigger
	opacity Opacity
	phase   PhaseID
	// drawn is what the last render of this claim covered.
	drawn []region.Region
}

func claimRegion(c *renderClaim) region.Region { return c.region }

// renderManager tracks the render claims of a layer, ordered by phase.
type renderManager struct {
	phases *PhaseRegistry
	claims listenerList[*renderClaim]

	background      color.RGBA
	hasBackground   bool
	backgroundDirty bool

	// passed is everything this layer showed after its last render.
	passed []region.Region
}

func newRenderManager(phases *PhaseRegistry, background *color.RGBA) renderManager {
	m := renderManager{phases: phases}
	if background != nil && background.A > 0 {
		m.background = *background
		m.hasBackground = true
		m.backgroundDirty = true
	}
	return m
}

func (m *renderManager) backgroundAction() PlannedAction {
	opacity := OpacityMixed
	if m.background.A == 255 {
		opacity = OpacitySolid
	}
	return PlannedAction{Region: region.EntireViewport(), Opacity: opacity}
}

func (m *renderManager) claim(a *arena, id behaviorID, c renderClaim) error {
	if _, ok := m.phases.Lookup(c.phase); !ok {
		return fmt.Errorf("%w: %s", ErrUnregisteredPhase, c.phase)
	}
	if m.claims.overlaps(a, c.region, claimRegion) {
		return fmt.Errorf("%w: render space %v", ErrRegionAlreadyClaimed, c.region)
	}
	i := len(m.claims.items)
	for i > 0 && m.phases.compare(m.claims.items[i-1].meta.phase, c.phase) > 0 {
		i--
	}
	m.claims.items = slices.Insert(m.claims.items, i, listener[*renderClaim]{id: id, meta: &c})
	return nil
}

// predict lists the actions the next render would perform.
func (m *renderManager) predict(a *arena) []PlannedAction {
	var actions []PlannedAction
	if m.hasBackground && m.backgroundDirty {
		actions = append(actions, m.backgroundAction())
	}
	m.claims.each(a, func(e *behaviorEntry, c *renderClaim) bool {
		if c.trigger == TriggerAlways {
			e.agent.RequestRender()
		}
		if e.agent.requestedRender {
			actions = append(actions, PlannedAction{Region: c.region, Opacity: c.opacity})
		}
		return true
	})
	return actions
}

// render draws the background if needed and every dirty claim, switching
// phases as the claim order moves from one phase to the next. It returns
// the cursor requested for the mouse position.
func (m *renderManager) render(a *arena, s Surface, mouse region.Position) Cursor {
	var passed []region.Region
	if m.hasBackground {
		if m.backgroundDirty {
			s.FillRegion(region.EntireViewport(), m.background)
			m.backgroundDirty = false
		}
		passed = append(passed, region.EntireViewport())
	}

	dirty := make(map[*Agent]bool)
	m.claims.each(a, func(e *behaviorEntry, c *renderClaim) bool {
		if c.trigger == TriggerAlways || e.agent.requestedRender {
			dirty[e.agent] = true
		}
		return true
	})
	for agent := range dirty {
		agent.clearRender()
	}

	var (
		cursor  Cursor
		started bool
		current PhaseID
		root    = proj.FullContext(s.AspectRatio())
	)
	m.claims.each(a, func(e *behaviorEntry, c *renderClaim) bool {
		hovered := c.region.ContainsPosition(mouse)
		if !dirty[e.agent] {
			passed = append(passed, c.drawn...)
			if hovered {
				cursor = cursorOf(e, mouse).Or(cursor)
			}
			return true
		}

		if !started || current != c.phase {
			if started {
				m.stopPhase(current, s, root)
			}
			current, started = c.phase, true
			if p, ok := m.phases.Lookup(current); ok {
				p.Start(s, root)
			}
		}

		var res RenderResult
		e.use(func(b Behavior, agent *Agent) {
			if r, ok := b.(Renderer); ok {
				res = r.Render(&DrawContext{
					Context: Context{Agent: agent, Mouse: mouse},
					Surface: s,
					Region:  c.region,
					Phase:   c.phase,
					Frame:   frameOf(root, c.region),
				})
			}
		})
		c.drawn = res.Drawn
		if c.drawn == nil {
			c.drawn = []region.Region{c.region}
		}
		passed = append(passed, c.drawn...)
		if hovered {
			if res.Cursor == CursorUnset {
				res.Cursor = cursorOf(e, mouse)
			}
			cursor = res.Cursor.Or(cursor)
		}
		return true
	})
	if started {
		m.stopPhase(current, s, root)
	}

	m.passed = passed
	return cursor
}

func (m *renderManager) stopPhase(id PhaseID, s Surface, root proj.RenderContext) {
	if p, ok := m.phases.Lookup(id); ok {
		p.Stop(s, root)
	}
}

func cursorOf(e *behaviorEntry, mouse region.Position) Cursor {
	var cursor Cursor
	e.use(func(b Behavior, agent *Agent) {
		if p, ok := b.(CursorProvider); ok {
			cursor = p.Cursor(&Context{Agent: agent, Mouse: mouse})
		}
	})
	return cursor
}

// onMouseMove marks the claims whose trigger fires for the move as dirty.
func (m *renderManager) onMouseMove(a *arena, from, to region.Position) {
	m.claims.each(a, func(e *behaviorEntry, c *renderClaim) bool {
		if c.trigger.fires(c.region, from, to) {
			e.agent.RequestRender()
		}
		return true
	})
}

// forceFull marks the background and every claim as dirty.
func (m *renderManager) forceFull(a *arena) {
	m.backgroundDirty = m.hasBackground
	m.claims.each(a, func(e *behaviorEntry, _ *renderClaim) bool {
		e.agent.RequestRender()
		return true
	})
}

// forcePartial marks the claims intersecting any of regions as dirty and
// returns the actions that were not planned before. When the layer has a
// background and the regions are not completely covered by solid claims,
// the background has to be redrawn, which forces everything.
func (m *renderManager) forcePartial(a *arena, regions []region.Region) []PlannedAction {
	var clipped []region.Region
	for _, r := range regions {
		if r, ok := r.Intersection(region.EntireViewport()); ok {
			clipped = append(clipped, r)
		}
	}
	if len(clipped) == 0 {
		return nil
	}

	var actions []PlannedAction
	newly := make(map[*Agent]bool)
	if m.hasBackground && !m.backgroundDirty && !m.coveredBySolids(a, clipped) {
		m.backgroundDirty = true
		actions = append(actions, m.backgroundAction())
		m.claims.each(a, func(e *behaviorEntry, _ *renderClaim) bool {
			if !e.agent.requestedRender {
				newly[e.agent] = true
			}
			return true
		})
	} else {
		m.claims.each(a, func(e *behaviorEntry, c *renderClaim) bool {
			if e.agent.requestedRender {
				return true
			}
			for _, r := range clipped {
				if c.region.Intersects(r) {
					newly[e.agent] = true
					break
				}
			}
			return true
		})
	}
	return append(actions, m.markDirty(a, newly)...)
}

// markDirty requests a render from every agent in agents and returns an
// action for each of their claims, since a dirty behavior redraws all of
// them.
func (m *renderManager) markDirty(a *arena, agents map[*Agent]bool) []PlannedAction {
	if len(agents) == 0 {
		return nil
	}
	var actions []PlannedAction
	m.claims.each(a, func(e *behaviorEntry, c *renderClaim) bool {
		if agents[e.agent] {
			actions = append(actions, PlannedAction{Region: c.region, Opacity: c.opacity})
		}
		return true
	})
	for agent := range agents {
		agent.RequestRender()
	}
	return actions
}

func (m *renderManager) coveredBySolids(a *arena, regions []region.Region) bool {
	var solids []region.Region
	m.claims.each(a, func(_ *behaviorEntry, c *renderClaim) bool {
		if c.opacity == OpacitySolid {
			solids = append(solids, c.region)
		}
		return true
	})
	for _, r := range regions {
		if len(r.Uncovered(solids)) > 0 {
			return false
		}
	}
	return true
}

// vacate returns the regions last drawn by the claims of the given
// behaviors, which are about to be removed.
func (m *renderManager) vacate(ids map[behaviorID]bool) []region.Region {
	var regions []region.Region
	for _, it := range m.claims.items {
		if ids[it.id] {
			regions = append(regions, it.meta.drawn...)
		}
	}
	return regions
}

// consumes reports whether the layer showed anything at p after its last render.
func (m *renderManager) consumes(p region.Position) bool {
	for _, r := range m.passed {
		if r.ContainsPosition(p) {
			return true
		}
	}
	return false
}
