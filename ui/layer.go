package ui

import (
	"image/color"
	"log"

	"github.com/OpticalFlyer/strata/region"
)

type componentHandle struct {
	component Component
	behaviors []behaviorID
}

// SimpleLayer owns a set of components and dispatches events to their
// behaviors. Two behaviors of the same layer can never claim overlapping
// regions of the same kind.
type SimpleLayer struct {
	arena      arena
	components []componentHandle

	keys      keyManager
	mouse     mouseManager
	render    renderManager
	updates   updateManager
	clipboard clipboardManager

	mousePos  region.Position
	vacated   []region.Region
	rendering bool
}

// NewLayer returns a transparent layer.
func NewLayer(phases *PhaseRegistry) *SimpleLayer {
	return &SimpleLayer{render: newRenderManager(phases, nil)}
}

// NewLayerWithBackground returns a layer that fills the viewport with
// background before drawing its components.
func NewLayerWithBackground(phases *PhaseRegistry, background color.RGBA) *SimpleLayer {
	return &SimpleLayer{render: newRenderManager(phases, &background)}
}

// AddComponent creates the behaviors of c and attaches them right away.
func (l *SimpleLayer) AddComponent(c Component) {
	h := componentHandle{component: c}
	for _, b := range c.CreateBehaviors() {
		id := l.arena.insert(b)
		h.behaviors = append(h.behaviors, id)
		e, _ := l.arena.get(id)
		e.use(func(b Behavior, _ *Agent) {
			b.Attach(layerClaims{layer: l, id: id})
		})
	}
	l.components = append(l.components, h)
}

// Len returns the number of live behaviors.
func (l *SimpleLayer) Len() int { return l.arena.len() }

// Mouse returns the mouse position as last seen by this layer.
func (l *SimpleLayer) Mouse() region.Position { return l.mousePos }

func (l *SimpleLayer) OnKeyDown(key KeyInfo) ConsumableResult {
	consumed := l.keys.fireDown(&l.arena, l.mousePos, key)
	return ConsumableResult{Result: l.drain(), Consumed: consumed}
}

func (l *SimpleLayer) OnKeyUp(key KeyInfo) ConsumableResult {
	consumed := l.keys.fireUp(&l.arena, l.mousePos, key)
	return ConsumableResult{Result: l.drain(), Consumed: consumed}
}

func (l *SimpleLayer) OnMouseClick(click ClickInfo) Result {
	l.mouse.fireClick(&l.arena, l.mousePos, click)
	return l.drain()
}

func (l *SimpleLayer) OnMouseMove(to region.Position) ConsumableResult {
	from := l.mousePos
	l.mousePos = to
	if from != to {
		l.mouse.fireMove(&l.arena, from, to)
		l.render.onMouseMove(&l.arena, from, to)
	}
	return ConsumableResult{Result: l.drain(), Consumed: l.render.consumes(to)}
}

func (l *SimpleLayer) OnMouseScroll(delta float64) ConsumableResult {
	consumed := l.mouse.fireScroll(&l.arena, l.mousePos, delta)
	return ConsumableResult{Result: l.drain(), Consumed: consumed}
}

func (l *SimpleLayer) OnUpdate() Result {
	l.updates.fire(&l.arena, l.mousePos)
	return l.drain()
}

func (l *SimpleLayer) OnCopy() (ClipboardData, Result) {
	data := l.clipboard.fireCopy(&l.arena, l.mousePos)
	return data, l.drain()
}

func (l *SimpleLayer) OnPaste(data ClipboardData) ConsumableResult {
	consumed := l.clipboard.firePaste(&l.arena, l.mousePos, data)
	return ConsumableResult{Result: l.drain(), Consumed: consumed}
}

func (l *SimpleLayer) OnCut() (ClipboardData, Result) {
	data := l.clipboard.fireCut(&l.arena, l.mousePos)
	return data, l.drain()
}

// PredictRender includes the areas left behind by removed components, which
// layers behind this one have to fill again.
func (l *SimpleLayer) PredictRender() []PlannedAction {
	actions := l.render.predict(&l.arena)
	for _, r := range l.vacated {
		actions = append(actions, PlannedAction{Region: r, Opacity: OpacityMixed})
	}
	return actions
}

func (l *SimpleLayer) ForcePartialRender(regions []region.Region) []PlannedAction {
	return l.render.forcePartial(&l.arena, regions)
}

// OnRender draws everything that is dirty. Drawn in the result lists all
// areas the layer currently shows, redrawn or not.
func (l *SimpleLayer) OnRender(s Surface) RenderResult {
	l.rendering = true
	cursor := l.render.render(&l.arena, s, l.mousePos)
	l.vacated = nil
	l.drain()
	l.rendering = false
	return RenderResult{Cursor: cursor, Drawn: l.render.passed}
}

func (l *SimpleLayer) ForceRender() {
	l.render.forceFull(&l.arena)
}

// drain applies what behaviors requested during the event that just
// finished: container switches, removals and new components, in that order.
func (l *SimpleLayer) drain() Result {
	var (
		next    Container
		added   []Component
		removed map[behaviorID]bool
	)
	kept := l.components[:0]
	for _, h := range l.components {
		remove := false
		for _, id := range h.behaviors {
			agent := l.arena.agent(id)
			if !agent.hasChanges {
				continue
			}
			agent.hasChanges = false
			if agent.newContainer != nil {
				if l.rendering {
					panic("ui: container change requested during render")
				}
				if next == nil {
					next = agent.newContainer
				} else {
					log.Printf("ui: 2 components requested a container change during the same event, keeping the first")
				}
				agent.newContainer = nil
			}
			remove = remove || agent.requestedRemoval
			added = append(added, agent.componentsToAdd...)
			agent.componentsToAdd = nil
		}
		if !remove {
			kept = append(kept, h)
			continue
		}
		if removed == nil {
			removed = make(map[behaviorID]bool)
		}
		for _, id := range h.behaviors {
			removed[id] = true
		}
	}
	clear(l.components[len(kept):])
	l.components = kept

	if len(removed) > 0 {
		vacated := l.render.vacate(removed)
		for id := range removed {
			l.arena.remove(id)
		}
		if len(vacated) > 0 {
			l.vacated = append(l.vacated, vacated...)
			l.render.forcePartial(&l.arena, vacated)
		}
	}
	for _, c := range added {
		l.AddComponent(c)
	}
	return Result{Next: next}
}
