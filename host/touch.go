package host

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/strata/ui"
)

// Pinch ratios that count as one zoom step.
const (
	pinchIn  = 1.1
	pinchOut = 0.9
)

type touchPoint struct{ x, y float64 }

// touchState tracks the touches seen on the previous tick.
type touchState struct {
	ids  []ebiten.TouchID
	last map[ebiten.TouchID]touchPoint
	// pinch is the finger distance at the last zoom step.
	pinch float64
}

// handleTouchEvents turns touches into pointer input: a new finger moves
// the pointer and clicks, a moving finger moves the pointer, two fingers
// pinching scroll the wheel at their midpoint.
func (g *Game) handleTouchEvents() {
	t := &g.touch
	if t.last == nil {
		t.last = make(map[ebiten.TouchID]touchPoint)
	}
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])

	for id := range t.last {
		if !slices.Contains(t.ids, id) {
			delete(t.last, id)
			if len(t.ids) == 0 {
				g.ctrl.MouseLeave()
			}
		}
	}

	switch len(t.ids) {
	case 1:
		id := t.ids[0]
		x, y := ebiten.TouchPosition(id)
		p := touchPoint{float64(x), float64(y)}
		prev, seen := t.last[id]
		if !seen || prev != p {
			g.ctrl.MouseMove(p.x, p.y)
		}
		if !seen {
			g.ctrl.MouseClick(ui.ClickInfo{Button: ui.ButtonLeft})
		}
		t.last[id] = p
		t.pinch = 0

	case 2:
		var ps [2]touchPoint
		for i, id := range t.ids {
			x, y := ebiten.TouchPosition(id)
			ps[i] = touchPoint{float64(x), float64(y)}
			t.last[id] = ps[i]
		}
		dist := distance(ps[0], ps[1])
		if t.pinch == 0 {
			t.pinch = dist
			return
		}
		var delta float64
		switch {
		case dist > t.pinch*pinchIn:
			delta = 1
		case dist < t.pinch*pinchOut:
			delta = -1
		default:
			return
		}
		g.ctrl.MouseMove((ps[0].x+ps[1].x)/2, (ps[0].y+ps[1].y)/2)
		g.ctrl.MouseScroll(delta)
		t.pinch = dist
	}
}

func distance(a, b touchPoint) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}
