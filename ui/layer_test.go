package ui

import (
	"errors"
	"testing"

	"github.com/OpticalFlyer/strata/region"
	"github.com/google/go-cmp/cmp"
)

func TestClaimExclusivity(t *testing.T) {
	overlapping := region.New(0.5, 0.5, 1.5, 1.5)
	touching := region.New(1, 0, 2, 1)

	tests := []struct {
		name  string
		claim func(c ClaimSet, r region.Region) error
	}{
		{"Render", func(c ClaimSet, r region.Region) error {
			return c.ClaimRenderSpace(r, TriggerRequest, OpacitySolid, PhaseBase)
		}},
		{"Key down", ClaimSet.ClaimKeyDownSpace},
		{"Key up", ClaimSet.ClaimKeyUpSpace},
		{"Key listen", ClaimSet.ClaimKeyListenSpace},
		{"Mouse click", ClaimSet.ClaimMouseClickSpace},
		{"Mouse scroll", ClaimSet.ClaimMouseScrollSpace},
		{"Mouse move", ClaimSet.ClaimMouseMoveSpace},
		{"Mouse in/out", ClaimSet.ClaimMouseInOutSpace},
		{"Copy", ClaimSet.ClaimCopySpace},
		{"Paste", ClaimSet.ClaimPasteSpace},
		{"Cut", ClaimSet.ClaimCutSpace},
		{"Clipboard", ClaimSet.ClaimClipboardSpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := NewLayer(DefaultPhases())
			var first, second, third error
			layer.AddComponent(single(inert{attach: func(c ClaimSet) { first = tt.claim(c, unit) }}))
			layer.AddComponent(single(inert{attach: func(c ClaimSet) { second = tt.claim(c, overlapping) }}))
			layer.AddComponent(single(inert{attach: func(c ClaimSet) { third = tt.claim(c, touching) }}))

			if first != nil {
				t.Errorf("first claim failed: %v", first)
			}
			if !errors.Is(second, ErrRegionAlreadyClaimed) {
				t.Errorf("overlapping claim: err = %v; want %v", second, ErrRegionAlreadyClaimed)
			}
			if third != nil {
				t.Errorf("touching claim failed: %v", third)
			}
		})
	}
}

func TestClaimsInDifferentLayersDoNotConflict(t *testing.T) {
	back, front := NewLayer(DefaultPhases()), NewLayer(DefaultPhases())
	var errs []error
	claim := inert{attach: func(c ClaimSet) { errs = append(errs, c.ClaimMouseClickSpace(unit)) }}
	back.AddComponent(single(claim))
	front.AddComponent(single(claim))
	for _, err := range errs {
		if err != nil {
			t.Errorf("claim failed: %v", err)
		}
	}
}

func TestRemovalDuringScrollIsDeferred(t *testing.T) {
	log := &eventLog{}
	layer := NewLayer(DefaultPhases())

	remover := &scripted{name: "remover", log: log, attach: func(c ClaimSet) {
		c.MakeMouseScrollListener(10)
		c.MakeKeyDownListener(0)
	}}
	remover.hook = func(ctx *Context) { ctx.Agent.RemoveThisComponent() }
	layer.AddComponent(single(remover))

	var sizeDuringScan int
	witness := &scripted{name: "witness", log: log, attach: func(c ClaimSet) { c.MakeMouseScrollListener(5) }}
	witness.hook = func(*Context) { sizeDuringScan = layer.Len() }
	layer.AddComponent(single(witness))

	layer.OnMouseScroll(1)
	if sizeDuringScan != 2 {
		t.Errorf("Len() during the scan = %d; want 2", sizeDuringScan)
	}
	if got := layer.Len(); got != 1 {
		t.Errorf("Len() after the event = %d; want 1", got)
	}

	layer.OnMouseScroll(1)
	layer.OnKeyDown(KeyInfo{Key: "k"})
	want := []string{"remover scroll 1", "witness scroll 1", "witness scroll 1"}
	if diff := cmp.Diff(want, log.take()); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestRemovalRemovesSiblingBehaviors(t *testing.T) {
	log := &eventLog{}
	layer := NewLayer(DefaultPhases())
	trigger := &scripted{name: "trigger", log: log, attach: func(c ClaimSet) { c.MakeKeyDownListener(0) }}
	trigger.hook = func(ctx *Context) { ctx.Agent.RemoveThisComponent() }
	sibling := &scripted{name: "sibling", log: log, attach: func(c ClaimSet) { c.MakeUpdateListener() }}
	layer.AddComponent(ComponentFunc(func() []Behavior { return []Behavior{trigger, sibling} }))

	layer.OnUpdate()
	layer.OnKeyDown(KeyInfo{Key: "x"})
	layer.OnUpdate()
	if diff := cmp.Diff([]string{"sibling update", "trigger down x"}, log.take()); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestAddComponentIsDeferred(t *testing.T) {
	log := &eventLog{}
	layer := NewLayer(DefaultPhases())
	spawner := &scripted{name: "spawner", log: log, attach: func(c ClaimSet) { c.MakeUpdateListener() }}
	spawned := false
	spawner.hook = func(ctx *Context) {
		if spawned {
			return
		}
		spawned = true
		ctx.Agent.AddComponent(single(&scripted{name: "child", log: log, attach: func(c ClaimSet) { c.MakeUpdateListener() }}))
		ctx.Agent.RemoveThisComponent()
	}
	layer.AddComponent(single(spawner))

	layer.OnUpdate()
	layer.OnUpdate()
	if diff := cmp.Diff([]string{"spawner update", "child update"}, log.take()); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerChangeRequests(t *testing.T) {
	first := NewFlatContainer(NewLayer(DefaultPhases()))
	second := NewFlatContainer(NewLayer(DefaultPhases()))

	layer := NewLayer(DefaultPhases())
	for _, next := range []Container{first, second} {
		next := next
		layer.AddComponent(single(&scripted{
			attach: func(c ClaimSet) { c.MakeMouseClickListener() },
			hook:   func(ctx *Context) { ctx.Agent.ChangeContainer(next) },
		}))
	}

	r := layer.OnMouseClick(ClickInfo{})
	if r.Next != first {
		t.Errorf("Next = %v; want the first requested container", r.Next)
	}
	if r := layer.OnUpdate(); r.Next != nil {
		t.Errorf("request survived the event: %v", r.Next)
	}
}

func TestContainerChangeDuringRenderPanics(t *testing.T) {
	layer := NewLayer(DefaultPhases())
	layer.AddComponent(single(&scripted{
		attach: func(c ClaimSet) {
			mustClaim(c.ClaimRenderSpace(unit, TriggerRequest, OpacityMixed, PhaseBase))
		},
		hook: func(ctx *Context) { ctx.Agent.ChangeContainer(NewFlatContainer(NewLayer(DefaultPhases()))) },
	}))

	defer func() {
		if recover() == nil {
			t.Error("container change during render did not panic")
		}
	}()
	layer.OnRender(&recordingSurface{})
}

func TestRemovedComponentLeavesVacatedArea(t *testing.T) {
	popup := region.New(-0.5, -0.5, 0.5, 0.5)
	layer := NewLayer(DefaultPhases())
	p := renderClaimer("popup", nil, popup, TriggerRequest, OpacitySolid, PhaseBase)
	p.attach = func(c ClaimSet) {
		mustClaim(c.ClaimRenderSpace(popup, TriggerRequest, OpacitySolid, PhaseBase))
		c.MakeKeyDownListener(0)
	}
	layer.AddComponent(single(p))
	layer.OnRender(&recordingSurface{})
	p.hook = func(ctx *Context) { ctx.Agent.RemoveThisComponent() }

	layer.OnKeyDown(KeyInfo{Key: "Escape"})
	want := []PlannedAction{{Region: popup, Opacity: OpacityMixed}}
	if diff := cmp.Diff(want, layer.PredictRender()); diff != "" {
		t.Errorf("prediction mismatch (-want +got):\n%s", diff)
	}

	res := layer.OnRender(&recordingSurface{})
	if len(res.Drawn) != 0 {
		t.Errorf("removed component still drawn: %v", res.Drawn)
	}
	if got := layer.PredictRender(); len(got) != 0 {
		t.Errorf("vacated area predicted twice: %v", got)
	}
}

func TestRemovalUnderBackgroundRedrawsBackground(t *testing.T) {
	layer := NewLayerWithBackground(DefaultPhases(), opaque)
	p := &scripted{name: "popup"}
	p.attach = func(c ClaimSet) {
		mustClaim(c.ClaimRenderSpace(center, TriggerRequest, OpacitySolid, PhaseBase))
		c.MakeKeyDownListener(0)
	}
	layer.AddComponent(single(p))
	layer.OnRender(&recordingSurface{})
	p.hook = func(ctx *Context) { ctx.Agent.RemoveThisComponent() }

	layer.OnKeyDown(KeyInfo{Key: "Escape"})
	s := &recordingSurface{}
	layer.OnRender(s)
	want := []string{"fill " + region.EntireViewport().String()}
	if diff := cmp.Diff(want, s.take()); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestClipboardDelivery(t *testing.T) {
	log := &eventLog{}
	layer := NewLayer(DefaultPhases())
	layer.AddComponent(single(&scripted{name: "field", log: log, consume: true, copied: ClipboardText("hello"), attach: func(c ClaimSet) {
		mustClaim(c.ClaimClipboardSpace(unit))
	}}))
	layer.AddComponent(single(&scripted{name: "global", log: log, copied: ClipboardText("everything"), attach: func(c ClaimSet) {
		c.MakeClipboardListener(0)
	}}))

	layer.OnMouseMove(region.At(0.5, 0.5))
	if data, _ := layer.OnCopy(); data != ClipboardText("hello") {
		t.Errorf("copy over field = %v; want hello", data)
	}
	if r := layer.OnPaste(ClipboardText("x")); !r.Consumed {
		t.Error("paste over field was not consumed")
	}

	layer.OnMouseMove(region.At(-0.5, -0.5))
	if data, _ := layer.OnCut(); data != ClipboardText("everything") {
		t.Errorf("cut elsewhere = %v; want everything", data)
	}

	want := []string{"field copy", "field paste x", "global cut"}
	if diff := cmp.Diff(want, log.take()); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}
