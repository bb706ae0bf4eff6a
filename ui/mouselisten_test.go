package ui

import (
	"sort"
	"strings"
	"testing"

	"github.com/OpticalFlyer/strata/region"
	"github.com/google/go-cmp/cmp"
)

func TestClickReachesRegionAndGlobalListeners(t *testing.T) {
	log := &eventLog{}
	layer := NewLayer(DefaultPhases())
	layer.AddComponent(single(&scripted{name: "A", log: log, attach: func(c ClaimSet) { c.MakeMouseClickListener() }}))
	layer.AddComponent(single(&scripted{name: "B", log: log, attach: func(c ClaimSet) {
		mustClaim(c.ClaimMouseClickSpace(unit))
	}}))
	layer.OnMouseMove(region.At(0.5, 0.5))

	layer.OnMouseClick(ClickInfo{Button: ButtonLeft})
	if diff := cmp.Diff([]string{"B inside", "A anywhere"}, log.take()); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestClickOutside(t *testing.T) {
	tests := []struct {
		name  string
		mouse region.Position
	}{
		{"Elsewhere", region.At(-0.5, -0.5)},
		{"On the edge", region.At(0, 0.5)},
		{"Unknown", region.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &eventLog{}
			layer := NewLayer(DefaultPhases())
			layer.AddComponent(single(&scripted{name: "B", log: log, attach: func(c ClaimSet) {
				mustClaim(c.ClaimMouseClickSpace(unit))
			}}))
			layer.OnMouseMove(tt.mouse)
			log.take()

			layer.OnMouseClick(ClickInfo{Button: ButtonLeft})
			if diff := cmp.Diff([]string{"B outside"}, log.take()); diff != "" {
				t.Errorf("delivery mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMouseMoveListenerKinds(t *testing.T) {
	in := region.At(0.5, 0.5)
	in2 := region.At(0.25, 0.25)
	out := region.At(-0.5, -0.5)
	out2 := region.At(-0.25, -0.25)

	tests := []struct {
		name     string
		from, to region.Position
		want     []string
	}{
		{"Enter", out, in, []string{"area", "global", "inout"}},
		{"Leave", in, out, []string{"area", "global", "inout"}},
		{"Inside", in, in2, []string{"area", "global"}},
		{"Outside", out, out2, []string{"global"}},
		{"Leave canvas", in, region.Unknown, []string{"area", "global", "inout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &eventLog{}
			layer := NewLayer(DefaultPhases())
			layer.AddComponent(single(&scripted{name: "inout", log: log, attach: func(c ClaimSet) {
				mustClaim(c.ClaimMouseInOutSpace(unit))
			}}))
			layer.AddComponent(single(&scripted{name: "area", log: log, attach: func(c ClaimSet) {
				mustClaim(c.ClaimMouseMoveSpace(unit))
			}}))
			layer.AddComponent(single(&scripted{name: "global", log: log, attach: func(c ClaimSet) { c.MakeMouseMoveListener() }}))
			layer.OnMouseMove(tt.from)
			log.take()

			layer.OnMouseMove(tt.to)
			var got []string
			for _, e := range log.take() {
				got = append(got, strings.Fields(e)[0])
			}
			sort.Strings(got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("listeners mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMouseMoveReportsBothPositions(t *testing.T) {
	log := &eventLog{}
	layer := NewLayer(DefaultPhases())
	layer.AddComponent(single(&scripted{name: "g", log: log, attach: func(c ClaimSet) { c.MakeMouseMoveListener() }}))

	layer.OnMouseMove(region.At(0.5, 0.5))
	layer.OnMouseMove(region.At(0.5, 0.5))
	layer.OnMouseMove(region.Unknown)
	want := []string{
		"g move unknown -> (0.5, 0.5)",
		"g move (0.5, 0.5) -> unknown",
	}
	if diff := cmp.Diff(want, log.take()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollConsumption(t *testing.T) {
	tests := []struct {
		name         string
		hoverConsume bool
		want         []string
	}{
		{"Region consumes", true, []string{"map scroll -1"}},
		{"Region passes", false, []string{"map scroll -1", "high scroll -1", "low scroll -1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &eventLog{}
			layer := NewLayer(DefaultPhases())
			layer.AddComponent(single(&scripted{name: "low", log: log, attach: func(c ClaimSet) { c.MakeMouseScrollListener(1) }}))
			layer.AddComponent(single(&scripted{name: "high", log: log, attach: func(c ClaimSet) { c.MakeMouseScrollListener(2) }}))
			layer.AddComponent(single(&scripted{name: "map", log: log, consume: tt.hoverConsume, attach: func(c ClaimSet) {
				mustClaim(c.ClaimMouseScrollSpace(unit))
			}}))
			layer.OnMouseMove(region.At(0.5, 0.5))

			r := layer.OnMouseScroll(-1)
			if r.Consumed != tt.hoverConsume {
				t.Errorf("Consumed = %v; want %v", r.Consumed, tt.hoverConsume)
			}
			if diff := cmp.Diff(tt.want, log.take()); diff != "" {
				t.Errorf("delivery mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
