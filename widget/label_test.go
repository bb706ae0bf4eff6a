package widget

import (
	"testing"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
	"github.com/google/go-cmp/cmp"
)

func TestLabelFollowsSource(t *testing.T) {
	r := region.New(-1, 0.9, 0, 1)
	status := "zoom 4"
	l := NewLabel(r, "")
	l.Source = func() string { return status }
	layer := newLayer(l)

	if got := texts(render(layer)); len(got) != 0 {
		t.Errorf("empty label drew %v", got)
	}

	layer.OnUpdate()
	if diff := cmp.Diff([]string{`text "zoom 4"`}, texts(render(layer))); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}

	layer.OnUpdate()
	if got := layer.PredictRender(); len(got) != 0 {
		t.Errorf("unchanged source predicted %v", got)
	}

	status = "zoom 5"
	layer.OnUpdate()
	want := []ui.PlannedAction{{Region: r, Opacity: ui.OpacityDynamicSolidOrNothing}}
	if diff := cmp.Diff(want, layer.PredictRender()); diff != "" {
		t.Errorf("prediction mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{`text "zoom 5"`}, texts(render(layer))); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyLabelLetsMouseThrough(t *testing.T) {
	r := region.New(-1, -1, 1, 1)
	tests := []struct {
		text         string
		wantConsumed bool
	}{
		{"", false},
		{"hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			layer := newLayer(NewLabel(r, tt.text))
			render(layer)
			if got := layer.OnMouseMove(region.At(0, 0)).Consumed; got != tt.wantConsumed {
				t.Errorf("Consumed = %v; want %v", got, tt.wantConsumed)
			}
		})
	}
}
