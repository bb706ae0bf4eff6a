package region

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntersects(t *testing.T) {
	base := New(0, 0, 1, 1)
	tests := []struct {
		name  string
		other Region
		want  bool
	}{
		{"Same region", New(0, 0, 1, 1), true},
		{"Partial overlap", New(0.5, 0.5, 1.5, 1.5), true},
		{"Contained", New(0.25, 0.25, 0.75, 0.75), true},
		{"Touching right edge", New(1, 0, 2, 1), false},
		{"Touching top edge", New(0, 1, 1, 2), false},
		{"Touching corner", New(1, 1, 2, 2), false},
		{"Disjoint", New(3, 3, 4, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v; want %v", base, tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v; want %v", tt.other, base, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	r := New(-0.5, -0.5, 0.5, 0.5)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Center", Point{0, 0}, true},
		{"Left edge", Point{-0.5, 0}, false},
		{"Right edge", Point{0.5, 0}, false},
		{"Bottom edge", Point{0, -0.5}, false},
		{"Top edge", Point{0, 0.5}, false},
		{"Corner", Point{0.5, 0.5}, false},
		{"Outside", Point{0.9, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v; want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContainsPosition(t *testing.T) {
	r := EntireViewport()
	if r.ContainsPosition(Unknown) {
		t.Error("an unknown position must never be inside")
	}
	if !r.ContainsPosition(At(0, 0)) {
		t.Error("expected the origin to be inside the viewport")
	}
}

func TestUncovered(t *testing.T) {
	r := New(0, 0, 4, 4)
	tests := []struct {
		name   string
		covers []Region
		want   []Region
	}{
		{
			name:   "Nothing covers",
			covers: nil,
			want:   []Region{r},
		},
		{
			name:   "Fully covered",
			covers: []Region{New(-1, -1, 5, 5)},
			want:   nil,
		},
		{
			name:   "Covered by two halves",
			covers: []Region{New(0, 0, 2, 4), New(2, 0, 4, 4)},
			want:   nil,
		},
		{
			name:   "Left half covered",
			covers: []Region{New(0, 0, 2, 4)},
			want:   []Region{New(2, 0, 4, 4)},
		},
		{
			name:   "Hole in the middle",
			covers: []Region{New(1, 1, 3, 3)},
			want: []Region{
				New(0, 0, 4, 1),
				New(0, 3, 4, 4),
				New(0, 1, 1, 3),
				New(3, 1, 4, 3),
			},
		},
		{
			name:   "Touching cover does not count",
			covers: []Region{New(4, 0, 5, 4)},
			want:   []Region{r},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Uncovered(tt.covers)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Uncovered mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntersection(t *testing.T) {
	got, ok := New(0, 0, 2, 2).Intersection(New(1, 1, 3, 3))
	if !ok {
		t.Fatal("expected an intersection")
	}
	if want := New(1, 1, 2, 2); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
	if _, ok := New(0, 0, 1, 1).Intersection(New(1, 0, 2, 1)); ok {
		t.Error("touching regions must not produce an intersection")
	}
}

func BenchmarkIntersects(b *testing.B) {
	regions := []Region{
		New(-1, -1, 0, 0),
		New(0, 0, 1, 1),
		New(-0.5, -0.5, 0.5, 0.5),
		New(0.9, 0.9, 1, 1),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, a := range regions {
			for _, c := range regions {
				a.Intersects(c)
			}
		}
	}
}
