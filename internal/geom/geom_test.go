package geom

import "testing"

func TestOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"partial", Rect{X: 25, Y: 25, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 5, H: 5}, true},
		{"left of", Rect{X: 0, Y: 10, W: 9, H: 5}, false},
		{"right of", Rect{X: 31, Y: 10, W: 5, H: 5}, false},
		{"above", Rect{X: 10, Y: 0, W: 5, H: 9}, false},
		{"below", Rect{X: 10, Y: 31, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.r); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.r, got, tt.want)
			}
			if got := tt.r.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestExpandAndContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}.Expand(5)
	want := Rect{X: 5, Y: 15, W: 40, H: 50}
	if r != want {
		t.Fatalf("Expand = %+v, want %+v", r, want)
	}

	if !r.Contains(Point{X: 5, Y: 15}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Point{X: 45, Y: 30}) {
		t.Error("right edge should be outside")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3) = %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp(12) = %v", got)
	}
	if got := Clamp(5, 0, -1); got != 0 {
		t.Errorf("Clamp with inverted range = %v, want lo", got)
	}
}
