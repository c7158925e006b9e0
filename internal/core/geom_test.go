package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	ground := Box{X: 0, Y: 536, W: 800, H: 64}

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"resting on top edge", Box{X: 384, Y: 488, W: 32, H: 48}, false},
		{"sunk into ground", Box{X: 384, Y: 489, W: 32, H: 48}, true},
		{"beside the world", Box{X: 800, Y: 540, W: 10, H: 10}, false},
		{"fractional overlap", Box{X: 10, Y: 535.5, W: 1, H: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.Overlaps(ground); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := ground.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAxisOverlap(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	b := Box{X: 5, Y: 20, W: 10, H: 10}

	if !a.OverlapsX(b) {
		t.Error("boxes should overlap on X")
	}
	if a.OverlapsY(b) {
		t.Error("boxes should not overlap on Y")
	}
	if a.Right() != 10 || a.Bottom() != 10 {
		t.Errorf("edges = (%v, %v), expected (10, 10)", a.Right(), a.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"", ColorDefault, true},
		{"red", ColorRed, true},
		{"Bright_Cyan", ColorBrightCyan, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionLeft, ActionJump)
	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Error("InputOf should set every given action")
	}
	if f.Has(ActionRight) {
		t.Error("InputOf should not set other actions")
	}

	clone := f.Clone()
	f.Clear()
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share state with the original")
	}
}
