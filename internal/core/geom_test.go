package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping cars",
			a:        RectF{X: 0, Y: 0, W: 32, H: 48},
			b:        RectF{X: 16, Y: 24, W: 32, H: 48},
			expected: true,
		},
		{
			name:     "side by side",
			a:        RectF{X: 0, Y: 0, W: 32, H: 48},
			b:        RectF{X: 40, Y: 0, W: 32, H: 48},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        RectF{X: 0, Y: 0, W: 32, H: 48},
			b:        RectF{X: 32, Y: 0, W: 32, H: 48},
			expected: false,
		},
		{
			name:     "bumper to bumper",
			a:        RectF{X: 0, Y: 0, W: 32, H: 48},
			b:        RectF{X: 0, Y: 47.5, W: 32, H: 48},
			expected: true,
		},
		{
			name:     "contained",
			a:        RectF{X: 0, Y: 0, W: 100, H: 100},
			b:        RectF{X: 10, Y: 10, W: 5, H: 5},
			expected: true,
		},
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

func TestRectFToCells(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		sx, sy   float64
		expected Rect
	}{
		{
			name:     "exact fit",
			r:        RectF{X: 80, Y: 32, W: 16, H: 32},
			sx:       0.125,
			sy:       0.0625,
			expected: Rect{X: 10, Y: 2, W: 2, H: 2},
		},
		{
			name:     "partial cells round outward",
			r:        RectF{X: 1, Y: 1, W: 1, H: 1},
			sx:       0.5,
			sy:       0.5,
			expected: Rect{X: 0, Y: 0, W: 1, H: 1},
		},
		{
			name:     "above the screen",
			r:        RectF{X: 0, Y: -48, W: 32, H: 48},
			sx:       0.25,
			sy:       0.25,
			expected: Rect{X: 0, Y: -12, W: 8, H: 12},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.ToCells(tc.sx, tc.sy); got != tc.expected {
				t.Errorf("ToCells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
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
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 568.0, 5.5},
		{-5.5, 0.0, 568.0, 0.0},
		{600.0, 0.0, 568.0, 568.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("Purple"); !ok || c != ColorMagenta {
		t.Errorf("ParseColor(Purple) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("ultraviolet"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
