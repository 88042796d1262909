package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAround(Vec3{}, 1),
			b:        BoxAround(Vec3{X: 0.5, Y: 0.5}, 1),
			expected: true,
		},
		{
			name:     "fully contained",
			a:        BoxAround(Vec3{}, 4),
			b:        BoxAround(Vec3{X: 0.5, Y: -0.5, Z: 0.25}, 0.5),
			expected: true,
		},
		{
			name:     "disjoint on x",
			a:        BoxAround(Vec3{}, 1),
			b:        BoxAround(Vec3{X: 3}, 1),
			expected: false,
		},
		{
			name:     "disjoint on z only",
			a:        BoxAround(Vec3{}, 1),
			b:        BoxAround(Vec3{Z: 2}, 1),
			expected: false,
		},
		{
			name:     "touching faces on x (no overlap)",
			a:        Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}},
			b:        Box{Min: Vec3{1, 0, 0}, Max: Vec3{2, 1, 1}},
			expected: false,
		},
		{
			name:     "touching faces on y (no overlap)",
			a:        Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}},
			b:        Box{Min: Vec3{0, 1, 0}, Max: Vec3{1, 2, 1}},
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
			a:        Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}},
			b:        Box{Min: Vec3{1, 1, 1}, Max: Vec3{2, 2, 2}},
			expected: false,
		},
		{
			name:     "player and obstacle just overlapping",
			a:        BoxAround(Vec3{}, 1),
			b:        BoxAround(Vec3{X: 0.74}, 0.5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(Vec3{X: 1, Y: 2, Z: 3}, 0.5)

	if b.Min != (Vec3{X: 0.75, Y: 1.75, Z: 2.75}) {
		t.Errorf("Min = %+v, expected {0.75 1.75 2.75}", b.Min)
	}
	if b.Max != (Vec3{X: 1.25, Y: 2.25, Z: 3.25}) {
		t.Errorf("Max = %+v, expected {1.25 2.25 3.25}", b.Max)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{1.5, -3.5, 3.5, 1.5},
		{-3.65, -3.5, 3.5, -3.5},
		{3.65, -3.5, 3.5, 3.5},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
