package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 22, 22, NewRect(29, 1, 22, 22)},
		{"offset outer", NewRect(10, 2, 20, 10), 10, 4, NewRect(15, 5, 10, 4)},
		{"too large clamps to origin", NewRect(0, 0, 10, 5), 22, 22, NewRect(0, 0, 22, 22)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.outer.Centered(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}
