package ui

import "testing"

func TestLineWindow(t *testing.T) {
	tests := []struct {
		name         string
		first, total int
		fits         int
		start, end   int
	}{
		{"all fit", 0, 3, 5, 0, 3},
		{"top of a long list", 0, 8, 3, 0, 3},
		{"scrolled", 2, 8, 3, 2, 5},
		{"last line reachable", 5, 8, 3, 5, 8},
		{"scrolled past the end", 9, 8, 3, 5, 8},
		{"scrolled above the top", -2, 8, 3, 0, 3},
		{"list shrank under the offset", 6, 4, 3, 1, 4},
		{"no room still shows one", 3, 8, 0, 3, 4},
	}

	for _, tc := range tests {
		start, end := lineWindow(tc.first, tc.total, tc.fits)
		if start != tc.start || end != tc.end {
			t.Errorf("%s: expected [%d, %d), got [%d, %d)", tc.name, tc.start, tc.end, start, end)
		}
	}
}

func TestLineWindowReachesEveryLine(t *testing.T) {
	const total, fits = 7, 2
	seen := make(map[int]bool)
	for first := 0; first < total; first++ {
		start, end := lineWindow(first, total, fits)
		for i := start; i < end; i++ {
			seen[i] = true
		}
	}
	if len(seen) != total {
		t.Errorf("expected all %d lines reachable by scrolling, got %d", total, len(seen))
	}
}
