package carousel

import (
	"math"
	"testing"

	"github.com/pthm-cable/noble/catalog"
)

func TestNewClampsInitialIndex(t *testing.T) {
	tests := []struct {
		n, initial, want int
	}{
		{6, 2, 2},
		{2, 2, 1},
		{1, 2, 0},
		{6, -4, 0},
		{0, 2, 0},
	}
	for _, tc := range tests {
		s := New(tc.n, tc.initial, DefaultLayout())
		if s.Index() != tc.want {
			t.Errorf("New(%d, %d): expected index %d, got %d", tc.n, tc.initial, tc.want, s.Index())
		}
	}
}

func TestPlacementCentredIffIndex(t *testing.T) {
	s := New(6, 2, DefaultLayout())
	centre := Placement{Scale: 1, Opacity: 1, Visible: true}

	for i := 0; i < s.N(); i++ {
		p := s.PlacementFor(i, 1280)
		if (p == centre) != (i == s.Index()) {
			t.Errorf("card %d: centred=%v but index is %d", i, p == centre, s.Index())
		}
	}
}

func TestPlacementMirrored(t *testing.T) {
	s := New(6, 2, DefaultLayout())

	for _, width := range []float32{400, 700, 1280} {
		left := s.PlacementFor(1, width)
		right := s.PlacementFor(3, width)

		if left.X != -right.X || left.RotY != -right.RotY {
			t.Errorf("width %.0f: expected mirrored x/rotation, got %+v and %+v", width, left, right)
		}
		left.X, left.RotY = right.X, right.RotY
		if left != right {
			t.Errorf("width %.0f: expected identical side parameters, got %+v and %+v", width, left, right)
		}
	}
}

func TestPlacementBreakpoints(t *testing.T) {
	l := DefaultLayout()
	tests := []struct {
		width   float32
		scale   float32
		opacity float32
		x       float32
	}{
		{320, 0.5, 0.3, 200},
		{639, 0.5, 0.3, 200},
		{640, 0.7, 0.6, 350},
		{767, 0.7, 0.6, 350},
		{768, 0.7, 0.6, 500},
		{1920, 0.7, 0.6, 500},
	}
	for _, tc := range tests {
		p := l.At(1, tc.width)
		if p.Scale != tc.scale || p.Opacity != tc.opacity || p.X != tc.x {
			t.Errorf("width %.0f: expected scale %.1f opacity %.1f x %.0f, got %+v",
				tc.width, tc.scale, tc.opacity, tc.x, p)
		}
		if p.Z != -200 || p.RotY != 35 || p.Blur != 1 {
			t.Errorf("width %.0f: unexpected side depth/rotation/blur %+v", tc.width, p)
		}
	}
}

func TestPlacementFar(t *testing.T) {
	l := DefaultLayout()
	for _, pos := range []int{2, -2, 5, -5} {
		p := l.At(pos, 1280)
		if p.Visible {
			t.Errorf("position %d: expected hidden card", pos)
		}
		if p.Opacity != 0 || p.Scale != 0.5 || p.Z != -400 || p.Blur != 5 || p.RotY != 0 {
			t.Errorf("position %d: unexpected far placement %+v", pos, p)
		}
		if (pos > 0) != (p.X > 0) || math.Abs(float64(p.X)) != 800 {
			t.Errorf("position %d: expected x ±800 on the matching side, got %f", pos, p.X)
		}
	}
}

func TestVisibleDoesNotWrap(t *testing.T) {
	s := New(6, 0, DefaultLayout())
	if !s.Visible(0) || !s.Visible(1) {
		t.Error("expected centre and next card visible")
	}
	// Last product sits at position +5, not -1
	if s.Visible(5) {
		t.Error("expected last card hidden when first is centred")
	}
	if s.Visible(-1) || s.Visible(6) {
		t.Error("expected out-of-range indices hidden")
	}
}

func TestNextPreviousRoundTrip(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s := New(n, start, DefaultLayout())
			idx, rot := s.Index(), s.Rotation()

			s.GoNext()
			s.GoPrevious()

			if s.Index() != idx {
				t.Errorf("n=%d start=%d: expected index %d, got %d", n, start, idx, s.Index())
			}
			if math.Abs(s.Rotation()-rot) > 1e-9 {
				t.Errorf("n=%d start=%d: expected rotation %f, got %f", n, start, rot, s.Rotation())
			}
		}
	}
}

func TestNavigationWraps(t *testing.T) {
	s := New(6, 5, DefaultLayout())
	s.GoNext()
	if s.Index() != 0 {
		t.Errorf("expected wrap to 0, got %d", s.Index())
	}
	if s.Rotation() != -60 {
		t.Errorf("expected rotation -60, got %f", s.Rotation())
	}

	s.GoPrevious()
	s.GoPrevious()
	if s.Index() != 4 {
		t.Errorf("expected index 4, got %d", s.Index())
	}
	if s.Rotation() != 60 {
		t.Errorf("expected rotation 60, got %f", s.Rotation())
	}
	if !s.UserControlled() {
		t.Error("expected navigation to latch user control")
	}
}

func TestSelectIndexIdempotent(t *testing.T) {
	s := New(6, 2, DefaultLayout())

	if !s.SelectIndex(4) {
		t.Fatal("expected first select to change state")
	}
	idx, rot := s.Index(), s.Rotation()
	if idx != 4 || rot != 120 {
		t.Errorf("expected index 4 rotation 120, got %d %f", idx, rot)
	}

	if s.SelectIndex(4) {
		t.Error("expected second select to be a no-op")
	}
	if s.Index() != idx || s.Rotation() != rot {
		t.Errorf("expected unchanged state, got %d %f", s.Index(), s.Rotation())
	}
}

func TestSelectIndexOutOfRange(t *testing.T) {
	s := New(3, 1, DefaultLayout())
	for _, i := range []int{-1, 3, 100} {
		if s.SelectIndex(i) {
			t.Errorf("expected select(%d) to be ignored", i)
		}
	}
	if s.UserControlled() {
		t.Error("expected ignored selects not to latch user control")
	}
}

func TestEmptyCarousel(t *testing.T) {
	s := New(0, 2, DefaultLayout())
	if s.AnglePerStep() != 0 {
		t.Errorf("expected zero angle step, got %f", s.AnglePerStep())
	}
	s.GoNext()
	s.GoPrevious()
	s.SelectIndex(0)
	if s.Index() != 0 || s.Rotation() != 0 || s.UserControlled() {
		t.Error("expected navigation on an empty carousel to be a no-op")
	}
	if s.Visible(0) {
		t.Error("expected nothing visible")
	}
}

func TestAnimatorSnapsThenEases(t *testing.T) {
	s := New(3, 1, DefaultLayout())
	a := NewAnimator(3, 0.8)
	a.Sync(s, 1280)

	if a.Animating() {
		t.Error("expected first sync to snap")
	}
	if got := a.Placement(1); got != s.PlacementFor(1, 1280) {
		t.Errorf("expected snapped centre placement, got %+v", got)
	}

	s.GoNext()
	a.Sync(s, 1280)
	if !a.Animating() {
		t.Fatal("expected transition after navigation")
	}

	a.Advance(0.4)
	mid := a.Placement(2)
	if mid.Scale <= 0.7 || mid.Scale >= 1 {
		t.Errorf("expected mid-transition scale between 0.7 and 1, got %f", mid.Scale)
	}

	a.Advance(0.5)
	if a.Animating() {
		t.Error("expected transition finished after 0.8s")
	}
	if got := a.Placement(2); got != s.PlacementFor(2, 1280) {
		t.Errorf("expected final centre placement, got %+v", got)
	}
}

func TestAnimatorRetargetsOnResize(t *testing.T) {
	s := New(3, 1, DefaultLayout())
	a := NewAnimator(3, 0.8)
	a.Sync(s, 1280)
	a.Sync(s, 500)
	a.Advance(1)
	if got := a.Placement(0); got.X != -200 {
		t.Errorf("expected narrow side offset -200, got %f", got.X)
	}
}

func TestGallery(t *testing.T) {
	p := catalog.Product{ID: 1, Images: []string{"A", "B", "C"}}
	var g Gallery

	g.Open(p, 0)
	if !g.IsOpen() || g.Image() != "A" {
		t.Fatalf("expected open on first image, got %q", g.Image())
	}

	g.Prev()
	if g.Index() != 2 {
		t.Errorf("expected prev to wrap to 2, got %d", g.Index())
	}
	g.Next()
	if g.Index() != 0 {
		t.Errorf("expected next to wrap to 0, got %d", g.Index())
	}

	g.Select(9)
	if g.Index() != 2 {
		t.Errorf("expected select clamped to 2, got %d", g.Index())
	}

	g.Close()
	if g.IsOpen() || g.Index() != 0 {
		t.Error("expected closed and reset gallery")
	}
}

func TestGalleryNoImages(t *testing.T) {
	var g Gallery
	g.Open(catalog.Product{ID: 2}, 3)
	g.Next()
	g.Prev()
	if g.Image() != "" || g.Index() != 0 {
		t.Errorf("expected empty gallery, got %q at %d", g.Image(), g.Index())
	}
}
