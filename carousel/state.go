// Package carousel holds the centred-product state machine and the card
// placement table for the three-card product carousel.
package carousel

// State tracks which product is centred. The user-controlled latch is one-way:
// once any navigation happens it stays set for the session.
type State struct {
	n              int
	index          int
	rotation       float64
	userControlled bool
	layout         Layout
}

// New creates a carousel over n products. initial is clamped into range.
func New(n, initial int, layout Layout) *State {
	s := &State{n: max(n, 0), layout: layout}
	if s.n > 0 {
		s.index = min(max(initial, 0), s.n-1)
	}
	return s
}

// N returns the number of products.
func (s *State) N() int { return s.n }

// Index returns the centred product index.
func (s *State) Index() int { return s.index }

// Rotation returns the accumulated rotation in degrees.
func (s *State) Rotation() float64 { return s.rotation }

// UserControlled reports whether the user has navigated at least once.
func (s *State) UserControlled() bool { return s.userControlled }

// Layout returns the placement table in use.
func (s *State) Layout() Layout { return s.layout }

// AnglePerStep is 360/N degrees, or 0 for an empty carousel.
func (s *State) AnglePerStep() float64 {
	if s.n == 0 {
		return 0
	}
	return 360 / float64(s.n)
}

// GoPrevious centres the previous product, wrapping around.
func (s *State) GoPrevious() {
	if s.n == 0 {
		return
	}
	s.index = (s.index - 1 + s.n) % s.n
	s.rotation += s.AnglePerStep()
	s.userControlled = true
}

// GoNext centres the next product, wrapping around.
func (s *State) GoNext() {
	if s.n == 0 {
		return
	}
	s.index = (s.index + 1) % s.n
	s.rotation -= s.AnglePerStep()
	s.userControlled = true
}

// SelectIndex centres product i. It reports whether the centred index changed.
// Out-of-range indices are ignored.
func (s *State) SelectIndex(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	s.userControlled = true
	if i == s.index {
		return false
	}
	s.rotation += float64(i-s.index) * s.AnglePerStep()
	s.index = i
	return true
}

// Position is the offset of product i from the centred card. It does not wrap.
func (s *State) Position(i int) int {
	return i - s.index
}

// Visible reports whether product i is one of the three drawn cards.
func (s *State) Visible(i int) bool {
	p := s.Position(i)
	return i >= 0 && i < s.n && p >= -1 && p <= 1
}

// PlacementFor returns the style for product i at the given viewport width.
func (s *State) PlacementFor(i int, viewportWidth float32) Placement {
	return s.layout.At(s.Position(i), viewportWidth)
}
