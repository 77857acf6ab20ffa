package carousel

// Placement is the 3D style of one card. X and Z are in layout pixels, RotY in degrees.
type Placement struct {
	Scale   float32
	Opacity float32
	X       float32
	Z       float32
	RotY    float32
	Blur    float32
	Visible bool
}

// Breakpoint selects the side-card row for viewports at least MinWidth wide.
type Breakpoint struct {
	MinWidth    float32
	SideScale   float32
	SideOpacity float32
	SideX       float32
}

// Layout is the placement table. Breakpoints must be sorted by MinWidth ascending.
type Layout struct {
	Breakpoints []Breakpoint
	SideZ       float32
	SideRotY    float32
	SideBlur    float32
	FarScale    float32
	FarX        float32
	FarZ        float32
	FarBlur     float32
}

// DefaultLayout returns the storefront table with breakpoints at 640 and 768.
func DefaultLayout() Layout {
	return NewLayout(640, 768)
}

// NewLayout builds the standard table with custom breakpoint widths.
func NewLayout(narrow, wide float32) Layout {
	return Layout{
		Breakpoints: []Breakpoint{
			{MinWidth: 0, SideScale: 0.5, SideOpacity: 0.3, SideX: 200},
			{MinWidth: narrow, SideScale: 0.7, SideOpacity: 0.6, SideX: 350},
			{MinWidth: wide, SideScale: 0.7, SideOpacity: 0.6, SideX: 500},
		},
		SideZ:    -200,
		SideRotY: 35,
		SideBlur: 1,
		FarScale: 0.5,
		FarX:     800,
		FarZ:     -400,
		FarBlur:  5,
	}
}

// BreakpointFor returns the row that applies to a viewport width.
func (l Layout) BreakpointFor(width float32) Breakpoint {
	if len(l.Breakpoints) == 0 {
		return Breakpoint{SideScale: 1, SideOpacity: 1}
	}
	bp := l.Breakpoints[0]
	for _, b := range l.Breakpoints[1:] {
		if width >= b.MinWidth {
			bp = b
		}
	}
	return bp
}

// At returns the placement for a card at the given position relative to the
// centred card.
func (l Layout) At(position int, width float32) Placement {
	switch {
	case position == 0:
		return Placement{Scale: 1, Opacity: 1, Visible: true}
	case position == 1 || position == -1:
		bp := l.BreakpointFor(width)
		sign := float32(position)
		return Placement{
			Scale:   bp.SideScale,
			Opacity: bp.SideOpacity,
			X:       sign * bp.SideX,
			Z:       l.SideZ,
			RotY:    sign * l.SideRotY,
			Blur:    l.SideBlur,
			Visible: true,
		}
	}

	sign := float32(1)
	if position < 0 {
		sign = -1
	}
	return Placement{
		Scale: l.FarScale,
		X:     sign * l.FarX,
		Z:     l.FarZ,
		Blur:  l.FarBlur,
	}
}
