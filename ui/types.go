// Package ui draws the storefront chrome on top of the universe and the
// carousel: header, carousel controls, cart panel, checkout form and debug
// overlays. Widgets never mutate storefront state; they report Actions that
// the app applies.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// ActionKind identifies a user intent reported by a widget.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPrevious
	ActionNext
	ActionSelect // Index
	ActionAddToCart
	ActionToggleCart
	ActionCloseCart
	ActionIncrement // ID
	ActionDecrement // ID
	ActionRemove    // ID
	ActionCheckout
	ActionOpenGallery // Index is the image
	ActionCloseGallery
	ActionGalleryPrevious
	ActionGalleryNext
	ActionGallerySelect // Index
	ActionOpenLink      // URL
)

// Action is one user intent.
type Action struct {
	Kind  ActionKind
	ID    int
	Index int
	URL   string
}

// Actions collects the intents of one frame.
type Actions []Action

// Add appends an action.
func (a *Actions) Add(kind ActionKind) {
	*a = append(*a, Action{Kind: kind})
}

// AddID appends an action carrying a product ID.
func (a *Actions) AddID(kind ActionKind, id int) {
	*a = append(*a, Action{Kind: kind, ID: id})
}

// AddIndex appends an action carrying an index.
func (a *Actions) AddIndex(kind ActionKind, index int) {
	*a = append(*a, Action{Kind: kind, Index: index})
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	Backdrop       rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Accent         rl.Color
	Success        rl.Color
	Warning        rl.Color
	Muted          rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillLow     rl.Color
	BarFillMedium  rl.Color
	BarFillHigh    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 17, G: 24, B: 39, A: 240},
		PanelBorder:    rl.Color{R: 55, G: 65, B: 81, A: 255},
		Backdrop:       rl.Color{R: 0, G: 0, B: 0, A: 170},
		SectionHeader:  rl.Color{R: 251, G: 191, B: 36, A: 255},
		LabelColor:     rl.Color{R: 156, G: 163, B: 175, A: 255},
		ValueColor:     rl.Color{R: 229, G: 231, B: 235, A: 255},
		Accent:         rl.Color{R: 96, G: 165, B: 250, A: 255},
		Success:        rl.Color{R: 52, G: 211, B: 153, A: 255},
		Warning:        rl.Color{R: 248, G: 113, B: 113, A: 255},
		Muted:          rl.Color{R: 107, G: 114, B: 128, A: 255},
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 100, G: 150, B: 200, A: 255},
		BarFillLow:     rl.Color{R: 100, G: 200, B: 100, A: 255},
		BarFillMedium:  rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:    rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:        12,
		LineHeight:     22,
		LabelWidth:     110,
		BarHeight:      12,
		FontSize:       16,
		HeaderFontSize: 20,
		TitleFontSize:  32,
		ButtonHeight:   32,
	}
}
