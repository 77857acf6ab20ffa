package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayHelp        OverlayID = "help"
	OverlayStars       OverlayID = "stars"
	OverlayPlaceholder OverlayID = "placeholder"
	OverlayKinematics  OverlayID = "kinematics"
	OverlayPointer     OverlayID = "pointer"
	OverlayPerf        OverlayID = "perf"
)

// OverlayDescriptor describes a switchable layer.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32 // 0 = mouse only
	KeyLabel    string
	Category    string      // "visual" or "debug"
	Exclusive   []OverlayID // switched off when this one is switched on
	Default     bool
}

// OverlayRegistry holds every overlay and whether it is on. Registration
// order is display order.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	for _, desc := range defaultOverlays {
		reg.Register(desc)
	}
	return reg
}

// defaultOverlays are registered by NewOverlayRegistry. Function keys only, so
// they never clash with typing into the checkout form.
var defaultOverlays = []OverlayDescriptor{
	{ID: OverlayHelp, Name: "Key Help", Description: "Key bindings and overlay switches",
		Key: rl.KeyF1, KeyLabel: "F1", Category: "visual"},
	{ID: OverlayStars, Name: "Shooting Stars", Description: "Streaks over the universe",
		Key: rl.KeyF2, KeyLabel: "F2", Category: "visual", Default: true,
		Exclusive: []OverlayID{OverlayPlaceholder}},
	{ID: OverlayPlaceholder, Name: "Gradient Only", Description: "Plain gradient, no particles or stars",
		Key: rl.KeyF3, KeyLabel: "F3", Category: "visual",
		Exclusive: []OverlayID{OverlayStars}},
	{ID: OverlayKinematics, Name: "Kinematics", Description: "Pointer speed, spin and field of view",
		Key: rl.KeyF4, KeyLabel: "F4", Category: "debug"},
	{ID: OverlayPointer, Name: "Pointer", Description: "Region the pointer enlarges",
		Key: rl.KeyF5, KeyLabel: "F5", Category: "debug"},
	{ID: OverlayPerf, Name: "Frame Timing", Description: "Per-phase frame timings",
		Key: rl.KeyF6, KeyLabel: "F6", Category: "debug"},
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled

	// If enabling, disable exclusive overlays
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}

// EnabledOverlays returns a list of currently enabled overlay IDs.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var result []OverlayID
	for _, desc := range r.descriptors {
		if r.enabled[desc.ID] {
			result = append(result, desc.ID)
		}
	}
	return result
}
