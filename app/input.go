package app

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/noble/ui"
)

// handleInput processes keyboard input and window changes.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Keys belong to the text box while the form is being edited
	if a.form.Editing() {
		if rl.IsKeyPressed(rl.KeyEscape) {
			a.form.Blur()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.sess.Dismiss()
	}

	if a.sess.Gallery.IsOpen() {
		if rl.IsKeyPressed(rl.KeyLeft) {
			a.sess.Gallery.Prev()
		}
		if rl.IsKeyPressed(rl.KeyRight) {
			a.sess.Gallery.Next()
		}
	} else if !a.sess.CartOpen() {
		if rl.IsKeyPressed(rl.KeyLeft) {
			a.sess.Previous()
		}
		if rl.IsKeyPressed(rl.KeyRight) {
			a.sess.Next()
		}
	}

	for _, key := range []int32{rl.KeyF1, rl.KeyF2, rl.KeyF3, rl.KeyF4, rl.KeyF5, rl.KeyF6} {
		if !rl.IsKeyPressed(key) {
			continue
		}
		if id, on, ok := a.overlays.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", id, "enabled", on)
		}
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenW && h == a.screenH {
		return
	}
	a.screenW = w
	a.screenH = h

	a.cam.Resize(w, h)
	if a.backdrop != nil {
		a.backdrop.Resize(int32(w), int32(h))
	}
	if a.starField != nil {
		a.starField.Resize(w, h)
	}
}

// pointer returns the mouse in normalised device coordinates, or false when
// it is outside the window.
func (a *App) pointer() (mgl32.Vec2, bool) {
	if !rl.IsCursorOnScreen() {
		return mgl32.Vec2{}, false
	}
	m := rl.GetMousePosition()
	return a.cam.PointerNDC(m.X, m.Y)
}

// applyActions routes the frame's widget intents into the session.
func (a *App) applyActions() {
	for _, act := range a.actions {
		a.apply(act)
	}
	a.actions = a.actions[:0]
}

func (a *App) apply(act ui.Action) {
	s := a.sess
	switch act.Kind {
	case ui.ActionPrevious:
		s.Previous()
	case ui.ActionNext:
		s.Next()
	case ui.ActionSelect:
		s.Select(act.Index)
	case ui.ActionAddToCart:
		s.AddToCart()
	case ui.ActionToggleCart:
		s.ToggleCart()
		a.form.Blur()
	case ui.ActionCloseCart:
		s.CloseCart()
		a.form.Blur()
	case ui.ActionIncrement:
		s.Increment(act.ID)
	case ui.ActionDecrement:
		s.Decrement(act.ID)
	case ui.ActionRemove:
		s.Remove(act.ID)
	case ui.ActionCheckout:
		a.checkout()
	case ui.ActionOpenGallery:
		s.OpenGallery(act.Index)
	case ui.ActionCloseGallery:
		s.Gallery.Close()
	case ui.ActionGalleryPrevious:
		s.Gallery.Prev()
	case ui.ActionGalleryNext:
		s.Gallery.Next()
	case ui.ActionGallerySelect:
		s.Gallery.Select(act.Index)
	case ui.ActionOpenLink:
		a.openURL(act.URL)
	}
}

// checkout hands the composed order to the system browser.
func (a *App) checkout() {
	a.sess.SetCustomer(a.form.Customer())
	url, err := a.sess.Checkout()
	if err != nil {
		slog.Warn("checkout blocked", "error", err)
		return
	}
	slog.Info("checkout opened", "items", a.sess.Cart.TotalItemCount(), "total", a.sess.Cart.ComputeTotals().Total)
	a.openURL(url)
}
