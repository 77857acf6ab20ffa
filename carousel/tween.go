package carousel

import "github.com/pthm-cable/noble/motion"

// Tween eases one card from its previous placement to a target placement.
type Tween struct {
	from     Placement
	to       Placement
	elapsed  float32
	duration float32
}

// Snap jumps straight to p with no animation.
func (t *Tween) Snap(p Placement) {
	t.from, t.to = p, p
	t.elapsed = t.duration
}

// Retarget starts a new transition from wherever the card is now.
func (t *Tween) Retarget(p Placement, duration float32) {
	if p == t.to {
		return
	}
	t.from = t.Current()
	t.to = p
	t.elapsed = 0
	t.duration = duration
}

// Advance moves the transition forward by dt seconds.
func (t *Tween) Advance(dt float32) {
	t.elapsed = min(t.elapsed+dt, t.duration)
}

// Done reports whether the card has reached its target.
func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Current returns the interpolated placement.
func (t *Tween) Current() Placement {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	k := motion.EaseInOut(t.elapsed / t.duration)
	return Placement{
		Scale:   motion.Lerp(t.from.Scale, t.to.Scale, k),
		Opacity: motion.Lerp(t.from.Opacity, t.to.Opacity, k),
		X:       motion.Lerp(t.from.X, t.to.X, k),
		Z:       motion.Lerp(t.from.Z, t.to.Z, k),
		RotY:    motion.Lerp(t.from.RotY, t.to.RotY, k),
		Blur:    motion.Lerp(t.from.Blur, t.to.Blur, k),
		Visible: t.to.Visible,
	}
}

// Animator keeps one tween per product and retargets them whenever the
// centred index or the viewport width changes.
type Animator struct {
	tweens   []Tween
	duration float32
	index    int
	width    float32
	synced   bool
}

// NewAnimator creates an animator for n cards with the given transition time.
func NewAnimator(n int, duration float32) *Animator {
	return &Animator{
		tweens:   make([]Tween, max(n, 0)),
		duration: duration,
	}
}

// Sync retargets every card to the state's placements. The first call snaps.
func (a *Animator) Sync(s *State, width float32) {
	if a.synced && s.Index() == a.index && width == a.width {
		return
	}
	for i := range a.tweens {
		p := s.PlacementFor(i, width)
		if a.synced {
			a.tweens[i].Retarget(p, a.duration)
		} else {
			a.tweens[i].Snap(p)
		}
	}
	a.index = s.Index()
	a.width = width
	a.synced = true
}

// Advance moves every card forward by dt seconds.
func (a *Animator) Advance(dt float32) {
	for i := range a.tweens {
		a.tweens[i].Advance(dt)
	}
}

// Placement returns the current animated placement of card i.
func (a *Animator) Placement(i int) Placement {
	if i < 0 || i >= len(a.tweens) {
		return Placement{}
	}
	return a.tweens[i].Current()
}

// Animating reports whether any card is mid-transition.
func (a *Animator) Animating() bool {
	for i := range a.tweens {
		if !a.tweens[i].Done() {
			return true
		}
	}
	return false
}
