package motion

// Flash is a one-shot countdown, used for short confirmations such as the
// "Added!" state of a button.
type Flash struct {
	remaining float32
	key       int
}

// Trigger starts the flash for d seconds, tagged with key.
func (f *Flash) Trigger(key int, d float32) {
	f.key = key
	f.remaining = d
}

// Advance counts down by dt seconds.
func (f *Flash) Advance(dt float32) {
	if f.remaining > 0 {
		f.remaining -= dt
	}
}

// Active reports whether the flash is running for key.
func (f *Flash) Active(key int) bool {
	return f.remaining > 0 && f.key == key
}

// Remaining returns the seconds left, or 0 when idle.
func (f *Flash) Remaining() float32 {
	return max(f.remaining, 0)
}
