package telemetry

import "log/slog"

// WindowStats summarises one logging window of a session.
type WindowStats struct {
	Frame   int64   `csv:"frame"`
	TimeSec float64 `csv:"time_sec"`

	// Interactions during the window
	Navigate  int `csv:"navigate"`
	Select    int `csv:"select"`
	AddToCart int `csv:"add_to_cart"`
	Increment int `csv:"increment"`
	Decrement int `csv:"decrement"`
	Remove    int `csv:"remove"`
	Checkout  int `csv:"checkout"`
	Gallery   int `csv:"gallery"`

	// Cart at window end
	CartItems int     `csv:"cart_items"`
	CartTotal float64 `csv:"cart_total"`

	FPS        float64 `csv:"fps"`
	P95FrameUS int64   `csv:"p95_frame_us"`
}

// Interactions returns the total number of events in the window.
func (s WindowStats) Interactions() int {
	return s.Navigate + s.Select + s.AddToCart + s.Increment +
		s.Decrement + s.Remove + s.Checkout + s.Gallery
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", s.Frame),
		slog.Float64("time_sec", s.TimeSec),
		slog.Int("interactions", s.Interactions()),
		slog.Int("add_to_cart", s.AddToCart),
		slog.Int("cart_items", s.CartItems),
		slog.Float64("cart_total", s.CartTotal),
		slog.Float64("fps", s.FPS),
	)
}
