package carousel

import "github.com/pthm-cable/noble/catalog"

// Gallery is the full-screen image viewer opened from a card.
type Gallery struct {
	product catalog.Product
	index   int
	open    bool
}

// Open shows product p starting at image k (clamped).
func (g *Gallery) Open(p catalog.Product, k int) {
	g.product = p
	g.open = true
	g.index = 0
	g.Select(k)
}

// Close hides the viewer and resets it.
func (g *Gallery) Close() {
	*g = Gallery{}
}

// IsOpen reports whether the viewer is showing.
func (g *Gallery) IsOpen() bool { return g.open }

// Product returns the product being viewed.
func (g *Gallery) Product() catalog.Product { return g.product }

// Index returns the current image index.
func (g *Gallery) Index() int { return g.index }

// Count returns the number of images of the viewed product.
func (g *Gallery) Count() int { return len(g.product.Images) }

// Image returns the current image reference, or "" when there is none.
func (g *Gallery) Image() string {
	if g.index < 0 || g.index >= g.Count() {
		return ""
	}
	return g.product.Images[g.index]
}

// Next advances to the next image, wrapping to the first.
func (g *Gallery) Next() {
	if n := g.Count(); n > 0 {
		g.index = (g.index + 1) % n
	}
}

// Prev goes back one image, wrapping to the last.
func (g *Gallery) Prev() {
	if n := g.Count(); n > 0 {
		g.index = (g.index - 1 + n) % n
	}
}

// Select jumps to image k. Out-of-range values are clamped.
func (g *Gallery) Select(k int) {
	n := g.Count()
	if n == 0 {
		g.index = 0
		return
	}
	g.index = min(max(k, 0), n-1)
}
