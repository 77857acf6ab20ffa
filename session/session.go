// Package session holds the interactive storefront state of one mount: the
// carousel, the product gallery, the cart and the customer details. Every
// user intent is a method; each one that changes state emits an event.
package session

import (
	"github.com/pthm-cable/noble/carousel"
	"github.com/pthm-cable/noble/cart"
	"github.com/pthm-cable/noble/catalog"
	"github.com/pthm-cable/noble/checkout"
	"github.com/pthm-cable/noble/motion"
	"github.com/pthm-cable/noble/telemetry"
)

// Options configures a session.
type Options struct {
	InitialIndex      int
	TransitionSeconds float32
	AddedSeconds      float32 // how long the add-to-cart confirmation shows
	Layout            carousel.Layout
	Pricing           cart.Pricing
	Composer          checkout.Composer
}

// DefaultOptions returns the storefront defaults.
func DefaultOptions() Options {
	return Options{
		InitialIndex:      2,
		TransitionSeconds: 0.8,
		AddedSeconds:      0.3,
		Layout:            carousel.DefaultLayout(),
		Pricing:           cart.DefaultPricing(),
		Composer:          checkout.DefaultComposer(),
	}
}

// Session is the storefront state machine. Not safe for concurrent use.
type Session struct {
	catalog *catalog.Catalog
	opts    Options

	Carousel *carousel.State
	Animator *carousel.Animator
	Gallery  carousel.Gallery
	Cart     *cart.Ledger

	customer checkout.Customer
	added    motion.Flash
	cartOpen bool

	onEvent func(telemetry.Event)
}

// New starts a session over a catalog.
func New(cat *catalog.Catalog, opts Options) *Session {
	return &Session{
		catalog:  cat,
		opts:     opts,
		Carousel: carousel.New(cat.Len(), opts.InitialIndex, opts.Layout),
		Animator: carousel.NewAnimator(cat.Len(), opts.TransitionSeconds),
		Cart:     cart.NewLedger(opts.Pricing),
		customer: opts.Composer.Rules.NewCustomer(),
	}
}

// OnEvent registers the event sink. Events carry the centred index and the
// cart state after the change; frame and time are left to the sink.
func (s *Session) OnEvent(fn func(telemetry.Event)) {
	s.onEvent = fn
}

func (s *Session) emit(t telemetry.EventType, productID int) {
	if s.onEvent == nil {
		return
	}
	s.onEvent(telemetry.Event{
		Type:      t,
		ProductID: productID,
		Index:     s.Carousel.Index(),
		CartItems: s.Cart.TotalItemCount(),
		CartTotal: s.Cart.ComputeTotals().Total,
	})
}

// Current returns the centred product.
func (s *Session) Current() (catalog.Product, bool) {
	if s.catalog.Len() == 0 {
		return catalog.Product{}, false
	}
	return s.catalog.At(s.Carousel.Index()), true
}

// Previous moves the carousel one card left.
func (s *Session) Previous() {
	if s.Carousel.N() == 0 {
		return
	}
	s.Carousel.GoPrevious()
	s.emit(telemetry.EventNavigate, s.currentID())
}

// Next moves the carousel one card right.
func (s *Session) Next() {
	if s.Carousel.N() == 0 {
		return
	}
	s.Carousel.GoNext()
	s.emit(telemetry.EventNavigate, s.currentID())
}

// Select centres card i. It reports whether the centred card changed.
func (s *Session) Select(i int) bool {
	if !s.Carousel.SelectIndex(i) {
		return false
	}
	s.emit(telemetry.EventSelect, s.currentID())
	return true
}

// AddToCart adds one of the centred product and starts the confirmation.
func (s *Session) AddToCart() bool {
	p, ok := s.Current()
	if !ok {
		return false
	}
	s.Cart.Add(p)
	s.added.Trigger(s.Carousel.Index(), s.opts.AddedSeconds)
	s.emit(telemetry.EventAddToCart, p.ID)
	return true
}

// InCart returns how many of the centred product are in the cart.
func (s *Session) InCart() int {
	p, ok := s.Current()
	if !ok {
		return 0
	}
	return s.Cart.Quantity(p.ID)
}

// Added reports whether the add-to-cart confirmation is showing for the
// centred card.
func (s *Session) Added() bool {
	return s.added.Active(s.Carousel.Index())
}

// Increment adds one more of a cart line.
func (s *Session) Increment(id int) bool {
	if !s.Cart.Increment(id) {
		return false
	}
	s.emit(telemetry.EventIncrement, id)
	return true
}

// Decrement removes one of a cart line, dropping the line at zero.
func (s *Session) Decrement(id int) bool {
	if !s.Cart.Decrement(id) {
		return false
	}
	s.emit(telemetry.EventDecrement, id)
	return true
}

// Remove drops a cart line.
func (s *Session) Remove(id int) bool {
	if !s.Cart.Remove(id) {
		return false
	}
	s.emit(telemetry.EventRemove, id)
	return true
}

// CartOpen reports whether the cart panel is showing.
func (s *Session) CartOpen() bool {
	return s.cartOpen
}

// ToggleCart opens or closes the cart panel.
func (s *Session) ToggleCart() {
	s.cartOpen = !s.cartOpen
}

// CloseCart hides the cart panel.
func (s *Session) CloseCart() {
	s.cartOpen = false
}

// OpenGallery shows image k of the centred product.
func (s *Session) OpenGallery(k int) bool {
	p, ok := s.Current()
	if !ok || len(p.Images) == 0 {
		return false
	}
	s.Gallery.Open(p, k)
	s.emit(telemetry.EventGallery, p.ID)
	return true
}

// ModalOpen reports whether the gallery or the cart covers the carousel.
func (s *Session) ModalOpen() bool {
	return s.Gallery.IsOpen() || s.cartOpen
}

// Dismiss closes the topmost modal: the gallery, then the cart.
// It reports whether anything was closed.
func (s *Session) Dismiss() bool {
	switch {
	case s.Gallery.IsOpen():
		s.Gallery.Close()
	case s.cartOpen:
		s.cartOpen = false
	default:
		return false
	}
	return true
}

// SetCustomer stores the customer details after applying the form rules.
func (s *Session) SetCustomer(c checkout.Customer) {
	s.customer = s.opts.Composer.Rules.Sanitize(c)
}

// Customer returns the stored customer details.
func (s *Session) Customer() checkout.Customer {
	return s.customer
}

// CanCheckout reports whether the cart has items and the details are complete.
func (s *Session) CanCheckout() bool {
	return !s.Cart.Empty() && s.opts.Composer.Rules.Ready(s.customer)
}

// Checkout composes the order URL. The cart is left as it is; there is no
// acknowledgement from the messaging endpoint.
func (s *Session) Checkout() (string, error) {
	url, err := s.opts.Composer.Compose(s.Cart.Lines(), s.customer, s.Cart.ComputeTotals())
	if err != nil {
		return "", err
	}
	s.emit(telemetry.EventCheckout, 0)
	return url, nil
}

// Advance moves animations forward by dt seconds at the given viewport width.
func (s *Session) Advance(dt, viewportWidth float32) {
	s.Animator.Sync(s.Carousel, viewportWidth)
	s.Animator.Advance(dt)
	s.added.Advance(dt)
}

func (s *Session) currentID() int {
	p, _ := s.Current()
	return p.ID
}
