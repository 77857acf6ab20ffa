// Package cart is the in-memory shopping cart: one line per product with a
// quantity, plus the tiered discount and delivery totals.
package cart

import "github.com/pthm-cable/noble/catalog"

// Line is one product in the cart. Quantity is always at least 1.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Amount is price times quantity; unpriced products count as 0.
func (l Line) Amount() float64 {
	return l.Product.PriceOrZero() * float64(l.Quantity)
}

// Pricing holds the delivery charge and discount tiers.
type Pricing struct {
	DeliveryCharge   float64
	TwoItemPercent   float64
	ThreeItemPercent float64
}

// DefaultPricing is 75 delivery, 10% off for two items and 15% off for three or more.
func DefaultPricing() Pricing {
	return Pricing{DeliveryCharge: 75, TwoItemPercent: 10, ThreeItemPercent: 15}
}

// DiscountPercent returns the tier for a total item quantity.
func (p Pricing) DiscountPercent(quantity int) float64 {
	switch {
	case quantity >= 3:
		return p.ThreeItemPercent
	case quantity >= 2:
		return p.TwoItemPercent
	}
	return 0
}

// Totals is the derived order summary.
type Totals struct {
	Subtotal        float64
	DeliveryCharge  float64
	DiscountPercent float64
	Discount        float64
	Total           float64
}

// Ledger maps products to quantities, keeping insertion order. Lines are
// addressed by product ID. Not safe for concurrent use.
type Ledger struct {
	lines   []Line
	pricing Pricing
}

// NewLedger creates an empty cart.
func NewLedger(pricing Pricing) *Ledger {
	return &Ledger{pricing: pricing}
}

// Add puts one unit of p in the cart and returns the new line quantity.
func (l *Ledger) Add(p catalog.Product) int {
	if i := l.find(p.ID); i >= 0 {
		l.lines[i].Quantity++
		return l.lines[i].Quantity
	}
	l.lines = append(l.lines, Line{Product: p, Quantity: 1})
	return 1
}

// Increment adds one unit to an existing line. Unknown IDs are ignored.
func (l *Ledger) Increment(id int) bool {
	i := l.find(id)
	if i < 0 {
		return false
	}
	l.lines[i].Quantity++
	return true
}

// Decrement removes one unit; a line that would reach zero is removed.
// Unknown IDs are ignored.
func (l *Ledger) Decrement(id int) bool {
	i := l.find(id)
	if i < 0 {
		return false
	}
	if l.lines[i].Quantity > 1 {
		l.lines[i].Quantity--
		return true
	}
	l.removeAt(i)
	return true
}

// Remove drops a line entirely. Unknown IDs are ignored.
func (l *Ledger) Remove(id int) bool {
	i := l.find(id)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// Quantity returns the quantity of product id, or 0.
func (l *Ledger) Quantity(id int) int {
	if i := l.find(id); i >= 0 {
		return l.lines[i].Quantity
	}
	return 0
}

// TotalItemCount is the sum of all line quantities.
func (l *Ledger) TotalItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// Empty reports whether the cart has no lines.
func (l *Ledger) Empty() bool {
	return len(l.lines) == 0
}

// Lines returns a copy of the lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// ComputeTotals derives subtotal, discount, delivery and total.
// Amounts use float64 with no rounding.
func (l *Ledger) ComputeTotals() Totals {
	var subtotal float64
	for _, line := range l.lines {
		subtotal += line.Amount()
	}
	pct := l.pricing.DiscountPercent(l.TotalItemCount())
	discount := subtotal * pct / 100
	return Totals{
		Subtotal:        subtotal,
		DeliveryCharge:  l.pricing.DeliveryCharge,
		DiscountPercent: pct,
		Discount:        discount,
		Total:           subtotal + l.pricing.DeliveryCharge - discount,
	}
}

func (l *Ledger) find(id int) int {
	for i, line := range l.lines {
		if line.Product.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) removeAt(i int) {
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
}
