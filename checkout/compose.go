package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pthm-cable/noble/cart"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotReady  = errors.New("customer details incomplete")
)

// Composer formats orders for the messaging endpoint.
type Composer struct {
	Endpoint string
	Header   string
	Currency string
	Rules    Rules
}

// DefaultComposer returns the storefront composer.
func DefaultComposer() Composer {
	return Composer{
		Endpoint: "https://wa.me/message/6G7MZ6EIVUZ6B1",
		Header:   "New Order from Website",
		Currency: "₹",
		Rules:    DefaultRules(),
	}
}

// Message builds the plain-text order message.
func (c Composer) Message(lines []cart.Line, cust Customer, totals cart.Totals) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	if !c.Rules.Ready(cust) {
		return "", fmt.Errorf("%w: missing %s", ErrNotReady, strings.Join(c.Rules.Missing(cust), ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", c.Header)

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", cust.Name)
	fmt.Fprintf(&b, "Phone: %s\n", cust.Phone)
	fmt.Fprintf(&b, "Email: %s\n", cust.Email)
	fmt.Fprintf(&b, "Address: %s\n\n", cust.Address)

	b.WriteString("*Order Items:*\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s - Qty: %d - %s\n", i+1, line.Product.Title, line.Quantity, c.Money(line.Amount()))
	}
	b.WriteString("\n")

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", c.Money(totals.Subtotal))
	fmt.Fprintf(&b, "Delivery: %s\n", c.Money(totals.DeliveryCharge))
	if totals.DiscountPercent > 0 {
		fmt.Fprintf(&b, "Discount (%s%%): -%s\n", Number(totals.DiscountPercent), c.Money(totals.Discount))
	}
	fmt.Fprintf(&b, "*Total: %s*", c.Money(totals.Total))

	return b.String(), nil
}

// Compose returns the endpoint URL carrying the encoded order message.
func (c Composer) Compose(lines []cart.Line, cust Customer, totals cart.Totals) (string, error) {
	msg, err := c.Message(lines, cust, totals)
	if err != nil {
		return "", err
	}
	return c.Endpoint + "?text=" + Encode(msg), nil
}

// Money formats an amount with the currency symbol.
func (c Composer) Money(v float64) string {
	return c.Currency + Number(v)
}

// Number formats v in its shortest form: 575, 67.5.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode percent-encodes a message for a query value, using %20 for spaces.
func Encode(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}
