// Package checkout validates the customer form and composes the outbound
// WhatsApp order message from the cart.
package checkout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rules are the input limits applied to the customer form.
type Rules struct {
	PhonePrefix string
	PhoneDigits int
	MaxName     int
	MaxEmail    int
	MaxAddress  int
}

// DefaultRules returns the Indian mobile number format and the form length limits.
func DefaultRules() Rules {
	return Rules{
		PhonePrefix: "+91 ",
		PhoneDigits: 10,
		MaxName:     50,
		MaxEmail:    100,
		MaxAddress:  500,
	}
}

// Customer is the contact block of an order.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// NewCustomer returns an empty form with the phone prefix pre-filled.
func (r Rules) NewCustomer() Customer {
	return Customer{Phone: r.PhonePrefix}
}

// Sanitize applies every field rule.
func (r Rules) Sanitize(c Customer) Customer {
	return Customer{
		Name:    truncate(c.Name, r.MaxName),
		Phone:   r.Phone(c.Phone),
		Email:   truncate(c.Email, r.MaxEmail),
		Address: truncate(c.Address, r.MaxAddress),
	}
}

// Phone normalises a phone entry: the prefix is always present and only up
// to PhoneDigits digits follow it. Anything typed over the prefix resets it.
func (r Rules) Phone(v string) string {
	if !strings.HasPrefix(v, r.PhonePrefix) {
		return r.PhonePrefix
	}
	var b strings.Builder
	b.WriteString(r.PhonePrefix)
	n := 0
	for _, ch := range v[len(r.PhonePrefix):] {
		if n == r.PhoneDigits {
			break
		}
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
			n++
		}
	}
	return b.String()
}

// Ready reports whether the form can be submitted: name, email and address
// filled in and a complete phone number.
func (r Rules) Ready(c Customer) bool {
	if blank(c.Name) || blank(c.Email) || blank(c.Address) {
		return false
	}
	if !strings.HasPrefix(c.Phone, r.PhonePrefix) {
		return false
	}
	digits := c.Phone[len(r.PhonePrefix):]
	if len(digits) != r.PhoneDigits {
		return false
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// Missing lists the fields that still block submission, for the form hint.
func (r Rules) Missing(c Customer) []string {
	var out []string
	if blank(c.Name) {
		out = append(out, "name")
	}
	if len(c.Phone) != len(r.PhonePrefix)+r.PhoneDigits {
		out = append(out, "phone")
	}
	if blank(c.Email) {
		out = append(out, "email")
	}
	if blank(c.Address) {
		out = append(out, "address")
	}
	return out
}

func blank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// truncate keeps at most n runes.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
