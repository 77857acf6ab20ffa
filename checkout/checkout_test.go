package checkout

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/pthm-cable/noble/cart"
	"github.com/pthm-cable/noble/catalog"
)

func readyCustomer() Customer {
	return Customer{
		Name:    "Asha Rao",
		Phone:   "+91 9876543210",
		Email:   "asha@example.com",
		Address: "12 MG Road, Pune",
	}
}

func testCart(prices ...float64) *cart.Ledger {
	l := cart.NewLedger(cart.DefaultPricing())
	for i, p := range prices {
		price := p
		l.Add(catalog.Product{ID: i + 1, Title: "Item " + Number(float64(i+1)), Price: &price})
	}
	return l
}

func TestPhoneRules(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		in, want string
	}{
		{"+91 98765", "+91 98765"},
		{"+91 98a7-65", "+91 98765"},
		{"+91 987654321012", "+91 9876543210"},
		{"+9198765", "+91 "},
		{"", "+91 "},
		{"98765", "+91 "},
	}
	for _, tc := range tests {
		if got := r.Phone(tc.in); got != tc.want {
			t.Errorf("Phone(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSanitizeTruncates(t *testing.T) {
	r := DefaultRules()
	c := r.Sanitize(Customer{
		Name:    strings.Repeat("n", 80),
		Phone:   "+91 123",
		Email:   strings.Repeat("é", 120),
		Address: strings.Repeat("a", 600),
	})
	if len([]rune(c.Name)) != 50 {
		t.Errorf("expected name truncated to 50, got %d", len([]rune(c.Name)))
	}
	if len([]rune(c.Email)) != 100 {
		t.Errorf("expected email truncated to 100 runes, got %d", len([]rune(c.Email)))
	}
	if len([]rune(c.Address)) != 500 {
		t.Errorf("expected address truncated to 500, got %d", len([]rune(c.Address)))
	}
}

func TestReady(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name   string
		modify func(*Customer)
		want   bool
	}{
		{"complete", func(*Customer) {}, true},
		{"no name", func(c *Customer) { c.Name = "" }, false},
		{"blank name", func(c *Customer) { c.Name = "   " }, false},
		{"no email", func(c *Customer) { c.Email = "" }, false},
		{"no address", func(c *Customer) { c.Address = "" }, false},
		{"short phone", func(c *Customer) { c.Phone = "+91 98765" }, false},
		{"prefix only", func(c *Customer) { c.Phone = "+91 " }, false},
		{"letters in phone", func(c *Customer) { c.Phone = "+91 98765432ab" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := readyCustomer()
			tc.modify(&c)
			if got := r.Ready(c); got != tc.want {
				t.Errorf("expected ready=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestNewCustomerNotReady(t *testing.T) {
	r := DefaultRules()
	c := r.NewCustomer()
	if c.Phone != "+91 " {
		t.Errorf("expected prefilled phone, got %q", c.Phone)
	}
	if r.Ready(c) {
		t.Error("expected empty form not ready")
	}
	if got := len(r.Missing(c)); got != 4 {
		t.Errorf("expected 4 missing fields, got %d", got)
	}
}

func TestMessageFormat(t *testing.T) {
	l := testCart(300, 400)
	l.Increment(2)

	msg, err := DefaultComposer().Message(l.Lines(), readyCustomer(), l.ComputeTotals())
	if err != nil {
		t.Fatalf("composing: %v", err)
	}

	want := "*New Order from Website*\n\n" +
		"*Customer Details:*\n" +
		"Name: Asha Rao\n" +
		"Phone: +91 9876543210\n" +
		"Email: asha@example.com\n" +
		"Address: 12 MG Road, Pune\n\n" +
		"*Order Items:*\n" +
		"1. Item 1 - Qty: 1 - ₹300\n" +
		"2. Item 2 - Qty: 2 - ₹800\n\n" +
		"*Order Summary:*\n" +
		"Subtotal: ₹1100\n" +
		"Delivery: ₹75\n" +
		"Discount (15%): -₹165\n" +
		"*Total: ₹1010*"
	if msg != want {
		t.Errorf("unexpected message:\n%s\nexpected:\n%s", msg, want)
	}
}

func TestMessageOmitsZeroDiscount(t *testing.T) {
	l := testCart(500)
	msg, err := DefaultComposer().Message(l.Lines(), readyCustomer(), l.ComputeTotals())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(msg, "Discount") {
		t.Error("expected no discount line for a single item")
	}
	if !strings.HasSuffix(msg, "*Total: ₹575*") {
		t.Errorf("expected total 575, got %q", msg[strings.LastIndex(msg, "\n")+1:])
	}
}

func TestComposeURL(t *testing.T) {
	l := testCart(500)
	c := DefaultComposer()
	link, err := c.Compose(l.Lines(), readyCustomer(), l.ComputeTotals())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(link, c.Endpoint+"?text=") {
		t.Fatalf("expected endpoint prefix, got %q", link)
	}
	if strings.ContainsAny(link[len(c.Endpoint)+6:], " \n+") {
		t.Error("expected spaces, newlines and plus signs to be encoded")
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parsing composed url: %v", err)
	}
	msg, _ := c.Message(l.Lines(), readyCustomer(), l.ComputeTotals())
	if got := u.Query().Get("text"); got != msg {
		t.Errorf("expected decoded text to equal message, got %q", got)
	}
}

func TestComposeErrors(t *testing.T) {
	c := DefaultComposer()

	empty := cart.NewLedger(cart.DefaultPricing())
	if _, err := c.Compose(empty.Lines(), readyCustomer(), empty.ComputeTotals()); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}

	l := testCart(100)
	cust := readyCustomer()
	cust.Email = ""
	if _, err := c.Compose(l.Lines(), cust, l.ComputeTotals()); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{575, "575"},
		{67.5, "67.5"},
		{0, "0"},
	}
	for _, tc := range tests {
		if got := Number(tc.in); got != tc.want {
			t.Errorf("Number(%f): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
