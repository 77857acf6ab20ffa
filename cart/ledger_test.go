package cart

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/noble/catalog"
)

func priced(id int, price float64) catalog.Product {
	return catalog.Product{ID: id, Title: "p", Price: &price}
}

func TestSingleItemTotals(t *testing.T) {
	l := NewLedger(DefaultPricing())
	l.Add(priced(1, 500))

	got := l.ComputeTotals()
	want := Totals{Subtotal: 500, DeliveryCharge: 75, DiscountPercent: 0, Discount: 0, Total: 575}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestTwoLineTotals(t *testing.T) {
	l := NewLedger(DefaultPricing())
	l.Add(priced(1, 300))
	l.Add(priced(2, 400))

	got := l.ComputeTotals()
	if got.Subtotal != 700 {
		t.Errorf("expected subtotal 700, got %f", got.Subtotal)
	}
	if got.DiscountPercent != 10 || got.Discount != 70 {
		t.Errorf("expected 10%% discount of 70, got %f%% of %f", got.DiscountPercent, got.Discount)
	}
	if got.Total != 705 {
		t.Errorf("expected total 705, got %f", got.Total)
	}
}

func TestDiscountTiers(t *testing.T) {
	tests := []struct {
		quantity int
		want     float64
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{3, 15},
		{10, 15},
	}
	for _, tc := range tests {
		l := NewLedger(DefaultPricing())
		for i := 0; i < tc.quantity; i++ {
			l.Add(priced(1, 100))
		}
		got := l.ComputeTotals()
		if got.DiscountPercent != tc.want {
			t.Errorf("quantity %d: expected %f%%, got %f%%", tc.quantity, tc.want, got.DiscountPercent)
		}
		if got.Total != got.Subtotal+75-got.Discount {
			t.Errorf("quantity %d: total %f does not match subtotal+75-discount", tc.quantity, got.Total)
		}
	}
}

func TestEmptyCartTotals(t *testing.T) {
	got := NewLedger(DefaultPricing()).ComputeTotals()
	if got.Subtotal != 0 || got.DeliveryCharge != 75 || got.Total != 75 {
		t.Errorf("expected empty totals 0/75/75, got %+v", got)
	}
}

func TestAddMergesLines(t *testing.T) {
	l := NewLedger(DefaultPricing())
	p := priced(3, 250)
	l.Add(p)
	if q := l.Add(p); q != 2 {
		t.Errorf("expected quantity 2, got %d", q)
	}
	if l.Len() != 1 {
		t.Errorf("expected a single line, got %d", l.Len())
	}
}

func TestDecrementRemovesLine(t *testing.T) {
	l := NewLedger(DefaultPricing())
	p := priced(5, 100)
	for i := 0; i < 3; i++ {
		l.Add(p)
	}
	for i := 0; i < 3; i++ {
		if !l.Decrement(p.ID) {
			t.Fatalf("decrement %d: expected line to exist", i)
		}
	}
	if !l.Empty() {
		t.Errorf("expected line removed, got %d lines", l.Len())
	}
	if l.Decrement(p.ID) {
		t.Error("expected decrement of a removed line to be ignored")
	}
}

func TestUnknownIDsIgnored(t *testing.T) {
	l := NewLedger(DefaultPricing())
	l.Add(priced(1, 10))
	if l.Increment(9) || l.Decrement(9) || l.Remove(9) {
		t.Error("expected unknown ids to be ignored")
	}
	if l.TotalItemCount() != 1 {
		t.Errorf("expected count 1, got %d", l.TotalItemCount())
	}
}

func TestUnpricedCountsAsZero(t *testing.T) {
	l := NewLedger(DefaultPricing())
	l.Add(catalog.Product{ID: 1})
	l.Add(priced(2, 200))

	got := l.ComputeTotals()
	if got.Subtotal != 200 {
		t.Errorf("expected subtotal 200, got %f", got.Subtotal)
	}
	// Unpriced items still count toward the tier
	if got.DiscountPercent != 10 {
		t.Errorf("expected 10%% tier, got %f", got.DiscountPercent)
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	l := NewLedger(DefaultPricing())
	l.Add(priced(3, 1))
	l.Add(priced(1, 1))
	l.Add(priced(2, 1))
	l.Remove(1)

	lines := l.Lines()
	if len(lines) != 2 || lines[0].Product.ID != 3 || lines[1].Product.ID != 2 {
		t.Errorf("unexpected line order %+v", lines)
	}

	lines[0].Quantity = 99
	if l.Quantity(3) != 1 {
		t.Error("expected Lines to return a copy")
	}
}

func TestCountMatchesLinesUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	l := NewLedger(DefaultPricing())
	products := []catalog.Product{priced(1, 120), priced(2, 80.5), priced(3, 999), {ID: 4}}

	for step := 0; step < 2000; step++ {
		p := products[rng.Intn(len(products))]
		switch rng.Intn(4) {
		case 0:
			l.Add(p)
		case 1:
			l.Increment(p.ID)
		case 2:
			l.Decrement(p.ID)
		case 3:
			if rng.Intn(4) == 0 {
				l.Remove(p.ID)
			}
		}

		sum := 0
		for _, line := range l.Lines() {
			if line.Quantity < 1 {
				t.Fatalf("step %d: line %d has quantity %d", step, line.Product.ID, line.Quantity)
			}
			sum += line.Quantity
		}
		if sum != l.TotalItemCount() {
			t.Fatalf("step %d: expected count %d, got %d", step, sum, l.TotalItemCount())
		}

		tot := l.ComputeTotals()
		if math.Abs(tot.Total-(tot.Subtotal+75-tot.Discount)) > 1e-9 {
			t.Fatalf("step %d: total invariant broken %+v", step, tot)
		}
	}
}

func TestCustomPricing(t *testing.T) {
	l := NewLedger(Pricing{DeliveryCharge: 0, TwoItemPercent: 5, ThreeItemPercent: 20})
	l.Add(priced(1, 100))
	l.Add(priced(1, 100))
	l.Add(priced(1, 100))

	got := l.ComputeTotals()
	if got.DiscountPercent != 20 || got.Total != 240 {
		t.Errorf("expected 20%% and total 240, got %+v", got)
	}
}
