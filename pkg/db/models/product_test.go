package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		compare *decimal.Decimal
		want    int
	}{
		{name: "twenty percent off", price: "80", compare: decPtr("100"), want: 20},
		{name: "equal prices", price: "100", compare: decPtr("100"), want: 0},
		{name: "no compare price", price: "100", compare: nil, want: 0},
		{name: "compare below price", price: "100", compare: decPtr("80"), want: 0},
		{name: "rounds to nearest", price: "66.67", compare: decPtr("100"), want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: dec(tt.price), ComparePrice: tt.compare}
			if got := p.DiscountPercentage(); got != tt.want {
				t.Fatalf("expected %d%%, got %d%%", tt.want, got)
			}
		})
	}
}

func TestInStock(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want bool
	}{
		{name: "untracked always sellable", p: Product{TrackInventory: false, StockQuantity: 0}, want: true},
		{name: "tracked and empty", p: Product{TrackInventory: true, StockQuantity: 0}, want: false},
		{name: "tracked with stock", p: Product{TrackInventory: true, StockQuantity: 3}, want: true},
		{name: "tracked empty with backorders", p: Product{TrackInventory: true, StockQuantity: 0, AllowBackorders: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.InStock(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVariantEffectivePrice(t *testing.T) {
	parent := dec("25.00")

	withOverride := ProductVariant{Price: decPtr("19.99")}
	if got := withOverride.EffectivePrice(parent); !got.Equal(dec("19.99")) {
		t.Fatalf("expected override price, got %s", got)
	}

	noOverride := ProductVariant{}
	if got := noOverride.EffectivePrice(parent); !got.Equal(parent) {
		t.Fatalf("expected parent price fallback, got %s", got)
	}
}

func TestUserNameHelpers(t *testing.T) {
	u := User{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
	if u.FullName() != "Jane Doe" {
		t.Fatalf("unexpected full name %q", u.FullName())
	}
	if u.ShortName() != "Jane" {
		t.Fatalf("unexpected short name %q", u.ShortName())
	}

	anon := User{Email: "jane@example.com"}
	if anon.FullName() != "jane@example.com" {
		t.Fatalf("expected email fallback, got %q", anon.FullName())
	}
	if anon.ShortName() != "jane" {
		t.Fatalf("expected local-part fallback, got %q", anon.ShortName())
	}
}
