package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeFaturaTotals(t *testing.T) {
	tests := []struct {
		name          string
		items         []FaturaItemPayload
		subtotal      string
		totalDiscount string
		totalVAT      string
		grandTotal    string
	}{
		{
			name: "single line no discount",
			items: []FaturaItemPayload{
				{Quantity: d("6"), UnitPrice: d("45000"), DiscountPct: d("0"), VATPct: d("18")},
			},
			subtotal:      "270000",
			totalDiscount: "0",
			totalVAT:      "48600",
			grandTotal:    "318600",
		},
		{
			name: "single line with discount",
			items: []FaturaItemPayload{
				{Quantity: d("1"), UnitPrice: d("250000"), DiscountPct: d("5"), VATPct: d("18")},
			},
			subtotal:      "250000",
			totalDiscount: "12500",
			totalVAT:      "42750",
			grandTotal:    "280250",
		},
		{
			name: "multiple lines are summed",
			items: []FaturaItemPayload{
				{Quantity: d("6"), UnitPrice: d("45000"), DiscountPct: d("0"), VATPct: d("18")},
				{Quantity: d("1"), UnitPrice: d("250000"), DiscountPct: d("5"), VATPct: d("18")},
			},
			subtotal:      "520000",
			totalDiscount: "12500",
			totalVAT:      "91350",
			grandTotal:    "598850",
		},
		{
			name:          "no items",
			items:         nil,
			subtotal:      "0",
			totalDiscount: "0",
			totalVAT:      "0",
			grandTotal:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeFaturaTotals(tt.items)
			if !got.Subtotal.Equal(d(tt.subtotal)) {
				t.Errorf("subtotal: got %s, want %s", got.Subtotal, tt.subtotal)
			}
			if !got.TotalDiscount.Equal(d(tt.totalDiscount)) {
				t.Errorf("discount: got %s, want %s", got.TotalDiscount, tt.totalDiscount)
			}
			if !got.TotalVAT.Equal(d(tt.totalVAT)) {
				t.Errorf("vat: got %s, want %s", got.TotalVAT, tt.totalVAT)
			}
			if !got.GrandTotal.Equal(d(tt.grandTotal)) {
				t.Errorf("grand total: got %s, want %s", got.GrandTotal, tt.grandTotal)
			}
		})
	}
}

func TestComputeLine(t *testing.T) {
	subtotal, discount, vat, total := computeLine(FaturaItemPayload{
		Quantity: d("2"), UnitPrice: d("100"), DiscountPct: d("10"), VATPct: d("20"),
	})

	if !subtotal.Equal(d("200")) {
		t.Errorf("subtotal: got %s, want 200", subtotal)
	}
	if !discount.Equal(d("20")) {
		t.Errorf("discount: got %s, want 20", discount)
	}
	if !vat.Equal(d("36")) {
		t.Errorf("vat: got %s, want 36", vat)
	}
	if !total.Equal(d("216")) {
		t.Errorf("total: got %s, want 216", total)
	}
}

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name    string
		item    FaturaItemPayload
		wantErr bool
	}{
		{"valid", FaturaItemPayload{Quantity: d("1"), UnitPrice: d("10"), DiscountPct: d("5"), VATPct: d("18")}, false},
		{"zero quantity", FaturaItemPayload{Quantity: d("0"), UnitPrice: d("10")}, true},
		{"negative quantity", FaturaItemPayload{Quantity: d("-1"), UnitPrice: d("10")}, true},
		{"negative price", FaturaItemPayload{Quantity: d("1"), UnitPrice: d("-5")}, true},
		{"free item", FaturaItemPayload{Quantity: d("1"), UnitPrice: d("0")}, false},
		{"discount above 100", FaturaItemPayload{Quantity: d("1"), UnitPrice: d("10"), DiscountPct: d("101")}, true},
		{"discount exactly 100", FaturaItemPayload{Quantity: d("1"), UnitPrice: d("10"), DiscountPct: d("100")}, false},
		{"negative vat", FaturaItemPayload{Quantity: d("1"), UnitPrice: d("10"), VATPct: d("-1")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateItems([]FaturaItemPayload{tt.item})
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
