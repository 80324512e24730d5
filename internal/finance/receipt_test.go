package finance

import (
	"testing"
	"time"
)

var parseNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func TestParseReceiptAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"no digits", "thanks for shopping with us", 0},
		{"empty text", "", 0},
		{"single amount", "Total 42.50", 42.50},
		{"picks the largest amount", "Subtotal 120.00 Tax 10.50 Total 130.50", 130.50},
		{"thousands separators", "Grand total ₹1,234.56 paid", 1234.56},
		{"currency symbol attached", "₹999.99", 999.99},
		{"integer amounts", "Items 3 Total 250", 250},
		{"large line item dominates", "Item 5000 Total 130.50", 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReceipt(tt.text, parseNow)
			if got.Amount != tt.want {
				t.Errorf("ParseReceipt(%q).Amount = %v, want %v", tt.text, got.Amount, tt.want)
			}
		})
	}
}

func TestParseReceiptDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first date wins", "Issued 12/03/2024, due 01-04-2024", "12/03/2024"},
		{"dash separated", "Date: 7-11-23", "7-11-23"},
		{"no date falls back to now", "Total 100.00", "15/06/2024"},
		{"empty text falls back to now", "", "15/06/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReceipt(tt.text, parseNow)
			if got.Date != tt.want {
				t.Errorf("ParseReceipt(%q).Date = %q, want %q", tt.text, got.Date, tt.want)
			}
		})
	}
}

func TestParseReceiptPreservesRawText(t *testing.T) {
	text := "  Total 130.50\nsome noise \x00 here  "
	got := ParseReceipt(text, parseNow)
	if got.RawText != text {
		t.Errorf("RawText = %q, want the input preserved verbatim", got.RawText)
	}
}

func TestParseReceiptIsPure(t *testing.T) {
	text := "Subtotal 120.00 Tax 10.50 Total 130.50 on 12/03/2024"
	first := ParseReceipt(text, parseNow)
	second := ParseReceipt(text, parseNow)
	if first != second {
		t.Errorf("two identical calls disagree: %+v vs %+v", first, second)
	}
}
