package service

import "testing"

func TestSanitizeUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid ascii", "Total 130.50", "Total 130.50"},
		{"valid multibyte", "₹1,234.56", "₹1,234.56"},
		{"invalid byte dropped", "ab\xffcd", "abcd"},
		{"truncated rune dropped", "ok\xe2\x82", "ok"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeUTF8(tt.in); got != tt.want {
				t.Errorf("sanitizeUTF8(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
