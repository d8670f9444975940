package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-42.1, "-$42.10"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(10.0); got != "+10.00%" {
		t.Errorf("FormatPercent(10) = %q", got)
	}
	if got := FormatPercent(-3.5); got != "-3.50%" {
		t.Errorf("FormatPercent(-3.5) = %q", got)
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(10.0); got != "+10.00" {
		t.Errorf("FormatSigned(10) = %q", got)
	}
	if got := FormatSigned(-5.25); got != "-5.25" {
		t.Errorf("FormatSigned(-5.25) = %q", got)
	}
}
