package service

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "$0.00"},
		{"small integer", 5, "$5.00"},
		{"with decimals", 42.5, "$42.50"},
		{"hundreds", 999.99, "$999.99"},
		{"thousands", 1234.56, "$1,234.56"},
		{"millions", 1234567.891, "$1,234,567.89"},
		{"rounds half up", 1281.195, "$1,281.20"},
		{"rounds up to next thousand", 999.999, "$1,000.00"},
		{"half cent", 0.005, "$0.01"},
		{"negative", -42.5, "-$42.50"},
		{"negative thousands", -2500.75, "-$2,500.75"},
		{"repair total", 266.25, "$266.25"},
		{"negative rounds to zero", -0.001, "-$0.00"},
		{"negative zero", math.Copysign(0, -1), "-$0.00"},
		{"past int64", 1e19, "$10,000,000,000,000,000,000.00"},
		{"very large", 1e21, "$1,000,000,000,000,000,000,000.00"},
		{"large negative", -1e21, "-$1,000,000,000,000,000,000,000.00"},
		{"nan", math.NaN(), "$NaN"},
		{"infinity", math.Inf(1), "$∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.input); got != tt.expect {
				t.Errorf("FormatCurrency(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[string]string{
		"0":                   "0",
		"999":                 "999",
		"1000":                "1,000",
		"123456":              "123,456",
		"1234567":             "1,234,567",
		"9223372036854775808": "9,223,372,036,854,775,808",
	}
	for in, want := range tests {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}
