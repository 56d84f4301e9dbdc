package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"simple decimal", "123.45", "123.45", false},
		{"integer", "100", "100", false},
		{"negative", "-12.5", "-12.5", false},
		{"comma decimal separator", "123,45", "123.45", false},
		{"comma thousands separator", "1,234", "1234", false},
		{"comma thousands with dot decimals", "1,234.56", "1234.56", false},
		{"apostrophe thousands", "1'234.56", "1234.56", false},
		{"european", "1.234,56", "1234.56", false},
		{"dollar", "$123.45", "123.45", false},
		{"euro", "€ 99", "99", false},
		{"currency code", "CHF 123.45", "123.45", false},
		{"surrounding spaces", "  7.10 ", "7.1", false},
		{"malformed", "123.45.67", "", true},
		{"non numeric", "abc", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected := decimal.RequireFromString(tc.expected)
			assert.True(t, expected.Equal(result), "expected %s, got %s", expected, result)
		})
	}
}

func TestParseAmount_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "$"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrEmptyAmount, "input %q", in)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		symbol string
		want   string
	}{
		{"450", "$", "$450.00"},
		{"0.1", "$", "$0.10"},
		{"1234.567", "", "1234.57"},
		{"-12.5", "$", "-$12.50"},
		{"0", "CHF ", "CHF 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.amount), tt.symbol))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$10.00", FormatSigned(decimal.NewFromInt(10), "$"))
	assert.Equal(t, "-$10.00", FormatSigned(decimal.NewFromInt(-10), "$"))
	assert.Equal(t, "$0.00", FormatSigned(decimal.Zero, "$"))
}
