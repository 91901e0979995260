package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencyFormatter(t *testing.T) {
	tests := []struct {
		locale       string
		wantCurrency string
	}{
		{locale: "en-NZ", wantCurrency: "NZD"},
		{locale: "en-US", wantCurrency: "USD"},
		{locale: "de-DE", wantCurrency: "EUR"},
		{locale: "en-GB", wantCurrency: "GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f, err := NewCurrencyFormatter(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrency, f.Currency())
			assert.Equal(t, tt.locale, f.Locale())
		})
	}
}

func TestNewCurrencyFormatter_InvalidLocale(t *testing.T) {
	_, err := NewCurrencyFormatter("!!")
	assert.Error(t, err)
}

func TestCurrencyFormatter_Format(t *testing.T) {
	f, err := NewCurrencyFormatter("en-US")
	require.NoError(t, err)

	assert.Equal(t, "$ 3.50", f.Format(decimal.RequireFromString("3.5")))
	assert.Equal(t, "$ 1,234.57", f.Format(decimal.RequireFromString("1234.567")))
	assert.Equal(t, "$ 0.00", f.Format(decimal.Zero))
}

func TestCurrencyFormatter_FormatUsesLocaleSeparators(t *testing.T) {
	f, err := NewCurrencyFormatter("de-DE")
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("1234.5"))
	assert.Contains(t, out, "€")
	assert.Contains(t, out, "1.234,50")
}
