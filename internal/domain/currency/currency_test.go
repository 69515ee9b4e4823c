//go:build unit

package currency_test

import (
	"sort"
	"testing"

	"bonus-crm/internal/domain/currency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		eur      float64
		code     string
		expected float64
	}{
		{name: "identity for EUR", eur: 25, code: "EUR", expected: 25},
		{name: "NOK at rate 10", eur: 25, code: "NOK", expected: 250},
		{name: "CLP at rate 800", eur: 25, code: "CLP", expected: 20000},
		{name: "UZS at rate 10000", eur: 25, code: "UZS", expected: 250000},
		{name: "rounds to nearest whole unit", eur: 0.3, code: "MXN", expected: 2},
		{name: "rounds half away from zero", eur: 0.25, code: "BRL", expected: 1},
		{name: "unknown currency passes through", eur: 25, code: "XYZ", expected: 25},
		{name: "zero amount", eur: 0, code: "NOK", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currency.Convert(tt.eur, tt.code))
		})
	}
}

func TestConvertAll(t *testing.T) {
	conversions := currency.ConvertAll(25)

	require.Len(t, conversions, len(currency.Reference))
	assert.Equal(t, 25.0, conversions["EUR"])
	assert.Equal(t, 250.0, conversions["NOK"])
	assert.Equal(t, 150.0, conversions["MXN"])
	assert.Equal(t, 3750.0, conversions["JPY"])
}

func TestCodes(t *testing.T) {
	codes := currency.Codes()

	require.Len(t, codes, len(currency.Reference))
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "EUR")
	assert.Contains(t, codes, "UZS")
}

func TestLanguages(t *testing.T) {
	langs := currency.Languages()

	require.Contains(t, langs, "en")
	require.Contains(t, langs, "az")

	// Returned slice is a copy; mutating it must not leak into the table.
	langs[0] = "zz"
	assert.Contains(t, currency.Languages(), "en")
}

func TestVariantsFor(t *testing.T) {
	require.Nil(t, currency.VariantsFor("fi"))

	vs := currency.VariantsFor("ru")
	require.ElementsMatch(t, []string{"AZN_ru", "RUB_ru", "KZT_ru", "UZS_ru"}, vs)

	vs[0] = "mutated"
	assert.Contains(t, currency.VariantsFor("ru"), "AZN_ru")
}
