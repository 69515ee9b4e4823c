// Package currency holds the static EUR-based conversion reference sheet.
// The table is fixed at process start; editing it means editing this file.
package currency

import (
	"math"
	"sort"
)

// Info describes one currency relative to the EUR baseline.
type Info struct {
	Rate       float64
	MinDeposit float64
	MaxDeposit float64
}

// Reference is the conversion sheet. Base currency is EUR.
var Reference = map[string]Info{
	"EUR": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"USD": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"GBP": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"CAD": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"AUD": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"NZD": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"BRL": {Rate: 2.0, MinDeposit: 50, MaxDeposit: 600},
	"NOK": {Rate: 10.0, MinDeposit: 250, MaxDeposit: 3000},
	"PEN": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"CLP": {Rate: 800.0, MinDeposit: 20000, MaxDeposit: 240000},
	"MXN": {Rate: 6.0, MinDeposit: 150, MaxDeposit: 1800},
	"CHF": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"ZAR": {Rate: 10.0, MinDeposit: 250, MaxDeposit: 300},
	"PLN": {Rate: 4.0, MinDeposit: 100, MaxDeposit: 1200},
	"AZN": {Rate: 1.0, MinDeposit: 25, MaxDeposit: 300},
	"TRY": {Rate: 10.0, MinDeposit: 250, MaxDeposit: 3000},
	"JPY": {Rate: 150.0, MinDeposit: 3750, MaxDeposit: 45000},
	"KZT": {Rate: 150.0, MinDeposit: 3750, MaxDeposit: 45000},
	"RUB": {Rate: 50.0, MinDeposit: 1250, MaxDeposit: 15000},
	"UZS": {Rate: 10000.0, MinDeposit: 250000, MaxDeposit: 3000000},
}

var languages = []string{
	"en", "de", "fi", "no", "fr", "pt", "es", "it", "pl", "ru", "tr", "az",
}

// variants lists the "{currency}_{language}" keys used for translated text
// that differs by currency within the same language.
var variants = map[string][]string{
	"en": {"USD_en", "GBP_en", "AUD_en", "NZD_en", "CAD_en", "UZS_en", "NGN_en"},
	"no": {"NOK_no"},
	"pt": {"BRL_pt"},
	"pl": {"EUR_pl", "PLN_pl"},
	"es": {"CLP_es"},
	"ru": {"AZN_ru", "RUB_ru", "KZT_ru", "UZS_ru"},
	"az": {"AZN_az"},
	"tr": {"TRY_tr", "AZN_tr"},
	"fr": {"CAD_fr"},
}

// Convert converts an EUR amount into the given currency, rounded to the
// nearest whole unit. Unknown currencies pass the amount through unchanged.
func Convert(eurAmount float64, code string) float64 {
	info, ok := Reference[code]
	if !ok {
		return eurAmount
	}
	return math.Round(eurAmount * info.Rate)
}

// ConvertAll converts an EUR amount into every currency on the sheet,
// EUR included (identity rate).
func ConvertAll(eurAmount float64) map[string]float64 {
	conversions := make(map[string]float64, len(Reference))
	for code := range Reference {
		conversions[code] = Convert(eurAmount, code)
	}
	return conversions
}

// Codes returns every supported currency code, sorted for stable output.
func Codes() []string {
	codes := make([]string, 0, len(Reference))
	for code := range Reference {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Languages returns the supported base languages.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// VariantsFor returns the currency variant keys for a language, or nil when
// the language has none.
func VariantsFor(language string) []string {
	vs, ok := variants[language]
	if !ok {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}
