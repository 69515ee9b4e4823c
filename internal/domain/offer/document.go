package offer

import "time"

// Document is the rendered offer payload: the cached per-currency minimum
// deposits plus all translations keyed by language.
type Document struct {
	OfferID            int64                       `json:"offer_id"`
	OfferName          string                      `json:"offer_name"`
	OfferType          string                      `json:"offer_type"`
	BonusPercentage    float64                     `json:"bonus_percentage"`
	WageringMultiplier float64                     `json:"wagering_multiplier"`
	MinDeposits        map[string]float64          `json:"min_deposits"`
	Translations       map[string]TranslationText `json:"translations"`
	GeneratedAt        time.Time                   `json:"generated_at"`
}

type TranslationText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssembleDocument merges an offer's cached conversions and translation
// rows into the rendered document, stamped with the generation time.
func AssembleDocument(o *Offer, translations []Translation, now time.Time) *Document {
	minDeposits := make(map[string]float64, len(o.CurrencyConversions))
	for code, amount := range o.CurrencyConversions {
		minDeposits[code] = amount
	}

	texts := make(map[string]TranslationText, len(translations))
	for _, tr := range translations {
		texts[tr.Language] = TranslationText{
			Name:        tr.Name,
			Description: tr.Description,
		}
	}

	return &Document{
		OfferID:            o.ID,
		OfferName:          o.Name,
		OfferType:          o.OfferType,
		BonusPercentage:    o.BonusPercentage,
		WageringMultiplier: o.WageringMultiplier,
		MinDeposits:        minDeposits,
		Translations:       texts,
		GeneratedAt:        now,
	}
}
