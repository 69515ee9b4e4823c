// Package offer holds the promotional offer snapshot types and the
// rendered-document assembly. Currency conversions are cached on the offer
// record at write time, so rendering only merges stored data.
package offer

import "time"

// Offer is a full snapshot of a persisted promotional offer.
type Offer struct {
	ID                  int64
	Name                string
	OfferType           string
	BonusPercentage     float64
	MinDepositEUR       float64
	WageringMultiplier  float64
	Description         string
	CurrencyConversions map[string]float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Translation is one per-language text row owned by an offer.
type Translation struct {
	OfferID     int64
	Language    string
	Name        string
	Description string
}
