package response

import (
	"bonus-crm/internal/usecase/queries"
)

type OfferResponse struct {
	ID                  int64              `json:"id"`
	Name                string             `json:"name"`
	OfferType           string             `json:"offer_type"`
	BonusPercentage     float64            `json:"bonus_percentage"`
	MinDepositEUR       float64            `json:"min_deposit_eur"`
	WageringMultiplier  float64            `json:"wagering_multiplier"`
	Description         string             `json:"description"`
	CurrencyConversions map[string]float64 `json:"currency_conversions"`
	CreatedAt           int64              `json:"created_at"`
	UpdatedAt           int64              `json:"updated_at"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:                  v.ID,
		Name:                v.Name,
		OfferType:           v.OfferType,
		BonusPercentage:     v.BonusPercentage,
		MinDepositEUR:       v.MinDepositEUR,
		WageringMultiplier:  v.WageringMultiplier,
		Description:         v.Description,
		CurrencyConversions: v.CurrencyConversions,
		CreatedAt:           v.CreatedAt.Unix(),
		UpdatedAt:           v.UpdatedAt.Unix(),
	}
}

func FromOfferList(views []*queries.OfferView) []*OfferResponse {
	res := make([]*OfferResponse, len(views))
	for i, v := range views {
		res[i] = FromOfferView(v)
	}
	return res
}

type CreateOfferResponse struct {
	ID int64 `json:"id"`
}

type OfferTranslationResponse struct {
	OfferID     int64  `json:"offer_id"`
	Language    string `json:"language"`
	Name        string `json:"offer_name"`
	Description string `json:"offer_description"`
}

func FromOfferTranslations(views []*queries.OfferTranslationView) []*OfferTranslationResponse {
	res := make([]*OfferTranslationResponse, len(views))
	for i, v := range views {
		res[i] = &OfferTranslationResponse{
			OfferID:     v.OfferID,
			Language:    v.Language,
			Name:        v.Name,
			Description: v.Description,
		}
	}
	return res
}
