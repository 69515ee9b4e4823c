package request

import (
	"bonus-crm/internal/usecase/commands"
)

// OfferBody is shared by create and update; currency conversions are
// computed server-side and never accepted from the caller.
type OfferBody struct {
	Name               string  `json:"name" binding:"required,max=255"`
	OfferType          string  `json:"offer_type" binding:"required,max=64"`
	BonusPercentage    float64 `json:"bonus_percentage" binding:"omitempty,min=0"`
	MinDepositEUR      float64 `json:"min_deposit_eur" binding:"omitempty,min=0"`
	WageringMultiplier float64 `json:"wagering_multiplier" binding:"omitempty,min=0"`
	Description        string  `json:"description" binding:"max=2000"`
}

func (b *OfferBody) ToFields() commands.OfferFields {
	return commands.OfferFields{
		Name:               b.Name,
		OfferType:          b.OfferType,
		BonusPercentage:    b.BonusPercentage,
		MinDepositEUR:      b.MinDepositEUR,
		WageringMultiplier: b.WageringMultiplier,
		Description:        b.Description,
	}
}

type OfferTranslationItem struct {
	Language    string `json:"language" binding:"required,max=32"`
	Name        string `json:"offer_name" binding:"required,max=255"`
	Description string `json:"offer_description" binding:"max=2000"`
}

type ReplaceOfferTranslationsRequest struct {
	Translations []OfferTranslationItem `json:"translations" binding:"required,dive"`
}

func (r *ReplaceOfferTranslationsRequest) ToFields() []commands.OfferTranslationFields {
	fields := make([]commands.OfferTranslationFields, 0, len(r.Translations))
	for _, tr := range r.Translations {
		fields = append(fields, commands.OfferTranslationFields{
			Language:    tr.Language,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	return fields
}
