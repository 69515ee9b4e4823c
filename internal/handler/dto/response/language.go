package response

import (
	"bonus-crm/internal/domain/currency"
	"bonus-crm/internal/usecase/queries"
)

type LanguageResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	IsCustom bool   `json:"isCustom"`
}

// LanguageListResponse merges the static base languages with user-defined
// ones, plus the per-language currency variant keys.
type LanguageListResponse struct {
	Languages []*LanguageResponse `json:"languages"`
	Variants  map[string][]string `json:"variants"`
}

func NewLanguageList(custom []*queries.CustomLanguageView) *LanguageListResponse {
	base := currency.Languages()
	langs := make([]*LanguageResponse, 0, len(base)+len(custom))
	variants := make(map[string][]string, len(base))

	for _, code := range base {
		langs = append(langs, &LanguageResponse{Code: code})
		if vs := currency.VariantsFor(code); vs != nil {
			variants[code] = vs
		}
	}
	for _, c := range custom {
		langs = append(langs, &LanguageResponse{Code: c.Code, Name: c.Name, IsCustom: true})
	}
	return &LanguageListResponse{Languages: langs, Variants: variants}
}

func FromCustomLanguages(views []*queries.CustomLanguageView) []*LanguageResponse {
	res := make([]*LanguageResponse, len(views))
	for i, v := range views {
		res[i] = &LanguageResponse{Code: v.Code, Name: v.Name, IsCustom: v.IsCustom}
	}
	return res
}

type CurrencyResponse struct {
	Code       string  `json:"code"`
	Rate       float64 `json:"rate"`
	MinDeposit float64 `json:"min_deposit"`
	MaxDeposit float64 `json:"max_deposit"`
}

func NewCurrencyList() []*CurrencyResponse {
	codes := currency.Codes()
	res := make([]*CurrencyResponse, 0, len(codes))
	for _, code := range codes {
		info := currency.Reference[code]
		res = append(res, &CurrencyResponse{
			Code:       code,
			Rate:       info.Rate,
			MinDeposit: info.MinDeposit,
			MaxDeposit: info.MaxDeposit,
		})
	}
	return res
}
