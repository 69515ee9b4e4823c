package response

import (
	"bonus-crm/internal/usecase/queries"
)

type TemplateResponse struct {
	ID                         string             `json:"id"`
	ScheduleType               string             `json:"schedule_type"`
	ScheduleFrom               string             `json:"schedule_from"`
	ScheduleTo                 string             `json:"schedule_to"`
	TriggerType                string             `json:"trigger_type"`
	TriggerIterations          int32              `json:"trigger_iterations"`
	TriggerDuration            string             `json:"trigger_duration"`
	TriggerName                map[string]string  `json:"trigger_name"`
	TriggerDescription         map[string]string  `json:"trigger_description"`
	MinimumAmount              map[string]float64 `json:"minimum_amount"`
	MaximumAmount              map[string]float64 `json:"maximum_amount"`
	MinimumStakeToWager        map[string]float64 `json:"minimum_stake_to_wager"`
	MaximumStakeToWager        map[string]float64 `json:"maximum_stake_to_wager"`
	MaximumWithdraw            map[string]float64 `json:"maximum_withdraw"`
	Percentage                 float64            `json:"percentage"`
	WageringMultiplier         float64            `json:"wagering_multiplier"`
	IncludeAmountOnTargetWager bool               `json:"include_amount_on_target_wager"`
	CapCalculationToMaximum    bool               `json:"cap_calculation_to_maximum"`
	CompensateOverspending     bool               `json:"compensate_overspending"`
	WithdrawActive             bool               `json:"withdraw_active"`
	Category                   string             `json:"category"`
	Provider                   string             `json:"provider"`
	Brand                      string             `json:"brand"`
	BonusType                  string             `json:"bonus_type"`
	CreatedAt                  int64              `json:"created_at"`
	UpdatedAt                  int64              `json:"updated_at"`
}

func FromTemplateView(v *queries.TemplateView) *TemplateResponse {
	return &TemplateResponse{
		ID:                         v.ID,
		ScheduleType:               v.ScheduleType,
		ScheduleFrom:               v.ScheduleFrom,
		ScheduleTo:                 v.ScheduleTo,
		TriggerType:                v.TriggerType,
		TriggerIterations:          v.TriggerIterations,
		TriggerDuration:            v.TriggerDuration,
		TriggerName:                v.TriggerName,
		TriggerDescription:         v.TriggerDescription,
		MinimumAmount:              v.MinimumAmount,
		MaximumAmount:              v.MaximumAmount,
		MinimumStakeToWager:        v.MinimumStakeToWager,
		MaximumStakeToWager:        v.MaximumStakeToWager,
		MaximumWithdraw:            v.MaximumWithdraw,
		Percentage:                 v.Percentage,
		WageringMultiplier:         v.WageringMultiplier,
		IncludeAmountOnTargetWager: v.IncludeAmountOnTargetWager,
		CapCalculationToMaximum:    v.CapCalculationToMaximum,
		CompensateOverspending:     v.CompensateOverspending,
		WithdrawActive:             v.WithdrawActive,
		Category:                   v.Category,
		Provider:                   v.Provider,
		Brand:                      v.Brand,
		BonusType:                  v.BonusType,
		CreatedAt:                  v.CreatedAt.Unix(),
		UpdatedAt:                  v.UpdatedAt.Unix(),
	}
}

func FromTemplateList(views []*queries.TemplateView) []*TemplateResponse {
	res := make([]*TemplateResponse, len(views))
	for i, v := range views {
		res[i] = FromTemplateView(v)
	}
	return res
}

type TemplateTranslationResponse struct {
	TemplateID  string `json:"template_id"`
	Language    string `json:"language"`
	Currency    string `json:"currency,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func FromTemplateTranslations(views []*queries.TemplateTranslationView) []*TemplateTranslationResponse {
	res := make([]*TemplateTranslationResponse, len(views))
	for i, v := range views {
		res[i] = &TemplateTranslationResponse{
			TemplateID:  v.TemplateID,
			Language:    v.Language,
			Currency:    v.Currency,
			Name:        v.Name,
			Description: v.Description,
		}
	}
	return res
}
