package request

import (
	"bonus-crm/internal/usecase/commands"
)

// TemplateBody is shared by create and update; updates replace every field.
type TemplateBody struct {
	ScheduleType               string             `json:"schedule_type" binding:"required"`
	ScheduleFrom               string             `json:"schedule_from"`
	ScheduleTo                 string             `json:"schedule_to"`
	TriggerType                string             `json:"trigger_type" binding:"required"`
	TriggerIterations          int32              `json:"trigger_iterations" binding:"omitempty,min=0"`
	TriggerDuration            string             `json:"trigger_duration"`
	TriggerName                map[string]string  `json:"trigger_name"`
	TriggerDescription         map[string]string  `json:"trigger_description"`
	MinimumAmount              map[string]float64 `json:"minimum_amount"`
	MaximumAmount              map[string]float64 `json:"maximum_amount"`
	MinimumStakeToWager        map[string]float64 `json:"minimum_stake_to_wager"`
	MaximumStakeToWager        map[string]float64 `json:"maximum_stake_to_wager"`
	MaximumWithdraw            map[string]float64 `json:"maximum_withdraw"`
	Percentage                 float64            `json:"percentage" binding:"omitempty,min=0"`
	WageringMultiplier         float64            `json:"wagering_multiplier" binding:"omitempty,min=0"`
	IncludeAmountOnTargetWager bool               `json:"include_amount_on_target_wager"`
	CapCalculationToMaximum    bool               `json:"cap_calculation_to_maximum"`
	CompensateOverspending     bool               `json:"compensate_overspending"`
	WithdrawActive             bool               `json:"withdraw_active"`
	Category                   string             `json:"category"`
	Provider                   string             `json:"provider"`
	Brand                      string             `json:"brand"`
	BonusType                  string             `json:"bonus_type"`
}

type CreateTemplateRequest struct {
	ID string `json:"id" binding:"required,max=128"`
	TemplateBody
}

type UpdateTemplateRequest struct {
	TemplateBody
}

func (b *TemplateBody) ToFields() commands.TemplateFields {
	return commands.TemplateFields{
		ScheduleType:               b.ScheduleType,
		ScheduleFrom:               b.ScheduleFrom,
		ScheduleTo:                 b.ScheduleTo,
		TriggerType:                b.TriggerType,
		TriggerIterations:          b.TriggerIterations,
		TriggerDuration:            b.TriggerDuration,
		TriggerName:                b.TriggerName,
		TriggerDescription:         b.TriggerDescription,
		MinimumAmount:              b.MinimumAmount,
		MaximumAmount:              b.MaximumAmount,
		MinimumStakeToWager:        b.MinimumStakeToWager,
		MaximumStakeToWager:        b.MaximumStakeToWager,
		MaximumWithdraw:            b.MaximumWithdraw,
		Percentage:                 b.Percentage,
		WageringMultiplier:         b.WageringMultiplier,
		IncludeAmountOnTargetWager: b.IncludeAmountOnTargetWager,
		CapCalculationToMaximum:    b.CapCalculationToMaximum,
		CompensateOverspending:     b.CompensateOverspending,
		WithdrawActive:             b.WithdrawActive,
		Category:                   b.Category,
		Provider:                   b.Provider,
		Brand:                      b.Brand,
		BonusType:                  b.BonusType,
	}
}

type UpsertTranslationRequest struct {
	Language    string `json:"language" binding:"required,max=32"`
	Currency    string `json:"currency" binding:"omitempty,max=8"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

func (r *UpsertTranslationRequest) ToCommand() commands.UpsertTranslationRequest {
	return commands.UpsertTranslationRequest{
		Language:    r.Language,
		Currency:    r.Currency,
		Name:        r.Name,
		Description: r.Description,
	}
}
