package bonus

import (
	"bonus-crm/internal/domain/currency"
)

// Hardcoded business defaults for the wildcard entries of the stake and
// withdraw maps. Carried verbatim from the original reference config.
const (
	defaultMinimumStake    = 0.5
	defaultMaximumStake    = 5
	defaultMaximumWithdraw = 3
)

// EUR fallbacks used by the currency expansion stage when a template
// carries no explicit EUR amount.
const (
	defaultEURMinimumAmount = 25
	defaultEURMaximumAmount = 300
)

// Document is the rendered bonus configuration: three groups, with
// translation maps merged in and monetary maps carrying a wildcard entry.
type Document struct {
	ID       string   `json:"id"`
	Schedule Schedule `json:"schedule"`
	Trigger  Trigger  `json:"trigger"`
	Config   Config   `json:"config"`
}

type Schedule struct {
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
}

type Trigger struct {
	Name          map[string]string  `json:"name"`
	Description   map[string]string  `json:"description"`
	MinimumAmount map[string]float64 `json:"minimumAmount"`
	Iterations    int32              `json:"iterations"`
	Type          string             `json:"type"`
	Duration      string             `json:"duration"`
}

type Config struct {
	MinimumStakeToWager                   map[string]float64 `json:"minimumStakeToWager"`
	MaximumStakeToWager                   map[string]float64 `json:"maximumStakeToWager"`
	CompensateOverspending                bool               `json:"compensateOverspending"`
	MaximumAmount                         map[string]float64 `json:"maximumAmount"`
	Percentage                            float64            `json:"percentage"`
	WageringMultiplier                    float64            `json:"wageringMultiplier"`
	IncludeAmountOnTargetWagerCalculation bool               `json:"includeAmountOnTargetWagerCalculation"`
	CapCalculationAmountToMaximumBonus    bool               `json:"capCalculationAmountToMaximumBonus"`
	Type                                  string             `json:"type"`
	WithdrawActive                        bool               `json:"withdrawActive"`
	Category                              string             `json:"category"`
	Provider                              string             `json:"provider"`
	Brand                                 string             `json:"brand"`
	MaximumWithdraw                       map[string]float64 `json:"maximumWithdraw"`
}

// AssembleDocument builds the base document: translations merged into the
// trigger name/description maps under their variant keys, and every
// monetary map guaranteed a wildcard entry. The input template is not
// mutated; all maps are copied.
func AssembleDocument(tpl *Template, translations []Translation) *Document {
	name := copyStringMap(tpl.TriggerName)
	description := copyStringMap(tpl.TriggerDescription)
	for _, tr := range translations {
		name[tr.Key()] = tr.Name
		description[tr.Key()] = tr.Description
	}

	minimumAmount := copyAmountMap(tpl.MinimumAmount)
	if _, ok := minimumAmount["*"]; !ok {
		if eur, ok := minimumAmount["EUR"]; ok {
			minimumAmount["*"] = eur
		}
	}
	maximumAmount := copyAmountMap(tpl.MaximumAmount)
	if _, ok := maximumAmount["*"]; !ok {
		if eur, ok := maximumAmount["EUR"]; ok {
			maximumAmount["*"] = eur
		}
	}

	minimumStake := copyAmountMap(tpl.MinimumStakeToWager)
	if _, ok := minimumStake["*"]; !ok {
		minimumStake["*"] = defaultMinimumStake
	}
	maximumStake := copyAmountMap(tpl.MaximumStakeToWager)
	if _, ok := maximumStake["*"]; !ok {
		maximumStake["*"] = defaultMaximumStake
	}
	maximumWithdraw := copyAmountMap(tpl.MaximumWithdraw)
	if _, ok := maximumWithdraw["*"]; !ok {
		maximumWithdraw["*"] = defaultMaximumWithdraw
	}

	return &Document{
		ID: tpl.ID,
		Schedule: Schedule{
			Type: tpl.ScheduleType,
			From: tpl.ScheduleFrom,
			To:   tpl.ScheduleTo,
		},
		Trigger: Trigger{
			Name:          name,
			Description:   description,
			MinimumAmount: minimumAmount,
			Iterations:    tpl.TriggerIterations,
			Type:          tpl.TriggerType,
			Duration:      tpl.TriggerDuration,
		},
		Config: Config{
			MinimumStakeToWager:                   minimumStake,
			MaximumStakeToWager:                   maximumStake,
			CompensateOverspending:                tpl.CompensateOverspending,
			MaximumAmount:                         maximumAmount,
			Percentage:                            tpl.Percentage,
			WageringMultiplier:                    tpl.WageringMultiplier,
			IncludeAmountOnTargetWagerCalculation: tpl.IncludeAmountOnTargetWager,
			CapCalculationAmountToMaximumBonus:    tpl.CapCalculationToMaximum,
			Type:                                  tpl.BonusType,
			WithdrawActive:                        tpl.WithdrawActive,
			Category:                              tpl.Category,
			Provider:                              tpl.Provider,
			Brand:                                 tpl.Brand,
			MaximumWithdraw:                       maximumWithdraw,
		},
	}
}

// AssembleDocumentWithCurrencies runs the base assembly and then expands
// trigger.minimumAmount and config.maximumAmount with an entry for every
// supported currency, converted from the EUR baseline. EUR itself is left
// as stored.
func AssembleDocumentWithCurrencies(tpl *Template, translations []Translation) *Document {
	doc := AssembleDocument(tpl, translations)

	eurMin, ok := doc.Trigger.MinimumAmount["EUR"]
	if !ok {
		eurMin = defaultEURMinimumAmount
	}
	eurMax, ok := doc.Config.MaximumAmount["EUR"]
	if !ok {
		eurMax = defaultEURMaximumAmount
	}

	for _, code := range currency.Codes() {
		if code == "EUR" {
			continue
		}
		doc.Trigger.MinimumAmount[code] = currency.Convert(eurMin, code)
		doc.Config.MaximumAmount[code] = currency.Convert(eurMax, code)
	}
	return doc
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyAmountMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
