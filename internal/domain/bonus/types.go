// Package bonus holds the bonus template snapshot types and the pure
// document assembler that turns a template plus its translations into the
// denormalized config document.
package bonus

import "time"

// Template is a full snapshot of a persisted bonus template.
// Monetary maps are keyed by currency code or the wildcard "*".
type Template struct {
	ID                         string
	ScheduleType               string
	ScheduleFrom               string
	ScheduleTo                 string
	TriggerType                string
	TriggerIterations          int32
	TriggerDuration            string
	TriggerName                map[string]string
	TriggerDescription         map[string]string
	MinimumAmount              map[string]float64
	MaximumAmount              map[string]float64
	MinimumStakeToWager        map[string]float64
	MaximumStakeToWager        map[string]float64
	MaximumWithdraw            map[string]float64
	Percentage                 float64
	WageringMultiplier         float64
	IncludeAmountOnTargetWager bool
	CapCalculationToMaximum    bool
	CompensateOverspending     bool
	WithdrawActive             bool
	Category                   string
	Provider                   string
	Brand                      string
	BonusType                  string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// Translation is one per-language text row owned by a template. Currency is
// an optional qualifier; when set the translation applies to the
// "{currency}_{language}" variant key.
type Translation struct {
	TemplateID  string
	Language    string
	Currency    string
	Name        string
	Description string
}

// Key returns the name/description map key this translation is merged under.
func (t Translation) Key() string {
	if t.Currency != "" {
		return t.Currency + "_" + t.Language
	}
	return t.Language
}
