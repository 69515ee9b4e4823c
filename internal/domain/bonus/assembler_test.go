//go:build unit

package bonus_test

import (
	"encoding/json"
	"testing"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/domain/currency"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate() *bonus.Template {
	return &bonus.Template{
		ID:           "welcome-100",
		ScheduleType: "recurring",
		ScheduleFrom: "2024-01-01",
		ScheduleTo:   "2024-12-31",
		TriggerType:  "deposit",
		TriggerName: map[string]string{
			"en": "Welcome Bonus",
		},
		TriggerDescription: map[string]string{
			"en": "100% up to 300",
		},
		MinimumAmount:      map[string]float64{"EUR": 25},
		MaximumAmount:      map[string]float64{"EUR": 300},
		Percentage:         100,
		WageringMultiplier: 35,
		WithdrawActive:     true,
		Category:           "casino",
		Provider:           "acme",
		Brand:              "lucky",
		BonusType:          "deposit",
	}
}

func TestAssembleDocument(t *testing.T) {
	t.Run("merges translations under their variant keys", func(t *testing.T) {
		tpl := sampleTemplate()
		translations := []bonus.Translation{
			{TemplateID: tpl.ID, Language: "no", Currency: "NOK", Name: "Velkomstbonus", Description: "100% opptil 3000"},
			{TemplateID: tpl.ID, Language: "de", Name: "Willkommensbonus", Description: "100% bis 300"},
		}

		doc := bonus.AssembleDocument(tpl, translations)

		assert.Equal(t, "Velkomstbonus", doc.Trigger.Name["NOK_no"])
		assert.Equal(t, "Willkommensbonus", doc.Trigger.Name["de"])
		assert.Equal(t, "100% opptil 3000", doc.Trigger.Description["NOK_no"])
		assert.Equal(t, "Welcome Bonus", doc.Trigger.Name["en"])
	})

	t.Run("wildcard amounts copy the EUR entry", func(t *testing.T) {
		doc := bonus.AssembleDocument(sampleTemplate(), nil)

		assert.Equal(t, 25.0, doc.Trigger.MinimumAmount["*"])
		assert.Equal(t, 300.0, doc.Config.MaximumAmount["*"])
	})

	t.Run("wildcard stakes fall back to hardcoded defaults", func(t *testing.T) {
		doc := bonus.AssembleDocument(sampleTemplate(), nil)

		assert.Equal(t, 0.5, doc.Config.MinimumStakeToWager["*"])
		assert.Equal(t, 5.0, doc.Config.MaximumStakeToWager["*"])
		assert.Equal(t, 3.0, doc.Config.MaximumWithdraw["*"])
	})

	t.Run("existing wildcard entries win over defaults", func(t *testing.T) {
		tpl := sampleTemplate()
		tpl.MinimumStakeToWager = map[string]float64{"*": 1.5}
		tpl.MinimumAmount = map[string]float64{"EUR": 25, "*": 40}

		doc := bonus.AssembleDocument(tpl, nil)

		assert.Equal(t, 1.5, doc.Config.MinimumStakeToWager["*"])
		assert.Equal(t, 40.0, doc.Trigger.MinimumAmount["*"])
	})

	t.Run("does not mutate the input template", func(t *testing.T) {
		tpl := sampleTemplate()
		_ = bonus.AssembleDocument(tpl, []bonus.Translation{
			{TemplateID: tpl.ID, Language: "fi", Name: "Tervetuliaisbonus"},
		})

		assert.NotContains(t, tpl.TriggerName, "fi")
		assert.NotContains(t, tpl.MinimumStakeToWager, "*")
	})

	t.Run("missing EUR leaves amount wildcard unset", func(t *testing.T) {
		tpl := sampleTemplate()
		tpl.MinimumAmount = map[string]float64{"NOK": 250}

		doc := bonus.AssembleDocument(tpl, nil)

		assert.NotContains(t, doc.Trigger.MinimumAmount, "*")
	})
}

func TestAssembleDocumentWithCurrencies(t *testing.T) {
	t.Run("expands amounts for every supported currency", func(t *testing.T) {
		doc := bonus.AssembleDocumentWithCurrencies(sampleTemplate(), nil)

		for _, code := range currency.Codes() {
			require.Contains(t, doc.Trigger.MinimumAmount, code)
			require.Contains(t, doc.Config.MaximumAmount, code)
		}
		assert.Equal(t, 25.0, doc.Trigger.MinimumAmount["EUR"])
		assert.Equal(t, 250.0, doc.Trigger.MinimumAmount["NOK"])
		assert.Equal(t, 3000.0, doc.Config.MaximumAmount["NOK"])
		assert.Equal(t, 240000.0, doc.Config.MaximumAmount["CLP"])
	})

	t.Run("falls back to EUR defaults when the template has no amounts", func(t *testing.T) {
		tpl := sampleTemplate()
		tpl.MinimumAmount = nil
		tpl.MaximumAmount = nil

		doc := bonus.AssembleDocumentWithCurrencies(tpl, nil)

		assert.Equal(t, 250.0, doc.Trigger.MinimumAmount["NOK"])
		assert.Equal(t, 3000.0, doc.Config.MaximumAmount["NOK"])
		// EUR itself stays absent; only the expansion targets are filled.
		assert.NotContains(t, doc.Trigger.MinimumAmount, "EUR")
	})

	t.Run("stake maps are not expanded", func(t *testing.T) {
		doc := bonus.AssembleDocumentWithCurrencies(sampleTemplate(), nil)

		assert.NotContains(t, doc.Config.MinimumStakeToWager, "NOK")
		assert.NotContains(t, doc.Config.MaximumStakeToWager, "NOK")
		assert.NotContains(t, doc.Config.MaximumWithdraw, "NOK")
	})

	t.Run("identical inputs yield identical documents", func(t *testing.T) {
		tpl := sampleTemplate()
		translations := []bonus.Translation{
			{TemplateID: tpl.ID, Language: "no", Currency: "NOK", Name: "Velkomstbonus"},
		}

		first := bonus.AssembleDocumentWithCurrencies(tpl, translations)
		second := bonus.AssembleDocumentWithCurrencies(tpl, translations)

		require.Empty(t, cmp.Diff(first, second))

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.JSONEq(t, string(firstJSON), string(secondJSON))
	})
}

func TestTranslationKey(t *testing.T) {
	withCurrency := bonus.Translation{Language: "no", Currency: "NOK"}
	assert.Equal(t, "NOK_no", withCurrency.Key())

	plain := bonus.Translation{Language: "de"}
	assert.Equal(t, "de", plain.Key())
}
