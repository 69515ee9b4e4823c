package repository

import (
	"context"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
)

type TemplateRepository struct{}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

const createTemplateSQL = `
INSERT INTO bonus_templates (
	id, schedule_type, schedule_from, schedule_to,
	trigger_type, trigger_iterations, trigger_duration,
	trigger_name, trigger_description,
	minimum_amount, maximum_amount,
	minimum_stake_to_wager, maximum_stake_to_wager, maximum_withdraw,
	percentage, wagering_multiplier,
	include_amount_on_target_wager, cap_calculation_to_maximum,
	compensate_overspending, withdraw_active,
	category, provider, brand, bonus_type,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
)`

func (r *TemplateRepository) Create(ctx context.Context, dbtx db.DBTX, tpl *bonus.Template) error {
	_, err := dbtx.Exec(ctx, createTemplateSQL,
		tpl.ID, tpl.ScheduleType, tpl.ScheduleFrom, tpl.ScheduleTo,
		tpl.TriggerType, tpl.TriggerIterations, tpl.TriggerDuration,
		nonNilStringMap(tpl.TriggerName), nonNilStringMap(tpl.TriggerDescription),
		nonNilAmountMap(tpl.MinimumAmount), nonNilAmountMap(tpl.MaximumAmount),
		nonNilAmountMap(tpl.MinimumStakeToWager), nonNilAmountMap(tpl.MaximumStakeToWager),
		nonNilAmountMap(tpl.MaximumWithdraw),
		tpl.Percentage, tpl.WageringMultiplier,
		tpl.IncludeAmountOnTargetWager, tpl.CapCalculationToMaximum,
		tpl.CompensateOverspending, tpl.WithdrawActive,
		tpl.Category, tpl.Provider, tpl.Brand, tpl.BonusType,
		pgconv.TimeToPgtype(tpl.CreatedAt), pgconv.TimeToPgtype(tpl.UpdatedAt),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("template id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create template", err)
	}
	return nil
}

const updateTemplateSQL = `
UPDATE bonus_templates SET
	schedule_type = $2, schedule_from = $3, schedule_to = $4,
	trigger_type = $5, trigger_iterations = $6, trigger_duration = $7,
	trigger_name = $8, trigger_description = $9,
	minimum_amount = $10, maximum_amount = $11,
	minimum_stake_to_wager = $12, maximum_stake_to_wager = $13, maximum_withdraw = $14,
	percentage = $15, wagering_multiplier = $16,
	include_amount_on_target_wager = $17, cap_calculation_to_maximum = $18,
	compensate_overspending = $19, withdraw_active = $20,
	category = $21, provider = $22, brand = $23, bonus_type = $24,
	updated_at = $25
WHERE id = $1`

func (r *TemplateRepository) Update(ctx context.Context, dbtx db.DBTX, tpl *bonus.Template) error {
	tag, err := dbtx.Exec(ctx, updateTemplateSQL,
		tpl.ID, tpl.ScheduleType, tpl.ScheduleFrom, tpl.ScheduleTo,
		tpl.TriggerType, tpl.TriggerIterations, tpl.TriggerDuration,
		nonNilStringMap(tpl.TriggerName), nonNilStringMap(tpl.TriggerDescription),
		nonNilAmountMap(tpl.MinimumAmount), nonNilAmountMap(tpl.MaximumAmount),
		nonNilAmountMap(tpl.MinimumStakeToWager), nonNilAmountMap(tpl.MaximumStakeToWager),
		nonNilAmountMap(tpl.MaximumWithdraw),
		tpl.Percentage, tpl.WageringMultiplier,
		tpl.IncludeAmountOnTargetWager, tpl.CapCalculationToMaximum,
		tpl.CompensateOverspending, tpl.WithdrawActive,
		tpl.Category, tpl.Provider, tpl.Brand, tpl.BonusType,
		pgconv.TimeToPgtype(tpl.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the template; owned translations go with it via the
// ON DELETE CASCADE foreign key.
func (r *TemplateRepository) Delete(ctx context.Context, dbtx db.DBTX, id string) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bonus_templates WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TemplateRepository) Exists(ctx context.Context, dbtx db.DBTX, id string) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bonus_templates WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check template existence", err)
	}
	return exists, nil
}

// JSONB columns are NOT NULL; nil maps are stored as empty documents.
func nonNilStringMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func nonNilAmountMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
