package readstore

import (
	"context"
	"time"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
	"bonus-crm/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TemplateReadStore struct {
	db db.DBTX
}

func NewTemplateReadStore(dbtx db.DBTX) *TemplateReadStore {
	return &TemplateReadStore{db: dbtx}
}

const templateColumns = `
	id, schedule_type, schedule_from, schedule_to,
	trigger_type, trigger_iterations, trigger_duration,
	trigger_name, trigger_description,
	minimum_amount, maximum_amount,
	minimum_stake_to_wager, maximum_stake_to_wager, maximum_withdraw,
	percentage, wagering_multiplier,
	include_amount_on_target_wager, cap_calculation_to_maximum,
	compensate_overspending, withdraw_active,
	category, provider, brand, bonus_type,
	created_at, updated_at`

func (r *TemplateReadStore) FindByID(ctx context.Context, id string) (*queries.TemplateView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM bonus_templates WHERE id = $1`, id)
	tpl, err := scanTemplate(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find template by id", err)
	}
	return toTemplateView(tpl), nil
}

func (r *TemplateReadStore) List(ctx context.Context, skip, limit int32) ([]*queries.TemplateView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+templateColumns+` FROM bonus_templates ORDER BY created_at ASC, id ASC OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list templates", err)
	}
	return collectTemplateViews(rows)
}

const searchTemplatesSQL = `
SELECT ` + templateColumns + `
FROM bonus_templates
WHERE id ILIKE '%' || $1 || '%'
   OR provider ILIKE '%' || $1 || '%'
   OR brand ILIKE '%' || $1 || '%'
   OR category ILIKE '%' || $1 || '%'
   OR ($2::timestamptz IS NOT NULL AND created_at >= $2 AND created_at < $3)
ORDER BY created_at DESC, id ASC`

func (r *TemplateReadStore) Search(ctx context.Context, query string, from, to *time.Time) ([]*queries.TemplateView, error) {
	rows, err := r.db.Query(ctx, searchTemplatesSQL, query, timestamptzOrNull(from), timestamptzOrNull(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search templates", err)
	}
	return collectTemplateViews(rows)
}

func (r *TemplateReadStore) ListByCreatedWindow(ctx context.Context, from, to time.Time, skip, limit int32) ([]*queries.TemplateView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+templateColumns+` FROM bonus_templates
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC, id ASC OFFSET $3 LIMIT $4`,
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to), skip, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list templates by month", err)
	}
	return collectTemplateViews(rows)
}

func (r *TemplateReadStore) TranslationsFor(ctx context.Context, templateID string) ([]*queries.TemplateTranslationView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT template_id, language, currency, name, description
		 FROM bonus_translations WHERE template_id = $1 ORDER BY language ASC`,
		templateID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list template translations", err)
	}
	defer rows.Close()

	views := []*queries.TemplateTranslationView{}
	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan translation row", err)
		}
		views = append(views, &queries.TemplateTranslationView{
			TemplateID:  tr.TemplateID,
			Language:    tr.Language,
			Currency:    tr.Currency,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read translation rows", err)
	}
	return views, nil
}

// DocumentSource loads the raw template snapshot plus all translation rows
// for the document assembler.
func (r *TemplateReadStore) DocumentSource(ctx context.Context, templateID string) (*bonus.Template, []bonus.Translation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM bonus_templates WHERE id = $1`, templateID)
	tpl, err := scanTemplate(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to load template", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT template_id, language, currency, name, description
		 FROM bonus_translations WHERE template_id = $1 ORDER BY language ASC`,
		templateID,
	)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to load template translations", err)
	}
	defer rows.Close()

	var translations []bonus.Translation
	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan translation row", err)
		}
		translations = append(translations, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to read translation rows", err)
	}
	return tpl, translations, nil
}

func scanTemplate(row pgx.Row) (*bonus.Template, error) {
	var tpl bonus.Template
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(
		&tpl.ID, &tpl.ScheduleType, &tpl.ScheduleFrom, &tpl.ScheduleTo,
		&tpl.TriggerType, &tpl.TriggerIterations, &tpl.TriggerDuration,
		&tpl.TriggerName, &tpl.TriggerDescription,
		&tpl.MinimumAmount, &tpl.MaximumAmount,
		&tpl.MinimumStakeToWager, &tpl.MaximumStakeToWager, &tpl.MaximumWithdraw,
		&tpl.Percentage, &tpl.WageringMultiplier,
		&tpl.IncludeAmountOnTargetWager, &tpl.CapCalculationToMaximum,
		&tpl.CompensateOverspending, &tpl.WithdrawActive,
		&tpl.Category, &tpl.Provider, &tpl.Brand, &tpl.BonusType,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	tpl.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	tpl.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &tpl, nil
}

func scanTranslation(row pgx.Row) (bonus.Translation, error) {
	var tr bonus.Translation
	var currency pgtype.Text
	err := row.Scan(&tr.TemplateID, &tr.Language, &currency, &tr.Name, &tr.Description)
	if err != nil {
		return bonus.Translation{}, err
	}
	tr.Currency = pgconv.StringFromPgtype(currency)
	return tr, nil
}

func collectTemplateViews(rows pgx.Rows) ([]*queries.TemplateView, error) {
	defer rows.Close()

	views := []*queries.TemplateView{}
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan template row", err)
		}
		views = append(views, toTemplateView(tpl))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read template rows", err)
	}
	return views, nil
}

func toTemplateView(tpl *bonus.Template) *queries.TemplateView {
	return &queries.TemplateView{
		ID:                         tpl.ID,
		ScheduleType:               tpl.ScheduleType,
		ScheduleFrom:               tpl.ScheduleFrom,
		ScheduleTo:                 tpl.ScheduleTo,
		TriggerType:                tpl.TriggerType,
		TriggerIterations:          tpl.TriggerIterations,
		TriggerDuration:            tpl.TriggerDuration,
		TriggerName:                tpl.TriggerName,
		TriggerDescription:         tpl.TriggerDescription,
		MinimumAmount:              tpl.MinimumAmount,
		MaximumAmount:              tpl.MaximumAmount,
		MinimumStakeToWager:        tpl.MinimumStakeToWager,
		MaximumStakeToWager:        tpl.MaximumStakeToWager,
		MaximumWithdraw:            tpl.MaximumWithdraw,
		Percentage:                 tpl.Percentage,
		WageringMultiplier:         tpl.WageringMultiplier,
		IncludeAmountOnTargetWager: tpl.IncludeAmountOnTargetWager,
		CapCalculationToMaximum:    tpl.CapCalculationToMaximum,
		CompensateOverspending:     tpl.CompensateOverspending,
		WithdrawActive:             tpl.WithdrawActive,
		Category:                   tpl.Category,
		Provider:                   tpl.Provider,
		Brand:                      tpl.Brand,
		BonusType:                  tpl.BonusType,
		CreatedAt:                  tpl.CreatedAt,
		UpdatedAt:                  tpl.UpdatedAt,
	}
}

func timestamptzOrNull(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgconv.TimeToPgtype(*t)
}
