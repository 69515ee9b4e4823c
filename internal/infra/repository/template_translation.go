package repository

import (
	"context"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
)

type TemplateTranslationRepository struct{}

func NewTemplateTranslationRepository() *TemplateTranslationRepository {
	return &TemplateTranslationRepository{}
}

// One row per (template, language); repeated upserts overwrite the text
// and currency qualifier instead of duplicating.
const upsertTranslationSQL = `
INSERT INTO bonus_translations (template_id, language, currency, name, description)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (template_id, language)
DO UPDATE SET currency = EXCLUDED.currency,
              name = EXCLUDED.name,
              description = EXCLUDED.description`

func (r *TemplateTranslationRepository) Upsert(ctx context.Context, dbtx db.DBTX, tr *bonus.Translation) error {
	_, err := dbtx.Exec(ctx, upsertTranslationSQL,
		tr.TemplateID, tr.Language, pgconv.TextFromString(tr.Currency), tr.Name, tr.Description,
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("template not found", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert translation", err)
	}
	return nil
}

func (r *TemplateTranslationRepository) Delete(ctx context.Context, dbtx db.DBTX, templateID, language string) error {
	_, err := dbtx.Exec(ctx,
		`DELETE FROM bonus_translations WHERE template_id = $1 AND language = $2`,
		templateID, language,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete translation", err)
	}
	return nil
}
