package repository

import (
	"context"

	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
	"bonus-crm/internal/usecase/shared"
)

type LanguageRepository struct{}

func NewLanguageRepository() *LanguageRepository {
	return &LanguageRepository{}
}

func (r *LanguageRepository) Create(ctx context.Context, dbtx db.DBTX, lang *shared.CustomLanguage) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO custom_languages (code, name) VALUES ($1, $2)`,
		lang.Code, lang.Name,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("language code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create custom language", err)
	}
	return nil
}

func (r *LanguageRepository) Delete(ctx context.Context, dbtx db.DBTX, code string) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM custom_languages WHERE code = $1`, code)
	if err != nil {
		return infra.WrapRepoErr("failed to delete custom language", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("language not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LanguageRepository) ExistsByCode(ctx context.Context, dbtx db.DBTX, code string) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM custom_languages WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check language existence", err)
	}
	return exists, nil
}
