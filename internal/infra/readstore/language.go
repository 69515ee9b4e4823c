package readstore

import (
	"context"

	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/usecase/queries"
)

type LanguageReadStore struct {
	db db.DBTX
}

func NewLanguageReadStore(dbtx db.DBTX) *LanguageReadStore {
	return &LanguageReadStore{db: dbtx}
}

func (r *LanguageReadStore) List(ctx context.Context) ([]*queries.CustomLanguageView, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM custom_languages ORDER BY code ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list custom languages", err)
	}
	defer rows.Close()

	views := []*queries.CustomLanguageView{}
	for rows.Next() {
		var view queries.CustomLanguageView
		if err := rows.Scan(&view.Code, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan language row", err)
		}
		view.IsCustom = true
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read language rows", err)
	}
	return views, nil
}
