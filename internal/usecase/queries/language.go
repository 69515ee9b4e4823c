package queries

import "context"

// CustomLanguageView represents one user-defined language
type CustomLanguageView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsCustom bool   `json:"isCustom"`
}

type LanguageReadStore interface {
	List(ctx context.Context) ([]*CustomLanguageView, error)
}

type LanguageQueries interface {
	List(ctx context.Context) ([]*CustomLanguageView, error)
}

type languageQueriesImpl struct {
	store LanguageReadStore
}

func NewLanguageQueries(store LanguageReadStore) LanguageQueries {
	return &languageQueriesImpl{store: store}
}

func (q *languageQueriesImpl) List(ctx context.Context) ([]*CustomLanguageView, error) {
	return q.store.List(ctx)
}
