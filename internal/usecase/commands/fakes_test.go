//go:build unit

package commands_test

import (
	"context"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/usecase/shared"
)

// fakeStore is an in-memory stand-in for the database, shared by the fake
// repositories so cross-entity effects (cascades) are observable in tests.
type fakeStore struct {
	templates            map[string]*bonus.Template
	templateTranslations map[string]map[string]bonus.Translation
	offers               map[int64]*offer.Offer
	offerTranslations    map[int64][]offer.Translation
	languages            map[string]string
	nextOfferID          int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		templates:            map[string]*bonus.Template{},
		templateTranslations: map[string]map[string]bonus.Translation{},
		offers:               map[int64]*offer.Offer{},
		offerTranslations:    map[int64][]offer.Translation{},
		languages:            map[string]string{},
		nextOfferID:          1,
	}
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{store: newFakeStore()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) DB() db.DBTX { return nil }

func (t *fakeTx) Templates() shared.TemplateRepository {
	return &fakeTemplateRepo{store: t.store}
}

func (t *fakeTx) TemplateTranslations() shared.TemplateTranslationRepository {
	return &fakeTemplateTranslationRepo{store: t.store}
}

func (t *fakeTx) Offers() shared.OfferRepository {
	return &fakeOfferRepo{store: t.store}
}

func (t *fakeTx) OfferTranslations() shared.OfferTranslationRepository {
	return &fakeOfferTranslationRepo{store: t.store}
}

func (t *fakeTx) Languages() shared.LanguageRepository {
	return &fakeLanguageRepo{store: t.store}
}

type fakeTemplateRepo struct {
	store *fakeStore
}

func (r *fakeTemplateRepo) Create(_ context.Context, _ db.DBTX, tpl *bonus.Template) error {
	if _, ok := r.store.templates[tpl.ID]; ok {
		return infra.WrapRepoErr("template already exists", nil, infra.KindDuplicateKey)
	}
	cp := *tpl
	r.store.templates[tpl.ID] = &cp
	return nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, _ db.DBTX, tpl *bonus.Template) error {
	if _, ok := r.store.templates[tpl.ID]; !ok {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	cp := *tpl
	r.store.templates[tpl.ID] = &cp
	return nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, _ db.DBTX, id string) error {
	if _, ok := r.store.templates[id]; !ok {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	delete(r.store.templates, id)
	delete(r.store.templateTranslations, id)
	return nil
}

func (r *fakeTemplateRepo) Exists(_ context.Context, _ db.DBTX, id string) (bool, error) {
	_, ok := r.store.templates[id]
	return ok, nil
}

type fakeTemplateTranslationRepo struct {
	store *fakeStore
}

func (r *fakeTemplateTranslationRepo) Upsert(_ context.Context, _ db.DBTX, tr *bonus.Translation) error {
	if _, ok := r.store.templates[tr.TemplateID]; !ok {
		return infra.WrapRepoErr("template not found", nil, infra.KindForeignKeyViolated)
	}
	rows, ok := r.store.templateTranslations[tr.TemplateID]
	if !ok {
		rows = map[string]bonus.Translation{}
		r.store.templateTranslations[tr.TemplateID] = rows
	}
	rows[tr.Language] = *tr
	return nil
}

func (r *fakeTemplateTranslationRepo) Delete(_ context.Context, _ db.DBTX, templateID, language string) error {
	delete(r.store.templateTranslations[templateID], language)
	return nil
}

type fakeOfferRepo struct {
	store *fakeStore
}

func (r *fakeOfferRepo) Create(_ context.Context, _ db.DBTX, o *offer.Offer) (int64, error) {
	id := r.store.nextOfferID
	r.store.nextOfferID++
	cp := *o
	cp.ID = id
	r.store.offers[id] = &cp
	return id, nil
}

func (r *fakeOfferRepo) FindByID(_ context.Context, _ db.DBTX, id int64) (*offer.Offer, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfferRepo) Update(_ context.Context, _ db.DBTX, o *offer.Offer) error {
	if _, ok := r.store.offers[o.ID]; !ok {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	cp := *o
	r.store.offers[o.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := r.store.offers[id]; !ok {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	delete(r.store.offers, id)
	delete(r.store.offerTranslations, id)
	return nil
}

type fakeOfferTranslationRepo struct {
	store *fakeStore
}

func (r *fakeOfferTranslationRepo) ReplaceAll(_ context.Context, _ db.DBTX, offerID int64, translations []offer.Translation) error {
	if _, ok := r.store.offers[offerID]; !ok {
		return infra.WrapRepoErr("offer not found", nil, infra.KindForeignKeyViolated)
	}
	r.store.offerTranslations[offerID] = append([]offer.Translation(nil), translations...)
	return nil
}

type fakeLanguageRepo struct {
	store *fakeStore
}

func (r *fakeLanguageRepo) Create(_ context.Context, _ db.DBTX, lang *shared.CustomLanguage) error {
	if _, ok := r.store.languages[lang.Code]; ok {
		return infra.WrapRepoErr("language code already exists", nil, infra.KindDuplicateKey)
	}
	r.store.languages[lang.Code] = lang.Name
	return nil
}

func (r *fakeLanguageRepo) Delete(_ context.Context, _ db.DBTX, code string) error {
	if _, ok := r.store.languages[code]; !ok {
		return infra.WrapRepoErr("language not found", nil, infra.KindNotFound)
	}
	delete(r.store.languages, code)
	return nil
}

func (r *fakeLanguageRepo) ExistsByCode(_ context.Context, _ db.DBTX, code string) (bool, error) {
	_, ok := r.store.languages[code]
	return ok, nil
}
