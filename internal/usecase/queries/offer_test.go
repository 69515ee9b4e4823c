//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/clock"
	"bonus-crm/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOfferReadStore struct {
	view         *queries.OfferView
	offer        *offer.Offer
	translations []offer.Translation
}

func (f *fakeOfferReadStore) FindByID(_ context.Context, id int64) (*queries.OfferView, error) {
	if f.view == nil || f.view.ID != id {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return f.view, nil
}

func (f *fakeOfferReadStore) List(_ context.Context, _, _ int32) ([]*queries.OfferView, error) {
	if f.view == nil {
		return []*queries.OfferView{}, nil
	}
	return []*queries.OfferView{f.view}, nil
}

func (f *fakeOfferReadStore) TranslationsFor(_ context.Context, _ int64) ([]*queries.OfferTranslationView, error) {
	views := make([]*queries.OfferTranslationView, len(f.translations))
	for i, tr := range f.translations {
		views[i] = &queries.OfferTranslationView{
			OfferID:  tr.OfferID,
			Language: tr.Language,
			Name:     tr.Name,
		}
	}
	return views, nil
}

func (f *fakeOfferReadStore) DocumentSource(_ context.Context, id int64) (*offer.Offer, []offer.Translation, error) {
	if f.offer == nil || f.offer.ID != id {
		return nil, nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return f.offer, f.translations, nil
}

func TestOfferRenderDocument(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeOfferReadStore{
		offer: &offer.Offer{
			ID:                  42,
			Name:                "Reload Friday",
			CurrencyConversions: map[string]float64{"NOK": 250},
		},
		translations: []offer.Translation{
			{OfferID: 42, Language: "no", Name: "Fredagsbonus"},
		},
	}
	q := queries.NewOfferQueries(store, clock.NewMockClock(now))

	doc, err := q.RenderDocument(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, now, doc.GeneratedAt)
	assert.Equal(t, 250.0, doc.MinDeposits["NOK"])
	assert.Equal(t, "Fredagsbonus", doc.Translations["no"].Name)

	_, err = q.RenderDocument(t.Context(), 9999)
	assert.ErrorIs(t, err, queries.ErrOfferNotFound)
}

func TestOfferTranslationsRequireOffer(t *testing.T) {
	store := &fakeOfferReadStore{
		view: &queries.OfferView{ID: 42},
		translations: []offer.Translation{
			{OfferID: 42, Language: "en", Name: "Reload Friday"},
		},
	}
	q := queries.NewOfferQueries(store, clock.NewMockClock(time.Now()))

	views, err := q.Translations(t.Context(), 42)
	require.NoError(t, err)
	require.Len(t, views, 1)

	_, err = q.Translations(t.Context(), 9999)
	assert.ErrorIs(t, err, queries.ErrOfferNotFound)
}
