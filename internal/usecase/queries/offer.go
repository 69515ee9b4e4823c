package queries

import (
	"context"
	"time"

	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/clock"
	"bonus-crm/internal/pkg/errs"
)

var ErrOfferNotFound = errs.New("offer not found")

// OfferView represents read-optimized offer data
type OfferView struct {
	ID                  int64              `json:"id"`
	Name                string             `json:"name"`
	OfferType           string             `json:"offer_type"`
	BonusPercentage     float64            `json:"bonus_percentage"`
	MinDepositEUR       float64            `json:"min_deposit_eur"`
	WageringMultiplier  float64            `json:"wagering_multiplier"`
	Description         string             `json:"description"`
	CurrencyConversions map[string]float64 `json:"currency_conversions"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type OfferTranslationView struct {
	OfferID     int64  `json:"offer_id"`
	Language    string `json:"language"`
	Name        string `json:"offer_name"`
	Description string `json:"offer_description"`
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id int64) (*OfferView, error)
	List(ctx context.Context, skip, limit int32) ([]*OfferView, error)
	TranslationsFor(ctx context.Context, offerID int64) ([]*OfferTranslationView, error)
	DocumentSource(ctx context.Context, offerID int64) (*offer.Offer, []offer.Translation, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, id int64) (*OfferView, error)
	List(ctx context.Context, skip, limit int) ([]*OfferView, error)
	Translations(ctx context.Context, offerID int64) ([]*OfferTranslationView, error)
	RenderDocument(ctx context.Context, offerID int64) (*offer.Document, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
	clock clock.Clock
}

func NewOfferQueries(store OfferReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{store: store, clock: clk}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id int64) (*OfferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *offerQueriesImpl) List(ctx context.Context, skip, limit int) ([]*OfferView, error) {
	offset, window := normalizePage(skip, limit)
	return q.store.List(ctx, offset, window)
}

func (q *offerQueriesImpl) Translations(ctx context.Context, offerID int64) ([]*OfferTranslationView, error) {
	if _, err := q.GetByID(ctx, offerID); err != nil {
		return nil, err
	}
	return q.store.TranslationsFor(ctx, offerID)
}

func (q *offerQueriesImpl) RenderDocument(ctx context.Context, offerID int64) (*offer.Document, error) {
	o, translations, err := q.store.DocumentSource(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return offer.AssembleDocument(o, translations, q.clock.Now()), nil
}
