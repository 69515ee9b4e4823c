package readstore

import (
	"context"

	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
	"bonus-crm/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

const offerColumns = `
	id, name, offer_type, bonus_percentage, min_deposit_eur,
	wagering_multiplier, description, currency_conversions,
	created_at, updated_at`

func (r *OfferReadStore) FindByID(ctx context.Context, id int64) (*queries.OfferView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by id", err)
	}
	return toOfferView(o), nil
}

func (r *OfferReadStore) List(ctx context.Context, skip, limit int32) ([]*queries.OfferView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+offerColumns+` FROM offers ORDER BY created_at ASC, id ASC OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	views := []*queries.OfferView{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		views = append(views, toOfferView(o))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}
	return views, nil
}

func (r *OfferReadStore) TranslationsFor(ctx context.Context, offerID int64) ([]*queries.OfferTranslationView, error) {
	translations, err := r.loadTranslations(ctx, offerID)
	if err != nil {
		return nil, err
	}
	views := []*queries.OfferTranslationView{}
	for _, tr := range translations {
		views = append(views, &queries.OfferTranslationView{
			OfferID:     tr.OfferID,
			Language:    tr.Language,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	return views, nil
}

func (r *OfferReadStore) DocumentSource(ctx context.Context, offerID int64) (*offer.Offer, []offer.Translation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, offerID)
	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to load offer", err)
	}
	translations, err := r.loadTranslations(ctx, offerID)
	if err != nil {
		return nil, nil, err
	}
	return o, translations, nil
}

func (r *OfferReadStore) loadTranslations(ctx context.Context, offerID int64) ([]offer.Translation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT offer_id, language, offer_name, offer_description
		 FROM offer_translations WHERE offer_id = $1 ORDER BY language ASC`,
		offerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offer translations", err)
	}
	defer rows.Close()

	var translations []offer.Translation
	for rows.Next() {
		var tr offer.Translation
		if err := rows.Scan(&tr.OfferID, &tr.Language, &tr.Name, &tr.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer translation row", err)
		}
		translations = append(translations, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer translation rows", err)
	}
	return translations, nil
}

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var o offer.Offer
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(
		&o.ID, &o.Name, &o.OfferType, &o.BonusPercentage, &o.MinDepositEUR,
		&o.WageringMultiplier, &o.Description, &o.CurrencyConversions,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	o.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &o, nil
}

func toOfferView(o *offer.Offer) *queries.OfferView {
	return &queries.OfferView{
		ID:                  o.ID,
		Name:                o.Name,
		OfferType:           o.OfferType,
		BonusPercentage:     o.BonusPercentage,
		MinDepositEUR:       o.MinDepositEUR,
		WageringMultiplier:  o.WageringMultiplier,
		Description:         o.Description,
		CurrencyConversions: o.CurrencyConversions,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
