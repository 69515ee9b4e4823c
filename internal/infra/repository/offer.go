package repository

import (
	"context"

	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

const createOfferSQL = `
INSERT INTO offers (
	name, offer_type, bonus_percentage, min_deposit_eur,
	wagering_multiplier, description, currency_conversions,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *OfferRepository) Create(ctx context.Context, dbtx db.DBTX, o *offer.Offer) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, createOfferSQL,
		o.Name, o.OfferType, o.BonusPercentage, o.MinDepositEUR,
		o.WageringMultiplier, o.Description, nonNilAmountMap(o.CurrencyConversions),
		pgconv.TimeToPgtype(o.CreatedAt), pgconv.TimeToPgtype(o.UpdatedAt),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create offer", err)
	}
	return id, nil
}

const findOfferSQL = `
SELECT id, name, offer_type, bonus_percentage, min_deposit_eur,
       wagering_multiplier, description, currency_conversions,
       created_at, updated_at
FROM offers
WHERE id = $1`

func (r *OfferRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*offer.Offer, error) {
	var o offer.Offer
	var createdAt, updatedAt pgtype.Timestamptz
	err := dbtx.QueryRow(ctx, findOfferSQL, id).Scan(
		&o.ID, &o.Name, &o.OfferType, &o.BonusPercentage, &o.MinDepositEUR,
		&o.WageringMultiplier, &o.Description, &o.CurrencyConversions,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}
	o.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	o.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &o, nil
}

const updateOfferSQL = `
UPDATE offers SET
	name = $2, offer_type = $3, bonus_percentage = $4, min_deposit_eur = $5,
	wagering_multiplier = $6, description = $7, currency_conversions = $8,
	updated_at = $9
WHERE id = $1`

func (r *OfferRepository) Update(ctx context.Context, dbtx db.DBTX, o *offer.Offer) error {
	tag, err := dbtx.Exec(ctx, updateOfferSQL,
		o.ID, o.Name, o.OfferType, o.BonusPercentage, o.MinDepositEUR,
		o.WageringMultiplier, o.Description, nonNilAmountMap(o.CurrencyConversions),
		pgconv.TimeToPgtype(o.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}
