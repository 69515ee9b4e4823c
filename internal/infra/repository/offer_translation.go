package repository

import (
	"context"

	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
)

type OfferTranslationRepository struct{}

func NewOfferTranslationRepository() *OfferTranslationRepository {
	return &OfferTranslationRepository{}
}

// ReplaceAll implements the wholesale delete-then-reinsert contract for an
// offer's translation set. Callers run it inside a unit of work.
func (r *OfferTranslationRepository) ReplaceAll(ctx context.Context, dbtx db.DBTX, offerID int64, translations []offer.Translation) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM offer_translations WHERE offer_id = $1`, offerID); err != nil {
		return infra.WrapRepoErr("failed to clear offer translations", err)
	}

	for _, tr := range translations {
		_, err := dbtx.Exec(ctx,
			`INSERT INTO offer_translations (offer_id, language, offer_name, offer_description)
			 VALUES ($1, $2, $3, $4)`,
			offerID, tr.Language, tr.Name, tr.Description,
		)
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("offer not found", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert offer translation", err)
		}
	}
	return nil
}
