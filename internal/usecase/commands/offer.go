package commands

import (
	"context"

	"bonus-crm/internal/domain/currency"
	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/clock"
	"bonus-crm/internal/pkg/errs"
	"bonus-crm/internal/usecase/shared"
)

var ErrOfferNotFound = errs.New("offer not found")

// OfferFields carries every mutable field of an offer; updates are
// full-replace. Currency conversions are derived, never caller-supplied.
type OfferFields struct {
	Name               string
	OfferType          string
	BonusPercentage    float64
	MinDepositEUR      float64
	WageringMultiplier float64
	Description        string
}

type OfferTranslationFields struct {
	Language    string
	Name        string
	Description string
}

type CreateOfferResult struct {
	OfferID int64
}

type OfferCommands interface {
	Create(ctx context.Context, fields OfferFields) (*CreateOfferResult, error)
	Update(ctx context.Context, id int64, fields OfferFields) error
	Delete(ctx context.Context, id int64) error
	ReplaceTranslations(ctx context.Context, offerID int64, translations []OfferTranslationFields) error
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerCommandsImpl) Create(ctx context.Context, fields OfferFields) (*CreateOfferResult, error) {
	now := uc.clock.Now()
	o := &offer.Offer{
		Name:                fields.Name,
		OfferType:           fields.OfferType,
		BonusPercentage:     fields.BonusPercentage,
		MinDepositEUR:       fields.MinDepositEUR,
		WageringMultiplier:  fields.WageringMultiplier,
		Description:         fields.Description,
		CurrencyConversions: currency.ConvertAll(fields.MinDepositEUR),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Offers().Create(ctx, tx.DB(), o)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateOfferResult{OfferID: createdID}, nil
}

func (uc *offerCommandsImpl) Update(ctx context.Context, id int64, fields OfferFields) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Offers().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return err
		}

		// Conversions are recomputed only when the EUR deposit changed.
		conversions := current.CurrencyConversions
		if fields.MinDepositEUR != current.MinDepositEUR {
			conversions = currency.ConvertAll(fields.MinDepositEUR)
		}

		updated := &offer.Offer{
			ID:                  id,
			Name:                fields.Name,
			OfferType:           fields.OfferType,
			BonusPercentage:     fields.BonusPercentage,
			MinDepositEUR:       fields.MinDepositEUR,
			WageringMultiplier:  fields.WageringMultiplier,
			Description:         fields.Description,
			CurrencyConversions: conversions,
			CreatedAt:           current.CreatedAt,
			UpdatedAt:           uc.clock.Now(),
		}
		return tx.Offers().Update(ctx, tx.DB(), updated)
	})
}

func (uc *offerCommandsImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Offers().Delete(ctx, tx.DB(), id)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOfferNotFound
		}
		return err
	})
}

func (uc *offerCommandsImpl) ReplaceTranslations(ctx context.Context, offerID int64, translations []OfferTranslationFields) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Offers().FindByID(ctx, tx.DB(), offerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return err
		}

		rows := make([]offer.Translation, 0, len(translations))
		for _, tr := range translations {
			rows = append(rows, offer.Translation{
				OfferID:     offerID,
				Language:    tr.Language,
				Name:        tr.Name,
				Description: tr.Description,
			})
		}
		return tx.OfferTranslations().ReplaceAll(ctx, tx.DB(), offerID, rows)
	})
}
