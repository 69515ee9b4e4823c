package commands

import (
	"context"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/clock"
	"bonus-crm/internal/pkg/errs"
	"bonus-crm/internal/usecase/shared"
)

var (
	ErrTemplateAlreadyExists = errs.New("template already exists")
	ErrTemplateNotFound      = errs.New("template not found")
)

// TemplateFields carries every mutable field of a template. Updates are
// full-replace: all fields are written, none are patched.
type TemplateFields struct {
	ScheduleType               string
	ScheduleFrom               string
	ScheduleTo                 string
	TriggerType                string
	TriggerIterations          int32
	TriggerDuration            string
	TriggerName                map[string]string
	TriggerDescription         map[string]string
	MinimumAmount              map[string]float64
	MaximumAmount              map[string]float64
	MinimumStakeToWager        map[string]float64
	MaximumStakeToWager        map[string]float64
	MaximumWithdraw            map[string]float64
	Percentage                 float64
	WageringMultiplier         float64
	IncludeAmountOnTargetWager bool
	CapCalculationToMaximum    bool
	CompensateOverspending     bool
	WithdrawActive             bool
	Category                   string
	Provider                   string
	Brand                      string
	BonusType                  string
}

type UpsertTranslationRequest struct {
	Language    string
	Currency    string
	Name        string
	Description string
}

type TemplateCommands interface {
	Create(ctx context.Context, id string, fields TemplateFields) error
	Update(ctx context.Context, id string, fields TemplateFields) error
	Delete(ctx context.Context, id string) error
	UpsertTranslation(ctx context.Context, templateID string, req UpsertTranslationRequest) error
	DeleteTranslation(ctx context.Context, templateID, language string) error
}

type templateCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTemplateCommands(uow shared.UnitOfWork, clk clock.Clock) TemplateCommands {
	return &templateCommandsImpl{uow: uow, clock: clk}
}

func (uc *templateCommandsImpl) Create(ctx context.Context, id string, fields TemplateFields) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Templates().Exists(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if exists {
			return ErrTemplateAlreadyExists
		}

		now := uc.clock.Now()
		tpl := templateFromFields(id, fields)
		tpl.CreatedAt = now
		tpl.UpdatedAt = now

		if err := tx.Templates().Create(ctx, tx.DB(), tpl); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrTemplateAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (uc *templateCommandsImpl) Update(ctx context.Context, id string, fields TemplateFields) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Templates().Exists(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTemplateNotFound
		}

		tpl := templateFromFields(id, fields)
		tpl.UpdatedAt = uc.clock.Now()
		return tx.Templates().Update(ctx, tx.DB(), tpl)
	})
}

func (uc *templateCommandsImpl) Delete(ctx context.Context, id string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Templates().Delete(ctx, tx.DB(), id)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return err
	})
}

func (uc *templateCommandsImpl) UpsertTranslation(ctx context.Context, templateID string, req UpsertTranslationRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Templates().Exists(ctx, tx.DB(), templateID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTemplateNotFound
		}

		return tx.TemplateTranslations().Upsert(ctx, tx.DB(), &bonus.Translation{
			TemplateID:  templateID,
			Language:    req.Language,
			Currency:    req.Currency,
			Name:        req.Name,
			Description: req.Description,
		})
	})
}

func (uc *templateCommandsImpl) DeleteTranslation(ctx context.Context, templateID, language string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Templates().Exists(ctx, tx.DB(), templateID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTemplateNotFound
		}
		// Absent rows are a no-op by contract.
		return tx.TemplateTranslations().Delete(ctx, tx.DB(), templateID, language)
	})
}

func templateFromFields(id string, f TemplateFields) *bonus.Template {
	return &bonus.Template{
		ID:                         id,
		ScheduleType:               f.ScheduleType,
		ScheduleFrom:               f.ScheduleFrom,
		ScheduleTo:                 f.ScheduleTo,
		TriggerType:                f.TriggerType,
		TriggerIterations:          f.TriggerIterations,
		TriggerDuration:            f.TriggerDuration,
		TriggerName:                f.TriggerName,
		TriggerDescription:         f.TriggerDescription,
		MinimumAmount:              f.MinimumAmount,
		MaximumAmount:              f.MaximumAmount,
		MinimumStakeToWager:        f.MinimumStakeToWager,
		MaximumStakeToWager:        f.MaximumStakeToWager,
		MaximumWithdraw:            f.MaximumWithdraw,
		Percentage:                 f.Percentage,
		WageringMultiplier:         f.WageringMultiplier,
		IncludeAmountOnTargetWager: f.IncludeAmountOnTargetWager,
		CapCalculationToMaximum:    f.CapCalculationToMaximum,
		CompensateOverspending:     f.CompensateOverspending,
		WithdrawActive:             f.WithdrawActive,
		Category:                   f.Category,
		Provider:                   f.Provider,
		Brand:                      f.Brand,
		BonusType:                  f.BonusType,
	}
}
