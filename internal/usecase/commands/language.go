package commands

import (
	"context"
	"strings"

	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/errs"
	"bonus-crm/internal/usecase/shared"
)

var (
	ErrLanguageCodeTaken = errs.New("language code already exists")
	ErrLanguageNotFound  = errs.New("language not found")
)

type LanguageCommands interface {
	Create(ctx context.Context, code, name string) (*shared.CustomLanguage, error)
	Delete(ctx context.Context, code string) error
}

type languageCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLanguageCommands(uow shared.UnitOfWork) LanguageCommands {
	return &languageCommandsImpl{uow: uow}
}

func (uc *languageCommandsImpl) Create(ctx context.Context, code, name string) (*shared.CustomLanguage, error) {
	lang := &shared.CustomLanguage{
		Code: strings.ToLower(code),
		Name: name,
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Languages().ExistsByCode(ctx, tx.DB(), lang.Code)
		if err != nil {
			return err
		}
		if exists {
			return ErrLanguageCodeTaken
		}

		if err := tx.Languages().Create(ctx, tx.DB(), lang); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrLanguageCodeTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lang, nil
}

func (uc *languageCommandsImpl) Delete(ctx context.Context, code string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Languages().Delete(ctx, tx.DB(), strings.ToLower(code))
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLanguageNotFound
		}
		return err
	})
}
