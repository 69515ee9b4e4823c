package shared

import (
	"context"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/domain/offer"
	"bonus-crm/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Templates() TemplateRepository
	TemplateTranslations() TemplateTranslationRepository
	Offers() OfferRepository
	OfferTranslations() OfferTranslationRepository
	Languages() LanguageRepository
	DB() db.DBTX
}

type TemplateRepository interface {
	Create(ctx context.Context, db db.DBTX, tpl *bonus.Template) error
	Update(ctx context.Context, db db.DBTX, tpl *bonus.Template) error
	Delete(ctx context.Context, db db.DBTX, id string) error
	Exists(ctx context.Context, db db.DBTX, id string) (bool, error)
}

type TemplateTranslationRepository interface {
	// Upsert overwrites the row for (template_id, language) when present.
	Upsert(ctx context.Context, db db.DBTX, tr *bonus.Translation) error
	// Delete is a no-op when the row is absent.
	Delete(ctx context.Context, db db.DBTX, templateID, language string) error
}

type OfferRepository interface {
	Create(ctx context.Context, db db.DBTX, o *offer.Offer) (int64, error)
	FindByID(ctx context.Context, db db.DBTX, id int64) (*offer.Offer, error)
	Update(ctx context.Context, db db.DBTX, o *offer.Offer) error
	Delete(ctx context.Context, db db.DBTX, id int64) error
}

type OfferTranslationRepository interface {
	// ReplaceAll deletes every translation for the offer and inserts the
	// provided rows in one transaction step.
	ReplaceAll(ctx context.Context, db db.DBTX, offerID int64, translations []offer.Translation) error
}

// CustomLanguage is a user-defined (code, name) pair; codes are stored
// lower-cased and unique.
type CustomLanguage struct {
	Code string
	Name string
}

type LanguageRepository interface {
	Create(ctx context.Context, db db.DBTX, lang *CustomLanguage) error
	Delete(ctx context.Context, db db.DBTX, code string) error
	ExistsByCode(ctx context.Context, db db.DBTX, code string) (bool, error)
}
