package queries

import (
	"context"
	"strings"
	"time"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/errs"
)

var (
	ErrTemplateNotFound = errs.New("template not found")
	ErrEmptySearchQuery = errs.New("search query cannot be empty")
	ErrNoSearchResults  = errs.New("no templates matched the query")
	ErrInvalidMonth     = errs.New("invalid year or month")
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 200
)

// TemplateView represents read-optimized bonus template data
type TemplateView struct {
	ID                         string             `json:"id"`
	ScheduleType               string             `json:"schedule_type"`
	ScheduleFrom               string             `json:"schedule_from"`
	ScheduleTo                 string             `json:"schedule_to"`
	TriggerType                string             `json:"trigger_type"`
	TriggerIterations          int32              `json:"trigger_iterations"`
	TriggerDuration            string             `json:"trigger_duration"`
	TriggerName                map[string]string  `json:"trigger_name"`
	TriggerDescription         map[string]string  `json:"trigger_description"`
	MinimumAmount              map[string]float64 `json:"minimum_amount"`
	MaximumAmount              map[string]float64 `json:"maximum_amount"`
	MinimumStakeToWager        map[string]float64 `json:"minimum_stake_to_wager"`
	MaximumStakeToWager        map[string]float64 `json:"maximum_stake_to_wager"`
	MaximumWithdraw            map[string]float64 `json:"maximum_withdraw"`
	Percentage                 float64            `json:"percentage"`
	WageringMultiplier         float64            `json:"wagering_multiplier"`
	IncludeAmountOnTargetWager bool               `json:"include_amount_on_target_wager"`
	CapCalculationToMaximum    bool               `json:"cap_calculation_to_maximum"`
	CompensateOverspending     bool               `json:"compensate_overspending"`
	WithdrawActive             bool               `json:"withdraw_active"`
	Category                   string             `json:"category"`
	Provider                   string             `json:"provider"`
	Brand                      string             `json:"brand"`
	BonusType                  string             `json:"bonus_type"`
	CreatedAt                  time.Time          `json:"created_at"`
	UpdatedAt                  time.Time          `json:"updated_at"`
}

// TemplateTranslationView represents one translation row of a template
type TemplateTranslationView struct {
	TemplateID  string `json:"template_id"`
	Language    string `json:"language"`
	Currency    string `json:"currency,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TemplateReadStore interface {
	FindByID(ctx context.Context, id string) (*TemplateView, error)
	List(ctx context.Context, skip, limit int32) ([]*TemplateView, error)
	// Search matches id/provider/brand/category by case-insensitive
	// substring, OR-combined with a creation window when one is given.
	Search(ctx context.Context, query string, from, to *time.Time) ([]*TemplateView, error)
	ListByCreatedWindow(ctx context.Context, from, to time.Time, skip, limit int32) ([]*TemplateView, error)
	TranslationsFor(ctx context.Context, templateID string) ([]*TemplateTranslationView, error)
	DocumentSource(ctx context.Context, templateID string) (*bonus.Template, []bonus.Translation, error)
}

type TemplateQueries interface {
	GetByID(ctx context.Context, id string) (*TemplateView, error)
	List(ctx context.Context, skip, limit int) ([]*TemplateView, error)
	Search(ctx context.Context, query string) ([]*TemplateView, error)
	ListByMonth(ctx context.Context, year, month, skip, limit int) ([]*TemplateView, error)
	Translations(ctx context.Context, templateID string) ([]*TemplateTranslationView, error)
	RenderDocument(ctx context.Context, templateID string) (*bonus.Document, error)
}

type templateQueriesImpl struct {
	store TemplateReadStore
}

func NewTemplateQueries(store TemplateReadStore) TemplateQueries {
	return &templateQueriesImpl{store: store}
}

func (q *templateQueriesImpl) GetByID(ctx context.Context, id string) (*TemplateView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *templateQueriesImpl) List(ctx context.Context, skip, limit int) ([]*TemplateView, error) {
	offset, window := normalizePage(skip, limit)
	return q.store.List(ctx, offset, window)
}

func (q *templateQueriesImpl) Search(ctx context.Context, query string) ([]*TemplateView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	from, to := parseCreatedWindow(query)
	views, err := q.store.Search(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoSearchResults
	}
	return views, nil
}

func (q *templateQueriesImpl) ListByMonth(ctx context.Context, year, month, skip, limit int) ([]*TemplateView, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	offset, window := normalizePage(skip, limit)
	return q.store.ListByCreatedWindow(ctx, from, to, offset, window)
}

func (q *templateQueriesImpl) Translations(ctx context.Context, templateID string) ([]*TemplateTranslationView, error) {
	if _, err := q.GetByID(ctx, templateID); err != nil {
		return nil, err
	}
	return q.store.TranslationsFor(ctx, templateID)
}

func (q *templateQueriesImpl) RenderDocument(ctx context.Context, templateID string) (*bonus.Document, error) {
	tpl, translations, err := q.store.DocumentSource(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return bonus.AssembleDocumentWithCurrencies(tpl, translations), nil
}

// parseCreatedWindow interprets a query shaped like a full date, a
// year-month, or a bare year as a creation-time window. Anything else
// (including malformed numeric-looking queries) stays a plain substring
// condition, deliberately.
func parseCreatedWindow(query string) (*time.Time, *time.Time) {
	switch len(query) {
	case len("2006-01-02"):
		if day, err := time.ParseInLocation("2006-01-02", query, time.UTC); err == nil {
			to := day.AddDate(0, 0, 1)
			return &day, &to
		}
	case len("2006-01"):
		if month, err := time.ParseInLocation("2006-01", query, time.UTC); err == nil {
			to := month.AddDate(0, 1, 0)
			return &month, &to
		}
	case len("2006"):
		if year, err := time.ParseInLocation("2006", query, time.UTC); err == nil {
			to := year.AddDate(1, 0, 0)
			return &year, &to
		}
	}
	return nil, nil
}

func normalizePage(skip, limit int) (int32, int32) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return int32(skip), int32(limit)
}
