//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/infra"
	"bonus-crm/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeTemplateReadStore records the arguments of the last call so tests can
// assert on the window/paging values the query layer derives.
type fakeTemplateReadStore struct {
	views        []*queries.TemplateView
	searchQuery  string
	searchFrom   *time.Time
	searchTo     *time.Time
	windowFrom   time.Time
	windowTo     time.Time
	listSkip     int32
	listLimit    int32
	translations []*queries.TemplateTranslationView
	docTemplate  *bonus.Template
}

// Misses surface as repository-kind errors, the way the real store
// reports them, so the sentinel mapping in the query layer is covered.
func (f *fakeTemplateReadStore) FindByID(_ context.Context, id string) (*queries.TemplateView, error) {
	for _, v := range f.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
}

func (f *fakeTemplateReadStore) List(_ context.Context, skip, limit int32) ([]*queries.TemplateView, error) {
	f.listSkip, f.listLimit = skip, limit
	return f.views, nil
}

func (f *fakeTemplateReadStore) Search(_ context.Context, query string, from, to *time.Time) ([]*queries.TemplateView, error) {
	f.searchQuery, f.searchFrom, f.searchTo = query, from, to
	return f.views, nil
}

func (f *fakeTemplateReadStore) ListByCreatedWindow(_ context.Context, from, to time.Time, skip, limit int32) ([]*queries.TemplateView, error) {
	f.windowFrom, f.windowTo = from, to
	f.listSkip, f.listLimit = skip, limit
	return f.views, nil
}

func (f *fakeTemplateReadStore) TranslationsFor(_ context.Context, _ string) ([]*queries.TemplateTranslationView, error) {
	return f.translations, nil
}

func (f *fakeTemplateReadStore) DocumentSource(_ context.Context, id string) (*bonus.Template, []bonus.Translation, error) {
	if f.docTemplate == nil || f.docTemplate.ID != id {
		return nil, nil, infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return f.docTemplate, nil, nil
}

type TemplateQueriesTestSuite struct {
	suite.Suite
	store *fakeTemplateReadStore
	q     queries.TemplateQueries
}

func (s *TemplateQueriesTestSuite) SetupTest() {
	s.store = &fakeTemplateReadStore{}
	s.q = queries.NewTemplateQueries(s.store)
}

func TestTemplateQueriesSuite(t *testing.T) {
	suite.Run(t, new(TemplateQueriesTestSuite))
}

func (s *TemplateQueriesTestSuite) TestSearch() {
	ctx := s.T().Context()
	s.store.views = []*queries.TemplateView{{ID: "welcome-100"}}

	s.Run("empty query is rejected", func() {
		_, err := s.q.Search(ctx, "   ")
		s.ErrorIs(err, queries.ErrEmptySearchQuery)
	})

	s.Run("plain text query carries no window", func() {
		_, err := s.q.Search(ctx, "welcome")
		s.Require().NoError(err)
		s.Equal("welcome", s.store.searchQuery)
		s.Nil(s.store.searchFrom)
		s.Nil(s.store.searchTo)
	})

	s.Run("full date query derives a one-day window", func() {
		_, err := s.q.Search(ctx, "2024-05-10")
		s.Require().NoError(err)
		s.Require().NotNil(s.store.searchFrom)
		s.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), *s.store.searchFrom)
		s.Equal(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), *s.store.searchTo)
	})

	s.Run("year-month query derives a one-month window", func() {
		_, err := s.q.Search(ctx, "2024-05")
		s.Require().NoError(err)
		s.Require().NotNil(s.store.searchFrom)
		s.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *s.store.searchFrom)
		s.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *s.store.searchTo)
	})

	s.Run("bare year query derives a one-year window", func() {
		_, err := s.q.Search(ctx, "2024")
		s.Require().NoError(err)
		s.Require().NotNil(s.store.searchFrom)
		s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *s.store.searchFrom)
		s.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *s.store.searchTo)
	})

	s.Run("malformed date-length query stays a substring match", func() {
		_, err := s.q.Search(ctx, "2024-13-99")
		s.Require().NoError(err)
		s.Nil(s.store.searchFrom)
	})

	s.Run("zero matches", func() {
		s.store.views = nil
		_, err := s.q.Search(ctx, "nothing")
		s.ErrorIs(err, queries.ErrNoSearchResults)
	})
}

func (s *TemplateQueriesTestSuite) TestListByMonth() {
	ctx := s.T().Context()

	s.Run("derives the month window", func() {
		_, err := s.q.ListByMonth(ctx, 2024, 2, 0, 0)
		s.Require().NoError(err)
		s.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), s.store.windowFrom)
		s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), s.store.windowTo)
	})

	s.Run("invalid month values", func() {
		for _, pair := range [][2]int{{2024, 0}, {2024, 13}, {0, 5}} {
			_, err := s.q.ListByMonth(ctx, pair[0], pair[1], 0, 0)
			s.ErrorIs(err, queries.ErrInvalidMonth)
		}
	})
}

func (s *TemplateQueriesTestSuite) TestListPaging() {
	ctx := s.T().Context()

	s.Run("defaults apply when limit is unset", func() {
		_, err := s.q.List(ctx, 0, 0)
		s.Require().NoError(err)
		s.Equal(int32(queries.DefaultListLimit), s.store.listLimit)
	})

	s.Run("limit is capped", func() {
		_, err := s.q.List(ctx, 0, 10000)
		s.Require().NoError(err)
		s.Equal(int32(queries.MaxListLimit), s.store.listLimit)
	})

	s.Run("negative skip is clamped", func() {
		_, err := s.q.List(ctx, -5, 10)
		s.Require().NoError(err)
		s.Equal(int32(0), s.store.listSkip)
		s.Equal(int32(10), s.store.listLimit)
	})
}

func (s *TemplateQueriesTestSuite) TestRenderDocument() {
	ctx := s.T().Context()

	s.Run("unknown template", func() {
		_, err := s.q.RenderDocument(ctx, "missing")
		s.ErrorIs(err, queries.ErrTemplateNotFound)
	})

	s.Run("renders the currency-expanded document", func() {
		s.store.docTemplate = &bonus.Template{
			ID:            "welcome-100",
			MinimumAmount: map[string]float64{"EUR": 25},
			MaximumAmount: map[string]float64{"EUR": 300},
		}

		doc, err := s.q.RenderDocument(ctx, "welcome-100")
		s.Require().NoError(err)
		s.Equal("welcome-100", doc.ID)
		s.Equal(250.0, doc.Trigger.MinimumAmount["NOK"])
	})
}

func TestGetByIDNotFoundMapping(t *testing.T) {
	store := &fakeTemplateReadStore{}
	q := queries.NewTemplateQueries(store)

	_, err := q.GetByID(t.Context(), "missing")
	require.ErrorIs(t, err, queries.ErrTemplateNotFound)

	store.views = []*queries.TemplateView{{ID: "welcome-100"}}
	view, err := q.GetByID(t.Context(), "welcome-100")
	require.NoError(t, err)
	assert.Equal(t, "welcome-100", view.ID)
}
