//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bonus-crm/internal/domain/bonus"
	"bonus-crm/internal/handler/api"
	"bonus-crm/internal/usecase/commands"
	"bonus-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// stubTemplateCommands lets each test inject just the behavior it needs.
type stubTemplateCommands struct {
	createFn func(ctx context.Context, id string, fields commands.TemplateFields) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubTemplateCommands) Create(ctx context.Context, id string, fields commands.TemplateFields) error {
	return s.createFn(ctx, id, fields)
}

func (s *stubTemplateCommands) Update(context.Context, string, commands.TemplateFields) error {
	return nil
}

func (s *stubTemplateCommands) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTemplateCommands) UpsertTranslation(context.Context, string, commands.UpsertTranslationRequest) error {
	return nil
}

func (s *stubTemplateCommands) DeleteTranslation(context.Context, string, string) error {
	return nil
}

type stubTemplateQueries struct {
	getFn    func(ctx context.Context, id string) (*queries.TemplateView, error)
	searchFn func(ctx context.Context, query string) ([]*queries.TemplateView, error)
	renderFn func(ctx context.Context, id string) (*bonus.Document, error)
}

func (s *stubTemplateQueries) GetByID(ctx context.Context, id string) (*queries.TemplateView, error) {
	return s.getFn(ctx, id)
}

func (s *stubTemplateQueries) List(context.Context, int, int) ([]*queries.TemplateView, error) {
	return []*queries.TemplateView{}, nil
}

func (s *stubTemplateQueries) Search(ctx context.Context, query string) ([]*queries.TemplateView, error) {
	return s.searchFn(ctx, query)
}

func (s *stubTemplateQueries) ListByMonth(context.Context, int, int, int, int) ([]*queries.TemplateView, error) {
	return []*queries.TemplateView{}, nil
}

func (s *stubTemplateQueries) Translations(context.Context, string) ([]*queries.TemplateTranslationView, error) {
	return []*queries.TemplateTranslationView{}, nil
}

func (s *stubTemplateQueries) RenderDocument(ctx context.Context, id string) (*bonus.Document, error) {
	return s.renderFn(ctx, id)
}

type TemplateHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *stubTemplateCommands
	q      *stubTemplateQueries
}

func (s *TemplateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cmds = &stubTemplateCommands{
		createFn: func(context.Context, string, commands.TemplateFields) error { return nil },
		deleteFn: func(context.Context, string) error { return nil },
	}
	s.q = &stubTemplateQueries{
		getFn: func(_ context.Context, id string) (*queries.TemplateView, error) {
			return &queries.TemplateView{ID: id}, nil
		},
		searchFn: func(context.Context, string) ([]*queries.TemplateView, error) {
			return []*queries.TemplateView{}, nil
		},
		renderFn: func(_ context.Context, id string) (*bonus.Document, error) {
			return &bonus.Document{ID: id}, nil
		},
	}
	handler := api.NewTemplateHandler(s.cmds, s.q)

	s.router.POST("/bonus-templates", handler.Create)
	s.router.GET("/bonus-templates/search", handler.Search)
	s.router.GET("/bonus-templates/:id", handler.Get)
	s.router.DELETE("/bonus-templates/:id", handler.Delete)
	s.router.GET("/bonus-templates/:id/json", handler.RenderDocument)
}

func TestTemplateHandlerSuite(t *testing.T) {
	suite.Run(t, new(TemplateHandlerTestSuite))
}

func (s *TemplateHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"id":            "welcome-100",
		"schedule_type": "recurring",
		"trigger_type":  "deposit",
	}
}

func (s *TemplateHandlerTestSuite) TestCreate() {
	s.Run("valid request returns 201 with the stored view", func() {
		rec := s.perform(http.MethodPost, "/bonus-templates", validCreateBody())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "welcome-100")
	})

	s.Run("missing id is a binding failure", func() {
		body := validCreateBody()
		delete(body, "id")
		rec := s.perform(http.MethodPost, "/bonus-templates", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing trigger_type is a binding failure", func() {
		body := validCreateBody()
		delete(body, "trigger_type")
		rec := s.perform(http.MethodPost, "/bonus-templates", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("duplicate id maps to 409", func() {
		s.cmds.createFn = func(context.Context, string, commands.TemplateFields) error {
			return commands.ErrTemplateAlreadyExists
		}
		rec := s.perform(http.MethodPost, "/bonus-templates", validCreateBody())
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *TemplateHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		rec := s.perform(http.MethodGet, "/bonus-templates/welcome-100", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("not found maps to 404", func() {
		s.q.getFn = func(context.Context, string) (*queries.TemplateView, error) {
			return nil, queries.ErrTemplateNotFound
		}
		rec := s.perform(http.MethodGet, "/bonus-templates/missing", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TemplateHandlerTestSuite) TestSearch() {
	s.Run("empty query maps to 400", func() {
		s.q.searchFn = func(context.Context, string) ([]*queries.TemplateView, error) {
			return nil, queries.ErrEmptySearchQuery
		}
		rec := s.perform(http.MethodGet, "/bonus-templates/search", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("no matches maps to 404", func() {
		s.q.searchFn = func(context.Context, string) ([]*queries.TemplateView, error) {
			return nil, queries.ErrNoSearchResults
		}
		rec := s.perform(http.MethodGet, "/bonus-templates/search?q=nothing", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TemplateHandlerTestSuite) TestDelete() {
	s.Run("success returns 204", func() {
		rec := s.perform(http.MethodDelete, "/bonus-templates/welcome-100", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown id maps to 404", func() {
		s.cmds.deleteFn = func(context.Context, string) error {
			return commands.ErrTemplateNotFound
		}
		rec := s.perform(http.MethodDelete, "/bonus-templates/missing", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TemplateHandlerTestSuite) TestRenderDocument() {
	rec := s.perform(http.MethodGet, "/bonus-templates/welcome-100/json", nil)
	s.Equal(http.StatusOK, rec.Code)

	var doc map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Equal("welcome-100", doc["id"])
	s.Contains(doc, "schedule")
	s.Contains(doc, "trigger")
	s.Contains(doc, "config")
}
