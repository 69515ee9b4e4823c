package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "bonus-crm/internal/handler/dto/request"
	resdto "bonus-crm/internal/handler/dto/response"
	"bonus-crm/internal/handler/httperr"
	"bonus-crm/internal/usecase/commands"
	"bonus-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	cmds commands.TemplateCommands
	q    queries.TemplateQueries
}

func NewTemplateHandler(cmds commands.TemplateCommands, q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{cmds: cmds, q: q}
}

// @Summary Create bonus template
// @Description Create a new bonus template with a caller-supplied ID
// @Tags bonus-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTemplateRequest true "Create template request"
// @Success 201 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bonus-templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Create(c.Request.Context(), req.ID, req.ToFields()); err != nil {
		if errors.Is(err, commands.ErrTemplateAlreadyExists) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Template already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create template failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTemplateView(view))
}

// @Summary Get bonus template
// @Tags bonus-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary List bonus templates
// @Tags bonus-templates
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.TemplateResponse
// @Router /bonus-templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	skip, limit := pageParams(c)
	views, err := h.q.List(c.Request.Context(), skip, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list templates", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateList(views))
}

// @Summary Search bonus templates
// @Description Case-insensitive substring match on id/provider/brand/category; date-shaped queries also match the creation window
// @Tags bonus-templates
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/search [get]
func (h *TemplateHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEmptySearchQuery):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Search query cannot be empty", nil)
		case errors.Is(err, queries.ErrNoSearchResults):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No templates matched", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateList(views))
}

// @Summary List bonus templates created in a month
// @Tags bonus-templates
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Router /bonus-templates/by-month [get]
func (h *TemplateHandler) ListByMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errY, errM), "Invalid year or month", nil)
		return
	}
	skip, limit := pageParams(c)
	views, err := h.q.ListByMonth(c.Request.Context(), year, month, skip, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidMonth) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid year or month", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list templates", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateList(views))
}

// @Summary Update bonus template
// @Description Full-replace update of every mutable field
// @Tags bonus-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.UpdateTemplateRequest true "Update template request"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req reqdto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToFields()); err != nil {
		if errors.Is(err, commands.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update template failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary Delete bonus template
// @Description Deletes the template and all its translations
// @Tags bonus-templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, commands.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete template failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upsert template translation
// @Description Insert or overwrite the translation for (template, language)
// @Tags bonus-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.UpsertTranslationRequest true "Translation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id}/translations [post]
func (h *TemplateHandler) UpsertTranslation(c *gin.Context) {
	var req reqdto.UpsertTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpsertTranslation(c.Request.Context(), c.Param("id"), req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Upsert translation failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary List template translations
// @Tags bonus-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {array} resdto.TemplateTranslationResponse
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id}/translations [get]
func (h *TemplateHandler) ListTranslations(c *gin.Context) {
	views, err := h.q.Translations(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list translations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateTranslations(views))
}

// @Summary Delete template translation
// @Description Removes the translation for (template, language); absent rows are a no-op
// @Tags bonus-templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param language path string true "Language code"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id}/translations/{language} [delete]
func (h *TemplateHandler) DeleteTranslation(c *gin.Context) {
	if err := h.cmds.DeleteTranslation(c.Request.Context(), c.Param("id"), c.Param("language")); err != nil {
		if errors.Is(err, commands.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete translation failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Render bonus template document
// @Description Denormalized JSON document with per-currency amount expansion
// @Tags bonus-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} bonus.Document
// @Failure 404 {object} map[string]string
// @Router /bonus-templates/{id}/json [get]
func (h *TemplateHandler) RenderDocument(c *gin.Context) {
	doc, err := h.q.RenderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render document", nil)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func pageParams(c *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return skip, limit
}
