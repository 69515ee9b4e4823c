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

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Create offer
// @Description Create an offer; currency conversions are derived from the EUR deposit
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OfferBody true "Create offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.OfferBody
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create offer failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.OfferID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary List offers
// @Tags offers
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.OfferResponse
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	skip, limit := pageParams(c)
	views, err := h.q.List(c.Request.Context(), skip, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferList(views))
}

// @Summary Update offer
// @Description Full-replace update; conversions are recomputed only when the EUR deposit changes
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param request body reqdto.OfferBody true "Update offer request"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.OfferBody
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToFields()); err != nil {
		if errors.Is(err, commands.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update offer failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Delete offer
// @Description Deletes the offer and all its translations
// @Tags offers
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete offer failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Replace offer translations
// @Description Replaces the whole translation set in one transaction
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param request body reqdto.ReplaceOfferTranslationsRequest true "Translations"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id}/translations [post]
func (h *OfferHandler) ReplaceTranslations(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ReplaceOfferTranslationsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.ReplaceTranslations(c.Request.Context(), id, req.ToFields()); err != nil {
		if errors.Is(err, commands.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Replace translations failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary List offer translations
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {array} resdto.OfferTranslationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id}/translations [get]
func (h *OfferHandler) ListTranslations(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.Translations(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list translations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferTranslations(views))
}

// @Summary Render offer document
// @Description Denormalized JSON document with cached deposit conversions
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} offer.Document
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id}/json [get]
func (h *OfferHandler) RenderDocument(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	doc, err := h.q.RenderDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render document", nil)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func offerID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
