package api

import (
	"errors"
	"net/http"

	reqdto "bonus-crm/internal/handler/dto/request"
	resdto "bonus-crm/internal/handler/dto/response"
	"bonus-crm/internal/handler/httperr"
	"bonus-crm/internal/usecase/commands"
	"bonus-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LanguageHandler struct {
	cmds commands.LanguageCommands
	q    queries.LanguageQueries
}

func NewLanguageHandler(cmds commands.LanguageCommands, q queries.LanguageQueries) *LanguageHandler {
	return &LanguageHandler{cmds: cmds, q: q}
}

// @Summary List custom languages
// @Tags languages
// @Produce json
// @Success 200 {array} resdto.LanguageResponse
// @Router /custom-languages [get]
func (h *LanguageHandler) ListCustom(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list languages", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomLanguages(views))
}

// @Summary Create custom language
// @Description Registers a language; the code is lower-cased and must be unique
// @Tags languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLanguageRequest true "Language"
// @Success 201 {object} resdto.LanguageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /custom-languages [post]
func (h *LanguageHandler) Create(c *gin.Context) {
	var req reqdto.CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	lang, err := h.cmds.Create(c.Request.Context(), req.Code, req.Name)
	if err != nil {
		// Duplicate codes are a client error, not a conflict, matching the
		// behavior the frontend expects.
		if errors.Is(err, commands.ErrLanguageCodeTaken) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Language code already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create language failed", nil)
		return
	}
	c.JSON(http.StatusCreated, &resdto.LanguageResponse{Code: lang.Code, Name: lang.Name, IsCustom: true})
}

// @Summary Delete custom language
// @Tags languages
// @Security BearerAuth
// @Param code path string true "Language code"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /custom-languages/{code} [delete]
func (h *LanguageHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("code")); err != nil {
		if errors.Is(err, commands.ErrLanguageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Language not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete language failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List supported languages
// @Description Static base languages merged with custom ones, plus currency variant keys
// @Tags languages
// @Produce json
// @Success 200 {object} resdto.LanguageListResponse
// @Router /languages [get]
func (h *LanguageHandler) ListAll(c *gin.Context) {
	custom, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list languages", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewLanguageList(custom))
}

// @Summary List supported currencies
// @Description Static EUR-based conversion reference sheet
// @Tags currencies
// @Produce json
// @Success 200 {array} resdto.CurrencyResponse
// @Router /currencies [get]
func (h *LanguageHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewCurrencyList())
}
