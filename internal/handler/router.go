package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bonus-crm/internal/handler/api"
	"bonus-crm/internal/handler/middleware"
	"bonus-crm/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	templateHandler *api.TemplateHandler,
	offerHandler *api.OfferHandler,
	languageHandler *api.LanguageHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, templateHandler, offerHandler, languageHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	templateHandler *api.TemplateHandler,
	offerHandler *api.OfferHandler,
	languageHandler *api.LanguageHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		templates := apiGroup.Group("/bonus-templates")
		{
			addRoutes(templates, []route{
				{Method: http.MethodGet, Path: "", Handler: templateHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: templateHandler.Search},
				{Method: http.MethodGet, Path: "/by-month", Handler: templateHandler.ListByMonth},
				{Method: http.MethodGet, Path: "/:id", Handler: templateHandler.Get},
				{Method: http.MethodGet, Path: "/:id/translations", Handler: templateHandler.ListTranslations},
				{Method: http.MethodGet, Path: "/:id/json", Handler: templateHandler.RenderDocument},
				{Method: http.MethodPost, Path: "", Handler: templateHandler.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: templateHandler.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: templateHandler.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/translations", Handler: templateHandler.UpsertTranslation, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id/translations/:language", Handler: templateHandler.DeleteTranslation, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: offerHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: offerHandler.Get},
				{Method: http.MethodGet, Path: "/:id/translations", Handler: offerHandler.ListTranslations},
				{Method: http.MethodGet, Path: "/:id/json", Handler: offerHandler.RenderDocument},
				{Method: http.MethodPost, Path: "", Handler: offerHandler.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: offerHandler.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: offerHandler.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/translations", Handler: offerHandler.ReplaceTranslations, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		languages := apiGroup.Group("/custom-languages")
		{
			addRoutes(languages, []route{
				{Method: http.MethodGet, Path: "", Handler: languageHandler.ListCustom},
				{Method: http.MethodPost, Path: "", Handler: languageHandler.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:code", Handler: languageHandler.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/languages", Handler: languageHandler.ListAll},
			{Method: http.MethodGet, Path: "/currencies", Handler: languageHandler.ListCurrencies},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
