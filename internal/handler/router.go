package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealdesk/internal/domain/user"
	"dealdesk/internal/handler/api"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/pkg/config"
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
	dealHandler *api.DealHandler,
	deliverableHandler *api.DeliverableHandler,
	brandHandler *api.BrandHandler,
	conflictHandler *api.ConflictHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, dealHandler, deliverableHandler, brandHandler, conflictHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	dealHandler *api.DealHandler,
	deliverableHandler *api.DeliverableHandler,
	brandHandler *api.BrandHandler,
	conflictHandler *api.ConflictHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		deals := apiGroup.Group("/deals")
		deals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(deals, []route{
				{Method: http.MethodPost, Path: "", Handler: dealHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: dealHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: dealHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: dealHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: dealHandler.Cancel},
				{Method: http.MethodGet, Path: "/:id/deliverables", Handler: dealHandler.ListDeliverables},
				{Method: http.MethodPost, Path: "/:id/deliverables", Handler: deliverableHandler.Create},
			})
		}

		deliverables := apiGroup.Group("/deliverables")
		deliverables.Use(authMiddleware.RequireAuth())
		{
			addRoutes(deliverables, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: deliverableHandler.Update},
			})
		}

		brands := apiGroup.Group("/brands")
		brands.Use(authMiddleware.RequireAuth())
		{
			addRoutes(brands, []route{
				{Method: http.MethodPost, Path: "", Handler: brandHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: brandHandler.List},
			})
		}

		conflicts := apiGroup.Group("/conflicts")
		conflicts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(conflicts, []route{
				{Method: http.MethodGet, Path: "", Handler: conflictHandler.List},
				{Method: http.MethodGet, Path: "/summary", Handler: conflictHandler.Summary},
				{Method: http.MethodGet, Path: "/:id", Handler: conflictHandler.Get},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: conflictHandler.Resolve},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/users/:id/reconcile", Handler: conflictHandler.Recompute},
			})
		}
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
