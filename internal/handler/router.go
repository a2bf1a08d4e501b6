package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coupon-issuance/internal/handler/api"
	"coupon-issuance/internal/handler/middleware"
	"coupon-issuance/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, admissionHandler *api.AdmissionHandler, campaignHandler *api.CampaignHandler, monitoringHandler *api.MonitoringHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, admissionHandler, campaignHandler, monitoringHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, admissionHandler *api.AdmissionHandler, campaignHandler *api.CampaignHandler, monitoringHandler *api.MonitoringHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		campaigns := apiGroup.Group("/campaigns")
		{
			addRoutes(campaigns, []route{
				{Method: http.MethodPost, Path: "", Handler: campaignHandler.Create},
				{Method: http.MethodPost, Path: "/:id/admissions", Handler: admissionHandler.Admit},
				{Method: http.MethodGet, Path: "/:id/queue-depth", Handler: admissionHandler.QueueDepth},
				{Method: http.MethodDelete, Path: "/:id/coordinator", Handler: admissionHandler.ResetCoordinator},
			})
		}

		monitoring := apiGroup.Group("/monitoring")
		{
			addRoutes(monitoring, []route{
				{Method: http.MethodGet, Path: "/failures", Handler: monitoringHandler.Failures},
				{Method: http.MethodGet, Path: "/outbox", Handler: monitoringHandler.Outbox},
			})
		}
	}
}

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
