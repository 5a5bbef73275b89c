package http

import (
	"github.com/gin-gonic/gin"

	types "github.com/annolab/tenselab-backend/internal/domain"
	httpH "github.com/annolab/tenselab-backend/internal/http/handlers"
	httpMW "github.com/annolab/tenselab-backend/internal/http/middleware"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler     *httpH.AuthHandler
	AnnotateHandler *httpH.AnnotateHandler
	AdminHandler    *httpH.AdminHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Annotator workflow
		if cfg.AnnotateHandler != nil {
			annotate := protected.Group("/annotate")
			annotate.Use(httpMW.RequireRole(types.RoleAnnotator))
			annotate.GET("/options", cfg.AnnotateHandler.GetOptions)
			annotate.POST("/worklist", cfg.AnnotateHandler.LoadWorkList)
			annotate.GET("/current", cfg.AnnotateHandler.Current)
			annotate.POST("/next", cfg.AnnotateHandler.Next)
			annotate.POST("/previous", cfg.AnnotateHandler.Previous)
			annotate.POST("/submit", cfg.AnnotateHandler.Submit)
		}

		// Admin workflow
		if cfg.AdminHandler != nil {
			admin := protected.Group("/admin")
			admin.Use(httpMW.RequireRole(types.RoleAdmin))
			admin.GET("/overview", cfg.AdminHandler.GetOverview)
			admin.GET("/annotations/recent", cfg.AdminHandler.GetRecent)
			admin.GET("/annotations/export", cfg.AdminHandler.Export)
		}
	}

	return r
}
