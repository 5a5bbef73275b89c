package app

import (
	httpapi "github.com/annolab/tenselab-backend/internal/http"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers, mw Middleware) *httpapi.Server {
	return httpapi.NewServer(httpapi.RouterConfig{
		Log:             log,
		AuthMiddleware:  mw.Auth,
		AuthHandler:     handlerset.Auth,
		AnnotateHandler: handlerset.Annotate,
		AdminHandler:    handlerset.Admin,
		HealthHandler:   handlerset.Health,
	})
}
