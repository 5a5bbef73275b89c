package app

import (
	"github.com/annolab/tenselab-backend/internal/http/handlers"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/session"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Annotate *handlers.AnnotateHandler
	Admin    *handlers.AdminHandler
	Health   *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, sessions *session.Manager) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(serviceset.Auth, serviceset.RoleRouter),
		Annotate: handlers.NewAnnotateHandler(log, sessions, serviceset.Worklist, serviceset.Annotation),
		Admin:    handlers.NewAdminHandler(log, serviceset.Report),
		Health:   handlers.NewHealthHandler(),
	}
}
