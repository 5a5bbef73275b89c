package app

import (
	"gorm.io/gorm"

	"github.com/annolab/tenselab-backend/internal/corpus"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/services"
	"github.com/annolab/tenselab-backend/internal/session"
)

type Services struct {
	Auth       services.AuthService
	Worklist   services.WorklistService
	Annotation services.AnnotationService
	Report     services.ReportService
	RoleRouter *services.RoleRouter
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, sessions *session.Manager) Services {
	log.Info("Wiring services...")
	source := corpus.NewCSVSource(cfg.CorpusPath, log)
	return Services{
		Auth: services.NewAuthService(
			db,
			log,
			reposet.User,
			reposet.UserToken,
			sessions,
			cfg.JWTSecretKey,
			cfg.AccessTokenTTL,
			cfg.RefreshTokenTTL,
		),
		Worklist:   services.NewWorklistService(log, source),
		Annotation: services.NewAnnotationService(log, reposet.Annotation),
		Report:     services.NewReportService(log, reposet.Annotation, reposet.User),
		RoleRouter: services.NewRoleRouter(),
	}
}
