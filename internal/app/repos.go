package app

import (
	"gorm.io/gorm"

	annrepo "github.com/annolab/tenselab-backend/internal/data/repos/annotation"
	authrepo "github.com/annolab/tenselab-backend/internal/data/repos/auth"
	userrepo "github.com/annolab/tenselab-backend/internal/data/repos/user"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

type Repos struct {
	User       userrepo.UserRepo
	UserToken  authrepo.UserTokenRepo
	Annotation annrepo.AnnotationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       userrepo.NewUserRepo(db, log),
		UserToken:  authrepo.NewUserTokenRepo(db, log),
		Annotation: annrepo.NewAnnotationRepo(db, log),
	}
}
