package annotation

import (
	"context"

	"gorm.io/gorm"

	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// AnnotationRepo is the append-only record sink. There is deliberately no
// update or delete method: resubmissions create new rows.
type AnnotationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, annotations []*types.Annotation) ([]*types.Annotation, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
	GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Annotation, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Annotation, error)
}

type annotationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnnotationRepo(db *gorm.DB, baseLog *logger.Logger) AnnotationRepo {
	repoLog := baseLog.With("repo", "AnnotationRepo")
	return &annotationRepo{db: db, log: repoLog}
}

func (ar *annotationRepo) Create(ctx context.Context, tx *gorm.DB, annotations []*types.Annotation) ([]*types.Annotation, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(annotations) == 0 {
		return []*types.Annotation{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&annotations).Error; err != nil {
		return nil, err
	}
	return annotations, nil
}

func (ar *annotationRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Annotation{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (ar *annotationRepo) GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Annotation, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Annotation
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *annotationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Annotation, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Annotation
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
