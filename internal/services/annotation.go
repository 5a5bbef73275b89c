package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	annrepo "github.com/annolab/tenselab-backend/internal/data/repos/annotation"
	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// AnnotationService is the persister: it validates a labeling decision
// and forwards exactly one insert to the annotation store. Validation
// happens before any store call; a rejected submission performs zero
// writes. Failed inserts are not retried, and duplicate submissions of
// the same unit create independent records.
type AnnotationService interface {
	Submit(ctx context.Context, unit types.AnnotationUnit, tense, notes string, annotatorID uuid.UUID) (*types.Annotation, error)
}

type annotationService struct {
	log            *logger.Logger
	annotationRepo annrepo.AnnotationRepo
}

func NewAnnotationService(baseLog *logger.Logger, annotationRepo annrepo.AnnotationRepo) AnnotationService {
	serviceLog := baseLog.With("service", "AnnotationService")
	return &annotationService{log: serviceLog, annotationRepo: annotationRepo}
}

func (s *annotationService) Submit(ctx context.Context, unit types.AnnotationUnit, tense, notes string, annotatorID uuid.UUID) (*types.Annotation, error) {
	label, err := types.ParseTenseLabel(tense)
	if err != nil {
		return nil, err
	}

	record := &types.Annotation{
		ID:           uuid.New(),
		AnnotatorID:  annotatorID,
		Sentence:     unit.Sentence,
		TargetTense:  label,
		Notes:        notes,
		CEFRLevel:    unit.CEFR,
		OriginalText: unit.ParentText,
		LearnerID:    unit.LearnerID,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.annotationRepo.Create(ctx, nil, []*types.Annotation{record}); err != nil {
		return nil, fmt.Errorf("insert annotation: %w", err)
	}

	s.log.Debug("Annotation saved",
		"annotator_id", annotatorID.String(),
		"tense", label.String(),
		"cefr_level", unit.CEFR.String(),
	)
	return record, nil
}
