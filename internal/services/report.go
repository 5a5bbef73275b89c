package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	annrepo "github.com/annolab/tenselab-backend/internal/data/repos/annotation"
	userrepo "github.com/annolab/tenselab-backend/internal/data/repos/user"
	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// Overview is the admin dashboard headline: how much has been labeled
// and by how many annotator accounts.
type Overview struct {
	TotalAnnotations int64 `json:"total_annotations"`
	TotalAnnotators  int64 `json:"total_annotators"`
}

type ReportService interface {
	GetOverview(ctx context.Context) (Overview, error)
	GetRecent(ctx context.Context, limit int) ([]*types.Annotation, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
}

type reportService struct {
	log            *logger.Logger
	annotationRepo annrepo.AnnotationRepo
	userRepo       userrepo.UserRepo
}

func NewReportService(baseLog *logger.Logger, annotationRepo annrepo.AnnotationRepo, userRepo userrepo.UserRepo) ReportService {
	serviceLog := baseLog.With("service", "ReportService")
	return &reportService{log: serviceLog, annotationRepo: annotationRepo, userRepo: userRepo}
}

func (rs *reportService) GetOverview(ctx context.Context) (Overview, error) {
	annotations, err := rs.annotationRepo.CountAll(ctx, nil)
	if err != nil {
		return Overview{}, fmt.Errorf("count annotations: %w", err)
	}
	annotators, err := rs.userRepo.CountByRole(ctx, nil, types.RoleAnnotator)
	if err != nil {
		return Overview{}, fmt.Errorf("count annotators: %w", err)
	}
	return Overview{TotalAnnotations: annotations, TotalAnnotators: annotators}, nil
}

func (rs *reportService) GetRecent(ctx context.Context, limit int) ([]*types.Annotation, error) {
	if limit <= 0 {
		limit = 10
	}
	recent, err := rs.annotationRepo.GetRecent(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent annotations: %w", err)
	}
	return recent, nil
}

var exportHeader = []string{
	"id", "annotator_id", "sentence", "target_tense", "notes",
	"cefr_level", "original_text", "learner_id", "created_at",
}

// ExportCSV streams the whole annotation table and returns the row count.
func (rs *reportService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	all, err := rs.annotationRepo.GetAll(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("fetch annotations for export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("write export header: %w", err)
	}
	for _, a := range all {
		record := []string{
			a.ID.String(),
			a.AnnotatorID.String(),
			a.Sentence,
			a.TargetTense.String(),
			a.Notes,
			a.CEFRLevel.String(),
			a.OriginalText,
			a.LearnerID,
			a.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush export: %w", err)
	}

	rs.log.Info("Annotations exported", "rows", len(all))
	return len(all), nil
}
