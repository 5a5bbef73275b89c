package services

import (
	"context"
	"fmt"

	"github.com/annolab/tenselab-backend/internal/corpus"
	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/session"
)

// WorklistService runs the load pipeline: corpus source, level filter and
// sample, sentence segmentation, then hands the built worklist to the
// caller's session.
type WorklistService interface {
	LoadWorkList(ctx context.Context, sess *session.Session, level types.CEFRLevel, size int) (session.Progress, error)
}

type worklistService struct {
	log    *logger.Logger
	source corpus.Source
}

func NewWorklistService(baseLog *logger.Logger, source corpus.Source) WorklistService {
	serviceLog := baseLog.With("service", "WorklistService")
	return &worklistService{log: serviceLog, source: source}
}

func (ws *worklistService) LoadWorkList(ctx context.Context, sess *session.Session, level types.CEFRLevel, size int) (session.Progress, error) {
	rows, err := ws.source.Load()
	if err != nil {
		return session.Progress{}, fmt.Errorf("load corpus: %w", err)
	}

	sampled, err := corpus.Sample(rows, level, size)
	if err != nil {
		return session.Progress{}, err
	}

	worklist := corpus.BuildWorkList(sampled)
	if err := sess.Load(worklist); err != nil {
		return session.Progress{}, err
	}

	progress, err := sess.Progress()
	if err != nil {
		return session.Progress{}, err
	}

	ws.log.Info("Worklist loaded",
		"user_id", sess.UserID.String(),
		"level", level.String(),
		"rows_sampled", len(sampled),
		"units", progress.Total,
	)
	return progress, nil
}
