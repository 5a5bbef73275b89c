package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// fakeAnnotationRepo records inserts in memory so persister behavior can
// be checked without a database.
type fakeAnnotationRepo struct {
	inserted  []*types.Annotation
	failNext  bool
	callCount int
}

func (f *fakeAnnotationRepo) Create(ctx context.Context, tx *gorm.DB, annotations []*types.Annotation) ([]*types.Annotation, error) {
	f.callCount++
	if f.failNext {
		f.failNext = false
		return nil, errors.New("store unavailable")
	}
	f.inserted = append(f.inserted, annotations...)
	return annotations, nil
}

func (f *fakeAnnotationRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(f.inserted)), nil
}

func (f *fakeAnnotationRepo) GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Annotation, error) {
	if limit > len(f.inserted) {
		limit = len(f.inserted)
	}
	out := make([]*types.Annotation, 0, limit)
	for i := len(f.inserted) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.inserted[i])
	}
	return out, nil
}

func (f *fakeAnnotationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Annotation, error) {
	return f.inserted, nil
}

func serviceLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func testUnit() types.AnnotationUnit {
	return types.AnnotationUnit{
		ParentText:    "I go. He ran!",
		Sentence:      "I go.",
		SentenceIndex: 0,
		CEFR:          types.CEFRB1,
		LearnerID:     "learner-7",
	}
}

func TestSubmitValidTense(t *testing.T) {
	repo := &fakeAnnotationRepo{}
	svc := NewAnnotationService(serviceLogger(t), repo)
	annotator := uuid.New()

	record, err := svc.Submit(context.Background(), testUnit(), "Present Simple", "main verb go", annotator)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if repo.callCount != 1 {
		t.Fatalf("Submit: expected exactly one insert attempt, got %d", repo.callCount)
	}

	if record.AnnotatorID != annotator {
		t.Fatalf("Submit: annotator_id mismatch")
	}
	if record.Sentence != "I go." || record.OriginalText != "I go. He ran!" {
		t.Fatalf("Submit: sentence fields mismatch: %+v", record)
	}
	if record.TargetTense != types.TensePresentSimple {
		t.Fatalf("Submit: tense mismatch: %q", record.TargetTense)
	}
	if record.Notes != "main verb go" || record.CEFRLevel != types.CEFRB1 || record.LearnerID != "learner-7" {
		t.Fatalf("Submit: field mismatch: %+v", record)
	}
	if record.CreatedAt.IsZero() {
		t.Fatalf("Submit: created_at not set")
	}
}

func TestSubmitRejectsInvalidTense(t *testing.T) {
	repo := &fakeAnnotationRepo{}
	svc := NewAnnotationService(serviceLogger(t), repo)

	for _, tense := range []string{"", "------ Simple Forms ------", "Simple Forms"} {
		if _, err := svc.Submit(context.Background(), testUnit(), tense, "", uuid.New()); !errors.Is(err, types.ErrInvalidTense) {
			t.Fatalf("Submit(%q): expected ErrInvalidTense, got %v", tense, err)
		}
	}
	if repo.callCount != 0 {
		t.Fatalf("Submit: rejected submissions must not touch the store, got %d calls", repo.callCount)
	}
}

func TestSubmitStoreFailureNotRetried(t *testing.T) {
	repo := &fakeAnnotationRepo{failNext: true}
	svc := NewAnnotationService(serviceLogger(t), repo)

	if _, err := svc.Submit(context.Background(), testUnit(), "Past Simple", "", uuid.New()); err == nil {
		t.Fatalf("Submit: expected store error")
	}
	if repo.callCount != 1 {
		t.Fatalf("Submit: expected a single attempt with no retry, got %d", repo.callCount)
	}
}

func TestSubmitCreatedAtMonotonic(t *testing.T) {
	repo := &fakeAnnotationRepo{}
	svc := NewAnnotationService(serviceLogger(t), repo)
	annotator := uuid.New()

	var prev time.Time
	for i := 0; i < 3; i++ {
		record, err := svc.Submit(context.Background(), testUnit(), "Past Simple", "", annotator)
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if record.CreatedAt.Before(prev) {
			t.Fatalf("Submit %d: created_at went backwards", i)
		}
		prev = record.CreatedAt
	}
}

// Two submissions for the same unit are two independent records.
func TestSubmitDoesNotDeduplicate(t *testing.T) {
	repo := &fakeAnnotationRepo{}
	svc := NewAnnotationService(serviceLogger(t), repo)
	annotator := uuid.New()

	first, err := svc.Submit(context.Background(), testUnit(), "Present Simple", "", annotator)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), testUnit(), "Present Simple", "", annotator)
	if err != nil {
		t.Fatalf("Submit (resubmit): %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("Submit: resubmission must create an independent record")
	}
	if len(repo.inserted) != 2 {
		t.Fatalf("Submit: expected 2 records, got %d", len(repo.inserted))
	}
}
