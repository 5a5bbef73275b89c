package annotation

import (
	"context"
	"testing"
	"time"

	"github.com/annolab/tenselab-backend/internal/data/repos/testutil"
	types "github.com/annolab/tenselab-backend/internal/domain"
)

func TestAnnotationRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAnnotationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	annotator := testutil.SeedUser(t, ctx, tx, "annrepo@example.com", types.RoleAnnotator)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first := testutil.SeedAnnotation(t, ctx, tx, annotator.ID, base)
	second := testutil.SeedAnnotation(t, ctx, tx, annotator.ID, base.Add(time.Minute))
	third := testutil.SeedAnnotation(t, ctx, tx, annotator.ID, base.Add(2*time.Minute))

	count, err := repo.CountAll(ctx, tx)
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if count != 3 {
		t.Fatalf("CountAll: expected 3, got %d", count)
	}

	recent, err := repo.GetRecent(ctx, tx, 2)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("GetRecent: expected 2, got %d", len(recent))
	}
	if recent[0].ID != third.ID || recent[1].ID != second.ID {
		t.Fatalf("GetRecent: expected newest first, got %v then %v", recent[0].ID, recent[1].ID)
	}

	all, err := repo.GetAll(ctx, tx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetAll: expected 3, got %d", len(all))
	}
	if all[0].ID != first.ID {
		t.Fatalf("GetAll: expected oldest first, got %v", all[0].ID)
	}
}

// Resubmitting the same sentence is a second independent row, not an upsert.
func TestAnnotationRepoAllowsDuplicates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAnnotationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	annotator := testutil.SeedUser(t, ctx, tx, "annrepo-dup@example.com", types.RoleAnnotator)

	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	testutil.SeedAnnotation(t, ctx, tx, annotator.ID, at)
	testutil.SeedAnnotation(t, ctx, tx, annotator.ID, at)

	count, err := repo.CountAll(ctx, tx)
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if count != 2 {
		t.Fatalf("CountAll: expected 2 duplicate rows, got %d", count)
	}
}
