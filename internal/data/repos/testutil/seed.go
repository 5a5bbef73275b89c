package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, role types.Role) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Role:      role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAnnotation(tb testing.TB, ctx context.Context, tx *gorm.DB, annotatorID uuid.UUID, createdAt time.Time) *types.Annotation {
	tb.Helper()
	a := &types.Annotation{
		ID:           uuid.New(),
		AnnotatorID:  annotatorID,
		Sentence:     "I go.",
		TargetTense:  types.TensePresentSimple,
		Notes:        "",
		CEFRLevel:    types.CEFRB1,
		OriginalText: "I go. He ran!",
		LearnerID:    "learner-1",
		CreatedAt:    createdAt,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed annotation: %v", err)
	}
	return a
}
