package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/tenselab-backend/internal/data/repos/testutil"
	types "github.com/annolab/tenselab-backend/internal/domain"
)

func newToken(userID uuid.UUID, refresh string) *types.UserToken {
	return &types.UserToken{
		ID:           uuid.New(),
		UserID:       userID,
		AccessToken:  "access-" + refresh,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func TestUserTokenRepoGetByUserIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserTokenRepo(db, testutil.Logger(t))

	alice := testutil.SeedUser(t, ctx, tx, "alice-tokens@example.com", types.RoleAnnotator)
	bob := testutil.SeedUser(t, ctx, tx, "bob-tokens@example.com", types.RoleAnnotator)

	if _, err := repo.Create(ctx, tx, []*types.UserToken{
		newToken(alice.ID, uuid.New().String()),
		newToken(alice.ID, uuid.New().String()),
		newToken(bob.ID, uuid.New().String()),
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{alice.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tokens for alice, got %d", len(got))
	}
	for _, tok := range got {
		if tok.UserID != alice.ID {
			t.Fatalf("token %s belongs to %s, want %s", tok.ID, tok.UserID, alice.ID)
		}
	}

	none, err := repo.GetByUserIDs(ctx, tx, nil)
	if err != nil {
		t.Fatalf("GetByUserIDs with no ids failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no tokens for empty id list, got %d", len(none))
	}
}

func TestUserTokenRepoRefreshLookupAndDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserTokenRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "carol-tokens@example.com", types.RoleAnnotator)
	refresh := uuid.New().String()
	if _, err := repo.Create(ctx, tx, []*types.UserToken{newToken(user.ID, refresh)}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.GetByRefreshTokens(ctx, tx, []string{refresh})
	if err != nil {
		t.Fatalf("GetByRefreshTokens failed: %v", err)
	}
	if len(found) != 1 || found[0].UserID != user.ID {
		t.Fatalf("unexpected refresh lookup result: %+v", found)
	}

	if err := repo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); err != nil {
		t.Fatalf("DeleteByUserIDs failed: %v", err)
	}
	remaining, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs after delete failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected all tokens deleted, %d remain", len(remaining))
	}
}
