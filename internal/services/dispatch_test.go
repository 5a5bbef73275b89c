package services

import (
	"errors"
	"testing"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

func TestRoleRouterDispatch(t *testing.T) {
	router := NewRoleRouter()

	annotator, err := router.Route(types.RoleAnnotator)
	if err != nil {
		t.Fatalf("Route(annotator): %v", err)
	}
	if annotator.Role() != types.RoleAnnotator || annotator.Landing() != "/annotate" {
		t.Fatalf("Route(annotator): unexpected workflow %q landing %q", annotator.Name(), annotator.Landing())
	}

	admin, err := router.Route(types.RoleAdmin)
	if err != nil {
		t.Fatalf("Route(admin): %v", err)
	}
	if admin.Role() != types.RoleAdmin || admin.Landing() != "/admin" {
		t.Fatalf("Route(admin): unexpected workflow %q landing %q", admin.Name(), admin.Landing())
	}
}

func TestRoleRouterUnknownRole(t *testing.T) {
	router := NewRoleRouter()

	for _, role := range []types.Role{"", "superuser", "Annotator"} {
		if _, err := router.Route(role); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("Route(%q): expected ErrUnauthorized, got %v", role, err)
		}
	}
}
