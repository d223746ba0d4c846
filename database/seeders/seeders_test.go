package seeders

import (
	"testing"

	"github.com/bitebasket/bitebasket/pkg/auth"
)

func TestAdminUserDocument(t *testing.T) {
	user := adminUser("admin@bitebasket.dev")

	if user.Role != auth.RoleSuperAdmin {
		t.Errorf("expected super admin role, got %q", user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Error("seeded admin must carry a creation timestamp")
	}
}

func TestStarterFoodsWellFormed(t *testing.T) {
	if len(starterFoods) == 0 {
		t.Fatal("starter menu must not be empty")
	}
	for _, f := range starterFoods {
		if f.Name == "" || f.Price <= 0 || f.Image == "" {
			t.Errorf("starter food %+v is missing required fields", f)
		}
	}
}
