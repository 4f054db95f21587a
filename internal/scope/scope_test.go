package scope

import (
	"testing"

	"github.com/scholaris/scholaris-backend/internal/model"
)

func TestForPrincipal(t *testing.T) {
	cases := []struct {
		role      model.Role
		profileID int
		wantKind  Kind
	}{
		{model.RoleAdmin, 0, KindAll},
		{model.RoleManagement, 0, KindAll},
		{model.RoleStaff, 7, KindTaughtClasses},
		{model.RoleParent, 3, KindOwnChildren},
		{model.RoleStudent, 11, KindSelfOnly},
		{model.Role("intruder"), 5, KindNone},
	}

	for _, c := range cases {
		got := ForPrincipal(c.role, c.profileID)
		if got.Kind != c.wantKind {
			t.Errorf("ForPrincipal(%s) kind = %v, want %v", c.role, got.Kind, c.wantKind)
		}
		if got.Kind != KindAll && got.Kind != KindNone && got.ProfileID != c.profileID {
			t.Errorf("ForPrincipal(%s) profile = %d, want %d", c.role, got.ProfileID, c.profileID)
		}
	}
}

func TestAllIsUnrestricted(t *testing.T) {
	if All().Kind != KindAll {
		t.Error("All() should resolve to KindAll")
	}
}
