// Package scope resolves an authenticated principal into a visibility
// scope: a single capability descriptor that the query layer applies
// uniformly instead of branching on role strings at every endpoint.
package scope

import "github.com/scholaris/scholaris-backend/internal/model"

// Kind is the capability a principal holds over student-linked records.
type Kind int

const (
	// KindNone sees nothing. Unrecognized roles resolve here.
	KindNone Kind = iota
	// KindAll sees every record (admin, management).
	KindAll
	// KindTaughtClasses sees students of classes the staff member leads.
	KindTaughtClasses
	// KindOwnChildren sees the parent's linked children.
	KindOwnChildren
	// KindSelfOnly sees the student's own records.
	KindSelfOnly
)

// Scope is a resolved visibility descriptor. ProfileID identifies the
// staff, parent or student row the kind is anchored to; it is unused
// for KindAll and KindNone.
type Scope struct {
	Kind      Kind
	ProfileID int
}

// ForPrincipal maps a role and its profile id to a scope. The engines
// themselves stay role-agnostic; only record listing applies this.
func ForPrincipal(role model.Role, profileID int) Scope {
	switch role {
	case model.RoleAdmin, model.RoleManagement:
		return Scope{Kind: KindAll}
	case model.RoleStaff:
		return Scope{Kind: KindTaughtClasses, ProfileID: profileID}
	case model.RoleParent:
		return Scope{Kind: KindOwnChildren, ProfileID: profileID}
	case model.RoleStudent:
		return Scope{Kind: KindSelfOnly, ProfileID: profileID}
	default:
		return Scope{Kind: KindNone}
	}
}

// All is the unrestricted scope, for internal callers.
func All() Scope {
	return Scope{Kind: KindAll}
}
