package authz

import "github.com/campaignhub/campaignhub/internal/i18n"

// Role is the closed set of account roles. Stored as a string, but every
// boundary that accepts a role must go through ParseRole.
type Role string

const (
	RoleViewer     Role = "viewer"
	RoleEditor     Role = "editor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// rank orders roles for hierarchy comparisons between two users. It is never
// a substitute for the permission matrix.
var rank = map[Role]int{
	RoleViewer:     1,
	RoleEditor:     2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// Rank returns the hierarchy rank of the role, 0 for unknown roles.
func (r Role) Rank() int {
	return rank[r]
}

// Valid reports whether the role is one of the four defined values.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// ParseRole validates a free-form role string at the boundary.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", i18n.ErrorInvalidRole.WithParam("Role", s)
	}
	return r, nil
}

// Member is the identity a guard decision is made about: who they are, which
// account they belong to, and their role within it.
type Member struct {
	ID        string
	AccountID string
	Role      Role
}
