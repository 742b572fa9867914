// Package rbac holds the static role registry: the authoritative mapping of
// role name to permission grants. The registry is immutable after
// construction and shared read-only across requests; persisted role copies
// in the database are seeded from it on demand.
package rbac

import "github.com/freelancehub/time-tracking-api/internal/core/domain"

// Registry answers role-existence and grant-lookup queries. Lookups are
// case-sensitive exact matches.
type Registry struct {
	grants map[string][]string
}

// NewRegistry builds the registry with the fixed role enumeration.
func NewRegistry() *Registry {
	return &Registry{
		grants: map[string][]string{
			domain.RoleAdmin: {domain.PermissionWildcard},
			domain.RoleProjectManager: {
				"hours:review",
				"hours:approve",
				"hours:reject",
				"projects:create",
				"projects:edit",
				"projects:delete",
				"projects:view",
				"projects:manage",
				"projects:assign",
				"users:create",
				"users:update",
				"users:delete",
				"comments:manage",
				"comments:create",
				"replys:create",
				"replycomments:create",
			},
			domain.RoleFreelancer: {
				"users:update_own",
				"hours:create",
				"hours:edit_own",
				"hours:view_own",
				"projects:view",
				"comments:create",
				"replys:create",
				"replycomments:create",
			},
		},
	}
}

// RoleExists reports whether name is a known role.
func (r *Registry) RoleExists(name string) bool {
	_, ok := r.grants[name]
	return ok
}

// GrantsFor returns a copy of the grant set for name. The second return is
// false when the role is unknown.
func (r *Registry) GrantsFor(name string) ([]string, bool) {
	grants, ok := r.grants[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(grants))
	copy(out, grants)
	return out, true
}

// HasPermission reports whether the role's grant set intersects permissions
// or contains the wildcard. An unknown role never passes.
func (r *Registry) HasPermission(role string, permissions ...string) bool {
	grants, ok := r.grants[role]
	if !ok {
		return false
	}
	for _, g := range grants {
		if g == domain.PermissionWildcard {
			return true
		}
		for _, p := range permissions {
			if g == p {
				return true
			}
		}
	}
	return false
}

// Roles returns every registry role as a domain value, used to seed
// persisted copies.
func (r *Registry) Roles() []domain.Role {
	out := make([]domain.Role, 0, len(r.grants))
	for name := range r.grants {
		grants, _ := r.GrantsFor(name)
		out = append(out, domain.Role{Name: name, Grants: grants})
	}
	return out
}
