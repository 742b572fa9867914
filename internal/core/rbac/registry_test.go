package rbac

import (
	"testing"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

func TestRegistry_RoleExists(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{domain.RoleAdmin, domain.RoleProjectManager, domain.RoleFreelancer} {
		if !r.RoleExists(name) {
			t.Fatalf("expected role %q to exist", name)
		}
	}
	if r.RoleExists("superuser") {
		t.Fatalf("unknown role should not exist")
	}
	if r.RoleExists("Admin") {
		t.Fatalf("lookups must be case-sensitive")
	}
}

func TestRegistry_GrantsFor(t *testing.T) {
	r := NewRegistry()

	grants, ok := r.GrantsFor(domain.RoleFreelancer)
	if !ok {
		t.Fatalf("expected grants for freelancer")
	}
	found := false
	for _, g := range grants {
		if g == "hours:create" {
			found = true
		}
	}
	if !found {
		t.Fatalf("freelancer must hold hours:create, got %v", grants)
	}

	if _, ok := r.GrantsFor("ghost"); ok {
		t.Fatalf("expected not-found for unknown role")
	}

	// Returned slice is a copy; mutating it must not poison the registry.
	grants[0] = "tampered"
	fresh, _ := r.GrantsFor(domain.RoleFreelancer)
	if fresh[0] == "tampered" {
		t.Fatalf("GrantsFor must return a copy")
	}
}

func TestRegistry_HasPermission(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		role  string
		perms []string
		want  bool
	}{
		{domain.RoleAdmin, []string{"anything:at_all"}, true}, // wildcard
		{domain.RoleProjectManager, []string{"projects:create"}, true},
		{domain.RoleProjectManager, []string{"hours:create"}, false},
		{domain.RoleFreelancer, []string{"hours:create"}, true},
		{domain.RoleFreelancer, []string{"users:update_own", "users:update"}, true}, // intersection
		{domain.RoleFreelancer, []string{"users:delete"}, false},
		{"unknown", []string{"projects:view"}, false},
	}

	for _, tc := range cases {
		if got := r.HasPermission(tc.role, tc.perms...); got != tc.want {
			t.Fatalf("HasPermission(%q, %v) = %v, want %v", tc.role, tc.perms, got, tc.want)
		}
	}
}

func TestRegistry_Roles(t *testing.T) {
	r := NewRegistry()
	roles := r.Roles()
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}
	for _, role := range roles {
		if len(role.Grants) == 0 {
			t.Fatalf("role %q has no grants", role.Name)
		}
	}
}
