// Package authz holds the request-time authorization core: resolving a
// user's role assignments into a capability map, checking a required
// permission against that map, and gating actions on an event's lifecycle
// stage. Everything in this package is pure; callers supply pre-fetched
// data and translate deny results into transport responses.
package authz

import "github.com/dancefest/api/internal/domain"

// Assignment is one pre-fetched (role, scope, permissions) tuple for the
// caller, as loaded by the repository layer.
type Assignment struct {
	RoleKey     string
	Scope       Scope
	Permissions []string
}

// PermissionSet is the set of permission keys granted in one scope.
type PermissionSet map[string]struct{}

func (s PermissionSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Context is the caller's resolved capability map, computed once per request.
type Context struct {
	UserID  uint
	IsAdmin bool

	permissions map[Scope]PermissionSet
}

// Resolve builds a Context from the caller's role assignments. An assignment
// of the reserved admin role short-circuits resolution: the context is
// admin and no further permissions are accumulated. Otherwise each
// assignment's permission keys are unioned into the set for its scope.
// Resolution is deterministic and performs no I/O.
func Resolve(userID uint, assignments []Assignment) Context {
	ctx := Context{
		UserID:      userID,
		permissions: make(map[Scope]PermissionSet),
	}

	for _, a := range assignments {
		if a.RoleKey == domain.RoleAdmin {
			return Context{UserID: userID, IsAdmin: true}
		}

		set, ok := ctx.permissions[a.Scope]
		if !ok {
			set = make(PermissionSet)
			ctx.permissions[a.Scope] = set
		}
		for _, p := range a.Permissions {
			set[p] = struct{}{}
		}
	}

	return ctx
}

// PermissionsIn returns the permission set granted in the given scope.
// The returned set must be treated as read-only.
func (c Context) PermissionsIn(scope Scope) PermissionSet {
	return c.permissions[scope]
}

// FromAssignments converts repository-level role assignments (nullable
// event id) into authz assignments carrying a proper Scope.
func FromAssignments(assignments []domain.RoleAssignment) []Assignment {
	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		scope := Global()
		if a.EventID != nil {
			scope = ForEvent(*a.EventID)
		}
		out = append(out, Assignment{
			RoleKey:     a.RoleKey,
			Scope:       scope,
			Permissions: a.Permissions,
		})
	}
	return out
}
