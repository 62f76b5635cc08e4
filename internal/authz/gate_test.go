package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dancefest/api/internal/domain"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		assignments []Assignment
		permission  string
		scope       Scope
		want        bool
	}{
		{
			name:        "admin allows anything anywhere",
			assignments: []Assignment{{RoleKey: domain.RoleAdmin, Scope: Global()}},
			permission:  domain.PermEventManage,
			scope:       ForEvent(42),
			want:        true,
		},
		{
			name: "global judge may submit scores on any event",
			assignments: []Assignment{
				{RoleKey: domain.RoleJudge, Scope: Global(), Permissions: []string{domain.PermScoreSubmit}},
			},
			permission: domain.PermScoreSubmit,
			scope:      ForEvent(1),
			want:       true,
		},
		{
			name: "event-scoped grant matches its own event",
			assignments: []Assignment{
				{RoleKey: domain.RoleRepresentative, Scope: ForEvent(1), Permissions: []string{domain.PermDancerManage}},
			},
			permission: domain.PermDancerManage,
			scope:      ForEvent(1),
			want:       true,
		},
		{
			name: "event-scoped grant denied on another event",
			assignments: []Assignment{
				{RoleKey: domain.RoleRepresentative, Scope: ForEvent(1), Permissions: []string{domain.PermDancerManage}},
			},
			permission: domain.PermDancerManage,
			scope:      ForEvent(2),
			want:       false,
		},
		{
			name: "event-scoped grant does not satisfy a global check",
			assignments: []Assignment{
				{RoleKey: domain.RoleRepresentative, Scope: ForEvent(1), Permissions: []string{domain.PermStudioManage}},
			},
			permission: domain.PermStudioManage,
			scope:      Global(),
			want:       false,
		},
		{
			name: "wrong permission denied even in the right scope",
			assignments: []Assignment{
				{RoleKey: domain.RoleJudge, Scope: ForEvent(1), Permissions: []string{domain.PermScoreSubmit}},
			},
			permission: domain.PermEventManage,
			scope:      ForEvent(1),
			want:       false,
		},
		{
			name:        "no assignments denied",
			assignments: nil,
			permission:  domain.PermEventManage,
			scope:       Global(),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Resolve(1, tt.assignments)
			decision := ctx.Authorize(tt.permission, tt.scope)

			assert.Equal(t, tt.want, decision.Allowed)
			if !tt.want {
				assert.Equal(t, DenyForbidden, decision.Reason)
			}
		})
	}
}

// Granting an additional permission never turns a previously-allowed check
// into a denial.
func TestAuthorize_Monotonic(t *testing.T) {
	base := []Assignment{
		{RoleKey: domain.RoleJudge, Scope: ForEvent(1), Permissions: []string{domain.PermScoreSubmit}},
	}
	extended := append([]Assignment{}, base...)
	extended = append(extended, Assignment{
		RoleKey:     domain.RoleModerator,
		Scope:       ForEvent(1),
		Permissions: []string{domain.PermEventRegister},
	})

	before := Resolve(1, base).Authorize(domain.PermScoreSubmit, ForEvent(1))
	after := Resolve(1, extended).Authorize(domain.PermScoreSubmit, ForEvent(1))

	assert.True(t, before.Allowed)
	assert.True(t, after.Allowed)
}
