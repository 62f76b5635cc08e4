package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dancefest/api/internal/domain"
)

func TestResolve_AdminShortCircuits(t *testing.T) {
	tests := []struct {
		name        string
		assignments []Assignment
	}{
		{
			name:        "admin only",
			assignments: []Assignment{{RoleKey: domain.RoleAdmin, Scope: Global()}},
		},
		{
			name: "admin first, other roles ignored",
			assignments: []Assignment{
				{RoleKey: domain.RoleAdmin, Scope: Global()},
				{RoleKey: domain.RoleJudge, Scope: ForEvent(1), Permissions: []string{domain.PermScoreSubmit}},
			},
		},
		{
			name: "admin after other roles",
			assignments: []Assignment{
				{RoleKey: domain.RoleJudge, Scope: ForEvent(1), Permissions: []string{domain.PermScoreSubmit}},
				{RoleKey: domain.RoleAdmin, Scope: ForEvent(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Resolve(7, tt.assignments)

			assert.True(t, ctx.IsAdmin)
			assert.Equal(t, uint(7), ctx.UserID)
			// Short-circuit, not a merge: nothing accumulated.
			assert.Empty(t, ctx.PermissionsIn(Global()))
			assert.Empty(t, ctx.PermissionsIn(ForEvent(1)))
		})
	}
}

func TestResolve_UnionsPerScope(t *testing.T) {
	ctx := Resolve(3, []Assignment{
		{RoleKey: domain.RoleRepresentative, Scope: ForEvent(1), Permissions: []string{domain.PermStudioManage, domain.PermDancerManage}},
		{RoleKey: domain.RoleModerator, Scope: ForEvent(1), Permissions: []string{domain.PermScoreSubmit}},
		{RoleKey: domain.RoleJudge, Scope: ForEvent(2), Permissions: []string{domain.PermScoreSubmit}},
		{RoleKey: domain.RoleJudge, Scope: Global(), Permissions: []string{domain.PermScoreSubmit}},
	})

	assert.False(t, ctx.IsAdmin)

	event1 := ctx.PermissionsIn(ForEvent(1))
	assert.True(t, event1.Has(domain.PermStudioManage))
	assert.True(t, event1.Has(domain.PermDancerManage))
	assert.True(t, event1.Has(domain.PermScoreSubmit))

	// Scopes never bleed into each other.
	event2 := ctx.PermissionsIn(ForEvent(2))
	assert.True(t, event2.Has(domain.PermScoreSubmit))
	assert.False(t, event2.Has(domain.PermStudioManage))

	global := ctx.PermissionsIn(Global())
	assert.True(t, global.Has(domain.PermScoreSubmit))
	assert.False(t, global.Has(domain.PermDancerManage))
}

func TestResolve_Deterministic(t *testing.T) {
	assignments := []Assignment{
		{RoleKey: domain.RoleJudge, Scope: ForEvent(5), Permissions: []string{domain.PermScoreSubmit}},
		{RoleKey: domain.RoleRepresentative, Scope: Global(), Permissions: []string{domain.PermStudioManage}},
	}

	first := Resolve(1, assignments)
	second := Resolve(1, assignments)

	assert.Equal(t, first.IsAdmin, second.IsAdmin)
	assert.Equal(t, first.PermissionsIn(ForEvent(5)), second.PermissionsIn(ForEvent(5)))
	assert.Equal(t, first.PermissionsIn(Global()), second.PermissionsIn(Global()))
}

func TestFromAssignments(t *testing.T) {
	eventID := uint(9)
	out := FromAssignments([]domain.RoleAssignment{
		{RoleKey: domain.RoleJudge, Permissions: []string{domain.PermScoreSubmit}},
		{RoleKey: domain.RoleRepresentative, EventID: &eventID, Permissions: []string{domain.PermDancerManage}},
	})

	assert.Len(t, out, 2)
	assert.True(t, out[0].Scope.IsGlobal())

	id, bound := out[1].Scope.EventID()
	assert.True(t, bound)
	assert.Equal(t, uint(9), id)
}
