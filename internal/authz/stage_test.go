package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dancefest/api/internal/domain"
)

var allActions = []Action{
	ActionStudioRegister,
	ActionStudioEdit,
	ActionDancerManage,
	ActionPerformanceManage,
}

// Full (stage, action, override) grid.
func TestIsActionAllowed(t *testing.T) {
	allowed := map[domain.EventStage]map[Action]bool{
		domain.StagePreRegistration: {
			ActionStudioRegister: true,
			ActionStudioEdit:     true,
		},
		domain.StageRegistrationOpen: {
			ActionStudioRegister:    true,
			ActionStudioEdit:        true,
			ActionDancerManage:      true,
			ActionPerformanceManage: true,
		},
		domain.StageDataReview: {},
		domain.StageFinalized:  {},
		domain.StageEnded:      {},
	}
	allowedWithOverride := map[domain.EventStage]map[Action]bool{
		domain.StagePreRegistration:  allowed[domain.StagePreRegistration],
		domain.StageRegistrationOpen: allowed[domain.StageRegistrationOpen],
		domain.StageDataReview: {
			ActionDancerManage:      true,
			ActionPerformanceManage: true,
		},
		domain.StageFinalized: {},
		domain.StageEnded:     {},
	}

	for stage := range allowed {
		for _, action := range allActions {
			got := IsActionAllowed(stage, action, false)
			assert.Equalf(t, allowed[stage][action], got, "stage=%s action=%s override=false", stage, action)

			got = IsActionAllowed(stage, action, true)
			assert.Equalf(t, allowedWithOverride[stage][action], got, "stage=%s action=%s override=true", stage, action)
		}
	}
}

func TestIsActionAllowed_ReviewOverride(t *testing.T) {
	// Locked during review without the override.
	assert.False(t, IsActionAllowed(domain.StageDataReview, ActionDancerManage, false))
	// Editable once the admin flags the registration.
	assert.True(t, IsActionAllowed(domain.StageDataReview, ActionDancerManage, true))
	// The override never reopens studio profile edits during review.
	assert.False(t, IsActionAllowed(domain.StageDataReview, ActionStudioEdit, true))
}

func TestIsActionAllowed_TerminalStages(t *testing.T) {
	for _, stage := range []domain.EventStage{domain.StageFinalized, domain.StageEnded} {
		for _, action := range allActions {
			assert.Falsef(t, IsActionAllowed(stage, action, true), "stage=%s action=%s", stage, action)
		}
	}
}

func TestIsActionAllowed_UnknownStage(t *testing.T) {
	assert.False(t, IsActionAllowed(domain.EventStage("DRAFT"), ActionStudioEdit, true))
}
