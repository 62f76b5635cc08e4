package authz

import "github.com/dancefest/api/internal/domain"

// Action is a stage-gated mutation category.
type Action string

const (
	ActionStudioRegister    Action = "studio.register"
	ActionStudioEdit        Action = "studio.edit"
	ActionDancerManage      Action = "dancer.manage"
	ActionPerformanceManage Action = "performance.manage"
)

// IsActionAllowed reports whether the action is legal in the event's current
// stage. canEditDuringReview is the per-registration override that keeps a
// studio editable during DATA_REVIEW. The function never errors; unknown
// stages deny everything. ENDED is terminal and behaves like FINALIZED:
// the override never applies.
func IsActionAllowed(stage domain.EventStage, action Action, canEditDuringReview bool) bool {
	switch stage {
	case domain.StagePreRegistration:
		return action == ActionStudioRegister || action == ActionStudioEdit

	case domain.StageRegistrationOpen:
		return true

	case domain.StageDataReview:
		if !canEditDuringReview {
			return false
		}
		return action == ActionDancerManage || action == ActionPerformanceManage

	case domain.StageFinalized, domain.StageEnded:
		return false

	default:
		return false
	}
}
