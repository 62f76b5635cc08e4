package authz

// DenyReason classifies why a check failed, so handlers can pick the right
// transport response without inspecting free-form text.
type DenyReason uint8

const (
	DenyNone DenyReason = iota
	// DenyUnauthenticated: no resolved caller context.
	DenyUnauthenticated
	// DenyForbidden: caller lacks the required permission in any
	// applicable scope.
	DenyForbidden
	// DenyStage: the action is permission-valid but disallowed by the
	// event's current lifecycle stage.
	DenyStage
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Authorize checks the required permission against the caller's capability
// map. Decision order: admin allows unconditionally; an event-bound scope is
// consulted first, then the global grants. A caller holding the permission
// globally is therefore allowed on any event. Pure; no side effects.
func (c Context) Authorize(permission string, scope Scope) Decision {
	if c.IsAdmin {
		return Allow()
	}

	if _, ok := scope.EventID(); ok {
		if c.PermissionsIn(scope).Has(permission) {
			return Allow()
		}
	}

	if c.PermissionsIn(Global()).Has(permission) {
		return Allow()
	}

	return Deny(DenyForbidden)
}
