package authz

import "fmt"

// Scope identifies which event a permission grant applies to. A grant is
// either global (applies regardless of event) or bound to exactly one event.
// The zero value is deliberately not a valid scope so that "no scope
// resolved" can never be confused with "global grant".
type Scope struct {
	eventID uint
	kind    scopeKind
}

type scopeKind uint8

const (
	scopeInvalid scopeKind = iota
	scopeGlobal
	scopeEvent
)

// Global returns the scope of grants that apply across all events.
func Global() Scope {
	return Scope{kind: scopeGlobal}
}

// ForEvent returns the scope of grants bound to the given event.
func ForEvent(eventID uint) Scope {
	return Scope{eventID: eventID, kind: scopeEvent}
}

func (s Scope) IsGlobal() bool {
	return s.kind == scopeGlobal
}

// EventID returns the bound event id and whether the scope is event-bound.
func (s Scope) EventID() (uint, bool) {
	if s.kind != scopeEvent {
		return 0, false
	}
	return s.eventID, true
}

func (s Scope) String() string {
	switch s.kind {
	case scopeGlobal:
		return "global"
	case scopeEvent:
		return fmt.Sprintf("event:%d", s.eventID)
	default:
		return "invalid"
	}
}
