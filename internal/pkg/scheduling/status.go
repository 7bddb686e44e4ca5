package scheduling

import (
	"clinic-bridge-service/internal/pkg/exceptions"
	"strings"
)

// State is the canonical appointment state exposed to callers.
type State string

const (
	StateWaiting   State = "WAITING"
	StateConfirmed State = "CONFIRMED"
	StateCancelled State = "CANCELLED"
	StateCompleted State = "COMPLETED"
	StateNoShow    State = "NO_SHOW"
)

const (
	UpstreamScheduled = "AGENDADO"
	UpstreamConfirmed = "CONFIRMADO"
	UpstreamCancelled = "CANCELADO"
	UpstreamCompleted = "REALIZADO"
	UpstreamNoShow    = "FALTOU"
)

var upstreamToCanonical = map[string]State{
	UpstreamScheduled: StateWaiting,
	UpstreamConfirmed: StateConfirmed,
	UpstreamCancelled: StateCancelled,
	UpstreamCompleted: StateCompleted,
	UpstreamNoShow:    StateNoShow,
}

var canonicalToUpstream = map[State]string{
	StateWaiting:   UpstreamScheduled,
	StateConfirmed: UpstreamConfirmed,
	StateCancelled: UpstreamCancelled,
	StateCompleted: UpstreamCompleted,
	StateNoShow:    UpstreamNoShow,
}

// ToCanonicalState never fails: unknown upstream codes read as WAITING.
func ToCanonicalState(code string) State {
	if state, ok := upstreamToCanonical[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return state
	}
	return StateWaiting
}

func ToUpstreamState(state string) (string, error) {
	code, ok := canonicalToUpstream[State(strings.ToUpper(strings.TrimSpace(state)))]
	if !ok {
		return "", exceptions.ErrInvalidStatus(state).WithDetails(map[string]any{"allowed": States()})
	}
	return code, nil
}

// States lists the canonical states in a stable order.
func States() []State {
	return []State{StateWaiting, StateConfirmed, StateCancelled, StateCompleted, StateNoShow}
}
