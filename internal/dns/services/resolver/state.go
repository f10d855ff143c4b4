package resolver

// State identifies where the engine is in the delegation walk. Transitions
// are strictly INIT -> AWAITING_RESPONSE -> {DELEGATED -> AWAITING_RESPONSE,
// RESOLVED, FAILED}; DELEGATED always re-queries for the original target
// domain, never for the name server's own name.
type State int

const (
	StateInit State = iota
	StateAwaitingResponse
	StateDelegated
	StateResolved
	StateFailed
)

// String returns the textual representation of the State.
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateAwaitingResponse:
		return "AWAITING_RESPONSE"
	case StateDelegated:
		return "DELEGATED"
	case StateResolved:
		return "RESOLVED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
