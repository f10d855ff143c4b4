package resolver

import "errors"

var (
	// ErrUnresolvedDelegation is returned when an authority NS record has
	// no matching glue address in the additional section. Resolving the
	// NS target's own address is out of scope; the error names the target
	// so a caller can perform that resolution separately.
	ErrUnresolvedDelegation = errors.New("delegation without glue address")

	// ErrEmptyAnswer is returned when a response carries neither NS
	// records in its authority section nor any answer records.
	ErrEmptyAnswer = errors.New("response has no delegation and no answer")

	// ErrDelegationLoop is returned when a delegation points back at a
	// server already queried during this resolution.
	ErrDelegationLoop = errors.New("delegation loop")

	// ErrHopBudgetExceeded is returned when the delegation walk does not
	// terminate within the configured hop count.
	ErrHopBudgetExceeded = errors.New("hop budget exceeded")
)
