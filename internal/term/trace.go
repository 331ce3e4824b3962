package term

import "github.com/sunholo/mikino/internal/value"

// State is a total assignment of every declared variable to a value of
// its declared type.
type State map[string]value.Value

// Trace is a finite nonempty sequence of States witnessing a
// counterexample: States[0] satisfies Init, each consecutive pair
// satisfies Trans, and the last falsifies the candidate it was built for.
type Trace struct {
	States []State
}

// Len returns the number of states in the trace.
func (t Trace) Len() int { return len(t.States) }
