// Package engine orchestrates type checking, 1-induction, and bounded
// model checking into one run, producing a final status per candidate.
package engine

import "github.com/sunholo/mikino/internal/term"

// StatusKind discriminates the three possible final outcomes for a
// candidate.
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusFalsified
	StatusProved
)

// Status is the final per-candidate result: exactly one of Unknown(depth),
// Falsified(Trace), Proved(k).
type Status struct {
	Kind  StatusKind
	Trace *term.Trace // set iff Kind == StatusFalsified
	Depth int         // induction depth iff Proved; max depth explored iff Unknown
}

// Result is the full outcome of an engine run: one Status per candidate,
// keyed by candidate name (the map carries no order; System.Candidates
// holds declaration order), plus the max BMC depth actually reached.
type Result struct {
	Statuses   map[string]Status
	ReachedBMC int
}
