package term

import "github.com/sunholo/mikino/internal/value"

// Candidate is a named invariant conjecture: a boolean Term over Current
// variables only.
type Candidate struct {
	Name string
	Body Term
}

// System is a finite-variable symbolic transition system: declared
// variables (in insertion order, for reproducible output), an initial
// predicate, a transition relation, and an ordered list of named
// candidates.
type System struct {
	// Vars is keyed by name; VarNames holds declaration order since Go
	// maps do not preserve it.
	Vars     map[string]VarId
	VarNames []string

	Init       Term // Bool, Current vars only
	Trans      Term // Bool, Current and Next vars
	Candidates []Candidate
}

// NewSystem builds an empty System ready for AddVar/AddCandidate and
// direct assignment of Init and Trans.
func NewSystem() *System {
	return &System{Vars: make(map[string]VarId)}
}

// AddVar declares a variable, preserving declaration order in VarNames.
func (s *System) AddVar(name string, ty value.Type) VarId {
	v := VarId{Name: name, Ty: ty}
	s.Vars[name] = v
	s.VarNames = append(s.VarNames, name)
	return v
}

// AddCandidate appends a named candidate invariant.
func (s *System) AddCandidate(name string, body Term) {
	s.Candidates = append(s.Candidates, Candidate{Name: name, Body: body})
}

// Cur builds a Current-step reference to v.
func Cur(v VarId) *Var { return &Var{Ref: TemporalVar{Var: v, When: Current}} }

// Nxt builds a Next-step reference to v.
func Nxt(v VarId) *Var { return &Var{Ref: TemporalVar{Var: v, When: Next}} }
