package smt

import "github.com/sunholo/mikino/internal/value"

// Session is the narrow, synchronous interface the BMC and induction
// engines depend on. *Driver is the only production implementation (a
// spawned child process), but nothing outside this package assumes a
// child-process transport: an in-process solver can implement Session
// directly (spec.md §9, "Solver decoupling").
type Session interface {
	Declare(name string, ty value.Type) error
	Assert(sexpr string) error
	Push() error
	Pop() error
	CheckSat() (Result, error)
	GetModel(names []string) (map[string]value.Value, error)
}

var _ Session = (*Driver)(nil)
