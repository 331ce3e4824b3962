// Package induction implements 1-induction: for each candidate, a base
// case (shared in spirit with BMC depth 0) and an inductive step checked
// in the solver's own scope, starting from an unconstrained state.
package induction

import (
	"github.com/sunholo/mikino/internal/encode"
	"github.com/sunholo/mikino/internal/mkerrors"
	"github.com/sunholo/mikino/internal/smt"
	"github.com/sunholo/mikino/internal/term"
)

// Outcome is the result of one 1-induction attempt.
type Outcome int

const (
	NotInductive Outcome = iota
	Inductive
	BaseFalsified
)

// Engine drives 1-induction checks against sys over a dedicated driver,
// kept separate from the BMC engine's driver so their assertion sets
// stay orthogonal (spec.md §4.6).
type Engine struct {
	Driver smt.Session
	Sys    *term.System
}

func NewEngine(d smt.Session, sys *term.System) *Engine {
	return &Engine{Driver: d, Sys: sys}
}

// CheckBase asks whether init ∧ ¬candidate is satisfiable at step 0: if
// so the candidate is falsified at step 0, with a 1-state trace.
func (e *Engine) CheckBase(cand term.Candidate) (Outcome, *term.Trace, error) {
	if err := e.Driver.Push(); err != nil {
		return NotInductive, nil, err
	}
	defer e.Driver.Pop()

	if err := encode.DeclareStep(e.Driver, e.Sys, 0); err != nil {
		return NotInductive, nil, err
	}
	if err := e.Driver.Assert(encode.Term(e.Sys.Init, 0)); err != nil {
		return NotInductive, nil, err
	}
	if err := e.Driver.Assert("(not " + encode.Term(cand.Body, 0) + ")"); err != nil {
		return NotInductive, nil, err
	}

	res, err := e.Driver.CheckSat()
	if err != nil {
		return NotInductive, nil, err
	}
	switch res {
	case smt.Sat:
		names := make([]string, len(e.Sys.VarNames))
		for i, vn := range e.Sys.VarNames {
			names[i] = encode.VarAt(e.Sys.Vars[vn], term.Current, 0)
		}
		model, err := e.Driver.GetModel(names)
		if err != nil {
			return NotInductive, nil, err
		}
		st := make(term.State, len(e.Sys.VarNames))
		for i, vn := range e.Sys.VarNames {
			st[vn] = model[names[i]]
		}
		return BaseFalsified, &term.Trace{States: []term.State{st}}, nil
	case smt.Unsat:
		return NotInductive, nil, nil
	default:
		return NotInductive, nil, mkerrors.New(mkerrors.ENG001, "induction", "solver returned unknown on base case")
	}
}

// CheckStep asks whether candidate ∧ trans ⇒ candidate' holds: it
// declares fresh variables at steps 0 and 1, asserts
// candidate@0 ∧ trans[@0,@1] ∧ ¬candidate@1, and checks. Unsat means the
// candidate is inductive.
func (e *Engine) CheckStep(cand term.Candidate) (Outcome, error) {
	if err := e.Driver.Push(); err != nil {
		return NotInductive, err
	}
	defer e.Driver.Pop()

	if err := encode.DeclareStep(e.Driver, e.Sys, 0); err != nil {
		return NotInductive, err
	}
	if err := encode.DeclareStep(e.Driver, e.Sys, 1); err != nil {
		return NotInductive, err
	}
	if err := e.Driver.Assert(encode.Term(cand.Body, 0)); err != nil {
		return NotInductive, err
	}
	if err := e.Driver.Assert(encode.Term(e.Sys.Trans, 0)); err != nil {
		return NotInductive, err
	}
	if err := e.Driver.Assert("(not " + encode.Term(cand.Body, 1) + ")"); err != nil {
		return NotInductive, err
	}

	res, err := e.Driver.CheckSat()
	if err != nil {
		return NotInductive, err
	}
	switch res {
	case smt.Unsat:
		return Inductive, nil
	case smt.Sat:
		return NotInductive, nil
	default:
		return NotInductive, mkerrors.New(mkerrors.ENG001, "induction", "solver returned unknown on inductive step")
	}
}
