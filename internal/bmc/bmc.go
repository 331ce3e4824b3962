// Package bmc implements incremental bounded model checking: at each
// depth k it extends a single unrolled base (never popped) and checks,
// per live candidate, whether negating it at step k is satisfiable.
package bmc

import (
	"strconv"

	"github.com/sunholo/mikino/internal/encode"
	"github.com/sunholo/mikino/internal/mkerrors"
	"github.com/sunholo/mikino/internal/smt"
	"github.com/sunholo/mikino/internal/term"
)

// Engine drives one BMC session against sys over a dedicated driver.
type Engine struct {
	Driver smt.Session
	Sys    *term.System

	depth int // last step extended to; -1 before ExtendNext has run
}

// NewEngine wraps an already-initialized driver session for sys. The
// caller owns the session's lifetime.
func NewEngine(d smt.Session, sys *term.System) *Engine {
	return &Engine{Driver: d, Sys: sys, depth: -1}
}

// Depth returns the last step index the base assertions have been
// extended to, or -1 if ExtendNext has not been called yet.
func (e *Engine) Depth() int { return e.depth }

// ExtendNext extends the unrolled base to the next step: declaring that
// step's variables and asserting Init (step 0) or Trans (every later
// step). The base assertions made here are never popped — only the
// per-candidate negated-goal scope is.
func (e *Engine) ExtendNext() error {
	k := e.depth + 1
	if err := encode.DeclareStep(e.Driver, e.Sys, k); err != nil {
		return err
	}
	if k == 0 {
		if err := e.Driver.Assert(encode.Term(e.Sys.Init, 0)); err != nil {
			return err
		}
	} else {
		if err := e.Driver.Assert(encode.Term(e.Sys.Trans, k-1)); err != nil {
			return err
		}
	}
	e.depth = k
	return nil
}

// CheckResult is the outcome of checking one candidate at the current depth.
type CheckResult struct {
	Falsified bool
	Trace     *term.Trace
	Result    smt.Result // Unknown set alongside a non-nil err on SolverUnknown
}

// Check asks whether cand can be falsified at the current depth: it
// pushes a scope, asserts the negated candidate at step k, checks sat,
// and — on Sat — reconstructs a Trace from steps 0..k before popping.
func (e *Engine) Check(cand term.Candidate) (CheckResult, error) {
	k := e.depth
	if err := e.Driver.Push(); err != nil {
		return CheckResult{}, err
	}
	defer e.Driver.Pop()

	goal := "(not " + encode.Term(cand.Body, k) + ")"
	if err := e.Driver.Assert(goal); err != nil {
		return CheckResult{}, err
	}

	res, err := e.Driver.CheckSat()
	if err != nil {
		return CheckResult{}, err
	}
	switch res {
	case smt.Sat:
		tr, err := e.reconstructTrace(k)
		if err != nil {
			return CheckResult{}, err
		}
		return CheckResult{Falsified: true, Trace: tr, Result: res}, nil
	case smt.Unsat:
		return CheckResult{Result: res}, nil
	default:
		return CheckResult{Result: res}, mkerrors.New(mkerrors.ENG001, "bmc", "solver returned unknown at depth "+strconv.Itoa(k))
	}
}

// reconstructTrace reads v@0..v@k for every declared variable from the
// current (Sat) model and assembles them into a Trace of k+1 States.
func (e *Engine) reconstructTrace(k int) (*term.Trace, error) {
	states := make([]term.State, k+1)
	for step := 0; step <= k; step++ {
		names := make([]string, len(e.Sys.VarNames))
		for i, vn := range e.Sys.VarNames {
			names[i] = encode.VarAt(e.Sys.Vars[vn], term.Current, step)
		}
		model, err := e.Driver.GetModel(names)
		if err != nil {
			return nil, err
		}
		st := make(term.State, len(e.Sys.VarNames))
		for i, vn := range e.Sys.VarNames {
			st[vn] = model[names[i]]
		}
		states[step] = st
	}
	return &term.Trace{States: states}, nil
}
