// Package typecheck validates a term.System: every variable reference is
// declared, operand types agree, init/trans/candidates are boolean, init
// and candidates contain no Next references, and candidate names are
// unique.
package typecheck

import (
	"fmt"

	"github.com/sunholo/mikino/internal/mkerrors"
	"github.com/sunholo/mikino/internal/term"
	"github.com/sunholo/mikino/internal/value"
)

// Check validates sys in a single pass and returns every problem found;
// a nil/empty slice means sys is well-formed. The engine must not run
// against a System with any reported errors.
func Check(sys *term.System) []*mkerrors.Report {
	c := &checker{sys: sys}

	c.checkTerm(sys.Init, false)
	if t := termType(sys.Init); t != value.Bool {
		c.errs = append(c.errs, typeErr(mkerrors.TYP003, "init is not boolean (got %s)", t))
	}

	c.checkTerm(sys.Trans, true)
	if t := termType(sys.Trans); t != value.Bool {
		c.errs = append(c.errs, typeErr(mkerrors.TYP003, "trans is not boolean (got %s)", t))
	}

	seen := make(map[string]bool, len(sys.Candidates))
	for _, cand := range sys.Candidates {
		if seen[cand.Name] {
			c.errs = append(c.errs, typeErr(mkerrors.TYP005, "duplicate candidate name %q", cand.Name))
		}
		seen[cand.Name] = true

		c.checkTerm(cand.Body, false)
		if t := termType(cand.Body); t != value.Bool {
			c.errs = append(c.errs, typeErr(mkerrors.TYP003, "candidate %q is not boolean (got %s)", cand.Name, t))
		}
	}

	return c.errs
}

type checker struct {
	sys  *term.System
	errs []*mkerrors.Report
}

// checkTerm walks t, reporting undeclared variables, Next references where
// allowNext is false, and operand type mismatches. It does not re-derive
// top-level boolean-ness of init/trans/candidates — the caller does that.
func (c *checker) checkTerm(t term.Term, allowNext bool) {
	switch n := t.(type) {
	case *term.Const:
		// always well-formed
	case *term.Var:
		decl, ok := c.sys.Vars[n.Ref.Var.Name]
		if !ok {
			c.errs = append(c.errs, typeErr(mkerrors.TYP001, "undeclared variable %q", n.Ref.Var.Name))
			return
		}
		if decl.Ty != n.Ref.Var.Ty {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "variable %q used at type %s, declared %s", n.Ref.Var.Name, n.Ref.Var.Ty, decl.Ty))
		}
		if n.Ref.When == term.Next && !allowNext {
			c.errs = append(c.errs, typeErr(mkerrors.TYP004, "next-state reference to %q not allowed here", n.Ref.Var.Name))
		}
	case *term.IfThenElse:
		c.checkTerm(n.Cond, allowNext)
		c.checkTerm(n.Then, allowNext)
		c.checkTerm(n.Else, allowNext)
		if termType(n.Cond) != value.Bool {
			c.errs = append(c.errs, typeErr(mkerrors.TYP006, "if condition is not boolean"))
		}
		if termType(n.Then) != termType(n.Else) {
			c.errs = append(c.errs, typeErr(mkerrors.TYP006, "if branches have different types (%s vs %s)", termType(n.Then), termType(n.Else)))
		}
	case *term.Not:
		c.checkTerm(n.X, allowNext)
		if termType(n.X) != value.Bool {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "not operand is not boolean"))
		}
	case *term.NAry:
		for _, a := range n.Args {
			c.checkTerm(a, allowNext)
			if termType(a) != value.Bool {
				c.errs = append(c.errs, typeErr(mkerrors.TYP002, "boolean connective operand is not boolean"))
			}
		}
	case *term.BoolBinary:
		c.checkTerm(n.L, allowNext)
		c.checkTerm(n.R, allowNext)
		if termType(n.L) != value.Bool || termType(n.R) != value.Bool {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "boolean connective operand is not boolean"))
		}
	case *term.Arith:
		c.checkTerm(n.L, allowNext)
		c.checkTerm(n.R, allowNext)
		lt, rt := termType(n.L), termType(n.R)
		if lt != rt || lt != n.Ty {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "arithmetic operand type mismatch (%s vs %s, expected %s)", lt, rt, n.Ty))
		}
		if n.Op == term.OpDiv && n.Ty != value.Rat {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "div is only defined over rat"))
		}
		if (n.Op == term.OpIntDiv || n.Op == term.OpMod) && n.Ty != value.Int {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "int-div/mod are only defined over int"))
		}
	case *term.Unary:
		c.checkTerm(n.X, allowNext)
		if termType(n.X) != n.Ty {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "unary operand type mismatch (%s, expected %s)", termType(n.X), n.Ty))
		}
	case *term.Cmp:
		c.checkTerm(n.L, allowNext)
		c.checkTerm(n.R, allowNext)
		lt, rt := termType(n.L), termType(n.R)
		if lt != rt {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "comparison operand type mismatch (%s vs %s)", lt, rt))
		}
		if (n.Op == term.OpLt || n.Op == term.OpLe || n.Op == term.OpGt || n.Op == term.OpGe) && lt == value.Bool {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "ordering comparison not defined over bool"))
		}
	case *term.ToRat:
		c.checkTerm(n.X, allowNext)
		if termType(n.X) != value.Int {
			c.errs = append(c.errs, typeErr(mkerrors.TYP002, "to_rat operand is not int"))
		}
	default:
		c.errs = append(c.errs, typeErr(mkerrors.TYP002, "unknown term node %T", t))
	}
}

// termType reports t's type without re-validating it; safe to call even
// on a term that checkTerm has already flagged as ill-typed, since every
// Term node carries its declared type independent of its operands'
// actual types.
func termType(t term.Term) value.Type { return t.Type() }

func typeErr(code, format string, args ...any) *mkerrors.Report {
	return mkerrors.New(code, "typecheck", fmt.Sprintf(format, args...))
}
