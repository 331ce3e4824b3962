package main

import (
	"github.com/sunholo/mikino/internal/term"
	"github.com/sunholo/mikino/internal/value"
)

// scenario pairs a System with a human label, built directly as Go
// values rather than parsed from source text — the surface syntax is
// out of scope for this engine (spec.md §1), so demo systems are
// constructed by hand, the same way cmd/typecheck/demo_ast.go builds an
// AST by hand instead of invoking the parser.
//
// maxDepth bounds BMC for scenarios that are not 1-inductive and so
// would otherwise run BMC forever; the smaller of it and the
// harness-wide --max-depth is used. 0 means "use the harness-wide
// setting".
type scenario struct {
	name     string
	sys      *term.System
	maxDepth int
}

// demoScenarios reproduces the S1-S6 end-to-end scenarios from spec.md §8.
func demoScenarios() []scenario {
	return []scenario{
		{name: "S1 safe counter", sys: s1SafeCounter()},
		{name: "S2 reachable 7", sys: s2Reachable7()},
		{name: "S3 false at init", sys: s3FalseAtInit()},
		{name: "S4 rational exactness", sys: s4RationalExactness()},
		// Not 1-inductive (see s5NotInductive) and always safe, so BMC
		// alone would run forever without a bound; spec.md §8 expects this
		// scenario to report Unknown at the depth explored.
		{name: "S5 not inductive but safe within bound", sys: s5NotInductive(), maxDepth: 10},
		{name: "S6 type error (next in candidate)", sys: s6TypeError()},
	}
}

func s1SafeCounter() *term.System {
	sys := term.NewSystem()
	cnt := sys.AddVar("cnt", value.Int)
	inc := sys.AddVar("inc", value.Bool)

	sys.Init = term.Ge(term.Cur(cnt), term.ConstInt(0))
	sys.Trans = term.Eq(
		term.Nxt(cnt),
		term.If(term.Cur(inc), term.Add(value.Int, term.Cur(cnt), term.ConstInt(1)), term.Cur(cnt)),
	)
	sys.AddCandidate("non_negative", term.Ge(term.Cur(cnt), term.ConstInt(0)))
	return sys
}

func s2Reachable7() *term.System {
	sys := term.NewSystem()
	cnt := sys.AddVar("cnt", value.Int)
	inc := sys.AddVar("inc", value.Bool)

	sys.Init = term.Eq(term.Cur(cnt), term.ConstInt(0))
	sys.Trans = term.Eq(
		term.Nxt(cnt),
		term.If(term.Cur(inc), term.Add(value.Int, term.Cur(cnt), term.ConstInt(1)), term.Cur(cnt)),
	)
	sys.AddCandidate("ne7", term.Neq(term.Cur(cnt), term.ConstInt(7)))
	return sys
}

func s3FalseAtInit() *term.System {
	sys := term.NewSystem()
	x := sys.AddVar("x", value.Int)

	sys.Init = term.Eq(term.Cur(x), term.ConstInt(5))
	sys.Trans = term.Eq(term.Nxt(x), term.Cur(x))
	sys.AddCandidate("c", term.Lt(term.Cur(x), term.ConstInt(5)))
	return sys
}

func s4RationalExactness() *term.System {
	sys := term.NewSystem()
	r := sys.AddVar("r", value.Rat)

	sys.Init = term.Eq(term.Cur(r), term.ConstRat(1, 3))
	sys.Trans = term.Eq(term.Nxt(r), term.Add(value.Rat, term.Cur(r), term.ConstRat(1, 3)))
	sys.AddCandidate("never_one", term.Neq(term.Cur(r), term.ConstRat(1, 1)))
	return sys
}

// s5NotInductive: flag alternates every step and cnt moves +1 when flag
// is true, -1 when false, so reachable states keep cnt in {0,1} forever
// — true at every depth BMC explores — but 1-induction cannot prove it:
// an unconstrained predecessor with cnt=1, flag=true (satisfying the
// hypothesis 0<=cnt<=1) steps to cnt'=2, which 1-induction has no way to
// rule out since it forgets the correlation between cnt and flag that
// only reachability (not an arbitrary state) guarantees.
func s5NotInductive() *term.System {
	sys := term.NewSystem()
	cnt := sys.AddVar("cnt", value.Int)
	flag := sys.AddVar("flag", value.Bool)

	sys.Init = term.And(term.Eq(term.Cur(cnt), term.ConstInt(0)), term.Cur(flag))
	sys.Trans = term.And(
		term.Eq(term.Nxt(cnt), term.If(term.Cur(flag),
			term.Add(value.Int, term.Cur(cnt), term.ConstInt(1)),
			term.Sub(value.Int, term.Cur(cnt), term.ConstInt(1)))),
		term.Iff(term.Nxt(flag), term.NotT(term.Cur(flag))),
	)
	sys.AddCandidate("bounded", term.And(term.Ge(term.Cur(cnt), term.ConstInt(0)), term.Le(term.Cur(cnt), term.ConstInt(1))))
	return sys
}

func s6TypeError() *term.System {
	sys := term.NewSystem()
	v := sys.AddVar("v", value.Bool)

	sys.Init = term.Cur(v)
	sys.Trans = term.Eq(term.Nxt(v), term.Cur(v))
	// Invalid: candidates may not reference next-state variables.
	sys.AddCandidate("bad", term.Nxt(v))
	return sys
}
