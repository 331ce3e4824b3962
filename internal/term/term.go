// Package term defines the typed expression-tree model: variable
// identifiers, temporal (current/next) references, and the Term node
// variants terms are built from.
package term

import "github.com/sunholo/mikino/internal/value"

// VarId names a variable declared by a System, which keys its variables
// by Name. Go equality on VarId compares both Name and Ty.
type VarId struct {
	Name string
	Ty   value.Type
}

// Temporal distinguishes a reference to a variable's value at the current
// step (k) from its value at the next step (k+1). Only the transition
// relation may contain Next references.
type Temporal int

const (
	Current Temporal = iota
	Next
)

func (t Temporal) String() string {
	if t == Next {
		return "next"
	}
	return "current"
}

// TemporalVar is a VarId tagged with its temporal index.
type TemporalVar struct {
	Var  VarId
	When Temporal
}

// Op is an operator tag for Term nodes with more than one shape sharing a
// representation (n-ary bool connectives, binary arithmetic/comparisons).
type Op int

const (
	// Boolean
	OpNot Op = iota
	OpAnd
	OpOr
	OpImplies
	OpIff
	OpXor
	// Arithmetic
	OpAdd
	OpSub
	OpMul
	OpNeg
	OpDiv    // Rat only
	OpIntDiv // Int only
	OpMod    // Int only
	OpAbs
	// Comparisons
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
)

// Term is a typed expression tree node. Every concrete variant below
// implements Term; the Type method reports the node's resolved type so the
// checker and encoder never need to re-derive it.
type Term interface {
	Type() value.Type
	isTerm()
}

// Const is a literal value.
type Const struct {
	Val value.Value
}

func (c *Const) Type() value.Type { return c.Val.Type() }
func (*Const) isTerm()            {}

// Var is a reference to a declared variable at a given temporal index.
type Var struct {
	Ref TemporalVar
}

func (v *Var) Type() value.Type { return v.Ref.Var.Ty }
func (*Var) isTerm()            {}

// IfThenElse selects Then or Else by Cond; Then and Else must share a type.
type IfThenElse struct {
	Cond       Term
	Then, Else Term
}

func (i *IfThenElse) Type() value.Type { return i.Then.Type() }
func (*IfThenElse) isTerm()            {}

// Not negates a single boolean operand.
type Not struct{ X Term }

func (*Not) Type() value.Type { return value.Bool }
func (*Not) isTerm()          {}

// NAry is an n-ary boolean connective: And or Or.
type NAry struct {
	Op   Op // OpAnd or OpOr
	Args []Term
}

func (*NAry) Type() value.Type { return value.Bool }
func (*NAry) isTerm()          {}

// BoolBinary is a binary boolean connective: Implies, Iff, or Xor.
type BoolBinary struct {
	Op   Op
	L, R Term
}

func (*BoolBinary) Type() value.Type { return value.Bool }
func (*BoolBinary) isTerm()          {}

// Arith is a binary arithmetic operator over Int or Rat operands of
// identical type: Add, Sub, Mul, Div, IntDiv, Mod.
type Arith struct {
	Op   Op
	L, R Term
	Ty   value.Type
}

func (a *Arith) Type() value.Type { return a.Ty }
func (*Arith) isTerm()            {}

// Unary is a unary arithmetic operator: Neg or Abs.
type Unary struct {
	Op Op
	X  Term
	Ty value.Type
}

func (u *Unary) Type() value.Type { return u.Ty }
func (*Unary) isTerm()            {}

// Cmp is a comparison returning Bool: Eq, Neq (any ground type), or
// Lt/Le/Gt/Ge (numeric only).
type Cmp struct {
	Op   Op
	L, R Term
}

func (*Cmp) Type() value.Type { return value.Bool }
func (*Cmp) isTerm()          {}

// ToRat explicitly converts an Int-typed term to Rat.
type ToRat struct{ X Term }

func (*ToRat) Type() value.Type { return value.Rat }
func (*ToRat) isTerm()          {}
