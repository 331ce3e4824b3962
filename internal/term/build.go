package term

import "github.com/sunholo/mikino/internal/value"

// Package-level constructors for building Term trees directly as Go
// values — the same shape as a hand-built AST, since the surface parser
// is out of scope for this engine.

func ConstBool(b bool) *Const    { return &Const{Val: value.BoolValue(b)} }
func ConstInt(i int64) *Const    { return &Const{Val: value.NewInt(i)} }
func ConstRat(p, q int64) *Const { return &Const{Val: value.NewRat(p, q)} }

func NotT(x Term) *Not { return &Not{X: x} }

func And(args ...Term) *NAry { return &NAry{Op: OpAnd, Args: args} }
func Or(args ...Term) *NAry  { return &NAry{Op: OpOr, Args: args} }

func Implies(l, r Term) *BoolBinary { return &BoolBinary{Op: OpImplies, L: l, R: r} }
func Iff(l, r Term) *BoolBinary     { return &BoolBinary{Op: OpIff, L: l, R: r} }
func Xor(l, r Term) *BoolBinary     { return &BoolBinary{Op: OpXor, L: l, R: r} }

func Add(ty value.Type, l, r Term) *Arith    { return &Arith{Op: OpAdd, L: l, R: r, Ty: ty} }
func Sub(ty value.Type, l, r Term) *Arith    { return &Arith{Op: OpSub, L: l, R: r, Ty: ty} }
func Mul(ty value.Type, l, r Term) *Arith    { return &Arith{Op: OpMul, L: l, R: r, Ty: ty} }
func Div(l, r Term) *Arith                   { return &Arith{Op: OpDiv, L: l, R: r, Ty: value.Rat} }
func IntDiv(l, r Term) *Arith                { return &Arith{Op: OpIntDiv, L: l, R: r, Ty: value.Int} }
func Mod(l, r Term) *Arith                   { return &Arith{Op: OpMod, L: l, R: r, Ty: value.Int} }

func Neg(ty value.Type, x Term) *Unary { return &Unary{Op: OpNeg, X: x, Ty: ty} }
func Abs(ty value.Type, x Term) *Unary { return &Unary{Op: OpAbs, X: x, Ty: ty} }

func Eq(l, r Term) *Cmp  { return &Cmp{Op: OpEq, L: l, R: r} }
func Neq(l, r Term) *Cmp { return &Cmp{Op: OpNeq, L: l, R: r} }
func Lt(l, r Term) *Cmp  { return &Cmp{Op: OpLt, L: l, R: r} }
func Le(l, r Term) *Cmp  { return &Cmp{Op: OpLe, L: l, R: r} }
func Gt(l, r Term) *Cmp  { return &Cmp{Op: OpGt, L: l, R: r} }
func Ge(l, r Term) *Cmp  { return &Cmp{Op: OpGe, L: l, R: r} }

func ToRatOf(x Term) *ToRat { return &ToRat{X: x} }

func If(cond, then, els Term) *IfThenElse {
	return &IfThenElse{Cond: cond, Then: then, Else: els}
}
