// Package encode renders term.Term trees into SMT-LIB 2 s-expressions for
// a given unrolling step k: a Current reference renders as v@k, a Next
// reference as v@(k+1).
package encode

import (
	"fmt"
	"strings"

	"github.com/sunholo/mikino/internal/term"
	"github.com/sunholo/mikino/internal/value"
)

// VarAt names the solver-level symbol for v at temporal index when,
// relative to base step k.
func VarAt(v term.VarId, when term.Temporal, k int) string {
	if when == term.Next {
		return fmt.Sprintf("%s@%d", v.Name, k+1)
	}
	return fmt.Sprintf("%s@%d", v.Name, k)
}

// Term renders t at step k into an SMT-LIB boolean/arithmetic expression.
func Term(t term.Term, k int) string {
	switch n := t.(type) {
	case *term.Const:
		return literal(n.Val)
	case *term.Var:
		return VarAt(n.Ref.Var, n.Ref.When, k)
	case *term.IfThenElse:
		return fmt.Sprintf("(ite %s %s %s)", Term(n.Cond, k), Term(n.Then, k), Term(n.Else, k))
	case *term.Not:
		return fmt.Sprintf("(not %s)", Term(n.X, k))
	case *term.NAry:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = Term(a, k)
		}
		return fmt.Sprintf("(%s %s)", naryOp(n.Op), strings.Join(args, " "))
	case *term.BoolBinary:
		return fmt.Sprintf("(%s %s %s)", boolBinOp(n.Op), Term(n.L, k), Term(n.R, k))
	case *term.Arith:
		return fmt.Sprintf("(%s %s %s)", arithOp(n.Op), Term(n.L, k), Term(n.R, k))
	case *term.Unary:
		return fmt.Sprintf("(%s %s)", unaryOp(n.Op), Term(n.X, k))
	case *term.Cmp:
		return fmt.Sprintf("(%s %s %s)", cmpOp(n.Op), Term(n.L, k), Term(n.R, k))
	case *term.ToRat:
		return fmt.Sprintf("(to_real %s)", Term(n.X, k))
	default:
		panic(fmt.Sprintf("encode: unknown term node %T", t))
	}
}

func literal(v value.Value) string {
	switch vv := v.(type) {
	case value.BoolValue:
		return vv.String()
	case value.IntValue:
		return vv.V.String()
	case value.RatValue:
		return fmt.Sprintf("(/ %s %s)", vv.V.Num().String(), vv.V.Denom().String())
	default:
		panic(fmt.Sprintf("encode: unknown value type %T", v))
	}
}

func naryOp(op term.Op) string {
	switch op {
	case term.OpAnd:
		return "and"
	case term.OpOr:
		return "or"
	default:
		panic("encode: not an n-ary op")
	}
}

func boolBinOp(op term.Op) string {
	switch op {
	case term.OpImplies:
		return "=>"
	case term.OpIff:
		return "="
	case term.OpXor:
		return "xor"
	default:
		panic("encode: not a boolean binary op")
	}
}

func arithOp(op term.Op) string {
	switch op {
	case term.OpAdd:
		return "+"
	case term.OpSub:
		return "-"
	case term.OpMul:
		return "*"
	case term.OpDiv:
		return "/"
	case term.OpIntDiv:
		return "div"
	case term.OpMod:
		return "mod"
	default:
		panic("encode: not a binary arithmetic op")
	}
}

func unaryOp(op term.Op) string {
	switch op {
	case term.OpNeg:
		return "-"
	case term.OpAbs:
		return "abs"
	default:
		panic("encode: not a unary op")
	}
}

func cmpOp(op term.Op) string {
	switch op {
	case term.OpEq:
		return "="
	case term.OpNeq:
		return "distinct"
	case term.OpLt:
		return "<"
	case term.OpLe:
		return "<="
	case term.OpGt:
		return ">"
	case term.OpGe:
		return ">="
	default:
		panic("encode: not a comparison op")
	}
}
