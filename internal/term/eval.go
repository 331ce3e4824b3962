package term

import (
	"fmt"
	"math/big"

	"github.com/sunholo/mikino/internal/value"
)

// Eval independently evaluates t against a pair of states: cur supplies
// Current-variable values, next supplies Next-variable values (pass nil
// when t is known to contain no Next references, e.g. init or a
// candidate body). This is the independent evaluator the testable
// properties in spec.md §8 check solver-returned traces against.
func Eval(t Term, cur, next State) (value.Value, error) {
	switch n := t.(type) {
	case *Const:
		return n.Val, nil
	case *Var:
		st := cur
		if n.Ref.When == Next {
			st = next
		}
		v, ok := st[n.Ref.Var.Name]
		if !ok {
			return nil, fmt.Errorf("eval: %q not bound in state", n.Ref.Var.Name)
		}
		return v, nil
	case *IfThenElse:
		c, err := Eval(n.Cond, cur, next)
		if err != nil {
			return nil, err
		}
		if bool(c.(value.BoolValue)) {
			return Eval(n.Then, cur, next)
		}
		return Eval(n.Else, cur, next)
	case *Not:
		x, err := Eval(n.X, cur, next)
		if err != nil {
			return nil, err
		}
		return value.BoolValue(!bool(x.(value.BoolValue))), nil
	case *NAry:
		acc := n.Op == OpAnd
		for _, a := range n.Args {
			v, err := Eval(a, cur, next)
			if err != nil {
				return nil, err
			}
			b := bool(v.(value.BoolValue))
			if n.Op == OpAnd {
				acc = acc && b
			} else {
				acc = acc || b
			}
		}
		return value.BoolValue(acc), nil
	case *BoolBinary:
		l, err := Eval(n.L, cur, next)
		if err != nil {
			return nil, err
		}
		r, err := Eval(n.R, cur, next)
		if err != nil {
			return nil, err
		}
		lb, rb := bool(l.(value.BoolValue)), bool(r.(value.BoolValue))
		switch n.Op {
		case OpImplies:
			return value.BoolValue(!lb || rb), nil
		case OpIff:
			return value.BoolValue(lb == rb), nil
		case OpXor:
			return value.BoolValue(lb != rb), nil
		}
		return nil, fmt.Errorf("eval: unknown bool binary op")
	case *Arith:
		return evalArith(n, cur, next)
	case *Unary:
		return evalUnary(n, cur, next)
	case *Cmp:
		return evalCmp(n, cur, next)
	case *ToRat:
		x, err := Eval(n.X, cur, next)
		if err != nil {
			return nil, err
		}
		iz := x.(value.IntValue).V
		return value.RatValue{V: new(big.Rat).SetInt(iz)}, nil
	default:
		return nil, fmt.Errorf("eval: unknown term node %T", t)
	}
}
