package term

import (
	"fmt"
	"math/big"

	"github.com/sunholo/mikino/internal/value"
)

func evalArith(n *Arith, cur, next State) (value.Value, error) {
	l, err := Eval(n.L, cur, next)
	if err != nil {
		return nil, err
	}
	r, err := Eval(n.R, cur, next)
	if err != nil {
		return nil, err
	}

	if n.Ty == value.Rat || n.Op == OpDiv {
		lr, rr := l.(value.RatValue).V, r.(value.RatValue).V
		out := new(big.Rat)
		switch n.Op {
		case OpAdd:
			out.Add(lr, rr)
		case OpSub:
			out.Sub(lr, rr)
		case OpMul:
			out.Mul(lr, rr)
		case OpDiv:
			if rr.Sign() == 0 {
				return nil, fmt.Errorf("eval: division by zero")
			}
			out.Quo(lr, rr)
		default:
			return nil, fmt.Errorf("eval: unsupported rat op")
		}
		return value.RatValue{V: out}, nil
	}

	lz, rz := l.(value.IntValue).V, r.(value.IntValue).V
	out := new(big.Int)
	switch n.Op {
	case OpAdd:
		out.Add(lz, rz)
	case OpSub:
		out.Sub(lz, rz)
	case OpMul:
		out.Mul(lz, rz)
	case OpIntDiv:
		if rz.Sign() == 0 {
			return nil, fmt.Errorf("eval: division by zero")
		}
		out.Div(lz, rz) // Euclidean division (non-negative remainder), matches SMT-LIB div for the solver's own semantics
	case OpMod:
		if rz.Sign() == 0 {
			return nil, fmt.Errorf("eval: division by zero")
		}
		out.Mod(lz, rz)
	default:
		return nil, fmt.Errorf("eval: unsupported int op")
	}
	return value.IntValue{V: out}, nil
}

func evalUnary(n *Unary, cur, next State) (value.Value, error) {
	x, err := Eval(n.X, cur, next)
	if err != nil {
		return nil, err
	}
	if n.Ty == value.Rat {
		xr := x.(value.RatValue).V
		out := new(big.Rat)
		switch n.Op {
		case OpNeg:
			out.Neg(xr)
		case OpAbs:
			out.Abs(xr)
		}
		return value.RatValue{V: out}, nil
	}
	xz := x.(value.IntValue).V
	out := new(big.Int)
	switch n.Op {
	case OpNeg:
		out.Neg(xz)
	case OpAbs:
		out.Abs(xz)
	}
	return value.IntValue{V: out}, nil
}

func evalCmp(n *Cmp, cur, next State) (value.Value, error) {
	l, err := Eval(n.L, cur, next)
	if err != nil {
		return nil, err
	}
	r, err := Eval(n.R, cur, next)
	if err != nil {
		return nil, err
	}

	if n.Op == OpEq {
		return value.BoolValue(l.Equal(r)), nil
	}
	if n.Op == OpNeq {
		return value.BoolValue(!l.Equal(r)), nil
	}

	var cmp int
	switch lv := l.(type) {
	case value.IntValue:
		cmp = lv.V.Cmp(r.(value.IntValue).V)
	case value.RatValue:
		cmp = lv.V.Cmp(r.(value.RatValue).V)
	default:
		return nil, fmt.Errorf("eval: ordering comparison over non-numeric type")
	}

	switch n.Op {
	case OpLt:
		return value.BoolValue(cmp < 0), nil
	case OpLe:
		return value.BoolValue(cmp <= 0), nil
	case OpGt:
		return value.BoolValue(cmp > 0), nil
	case OpGe:
		return value.BoolValue(cmp >= 0), nil
	default:
		return nil, fmt.Errorf("eval: unknown comparison op")
	}
}
