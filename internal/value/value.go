package value

import (
	"fmt"
	"math/big"
)

// Value is a tagged runtime value: exactly one of BoolValue, IntValue, RatValue.
type Value interface {
	Type() Type
	String() string
	Equal(Value) bool
}

// BoolValue is a boolean value.
type BoolValue bool

func (v BoolValue) Type() Type   { return Bool }
func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (v BoolValue) Equal(o Value) bool {
	ov, ok := o.(BoolValue)
	return ok && v == ov
}

// IntValue is an arbitrary-precision signed integer.
type IntValue struct {
	V *big.Int
}

func NewInt(i int64) IntValue { return IntValue{V: big.NewInt(i)} }

func (v IntValue) Type() Type     { return Int }
func (v IntValue) String() string { return v.V.String() }
func (v IntValue) Equal(o Value) bool {
	ov, ok := o.(IntValue)
	return ok && v.V.Cmp(ov.V) == 0
}

// RatValue is an exact fraction, always kept in lowest terms with a
// positive denominator by math/big.Rat's own invariant.
type RatValue struct {
	V *big.Rat
}

func NewRat(p, q int64) RatValue { return RatValue{V: big.NewRat(p, q)} }

func (v RatValue) Type() Type { return Rat }

// String renders as "p/q", or bare "p" when the denominator is 1 — matches
// the normalized form traces must report (spec.md Design Notes, bignum
// normalization invariant).
func (v RatValue) String() string {
	if v.V.IsInt() {
		return v.V.Num().String()
	}
	return fmt.Sprintf("%s/%s", v.V.Num().String(), v.V.Denom().String())
}

func (v RatValue) Equal(o Value) bool {
	ov, ok := o.(RatValue)
	return ok && v.V.Cmp(ov.V) == 0
}
