package smt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sunholo/mikino/internal/mkerrors"
	"github.com/sunholo/mikino/internal/value"
)

// sexp is either an atom (string) or a list ([]sexp), the minimal parse
// tree needed to pull a model value out of a get-value response.
type sexp struct {
	atom string
	list []sexp
}

func (s sexp) isAtom() bool { return s.list == nil }

// parseSExpr tokenizes and parses one s-expression from the front of src,
// returning it and the unparsed remainder.
func parseSExpr(src string) (sexp, string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return sexp{}, "", mkerrors.New(mkerrors.SMT003, "smt", "empty s-expression")
	}
	if src[0] != '(' {
		end := 0
		for end < len(src) && !isDelim(src[end]) {
			end++
		}
		return sexp{atom: src[:end]}, src[end:], nil
	}

	rest := src[1:]
	var items []sexp
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if rest == "" {
			return sexp{}, "", mkerrors.New(mkerrors.SMT003, "smt", "unterminated s-expression")
		}
		if rest[0] == ')' {
			return sexp{list: items}, rest[1:], nil
		}
		item, next, err := parseSExpr(rest)
		if err != nil {
			return sexp{}, "", err
		}
		items = append(items, item)
		rest = next
	}
}

func isDelim(b byte) bool {
	return b == '(' || b == ')' || b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// parseModelValue converts a (get-value (name)) response — shaped
// "((name <value-expr>))" — into a typed value.Value.
func parseModelValue(resp string, ty value.Type) (value.Value, error) {
	top, _, err := parseSExpr(resp)
	if err != nil {
		return nil, err
	}
	if top.isAtom() || len(top.list) != 1 || len(top.list[0].list) != 2 {
		return nil, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("unexpected get-value shape: %q", resp))
	}
	return valueOf(top.list[0].list[1], ty)
}

func valueOf(s sexp, ty value.Type) (value.Value, error) {
	switch ty {
	case value.Bool:
		switch s.atom {
		case "true":
			return value.BoolValue(true), nil
		case "false":
			return value.BoolValue(false), nil
		}
		return nil, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("not a bool literal: %v", s))
	case value.Int:
		z, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		return value.IntValue{V: z}, nil
	case value.Rat:
		r, err := parseRat(s)
		if err != nil {
			return nil, err
		}
		return value.RatValue{V: r}, nil
	default:
		return nil, mkerrors.New(mkerrors.SMT003, "smt", "unknown target type in model")
	}
}

// parseInt parses a decimal numeral, or a unary-minus-wrapped numeral, as
// a big.Int.
func parseInt(s sexp) (*big.Int, error) {
	if s.isAtom() {
		z, ok := new(big.Int).SetString(s.atom, 10)
		if !ok {
			return nil, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("not an integer literal: %q", s.atom))
		}
		return z, nil
	}
	if len(s.list) == 2 && s.list[0].atom == "-" {
		z, err := parseInt(s.list[1])
		if err != nil {
			return nil, err
		}
		return new(big.Int).Neg(z), nil
	}
	return nil, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("not an integer literal: %v", s))
}

// parseRat parses any of a bare integer, a decimal literal ("1.5"), or a
// (/ p q) rational literal, each optionally unary-minus-wrapped, and
// normalizes to lowest terms with a positive denominator via big.Rat.
func parseRat(s sexp) (*big.Rat, error) {
	if s.isAtom() {
		r, ok := new(big.Rat).SetString(s.atom)
		if !ok {
			return nil, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("not a rational literal: %q", s.atom))
		}
		return r, nil
	}
	if len(s.list) == 2 && s.list[0].atom == "-" {
		r, err := parseRat(s.list[1])
		if err != nil {
			return nil, err
		}
		return new(big.Rat).Neg(r), nil
	}
	if len(s.list) == 3 && s.list[0].atom == "/" {
		p, err := parseRat(s.list[1])
		if err != nil {
			return nil, err
		}
		q, err := parseRat(s.list[2])
		if err != nil {
			return nil, err
		}
		if q.Sign() == 0 {
			return nil, mkerrors.New(mkerrors.SMT003, "smt", "division by zero in model literal")
		}
		return p.Quo(p, q), nil
	}
	return nil, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("not a rational literal: %v", s))
}
