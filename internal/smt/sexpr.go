package smt

import (
	"strings"

	"github.com/sunholo/mikino/internal/mkerrors"
)

// readSExpr reads a complete, possibly multi-line, parenthesized
// s-expression response: it reads lines until open and close parens
// balance, skipping leading whitespace-only lines.
func (d *Driver) readSExpr() (string, error) {
	var buf []byte
	depth := 0
	started := false

	for {
		line, err := d.readLine()
		if err != nil {
			return "", err
		}
		for _, ch := range line {
			switch ch {
			case '(':
				depth++
				started = true
			case ')':
				depth--
			}
		}
		if len(buf) > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, line...)

		if started && depth == 0 {
			return string(buf), nil
		}
		if !started && strings.TrimSpace(line) != "" {
			// a bare atom response with no parens at all (e.g. a lone
			// numeral) is already complete
			return string(buf), nil
		}
		if depth < 0 {
			return "", mkerrors.New(mkerrors.SMT003, "smt", "unbalanced parentheses in solver response")
		}
	}
}
