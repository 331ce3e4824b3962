package smt

import (
	"testing"

	"github.com/sunholo/mikino/internal/value"
)

func TestParseModelValueBool(t *testing.T) {
	v, err := parseModelValue("((x true))", value.Bool)
	if err != nil {
		t.Fatal(err)
	}
	if !bool(v.(value.BoolValue)) {
		t.Errorf("expected true, got %v", v)
	}
}

func TestParseModelValueInt(t *testing.T) {
	cases := []struct {
		resp string
		want string
	}{
		{"((x 42))", "42"},
		{"((x (- 7)))", "-7"},
	}
	for _, c := range cases {
		v, err := parseModelValue(c.resp, value.Int)
		if err != nil {
			t.Fatalf("%s: %v", c.resp, err)
		}
		if got := v.String(); got != c.want {
			t.Errorf("parseModelValue(%q) = %q, want %q", c.resp, got, c.want)
		}
	}
}

func TestParseModelValueRat(t *testing.T) {
	cases := []struct {
		resp string
		want string
	}{
		{"((x (/ 1 3)))", "1/3"},
		{"((x 1.0))", "1"},
		{"((x (- (/ 1 3))))", "-1/3"},
		{"((x (/ (- 1) 3)))", "-1/3"},
	}
	for _, c := range cases {
		v, err := parseModelValue(c.resp, value.Rat)
		if err != nil {
			t.Fatalf("%s: %v", c.resp, err)
		}
		if got := v.String(); got != c.want {
			t.Errorf("parseModelValue(%q) = %q, want %q", c.resp, got, c.want)
		}
	}
}

func TestParseSExprNested(t *testing.T) {
	s, rest, err := parseSExpr("((x (/ 1 3)) (y true))")
	if err != nil {
		t.Fatal(err)
	}
	if rest != "" {
		t.Errorf("expected no remainder, got %q", rest)
	}
	if len(s.list) != 2 {
		t.Fatalf("expected 2 top-level bindings, got %d", len(s.list))
	}
}
