package encode

import (
	"testing"

	"github.com/sunholo/mikino/internal/term"
	"github.com/sunholo/mikino/internal/value"
)

func TestVarAtNaming(t *testing.T) {
	cnt := term.VarId{Name: "cnt", Ty: value.Int}
	if got := VarAt(cnt, term.Current, 3); got != "cnt@3" {
		t.Errorf("Current ref at step 3 = %q, want cnt@3", got)
	}
	if got := VarAt(cnt, term.Next, 3); got != "cnt@4" {
		t.Errorf("Next ref at step 3 = %q, want cnt@4", got)
	}
}

func TestTermRendersConstants(t *testing.T) {
	cases := []struct {
		t    term.Term
		want string
	}{
		{term.ConstBool(true), "true"},
		{term.ConstBool(false), "false"},
		{term.ConstInt(42), "42"},
		{term.ConstRat(1, 3), "(/ 1 3)"},
	}
	for _, c := range cases {
		if got := Term(c.t, 0); got != c.want {
			t.Errorf("Term(%v) = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestTermRendersCompoundExpression(t *testing.T) {
	cnt := term.VarId{Name: "cnt", Ty: value.Int}
	inc := term.VarId{Name: "inc", Ty: value.Bool}

	trans := term.Eq(term.Nxt(cnt), term.If(term.Cur(inc), term.Add(value.Int, term.Cur(cnt), term.ConstInt(1)), term.Cur(cnt)))
	want := "(= cnt@1 (ite inc@0 (+ cnt@0 1) cnt@0))"
	if got := Term(trans, 0); got != want {
		t.Errorf("Term(trans, 0) = %q, want %q", got, want)
	}
}

func TestTermRendersNaryAndBoolOps(t *testing.T) {
	a := term.VarId{Name: "a", Ty: value.Bool}
	b := term.VarId{Name: "b", Ty: value.Bool}

	and := term.And(term.Cur(a), term.Cur(b), term.ConstBool(true))
	if got := Term(and, 5); got != "(and a@5 b@5 true)" {
		t.Errorf("and rendering = %q", got)
	}

	impl := term.Implies(term.Cur(a), term.Cur(b))
	if got := Term(impl, 0); got != "(=> a@0 b@0)" {
		t.Errorf("implies rendering = %q", got)
	}
}
