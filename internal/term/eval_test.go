package term

import (
	"testing"

	"github.com/sunholo/mikino/internal/value"
)

func TestEvalCmp(t *testing.T) {
	cnt := VarId{Name: "cnt", Ty: value.Int}
	cur := State{"cnt": value.NewInt(3)}

	expr := Lt(Cur(cnt), ConstInt(10))
	v, err := Eval(expr, cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bool(v.(value.BoolValue)) {
		t.Error("3 < 10 should be true")
	}
}

func TestEvalTransition(t *testing.T) {
	cnt := VarId{Name: "cnt", Ty: value.Int}
	inc := VarId{Name: "inc", Ty: value.Bool}
	cur := State{"cnt": value.NewInt(3), "inc": value.BoolValue(true)}
	next := State{"cnt": value.NewInt(4)}

	trans := Eq(Nxt(cnt), If(Cur(inc), Add(value.Int, Cur(cnt), ConstInt(1)), Cur(cnt)))
	v, err := Eval(trans, cur, next)
	if err != nil {
		t.Fatal(err)
	}
	if !bool(v.(value.BoolValue)) {
		t.Error("expected transition to hold for cnt=3->4 with inc=true")
	}
}

func TestEvalRatArithExact(t *testing.T) {
	r := VarId{Name: "r", Ty: value.Rat}
	cur := State{"r": value.NewRat(1, 3)}

	expr := Eq(Add(value.Rat, Cur(r), ConstRat(1, 3)), ConstRat(2, 3))
	v, err := Eval(expr, cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bool(v.(value.BoolValue)) {
		t.Error("1/3 + 1/3 should equal 2/3 exactly")
	}
}

func TestEvalAbs(t *testing.T) {
	x := VarId{Name: "x", Ty: value.Int}
	cur := State{"x": value.NewInt(-5)}

	absExpr := Abs(value.Int, Cur(x))
	v, err := Eval(absExpr, cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	iv := v.(value.IntValue)
	if iv.V.Int64() != 5 {
		t.Errorf("abs(-5) = %s, want 5", iv.V.String())
	}
}
