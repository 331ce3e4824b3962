package induction

import (
	"testing"

	"github.com/sunholo/mikino/internal/smt"
	"github.com/sunholo/mikino/internal/smt/smttest"
	"github.com/sunholo/mikino/internal/term"
	"github.com/sunholo/mikino/internal/value"
)

func counterSystem() *term.System {
	sys := term.NewSystem()
	cnt := sys.AddVar("cnt", value.Int)
	sys.Init = term.Eq(term.Cur(cnt), term.ConstInt(0))
	sys.Trans = term.Eq(term.Nxt(cnt), term.Add(value.Int, term.Cur(cnt), term.ConstInt(1)))
	sys.AddCandidate("non_negative", term.Ge(term.Cur(cnt), term.ConstInt(0)))
	return sys
}

func TestCheckBaseUnsatIsNotInductiveWithNilTrace(t *testing.T) {
	sys := counterSystem()
	fs := smttest.New()
	fs.PushResult(smt.Unsat)
	e := NewEngine(fs, sys)

	outcome, tr, err := e.CheckBase(sys.Candidates[0])
	if err != nil {
		t.Fatal(err)
	}
	if outcome != NotInductive || tr != nil {
		t.Errorf("expected NotInductive/nil trace, got %v %v", outcome, tr)
	}
	if fs.Depth != 0 {
		t.Errorf("expected CheckBase to pop its scope, depth = %d", fs.Depth)
	}
}

func TestCheckBaseSatReportsFalsifiedWithState(t *testing.T) {
	sys := counterSystem()
	fs := smttest.New()
	fs.PushResult(smt.Sat)
	fs.Model = map[string]value.Value{"cnt@0": value.NewInt(-3)}
	e := NewEngine(fs, sys)

	outcome, tr, err := e.CheckBase(sys.Candidates[0])
	if err != nil {
		t.Fatal(err)
	}
	if outcome != BaseFalsified {
		t.Fatalf("expected BaseFalsified, got %v", outcome)
	}
	if tr == nil || tr.Len() != 1 || tr.States[0]["cnt"].String() != "-3" {
		t.Errorf("unexpected trace %v", tr)
	}
}

func TestCheckStepUnsatIsInductive(t *testing.T) {
	sys := counterSystem()
	fs := smttest.New()
	fs.PushResult(smt.Unsat)
	e := NewEngine(fs, sys)

	outcome, err := e.CheckStep(sys.Candidates[0])
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Inductive {
		t.Errorf("expected Inductive, got %v", outcome)
	}
	if _, ok := fs.Declared["cnt@0"]; !ok {
		t.Error("expected cnt@0 declared")
	}
	if _, ok := fs.Declared["cnt@1"]; !ok {
		t.Error("expected cnt@1 declared")
	}
}

func TestCheckStepSatIsNotInductive(t *testing.T) {
	sys := counterSystem()
	fs := smttest.New()
	fs.PushResult(smt.Sat)
	e := NewEngine(fs, sys)

	outcome, err := e.CheckStep(sys.Candidates[0])
	if err != nil {
		t.Fatal(err)
	}
	if outcome != NotInductive {
		t.Errorf("expected NotInductive, got %v", outcome)
	}
}

func TestCheckStepUnknownReturnsError(t *testing.T) {
	sys := counterSystem()
	fs := smttest.New()
	fs.PushResult(smt.Unknown)
	e := NewEngine(fs, sys)

	if _, err := e.CheckStep(sys.Candidates[0]); err == nil {
		t.Error("expected an error on solver-unknown")
	}
}
