// Package smttest provides a scripted, in-memory implementation of
// smt.Session for exercising internal/bmc and internal/induction control
// flow without spawning a real solver process.
package smttest

import (
	"fmt"

	"github.com/sunholo/mikino/internal/smt"
	"github.com/sunholo/mikino/internal/value"
)

// FakeSession is a smt.Session backed by scripted check-sat answers and a
// fixed model, instead of a live solver. Callers queue results with
// PushResult before invoking the code under test, and inspect Asserts /
// Declared afterward to check what was sent.
//
// Example usage:
//
//	fs := smttest.New()
//	fs.PushResult(smt.Sat)
//	fs.Model = map[string]value.Value{"cnt@0": value.NewInt(0)}
//	eng := bmc.NewEngine(fs, sys)
type FakeSession struct {
	Declared map[string]value.Type
	Asserts  []string
	Depth    int

	// results is consumed in FIFO order by CheckSat; the last entry
	// repeats once exhausted so a test need not queue one per call.
	results []smt.Result

	// Model is returned, filtered to the requested names, by GetModel.
	Model map[string]value.Value
}

// New returns an empty FakeSession with no scripted results and an empty
// model; CheckSat defaults to smt.Unsat until a result is queued.
func New() *FakeSession {
	return &FakeSession{
		Declared: make(map[string]value.Type),
		Model:    make(map[string]value.Value),
	}
}

// PushResult appends one check-sat answer to the queue.
func (f *FakeSession) PushResult(r smt.Result) {
	f.results = append(f.results, r)
}

func (f *FakeSession) Declare(name string, ty value.Type) error {
	f.Declared[name] = ty
	return nil
}

func (f *FakeSession) Assert(sexpr string) error {
	f.Asserts = append(f.Asserts, sexpr)
	return nil
}

func (f *FakeSession) Push() error {
	f.Depth++
	return nil
}

func (f *FakeSession) Pop() error {
	if f.Depth == 0 {
		return fmt.Errorf("smttest: pop without matching push")
	}
	f.Depth--
	return nil
}

func (f *FakeSession) CheckSat() (smt.Result, error) {
	if len(f.results) == 0 {
		return smt.Unsat, nil
	}
	r := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return r, nil
}

func (f *FakeSession) GetModel(names []string) (map[string]value.Value, error) {
	out := make(map[string]value.Value, len(names))
	for _, n := range names {
		if v, ok := f.Model[n]; ok {
			out[n] = v
		}
	}
	return out, nil
}

var _ smt.Session = (*FakeSession)(nil)
