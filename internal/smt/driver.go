// Package smt drives an external SMT-LIB2-compatible solver process over
// its stdin/stdout as a synchronous, line-oriented protocol: declare,
// assert, push/pop, check-sat, get-model.
package smt

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/sunholo/mikino/internal/config"
	"github.com/sunholo/mikino/internal/mkerrors"
	"github.com/sunholo/mikino/internal/value"
)

// Result is the outcome of a check-sat call.
type Result int

const (
	Unsat Result = iota
	Sat
	Unknown
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Driver owns a spawned solver process and its push/pop depth.
type Driver struct {
	cfg config.Config

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	depth int // current push/pop depth; Pop refuses to go below 0

	// declared records, across all depths, the sort of every name the
	// driver has declared, so get_model can type its results correctly.
	declared map[string]value.Type

	// Trace, if non-nil, receives every line sent to and read from the
	// solver — a debugging aid. Nothing in this repository sets it.
	Trace io.Writer
}

// New spawns the configured solver process and initializes it for
// incremental model-producing use.
func New(cfg config.Config) (*Driver, error) {
	cmd := exec.Command(cfg.SolverCommand, "-in")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, mkerrors.New(mkerrors.SMT001, "smt", fmt.Sprintf("stdin pipe: %v", err))
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, mkerrors.New(mkerrors.SMT001, "smt", fmt.Sprintf("stdout pipe: %v", err))
	}
	if err := cmd.Start(); err != nil {
		return nil, mkerrors.New(mkerrors.SMT001, "smt", fmt.Sprintf("spawn %q: %v", cfg.SolverCommand, err))
	}

	d := &Driver{
		cfg:      cfg,
		cmd:      cmd,
		stdin:    stdin,
		stdout:   bufio.NewReader(stdout),
		declared: make(map[string]value.Type),
	}

	if err := d.send("(set-option :print-success false)"); err != nil {
		return nil, err
	}
	if err := d.send("(set-option :produce-models true)"); err != nil {
		return nil, err
	}
	return d, nil
}

// send writes one command line to the solver, unconditionally.
func (d *Driver) send(line string) error {
	if d.Trace != nil {
		fmt.Fprintln(d.Trace, "> "+line)
	}
	if _, err := io.WriteString(d.stdin, line+"\n"); err != nil {
		return mkerrors.New(mkerrors.SMT002, "smt", fmt.Sprintf("write: %v", err))
	}
	return nil
}

// Declare emits a declare-const for name at the given sort and records it
// for later get_model calls.
func (d *Driver) Declare(name string, ty value.Type) error {
	d.declared[name] = ty
	return d.send(fmt.Sprintf("(declare-const %s %s)", name, ty.Sort()))
}

// Assert emits an assertion. sexpr is a fully-rendered SMT-LIB boolean term.
func (d *Driver) Assert(sexpr string) error {
	return d.send(fmt.Sprintf("(assert %s)", sexpr))
}

// Push opens a new assertion scope.
func (d *Driver) Push() error {
	d.depth++
	return d.send("(push 1)")
}

// Pop closes the innermost assertion scope. Popping below depth 0 is a
// protocol violation on the caller's part, reported rather than silently
// clamped — spec.md §5 requires push/pop to stay balanced.
func (d *Driver) Pop() error {
	if d.depth == 0 {
		return mkerrors.New(mkerrors.SMT004, "smt", "pop without matching push")
	}
	d.depth--
	return d.send("(pop 1)")
}

// CheckSat blocks for exactly one of sat/unsat/unknown.
func (d *Driver) CheckSat() (Result, error) {
	if err := d.send("(check-sat)"); err != nil {
		return Unknown, err
	}
	line, err := d.readLine()
	if err != nil {
		return Unknown, err
	}
	switch line {
	case "sat":
		return Sat, nil
	case "unsat":
		return Unsat, nil
	case "unknown":
		return Unknown, nil
	default:
		return Unknown, mkerrors.New(mkerrors.SMT003, "smt", fmt.Sprintf("unexpected check-sat response: %q", line))
	}
}

// GetModel requests the current value of each name in names; valid only
// immediately after a Sat result. names with no declared sort are
// skipped — the caller is expected to pass only names Declare was
// called with.
func (d *Driver) GetModel(names []string) (map[string]value.Value, error) {
	out := make(map[string]value.Value, len(names))
	for _, name := range names {
		ty, ok := d.declared[name]
		if !ok {
			continue
		}
		if err := d.send(fmt.Sprintf("(get-value (%s))", name)); err != nil {
			return nil, err
		}
		resp, err := d.readSExpr()
		if err != nil {
			return nil, err
		}
		v, err := parseModelValue(resp, ty)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// Reset clears all assertions and declarations and returns the driver to
// depth 0, re-applying the model-production options.
func (d *Driver) Reset() error {
	if err := d.send("(reset)"); err != nil {
		return err
	}
	d.depth = 0
	d.declared = make(map[string]value.Type)
	if err := d.send("(set-option :print-success false)"); err != nil {
		return err
	}
	return d.send("(set-option :produce-models true)")
}

// Shutdown terminates the solver process cleanly: closes stdin, waits
// with a bounded grace period, and kills the process if it hasn't exited.
// Safe to call more than once and on every engine exit path, including
// after an error.
func (d *Driver) Shutdown() error {
	_ = d.send("(exit)")
	_ = d.stdin.Close()

	done := make(chan error, 1)
	go func() { done <- d.cmd.Wait() }()

	select {
	case <-done:
		return nil
	case <-time.After(2 * time.Second):
		_ = d.cmd.Process.Kill()
		<-done
		return nil
	}
}

// readLine reads one line of solver response, trimming the trailing
// newline. An EOF here means the process exited unexpectedly.
func (d *Driver) readLine() (string, error) {
	line, err := d.stdout.ReadString('\n')
	if err != nil && line == "" {
		return "", mkerrors.New(mkerrors.SMT002, "smt", fmt.Sprintf("read: %v", err))
	}
	line = trimNewline(line)
	if d.Trace != nil {
		fmt.Fprintln(d.Trace, "< "+line)
	}
	return line, nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
