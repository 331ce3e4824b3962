// Package console is an interactive debugging aid: a line-editing REPL
// whose colon commands (:declare, :assert, :check-sat, ...) call a live
// smt.Driver's public API and print the result. Raw SMT-LIB input that
// is not one of those commands is rejected as unknown. It exists purely
// for manual protocol debugging — the engine never depends on it.
package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/mikino/internal/smt"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Console wraps a live driver with a liner-backed prompt loop.
type Console struct {
	driver *smt.Driver
}

func New(d *smt.Driver) *Console {
	return &Console{driver: d}
}

// Start runs the prompt loop until EOF or :quit. Commands (:declare,
// :assert, :push, :pop, :check-sat, :get name, :reset, :quit) map
// directly onto the Driver's public API; anything else is reported as
// an unknown command.
func (c *Console) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".mikino_console_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(out, bold("mikino console"))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))

	for {
		input, err := line.Prompt("smt> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		c.handle(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (c *Console) handle(input string, out io.Writer) {
	switch {
	case input == ":help":
		fmt.Fprintln(out, ":declare <name> <bool|int|rat>")
		fmt.Fprintln(out, ":assert <sexpr>")
		fmt.Fprintln(out, ":push / :pop")
		fmt.Fprintln(out, ":check-sat")
		fmt.Fprintln(out, ":get <name>")
		fmt.Fprintln(out, ":reset")
		fmt.Fprintln(out, "anything else is reported as an unknown command")
	case strings.HasPrefix(input, ":declare "):
		c.cmdDeclare(strings.TrimPrefix(input, ":declare "), out)
	case strings.HasPrefix(input, ":assert "):
		if err := c.driver.Assert(strings.TrimPrefix(input, ":assert ")); err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		}
	case input == ":push":
		if err := c.driver.Push(); err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		}
	case input == ":pop":
		if err := c.driver.Pop(); err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		}
	case input == ":check-sat":
		res, err := c.driver.CheckSat()
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			return
		}
		fmt.Fprintln(out, yellow(res.String()))
	case strings.HasPrefix(input, ":get "):
		name := strings.TrimSpace(strings.TrimPrefix(input, ":get "))
		model, err := c.driver.GetModel([]string{name})
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			return
		}
		if v, ok := model[name]; ok {
			fmt.Fprintf(out, "%s = %s\n", name, v.String())
		} else {
			fmt.Fprintf(out, "%s: %s not declared\n", red("error"), name)
		}
	case input == ":reset":
		if err := c.driver.Reset(); err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		}
	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("error"), input)
	}
}
