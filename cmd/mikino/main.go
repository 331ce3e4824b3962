// Command mikino is a demo harness for the verification engine: it runs
// the spec's end-to-end scenarios against a real solver process and
// prints colorized per-candidate outcomes. Building the command-line
// front end proper, and a file-based input language, are both out of
// scope for this repository (spec.md §1) — this exists only to exercise
// the engine the way cmd/typecheck exercises the teacher's type checker.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sunholo/mikino/internal/config"
	"github.com/sunholo/mikino/internal/console"
	"github.com/sunholo/mikino/internal/engine"
	"github.com/sunholo/mikino/internal/smt"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func main() {
	solver := flag.String("solver", "z3", "SMT solver command to invoke")
	maxDepth := flag.Int("max-depth", -1, "maximum BMC depth to explore (negative = unbounded)")
	skipInduction := flag.Bool("skip-induction", false, "skip the 1-induction phase")
	skipBMC := flag.Bool("skip-bmc", false, "skip the BMC phase")
	flag.Parse()

	cfg := config.Default()
	cfg.SolverCommand = *solver
	cfg.SkipInduction = *skipInduction
	cfg.SkipBMC = *skipBMC
	if *maxDepth >= 0 {
		cfg = cfg.WithMaxDepth(*maxDepth)
	}

	if flag.NArg() > 0 && flag.Arg(0) == "console" {
		runConsole(cfg)
		return
	}

	exit := 0
	for _, sc := range demoScenarios() {
		fmt.Println(bold(sc.name))
		if err := runScenario(sc, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
			exit = 1
		}
		fmt.Println()
	}
	os.Exit(exit)
}

func runConsole(cfg config.Config) {
	d, err := smt.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	defer d.Shutdown()
	console.New(d).Start(os.Stdout)
}

func runScenario(sc scenario, cfg config.Config) error {
	if sc.maxDepth > 0 && (cfg.MaxBMCDepth == nil || *cfg.MaxBMCDepth > sc.maxDepth) {
		cfg = cfg.WithMaxDepth(sc.maxDepth)
	}
	result, typeErrs, err := engine.Run(sc.sys, cfg, newColorLogger())
	if err != nil {
		return err
	}
	if len(typeErrs) > 0 {
		for _, e := range typeErrs {
			fmt.Printf("  %s %s\n", red("type error"), e.Error())
		}
		return nil
	}

	for _, name := range candidateNames(sc) {
		st := result.Statuses[name]
		printStatus(name, st)
	}
	return nil
}

func candidateNames(sc scenario) []string {
	names := make([]string, len(sc.sys.Candidates))
	for i, c := range sc.sys.Candidates {
		names[i] = c.Name
	}
	return names
}

func printStatus(name string, st engine.Status) {
	switch st.Kind {
	case engine.StatusProved:
		fmt.Printf("  %s: proved (induction depth %d)\n", name, st.Depth)
	case engine.StatusFalsified:
		fmt.Printf("  %s: falsified, trace length %d\n", name, st.Trace.Len())
		for i, s := range st.Trace.States {
			fmt.Printf("    step %d: %s\n", i, formatState(s))
		}
	default:
		fmt.Printf("  %s: unknown (reached depth %d)\n", name, st.Depth)
	}
}
