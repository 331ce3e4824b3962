package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sunholo/mikino/internal/engine"
)

// colorLogger prints orchestration progress the way cmd/ailang prints
// phase progress: a colorized arrow per phase/depth transition. The
// engine package itself never imports a color library — this adapter
// lives entirely at the CLI boundary.
type colorLogger struct {
	cyan   func(a ...interface{}) string
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
}

func newColorLogger() engine.Logger {
	return &colorLogger{
		cyan:   color.New(color.FgCyan).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}

func (l *colorLogger) Phase(msg string) {
	fmt.Printf("%s %s\n", l.cyan("→"), msg)
}

func (l *colorLogger) Depth(k int) {
	fmt.Printf("  %s depth %d\n", l.yellow("⋯"), k)
}

func (l *colorLogger) Discharged(candidate, how string) {
	fmt.Printf("  %s %s discharged by %s\n", l.green("✓"), candidate, how)
}
