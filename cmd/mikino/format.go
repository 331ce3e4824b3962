package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sunholo/mikino/internal/term"
)

// formatState prints a state's variables in sorted name order for
// stable, reproducible output.
func formatState(s term.State) string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%s", n, s[n].String())
	}
	return strings.Join(parts, ", ")
}
