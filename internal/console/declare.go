package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/sunholo/mikino/internal/value"
)

func (c *Console) cmdDeclare(rest string, out io.Writer) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		fmt.Fprintln(out, red("error")+": usage: :declare <name> <bool|int|rat>")
		return
	}
	var ty value.Type
	switch fields[1] {
	case "bool":
		ty = value.Bool
	case "int":
		ty = value.Int
	case "rat":
		ty = value.Rat
	default:
		fmt.Fprintf(out, "%s: unknown type %q\n", red("error"), fields[1])
		return
	}
	if err := c.driver.Declare(fields[0], ty); err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
	}
}
