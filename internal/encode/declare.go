package encode

import (
	"github.com/sunholo/mikino/internal/smt"
	"github.com/sunholo/mikino/internal/term"
)

// DeclareStep declares every system variable at Current step k on d. The
// BMC engine calls this once per step it unrolls; the induction engine
// calls it inside each check's own push scope, so a (variable, step)
// pair is declared again only after the scope that declared it is popped.
func DeclareStep(d smt.Session, sys *term.System, k int) error {
	for _, name := range sys.VarNames {
		v := sys.Vars[name]
		if err := d.Declare(VarAt(v, term.Current, k), v.Ty); err != nil {
			return err
		}
	}
	return nil
}
