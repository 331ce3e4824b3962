package engine

import (
	"github.com/sunholo/mikino/internal/bmc"
	"github.com/sunholo/mikino/internal/config"
	"github.com/sunholo/mikino/internal/induction"
	"github.com/sunholo/mikino/internal/mkerrors"
	"github.com/sunholo/mikino/internal/smt"
	"github.com/sunholo/mikino/internal/term"
	"github.com/sunholo/mikino/internal/typecheck"
)

// Run validates sys, then interleaves 1-induction and bounded model
// checking over it per spec.md §4.6: induction runs once for every
// candidate first, then BMC extends depth by depth until every
// remaining candidate is falsified or max_bmc_depth is reached.
// skip_induction and skip_bmc each skip their phase entirely.
//
// Run owns the solver process(es) it spawns for the duration of the
// call and always shuts them down before returning, on every exit path.
func Run(sys *term.System, cfg config.Config, log Logger) (*Result, []*mkerrors.Report, error) {
	if log == nil {
		log = NopLogger{}
	}

	if errs := typecheck.Check(sys); len(errs) > 0 {
		return nil, errs, nil
	}

	bmcDriver, err := smt.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer bmcDriver.Shutdown()

	indDriver, err := smt.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer indDriver.Shutdown()

	bmcEng := bmc.NewEngine(bmcDriver, sys)
	indEng := induction.NewEngine(indDriver, sys)

	res := &Result{Statuses: make(map[string]Status, len(sys.Candidates))}
	live := make([]term.Candidate, 0, len(sys.Candidates))
	for _, c := range sys.Candidates {
		live = append(live, c)
	}

	if !cfg.SkipInduction {
		log.Phase("induction")
		remaining := live[:0]
		for _, c := range live {
			proved, err := tryInduction(indEng, c)
			if err != nil {
				return nil, nil, err
			}
			if proved {
				res.Statuses[c.Name] = Status{Kind: StatusProved, Depth: 1}
				log.Discharged(c.Name, "induction")
				continue
			}
			remaining = append(remaining, c)
		}
		live = remaining
	}

	if !cfg.SkipBMC {
		log.Phase("bmc")
		for k := 0; len(live) > 0; k++ {
			if cfg.MaxBMCDepth != nil && k > *cfg.MaxBMCDepth {
				break
			}
			if err := bmcEng.ExtendNext(); err != nil {
				return nil, nil, err
			}
			log.Depth(k)
			res.ReachedBMC = k

			remaining := live[:0]
			for _, c := range live {
				check, err := bmcEng.Check(c)
				if err != nil {
					return nil, nil, err
				}
				if check.Falsified {
					res.Statuses[c.Name] = Status{Kind: StatusFalsified, Trace: check.Trace}
					log.Discharged(c.Name, "bmc")
					continue
				}
				remaining = append(remaining, c)
			}
			live = remaining
		}
	}

	for _, c := range live {
		res.Statuses[c.Name] = Status{Kind: StatusUnknown, Depth: res.ReachedBMC}
	}

	return res, nil, nil
}

// tryInduction runs the base case and, if it survives, the inductive
// step, reporting whether the candidate was proved. A base-case
// falsification is not reported here: the trace CheckBase returns is
// dropped and the candidate stays live, so the BMC phase reports it as
// a depth-0 counterexample (with skip_bmc set it ends Unknown).
func tryInduction(e *induction.Engine, c term.Candidate) (bool, error) {
	base, _, err := e.CheckBase(c)
	if err != nil {
		return false, err
	}
	if base == induction.BaseFalsified {
		return false, nil
	}
	step, err := e.CheckStep(c)
	if err != nil {
		return false, err
	}
	return step == induction.Inductive, nil
}
