package pass

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

// Pipeline executes an ordered list of named passes against one shared
// netlist. The pipeline owns the netlist for the duration of a run: no
// other code may touch it while passes execute.
//
// The netlist is always verified after the final pass; with VerifyEach
// set it is verified after every pass. The first pass failure or
// verification failure aborts the run; remaining passes do not
// execute.
type Pipeline struct {
	// VerifyEach verifies netlist invariants after every pass instead
	// of only after the last one.
	VerifyEach bool

	// Logger receives per-pass progress and intermediate reports. Nil
	// disables logging.
	Logger *zap.Logger
}

// Run executes the named passes in order and returns the final pass's
// report.
func (p *Pipeline) Run(nl *netlist.Netlist, names []string) (string, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(names) == 0 {
		return "", errors.New("no passes requested")
	}

	for i, name := range names {
		pass, err := Lookup(name)
		if err != nil {
			return "", err
		}

		logger.Info("running pass", zap.Int("step", i), zap.String("pass", name))
		report, err := pass.Run(nl)
		if err != nil {
			return "", errors.Wrapf(err, "pass %s", name)
		}

		last := i == len(names)-1
		if last || p.VerifyEach {
			if err := nl.Verify(); err != nil {
				return "", errors.Wrapf(err, "verification after pass %s", name)
			}
		}
		if last {
			return report, nil
		}
		logger.Info("pass report", zap.String("pass", name), zap.String("report", report))
	}
	return "", nil // unreachable
}
