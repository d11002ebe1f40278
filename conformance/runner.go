package conformance

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rubiojr/coerce/coerce"
	"github.com/rubiojr/coerce/host"
	"github.com/rubiojr/coerce/litparse"
	"github.com/rubiojr/coerce/ops"
	"github.com/rubiojr/coerce/value"
)

// Result is the outcome of one case.
type Result struct {
	Suite  string
	Case   Case
	Passed bool
	// Detail explains a failure: the mismatching outcome or a harness
	// problem (unknown op, unparseable literal).
	Detail string
}

// Stats aggregates results.
type Stats struct {
	Total  int
	Passed int
	Failed int
}

// Runner executes suites against a host-wired engine.
type Runner struct {
	engine *coerce.Engine
	log    *logrus.Logger
}

// NewRunner creates a runner. logger may be nil, in which case the
// standard logger is used.
func NewRunner(logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{engine: host.NewEngine(), log: logger}
}

// RunAll runs every case of every suite and returns results in order.
func (r *Runner) RunAll(suites []LoadedSuite) []Result {
	var results []Result
	for _, s := range suites {
		for _, c := range s.Suite.Tests {
			results = append(results, r.runCase(s.Suite.Name, c))
		}
	}
	return results
}

func (r *Runner) runCase(suite string, c Case) Result {
	res := Result{Suite: suite, Case: c}

	op, ok := ops.Get(c.Op)
	if !ok {
		res.Detail = fmt.Sprintf("unknown operation %q", c.Op)
		return res
	}
	hint, err := ops.ParseHint(c.Hint)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	input, err := litparse.Parse(c.Input, r.engine)
	if err != nil {
		res.Detail = fmt.Sprintf("bad input literal: %v", err)
		return res
	}

	out, err := op.Run(r.engine, input, hint)
	r.log.WithFields(logrus.Fields{
		"suite": suite,
		"case":  c.Name,
		"op":    c.Op,
	}).Debug("case executed")

	if c.Expect.Error != "" {
		if err == nil {
			res.Detail = fmt.Sprintf("expected %s, got %s", c.Expect.Error, out.Format())
			return res
		}
		var ce *coerce.TypeCoercionError
		if c.Expect.Error != "TypeCoercionError" || !errors.As(err, &ce) {
			res.Detail = fmt.Sprintf("expected %s, got %v", c.Expect.Error, err)
			return res
		}
		res.Passed = true
		return res
	}

	if err != nil {
		res.Detail = fmt.Sprintf("unexpected error: %v", err)
		return res
	}
	want, perr := litparse.Parse(c.Expect.Value, r.engine)
	if perr != nil {
		res.Detail = fmt.Sprintf("bad expectation literal: %v", perr)
		return res
	}
	// Expectations are primitives: SameValue compares objects by
	// identity, so an object expectation could never match.
	if !value.SameValue(out, want) {
		res.Detail = fmt.Sprintf("got %s, want %s", out.Format(), want.Format())
		return res
	}
	res.Passed = true
	return res
}

// ComputeStats tallies results.
func ComputeStats(results []Result) Stats {
	s := Stats{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
