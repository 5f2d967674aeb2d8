// Package driver feeds sensor packages through the calculator and writes
// one summary line per workout.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fittracker/internal/calculator"
	"fittracker/internal/config"
	"fittracker/internal/observability"
	"fittracker/internal/report"

	"go.uber.org/zap"
)

// Summary counts the outcome of a run.
type Summary struct {
	Processed int
	Failed    int
}

type Runner struct {
	out    *report.Writer
	policy config.ErrorPolicy
}

// New returns a Runner writing report lines to w. An empty policy means abort.
func New(w io.Writer, policy config.ErrorPolicy) *Runner {
	if policy == "" {
		policy = config.PolicyAbort
	}
	return &Runner{out: report.NewWriter(w), policy: policy}
}

// Run processes pkgs in order. Under PolicyAbort it returns at the first
// failing package; under PolicySkip it carries on and returns every package
// error joined. Output write errors always stop the run.
func (r *Runner) Run(ctx context.Context, pkgs []Package) (Summary, error) {
	var (
		sum  Summary
		errs []error
	)

	for i, p := range pkgs {
		rep, err := calculator.Process(ctx, p.Code, p.Values)
		if err != nil {
			sum.Failed++
			err = fmt.Errorf("package %d (%s): %w", i, p.Code, err)
			if r.policy == config.PolicyAbort {
				return sum, err
			}
			observability.LoggerWithTrace(ctx).Warn("skipping package",
				zap.Int("index", i),
				zap.String("code", p.Code),
				zap.String("run_id", observability.RunIDFromContext(ctx)),
			)
			errs = append(errs, err)
			continue
		}

		if err := r.out.Write(rep); err != nil {
			return sum, err
		}
		sum.Processed++
	}

	return sum, errors.Join(errs...)
}
