package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/in2post/internal/calc"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	calc    *calc.Calculator
	workers int
}

type Option func(*Runner)

// WithWorkers overrides the worker count set by the suite.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

func NewRunner(c *calc.Calculator, opts ...Option) *Runner {
	r := &Runner{calc: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every case of s on a bounded pool of workers. Case results
// keep suite order. Only context cancellation makes Run fail; failing cases
// are reported, not returned.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	workers := s.Workers
	if r.workers > 0 {
		workers = r.workers
	}
	workers = max(workers, 1)

	report := &Report{
		RunID:     uuid.New(),
		Suite:     s.Name,
		Workers:   workers,
		StartedAt: time.Now(),
		Cases:     make([]CaseResult, len(s.Cases)),
	}
	slog.Info("Batch run started", "run_id", report.RunID, "suite", s.Name, "cases", len(s.Cases), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range s.Cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Cases[i] = r.runCase(s.Cases[i], s.Tolerance)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch run %s: %w", report.RunID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch run %s: %w", report.RunID, err)
	}

	report.finish()
	slog.Info("Batch run finished", "run_id", report.RunID, "passed", report.Passed, "failed", report.Failed, "duration", report.Duration)

	return report, nil
}

func (r *Runner) runCase(c Case, tolerance float64) CaseResult {
	cr := CaseResult{ID: c.ID, Expression: c.Expression}

	start := time.Now()
	res, err := r.calc.Calculate(c.Expression)
	cr.Latency = time.Since(start)

	if err != nil {
		cr.Error = err.Error()
	} else {
		cr.Postfix = res.Postfix
		v := res.Value
		cr.Result = &v
	}

	cr.Reason = check(c, cr, tolerance)
	cr.Passed = cr.Reason == ""
	if !cr.Passed {
		slog.Warn("Case failed", "case", c.ID, "reason", cr.Reason)
	}
	return cr
}

// check returns why cr does not meet the expectations of c, or "" when it does.
func check(c Case, cr CaseResult, tolerance float64) string {
	if c.ExpectsError() {
		if cr.Error == "" {
			return fmt.Sprintf("expected error containing %q, got result %g", c.Error, *cr.Result)
		}
		if !strings.Contains(cr.Error, c.Error) {
			return fmt.Sprintf("expected error containing %q, got %q", c.Error, cr.Error)
		}
		return ""
	}

	if cr.Error != "" {
		return fmt.Sprintf("unexpected error: %s", cr.Error)
	}
	if c.Postfix != "" && strings.Join(strings.Fields(c.Postfix), " ") != cr.Postfix {
		return fmt.Sprintf("expected postfix %q, got %q", c.Postfix, cr.Postfix)
	}
	if c.Result != nil && !approxEqual(*c.Result, *cr.Result, tolerance) {
		return fmt.Sprintf("expected result %g, got %g", *c.Result, *cr.Result)
	}
	return ""
}

func approxEqual(want, got, tolerance float64) bool {
	return math.Abs(want-got) <= tolerance*math.Max(1, math.Abs(want))
}
