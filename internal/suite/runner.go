package suite

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/sat"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

// Outcome is the verdict on one case.
type Outcome struct {
	ID             string                    `json:"id"`
	Formula        string                    `json:"formula"`
	Normalized     string                    `json:"normalized,omitempty"`
	Classification truthtable.Classification `json:"classification,omitempty"`
	Err            string                    `json:"error,omitempty"`
	Failures       []string                  `json:"failures,omitempty"`
	Latency        LatencyStats              `json:"latency"`
}

func (o Outcome) Passed() bool {
	return len(o.Failures) == 0
}

type Report struct {
	Suite    string    `json:"suite"`
	Outcomes []Outcome `json:"outcomes"`
}

func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Passed() {
			n++
		}
	}
	return n
}

type Runner struct {
	generator *truthtable.Generator
	runs      int
}

type RunnerOption func(*Runner)

// WithRuns times every formula n times; the first run is the one checked.
func WithRuns(n int) RunnerOption {
	return func(r *Runner) {
		r.runs = max(n, 1)
	}
}

func NewRunner(generator *truthtable.Generator, opts ...RunnerOption) *Runner {
	r := &Runner{generator: generator, runs: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run checks every case in order. Classifications are also cross-checked
// against the SAT solver. It stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	report := &Report{Suite: s.Name}

	for _, c := range s.Formulas {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		o := r.runCase(c)
		if !o.Passed() {
			slog.Warn("Formula check failed", "id", c.ID, "failures", strings.Join(o.Failures, "; "))
		}
		report.Outcomes = append(report.Outcomes, o)
	}

	slog.Info("Suite finished", "suite", s.Name, "formulas", len(report.Outcomes), "failed", report.Failed())
	return report, nil
}

func (r *Runner) runCase(c Case) Outcome {
	o := Outcome{ID: c.ID, Formula: c.Formula}

	var (
		res  *truthtable.Result
		err  error
		took = make([]time.Duration, 0, r.runs)
	)
	for i := range r.runs {
		start := time.Now()
		out, runErr := r.generator.Generate(c.Formula)
		took = append(took, time.Since(start))
		if i == 0 {
			res, err = out, runErr
		}
	}
	o.Latency = ComputeLatencyStats(took)

	if err != nil {
		o.Err = err.Error()
		kind := apperr.KindOf(err)
		switch {
		case c.Expect.Error == "":
			o.fail("unexpected error: %v", err)
		case kind.String() != c.Expect.Error:
			o.fail("error kind %s, want %s", kind, c.Expect.Error)
		}
		return o
	}

	o.Normalized = res.Normalized
	o.Classification = res.Classification()

	e := c.Expect
	if e.Error != "" {
		o.fail("expected error %s, got a table", e.Error)
		return o
	}
	if e.Classification != "" && e.Classification != o.Classification {
		o.fail("classification %s, want %s", o.Classification, e.Classification)
	}
	if e.Variables != nil && !slices.Equal(e.Variables, res.Variables) {
		o.fail("variables %v, want %v", res.Variables, e.Variables)
	}
	if e.Normalized != "" && e.Normalized != res.Normalized {
		o.fail("normalized %q, want %q", res.Normalized, e.Normalized)
	}
	if e.Rows != nil && *e.Rows != len(res.Rows) {
		o.fail("%d rows, want %d", len(res.Rows), *e.Rows)
	}

	root := res.Columns[res.ResultColumn].Node
	if rep, err := sat.Classify(root); err != nil {
		o.fail("sat: %v", err)
	} else if rep.Classification != o.Classification {
		o.fail("sat classification %s disagrees with table %s", rep.Classification, o.Classification)
	}
	return o
}

func (o *Outcome) fail(format string, args ...any) {
	o.Failures = append(o.Failures, fmt.Sprintf(format, args...))
}
