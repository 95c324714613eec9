package suite

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

func intPtr(n int) *int { return &n }

func TestRunner_Run(t *testing.T) {
	s := &Suite{
		Name: "mixed",
		Formulas: []Case{
			{
				ID:      "contrapositive",
				Formula: "(p -> q) <-> (!q -> !p)",
				Expect: Expectation{
					Classification: truthtable.Tautology,
					Variables:      []string{"p", "q"},
					Normalized:     "(p → q) ↔ ¬q → ¬p",
					Rows:           intPtr(4),
				},
			},
			{
				ID:      "expected-error",
				Formula: "p &&",
				Expect:  Expectation{Error: "IncompleteFormula"},
			},
			{
				ID:      "wrong-classification",
				Formula: "p && q",
				Expect:  Expectation{Classification: truthtable.Tautology},
			},
			{
				ID:      "wrong-error",
				Formula: "p )",
				Expect:  Expectation{Error: "UnmatchedParenthesis"},
			},
			{
				ID:      "missing-error",
				Formula: "p",
				Expect:  Expectation{Error: "EmptyFormula"},
			},
			{
				ID:      "unexpected-error",
				Formula: "p $ q",
			},
		},
	}

	report, err := NewRunner(truthtable.NewGenerator()).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 6)

	passed := map[string]bool{}
	for _, o := range report.Outcomes {
		passed[o.ID] = o.Passed()
	}
	assert.Equal(t, map[string]bool{
		"contrapositive":       true,
		"expected-error":       true,
		"wrong-classification": false,
		"wrong-error":          false,
		"missing-error":        false,
		"unexpected-error":     false,
	}, passed)
	assert.Equal(t, 4, report.Failed())

	assert.Equal(t, truthtable.Contingent, report.Outcomes[2].Classification)
	assert.Contains(t, report.Outcomes[2].Failures[0], "classification Contingent, want Tautology")
	assert.Contains(t, report.Outcomes[3].Failures[0], "error kind TrailingTokens, want UnmatchedParenthesis")
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Suite{Name: "c", Formulas: []Case{{ID: "a", Formula: "p"}}}
	report, err := NewRunner(truthtable.NewGenerator()).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Outcomes)
}

func TestWriteTable(t *testing.T) {
	s := &Suite{
		Name: "small",
		Formulas: []Case{
			{ID: "ok", Formula: "p || !p", Expect: Expectation{Classification: truthtable.Tautology}},
			{ID: "bad", Formula: "(p", Expect: Expectation{Classification: truthtable.Contingent}},
		},
	}
	report, err := NewRunner(truthtable.NewGenerator()).Run(context.Background(), s)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable(report, &buf)
	out := buf.String()

	assert.Contains(t, out, "=== Formula Suite: small ===")
	assert.Contains(t, out, "p ∨ ¬p")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "bad: unexpected error: unmatched parenthesis")
	assert.Contains(t, out, "1/2 passed")
}

func TestRunner_WithRuns(t *testing.T) {
	s := &Suite{Name: "timed", Formulas: []Case{{ID: "a", Formula: "p ∧ q ∨ r"}}}

	report, err := NewRunner(truthtable.NewGenerator(), WithRuns(5)).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)

	lat := report.Outcomes[0].Latency
	assert.Equal(t, 5, lat.Samples)
	assert.LessOrEqual(t, lat.Min, lat.P50)
	assert.LessOrEqual(t, lat.P50, lat.Max)
}
