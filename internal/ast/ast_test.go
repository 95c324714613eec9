package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
)

var (
	p = NewVar("p")
	q = NewVar("q")
	r = NewVar("r")
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{name: "variable", node: p, expected: "p"},
		{name: "true", node: NewConst(true), expected: "⊤"},
		{name: "false", node: NewConst(false), expected: "⊥"},
		{name: "not variable", node: NewNot(p), expected: "¬p"},
		{name: "double not", node: NewNot(NewNot(p)), expected: "¬¬p"},
		{name: "not keeps parens around binary", node: NewNot(And(p, q)), expected: "¬(p ∧ q)"},
		{name: "and", node: And(p, q), expected: "p ∧ q"},
		{name: "lower binds inside higher", node: And(Or(p, q), r), expected: "(p ∨ q) ∧ r"},
		{name: "higher binds inside lower", node: Or(And(p, q), r), expected: "p ∧ q ∨ r"},
		{name: "xor under or", node: Or(Xor(p, q), r), expected: "(p ⊕ q) ∨ r"},
		{name: "or under xor", node: Xor(Or(p, q), r), expected: "p ∨ q ⊕ r"},
		{name: "implication chain groups right", node: Implies(p, Implies(q, r)), expected: "p → q → r"},
		{name: "left nested implication keeps parens", node: Implies(Implies(p, q), r), expected: "(p → q) → r"},
		{name: "iff over implication on the left", node: Iff(Implies(p, q), r), expected: "(p → q) ↔ r"},
		{name: "implication under iff on the right", node: Iff(p, Implies(q, r)), expected: "p ↔ q → r"},
		{name: "left nested and drops parens", node: And(And(p, q), r), expected: "p ∧ q ∧ r"},
		{name: "right nested and drops parens", node: And(p, And(q, r)), expected: "p ∧ q ∧ r"},
		{name: "constants in binary", node: Implies(NewConst(true), NewConst(false)), expected: "⊤ → ⊥"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.node))
		})
	}
}

func TestFormat_PanicsOnForeignNode(t *testing.T) {
	assert.Panics(t, func() {
		Format(NewNot(nil))
	})
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		op    Op
		table [4]bool // (T,T) (T,F) (F,T) (F,F)
	}{
		{op: OpAnd, table: [4]bool{true, false, false, false}},
		{op: OpOr, table: [4]bool{true, true, true, false}},
		{op: OpXor, table: [4]bool{false, true, true, false}},
		{op: OpImplies, table: [4]bool{true, false, true, true}},
		{op: OpIff, table: [4]bool{true, false, false, true}},
	}

	inputs := [4][2]bool{{true, true}, {true, false}, {false, true}, {false, false}}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			for i, in := range inputs {
				got, err := Evaluate(NewBinary(tt.op, p, q), Assignment{"p": in[0], "q": in[1]})
				require.NoError(t, err)
				assert.Equal(t, tt.table[i], got, "p=%v q=%v", in[0], in[1])
			}
		})
	}
}

func TestEvaluate_NotAndConst(t *testing.T) {
	got, err := Evaluate(NewNot(p), Assignment{"p": false})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Evaluate(And(NewConst(true), NewNot(NewConst(false))), Assignment{})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluate_UndefinedVariable(t *testing.T) {
	_, err := Evaluate(Or(p, q), Assignment{"p": false})
	require.Error(t, err)

	var ue *apperr.UndefinedVariableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "q", ue.Name)
	assert.Equal(t, apperr.UndefinedVariable, apperr.KindOf(err))
}

func TestVariables(t *testing.T) {
	n := Or(And(NewVar("b"), NewVar("B")), Implies(NewVar("a10"), And(NewVar("a2"), NewVar("b"))))

	got := Variables(n)
	want := []string{"B", "a10", "a2", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Variables mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, Variables(NewConst(true)))
}

func TestSubexpressions(t *testing.T) {
	// (p ∧ q) ∨ ¬(p ∧ q)
	pq := And(p, q)
	n := Or(pq, NewNot(And(p, q)))

	var labels []string
	for _, s := range Subexpressions(n) {
		labels = append(labels, s.Label)
	}

	want := []string{"p ∧ q", "¬(p ∧ q)", "p ∧ q ∨ ¬(p ∧ q)"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSubexpressions_SkipsLeaves(t *testing.T) {
	assert.Empty(t, Subexpressions(p))
	assert.Empty(t, Subexpressions(NewConst(false)))

	subs := Subexpressions(NewNot(p))
	require.Len(t, subs, 1)
	assert.Equal(t, "¬p", subs[0].Label)
}

func TestEqualAndSize(t *testing.T) {
	a := Implies(And(p, q), NewNot(r))
	b := Implies(And(NewVar("p"), NewVar("q")), NewNot(NewVar("r")))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, Implies(And(q, p), NewNot(r))))
	assert.False(t, Equal(NewConst(true), NewConst(false)))
	assert.Equal(t, 6, Size(a))
}
