// Package sat classifies formulas with the gini SAT solver instead of
// enumerating every row, so it scales past the truth-table variable cap.
package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/ast"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

// MaxVariables bounds the formulas Classify accepts.
const MaxVariables = 64

const satisfiable = 1

// Report is the outcome of a SAT classification. Satisfying is nil for a
// contradiction and Falsifying is nil for a tautology.
type Report struct {
	Normalized     string                    `json:"normalized"`
	Variables      []string                  `json:"variables"`
	Classification truthtable.Classification `json:"classification"`
	Satisfying     ast.Assignment            `json:"satisfying,omitempty"`
	Falsifying     ast.Assignment            `json:"falsifying,omitempty"`
}

// Classify decides whether root is a tautology, a contradiction or contingent
// with two solver calls: one assuming root, one assuming its negation.
func Classify(root ast.Node) (*Report, error) {
	variables := ast.Variables(root)
	if len(variables) > MaxVariables {
		return nil, &apperr.LimitError{Variables: len(variables), Max: MaxVariables}
	}

	b := newCircuitBuilder()
	formula := b.build(root)

	g := gini.New()
	b.c.ToCnf(g)

	report := &Report{
		Normalized: ast.Format(root),
		Variables:  variables,
	}

	g.Assume(formula)
	if g.Solve() == satisfiable {
		report.Satisfying = b.model(g, variables)
	}

	g.Assume(formula.Not())
	if g.Solve() == satisfiable {
		report.Falsifying = b.model(g, variables)
	}

	switch {
	case report.Falsifying == nil:
		report.Classification = truthtable.Tautology
	case report.Satisfying == nil:
		report.Classification = truthtable.Contradiction
	default:
		report.Classification = truthtable.Contingent
	}
	return report, nil
}

// circuitBuilder maps an AST onto a gini combinational circuit
type circuitBuilder struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newCircuitBuilder() *circuitBuilder {
	return &circuitBuilder{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

func (b *circuitBuilder) build(n ast.Node) z.Lit {
	switch x := n.(type) {
	case ast.Var:
		lit, ok := b.vars[x.Name]
		if !ok {
			lit = b.c.Lit()
			b.vars[x.Name] = lit
		}
		return lit
	case ast.Const:
		if x.Value {
			return b.c.T
		}
		return b.c.F
	case ast.Not:
		return b.build(x.Operand).Not()
	case ast.Binary:
		l := b.build(x.Left)
		r := b.build(x.Right)
		switch x.Op {
		case ast.OpAnd:
			return b.c.And(l, r)
		case ast.OpOr:
			return b.c.Or(l, r)
		case ast.OpXor:
			return b.c.Xor(l, r)
		case ast.OpImplies:
			return b.c.Implies(l, r)
		case ast.OpIff:
			return b.c.Xor(l, r).Not()
		}
		panic(fmt.Sprintf("sat: unknown operator %s", x.Op))
	default:
		panic(fmt.Sprintf("sat: cannot encode node of type %T", n))
	}
}

func (b *circuitBuilder) model(g *gini.Gini, variables []string) ast.Assignment {
	m := make(ast.Assignment, len(variables))
	for _, name := range variables {
		m[name] = g.Value(b.vars[name])
	}
	return m
}
