// Package asttest provides rapid generators of random formulas for property tests.
package asttest

import (
	"strings"

	"pgregory.net/rapid"

	"github.com/DjordjeVuckovic/truth-table/internal/ast"
)

// DefaultVars are identifiers that no notation reads as an operator or constant.
var DefaultVars = []string{"p", "q", "r", "s", "x1", "Tx"}

var ops = []ast.Op{ast.OpAnd, ast.OpOr, ast.OpXor, ast.OpImplies, ast.OpIff}

// Node generates trees over vars no deeper than depth.
func Node(vars []string, depth int) *rapid.Generator[ast.Node] {
	return rapid.Custom(func(t *rapid.T) ast.Node {
		return draw(t, vars, depth)
	})
}

func draw(t *rapid.T, vars []string, depth int) ast.Node {
	hi := 4
	if depth <= 0 {
		hi = 1
	}

	switch rapid.IntRange(0, hi).Draw(t, "kind") {
	case 0:
		return ast.NewVar(rapid.SampledFrom(vars).Draw(t, "var"))
	case 1:
		if rapid.IntRange(0, 3).Draw(t, "constOdds") > 0 {
			return ast.NewVar(rapid.SampledFrom(vars).Draw(t, "var"))
		}
		return ast.NewConst(rapid.Bool().Draw(t, "const"))
	case 2:
		return ast.NewNot(draw(t, vars, depth-1))
	default:
		op := rapid.SampledFrom(ops).Draw(t, "op")
		return ast.NewBinary(op, draw(t, vars, depth-1), draw(t, vars, depth-1))
	}
}

var notations = map[ast.Op][]string{
	ast.OpAnd:     {"&&", "&", "∧", `/\`, "and", "AND"},
	ast.OpOr:      {"||", "∨", `\/`, "or", "Or"},
	ast.OpXor:     {"^", "⊕", "xor", "XOR"},
	ast.OpImplies: {"->", "=>", "→"},
	ast.OpIff:     {"<->", "<=>", "↔", "⟷"},
}

var (
	notNotations   = []string{"!", "~", "¬", "not "}
	trueNotations  = []string{"T", "⊤"}
	falseNotations = []string{"F", "⊥"}
)

// Render writes n fully parenthesised, drawing a random spelling for every
// operator and constant. Parsing the result yields a tree equal to n.
func Render(t *rapid.T, n ast.Node) string {
	var b strings.Builder
	render(t, &b, n)
	return b.String()
}

func render(t *rapid.T, b *strings.Builder, n ast.Node) {
	switch x := n.(type) {
	case ast.Var:
		b.WriteString(x.Name)
	case ast.Const:
		if x.Value {
			b.WriteString(rapid.SampledFrom(trueNotations).Draw(t, "true"))
		} else {
			b.WriteString(rapid.SampledFrom(falseNotations).Draw(t, "false"))
		}
	case ast.Not:
		b.WriteString(rapid.SampledFrom(notNotations).Draw(t, "not"))
		render(t, b, x.Operand)
	case ast.Binary:
		b.WriteByte('(')
		render(t, b, x.Left)
		b.WriteByte(' ')
		b.WriteString(rapid.SampledFrom(notations[x.Op]).Draw(t, "op"))
		b.WriteByte(' ')
		render(t, b, x.Right)
		b.WriteByte(')')
	}
}
