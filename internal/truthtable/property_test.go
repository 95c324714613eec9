package truthtable

import (
	"sort"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
	"pgregory.net/rapid"

	"github.com/DjordjeVuckovic/truth-table/internal/ast"
	"github.com/DjordjeVuckovic/truth-table/internal/ast/asttest"
)

func TestProperty_TableShape(t *testing.T) {
	g := NewGenerator()

	rapid.Check(t, func(t *rapid.T) {
		n := asttest.Node(asttest.DefaultVars, 4).Draw(t, "formula")

		res, err := g.Build(n)
		if err != nil {
			t.Fatalf("build %s: %v", ast.Format(n), err)
		}

		if want := 1 << len(res.Variables); len(res.Rows) != want {
			t.Fatalf("expected %d rows, got %d", want, len(res.Rows))
		}

		if !sort.StringsAreSorted(res.Variables) {
			t.Fatalf("variables not sorted: %v", res.Variables)
		}

		seen := make(map[string]bool)
		for i, c := range res.Columns {
			if seen[c.Label] {
				t.Fatalf("duplicate column label %q", c.Label)
			}
			seen[c.Label] = true
			if i < len(res.Variables) && (c.Kind != VariableColumn || c.Label != res.Variables[i]) {
				t.Fatalf("column %d should be variable %q, got %q", i, res.Variables[i], c.Label)
			}
		}

		if res.Columns[res.ResultColumn].Label != res.Normalized {
			t.Fatalf("result column %q does not hold %q", res.Columns[res.ResultColumn].Label, res.Normalized)
		}
	})
}

func TestProperty_CanonicalRoundTrip(t *testing.T) {
	g := NewGenerator()

	rapid.Check(t, func(t *rapid.T) {
		n := asttest.Node(asttest.DefaultVars, 4).Draw(t, "formula")

		first, err := g.Build(n)
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		second, err := g.Generate(first.Normalized)
		if err != nil {
			t.Fatalf("re-parse %q: %v", first.Normalized, err)
		}

		if second.Normalized != first.Normalized {
			t.Fatalf("canonical form not stable: %q then %q", first.Normalized, second.Normalized)
		}
		if strings.Join(first.Variables, ",") != strings.Join(second.Variables, ",") {
			t.Fatalf("variables changed: %v then %v", first.Variables, second.Variables)
		}
		a, b := first.Outcomes(), second.Outcomes()
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("row %d differs after round trip of %q", i, first.Normalized)
			}
		}
	})
}

// toExpr spells n in the expr language, an evaluator written independently of ours.
func toExpr(n ast.Node) string {
	switch x := n.(type) {
	case ast.Var:
		return x.Name
	case ast.Const:
		if x.Value {
			return "true"
		}
		return "false"
	case ast.Not:
		return "(not " + toExpr(x.Operand) + ")"
	case ast.Binary:
		l, r := toExpr(x.Left), toExpr(x.Right)
		switch x.Op {
		case ast.OpAnd:
			return "(" + l + " and " + r + ")"
		case ast.OpOr:
			return "(" + l + " or " + r + ")"
		case ast.OpXor:
			return "(" + l + " != " + r + ")"
		case ast.OpImplies:
			return "((not " + l + ") or " + r + ")"
		case ast.OpIff:
			return "(" + l + " == " + r + ")"
		}
	}
	panic("unreachable")
}

func TestProperty_AgreesWithExprEvaluator(t *testing.T) {
	g := NewGenerator()

	rapid.Check(t, func(t *rapid.T) {
		n := asttest.Node(asttest.DefaultVars, 4).Draw(t, "formula")

		res, err := g.Build(n)
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		env := make(map[string]any, len(res.Variables))
		for _, v := range res.Variables {
			env[v] = false
		}
		program, err := expr.Compile(toExpr(n), expr.Env(env), expr.AsBool())
		if err != nil {
			t.Fatalf("compile %s: %v", toExpr(n), err)
		}

		for i, row := range res.Rows {
			for name, v := range row.Assignment {
				env[name] = v
			}
			out, err := expr.Run(program, env)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if out.(bool) != row.Values[res.ResultColumn] {
				t.Fatalf("row %d of %q: expr says %v, table says %v", i, res.Normalized, out, row.Values[res.ResultColumn])
			}
		}
	})
}

func TestExprOracle_Scenarios(t *testing.T) {
	for _, f := range []string{"p && q", "p || q", "!p", "p => q", "(p && q) => r", "p || !p", "p && !p", "p <-> q ^ r"} {
		res, err := Generate(f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		env := make(map[string]any, len(res.Variables))
		for _, v := range res.Variables {
			env[v] = true
		}
		program, err := expr.Compile(toExpr(res.Columns[res.ResultColumn].Node), expr.Env(env), expr.AsBool())
		if err != nil {
			t.Fatalf("compile %s: %v", f, err)
		}
		for _, row := range res.Rows {
			for k, v := range row.Assignment {
				env[k] = v
			}
			out, err := expr.Run(program, env)
			if err != nil {
				t.Fatalf("run %s: %v", f, err)
			}
			if out.(bool) != row.Values[res.ResultColumn] {
				t.Errorf("%s with %v: expr %v, table %v", f, row.Assignment, out, row.Values[res.ResultColumn])
			}
		}
	}
}
