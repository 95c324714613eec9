// Package truthtable assembles the full truth table of a propositional formula:
// one column per variable, one per distinct compound sub-expression and one for
// the whole formula, with a row for every assignment of the variables.
package truthtable

import (
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/ast"
	"github.com/DjordjeVuckovic/truth-table/internal/parser"
)

type ColumnKind string

const (
	VariableColumn   ColumnKind = "variable"
	ExpressionColumn ColumnKind = "expression"
)

// Column is one output column; Label is unique within a Result.
type Column struct {
	Label string     `json:"label"`
	Kind  ColumnKind `json:"kind"`
	Node  ast.Node   `json:"-"`
}

// Row holds the assignment of one row and the value of every column, in column order.
type Row struct {
	Assignment ast.Assignment `json:"assignment"`
	Values     []bool         `json:"values"`
}

type Result struct {
	Variables  []string `json:"variables"`
	Columns    []Column `json:"columns"`
	Rows       []Row    `json:"rows"`
	Normalized string   `json:"normalized"`
	// ResultColumn is the index of the column holding the whole formula.
	ResultColumn int `json:"result_column"`
}

// Outcomes returns the value of the whole formula for every row.
func (r *Result) Outcomes() []bool {
	out := make([]bool, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Values[r.ResultColumn]
	}
	return out
}

func (r *Result) Classification() Classification {
	return Classify(r.Outcomes())
}

func (r *Result) TrueCount() int {
	n := 0
	for _, v := range r.Outcomes() {
		if v {
			n++
		}
	}
	return n
}

// Labels returns the column labels in order.
func (r *Result) Labels() []string {
	labels := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		labels[i] = c.Label
	}
	return labels
}

// Generator turns formula strings into truth tables. It is safe for concurrent use.
type Generator struct {
	parser *parser.Parser
	opts   options
}

func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		parser: parser.NewParser(),
		opts:   o,
	}
}

// Generate parses formula and builds its table. Tokenizer and parser errors are
// returned as they are; a blank formula fails before tokenizing.
func (g *Generator) Generate(formula string) (*Result, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, apperr.NewEmptyFormula()
	}

	root, err := g.parser.Parse(formula)
	if err != nil {
		return nil, err
	}
	return g.Build(root)
}

// Build assembles the table for an already parsed formula.
func (g *Generator) Build(root ast.Node) (*Result, error) {
	variables := ast.Variables(root)
	if len(variables) > g.opts.maxVariables {
		return nil, &apperr.LimitError{Variables: len(variables), Max: g.opts.maxVariables}
	}

	columns, resultColumn := buildColumns(root, variables)

	rows, err := buildRows(variables, columns)
	if err != nil {
		return nil, err
	}

	return &Result{
		Variables:    variables,
		Columns:      columns,
		Rows:         rows,
		Normalized:   ast.Format(root),
		ResultColumn: resultColumn,
	}, nil
}

// Generate is a shortcut for NewGenerator(opts...).Generate(formula).
func Generate(formula string, opts ...Option) (*Result, error) {
	return NewGenerator(opts...).Generate(formula)
}

func buildColumns(root ast.Node, variables []string) ([]Column, int) {
	subs := ast.Subexpressions(root)
	columns := make([]Column, 0, len(variables)+len(subs)+1)
	index := make(map[string]int, cap(columns))

	add := func(c Column) {
		index[c.Label] = len(columns)
		columns = append(columns, c)
	}

	for _, v := range variables {
		add(Column{Label: v, Kind: VariableColumn, Node: ast.NewVar(v)})
	}
	for _, s := range subs {
		add(Column{Label: s.Label, Kind: ExpressionColumn, Node: s.Node})
	}

	normalized := ast.Format(root)
	if _, ok := index[normalized]; !ok {
		add(Column{Label: normalized, Kind: ExpressionColumn, Node: root})
	}
	return columns, index[normalized]
}

// buildRows enumerates assignments starting from all-true, the first variable
// being the most significant bit.
func buildRows(variables []string, columns []Column) ([]Row, error) {
	n := len(variables)
	rowCount := max(1, 1<<n)
	rows := make([]Row, rowCount)

	for i := range rowCount {
		assignment := make(ast.Assignment, n)
		for index, name := range variables {
			bit := ((rowCount - 1 - i) >> (n - index - 1)) & 1
			assignment[name] = bit == 1
		}

		values := make([]bool, len(columns))
		for c, col := range columns {
			if col.Kind == VariableColumn {
				values[c] = assignment[col.Label]
				continue
			}
			v, err := ast.Evaluate(col.Node, assignment)
			if err != nil {
				return nil, err
			}
			values[c] = v
		}

		rows[i] = Row{Assignment: assignment, Values: values}
	}
	return rows, nil
}
