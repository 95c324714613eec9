package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/ast"
	"github.com/DjordjeVuckovic/truth-table/internal/parser"
	"github.com/DjordjeVuckovic/truth-table/internal/sat"
)

func newClassifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <formula>",
		Short: "Decide tautology, contradiction or contingency with a SAT solver",
		Long: `Classifies a formula without enumerating its rows, so formulas with up to
64 variables are accepted. Witness assignments are printed when they exist.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula := strings.Join(args, " ")
			if strings.TrimSpace(formula) == "" {
				return apperr.NewEmptyFormula()
			}

			root, err := parser.NewParser().Parse(formula)
			if err != nil {
				return err
			}
			report, err := sat.Classify(root)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writeReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func writeReport(w io.Writer, r *sat.Report) {
	fmt.Fprintf(w, "Formula: %s\n", r.Normalized)
	fmt.Fprintf(w, "Result: %s\n", r.Classification)
	fmt.Fprintf(w, "Variables: %d\n", len(r.Variables))
	if r.Satisfying != nil {
		fmt.Fprintf(w, "Satisfying: %s\n", formatAssignment(r.Variables, r.Satisfying))
	}
	if r.Falsifying != nil {
		fmt.Fprintf(w, "Falsifying: %s\n", formatAssignment(r.Variables, r.Falsifying))
	}
}

func formatAssignment(variables []string, a ast.Assignment) string {
	if len(variables) == 0 {
		return "(no variables)"
	}
	parts := make([]string, len(variables))
	for i, v := range variables {
		value := "F"
		if a[v] {
			value = "T"
		}
		parts[i] = v + "=" + value
	}
	return strings.Join(parts, " ")
}
