package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truth-table/internal/render"
)

func newTableCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "table <formula>",
		Short: "Print the truth table of a formula",
		Example: `  truthtable table "(p && q) => r"
  truthtable table --json "p ⊕ q"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.generator().Generate(strings.Join(args, " "))
			if err != nil {
				return err
			}

			if output != "" {
				if err := render.WriteJSONFile(res, output); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(res.Rows), output)
				return nil
			}

			if asJSON {
				return render.WriteJSON(cmd.OutOrStdout(), res)
			}
			return render.Text(cmd.OutOrStdout(), res, render.WithColor(opts.useColor(cmd.OutOrStdout())))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a text table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the JSON table to this file")
	return cmd
}
