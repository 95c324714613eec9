package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truth-table/internal/suite"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var runs int

	cmd := &cobra.Command{
		Use:   "check <suite.yaml>",
		Short: "Run a YAML suite of formulas against their expected results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			report, err := suite.NewRunner(opts.generator(), suite.WithRuns(runs)).Run(cmd.Context(), s)
			if err != nil {
				return err
			}
			suite.WriteTable(report, cmd.OutOrStdout())

			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d formulas failed", failed, len(report.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 1, "Time every formula this many times")
	return cmd
}
