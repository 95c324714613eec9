// Package main is the truthtable command line: build tables, classify formulas,
// check formula suites and answer chat commands interactively.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

type rootOptions struct {
	maxVariables int
	color        string
	logLevel     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "truthtable",
		Short:         "Truth tables for propositional formulas",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().IntVar(&opts.maxVariables, "max-variables", truthtable.DefaultMaxVariables, "Largest number of distinct variables a table may have")
	root.PersistentFlags().StringVar(&opts.color, "color", "auto", "Colorize output: auto, always or never")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "WARN", "Log level: DEBUG, INFO, WARN or ERROR")

	root.AddCommand(
		newTableCmd(opts),
		newClassifyCmd(),
		newCheckCmd(opts),
		newReplCmd(opts),
	)
	return root
}

func (o *rootOptions) generator() *truthtable.Generator {
	return truthtable.NewGenerator(truthtable.WithMaxVariables(o.maxVariables))
}

// useColor resolves --color against the writer the output goes to.
func (o *rootOptions) useColor(w io.Writer) bool {
	switch o.color {
	case "always":
		return true
	case "never":
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
