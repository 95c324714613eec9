package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truth-table/internal/bot"
)

func newReplCmd(opts *rootOptions) *cobra.Command {
	var triggers []string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Answer chat commands read from stdin, one per line",
		Long: `Reads lines such as "/tt p && q" and prints the reply the chat bot would send.
Lines without a trigger are taken as a bare formula. "quit" or EOF ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := bot.NewHandler(triggers, opts.generator())
			prefix := bot.DefaultTriggers[0]
			if len(triggers) > 0 {
				prefix = triggers[0]
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				}

				reply := h.Handle(cmd.Context(), line)
				if !reply.Handled {
					reply = h.Handle(cmd.Context(), prefix+" "+line)
				}
				fmt.Fprintln(out, reply.Text)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringSliceVar(&triggers, "trigger", nil, "Command triggers (default /truthtable, /tt, truth)")
	return cmd
}
