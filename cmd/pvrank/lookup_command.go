package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pvrank/internal/lookup"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var refresh bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Print the family ranking block for a species",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd.Context(), refresh)
			if err != nil {
				return err
			}
			outcome := lookup.Lookup(result, strings.Join(args, " "))
			if jsonOutput {
				return writeJSON(cmd, outcome)
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Message())
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Run prepare before looking up")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the lookup outcome as JSON")
	return cmd
}
