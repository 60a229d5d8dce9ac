package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pvrank/internal/lookup"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name...]",
		Short: "Prepare the lookup tables and print a few sample lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd.Context(), true)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = lookup.DemoNames
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "== %s ==\n", name)
				fmt.Fprintln(out, lookup.Lookup(result, name).Message())
			}
			return nil
		},
	}
}
