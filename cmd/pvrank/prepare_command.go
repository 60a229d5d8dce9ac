package main

import (
	"github.com/spf13/cobra"

	"pvrank/internal/prepare"
)

type prepareSummary struct {
	RunID    string `json:"run_id"`
	Path     string `json:"path"`
	Digest   string `json:"digest"`
	Species  int    `json:"species"`
	Names    int    `json:"names"`
	Families int    `json:"families"`
}

func newPrepareCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build and persist the family lookup tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			outcome, err := prepare.New(cfg, ctx.loggerValue()).Run(cmd.Context())
			if err != nil {
				return err
			}

			summary := prepareSummary{
				RunID:    outcome.RunID,
				Path:     outcome.Path,
				Digest:   outcome.Digest,
				Species:  outcome.Stats.Species,
				Names:    outcome.Stats.Names,
				Families: outcome.Stats.Families,
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			p := newStatusPrinter(cmd)
			p.line("Artifact", statusOK, "%s", summary.Path)
			p.line("Species", statusInfo, "%d", summary.Species)
			p.line("Names", statusInfo, "%d", summary.Names)
			p.line("Families", statusInfo, "%d", summary.Families)
			p.line("SHA-256", statusInfo, "%s", summary.Digest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}
