package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pvrank/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded prepare runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.History.Enabled {
				fmt.Fprintln(out, "Run history is disabled ([history] enabled = false)")
				return nil
			}

			store, err := history.Open(cmd.Context(), cfg.HistoryPath())
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				if runs == nil {
					runs = []history.Run{}
				}
				return writeJSON(cmd, runs)
			}
			fmt.Fprintf(out, "History database: %s\n", store.Path())
			if len(runs) == 0 {
				fmt.Fprintln(out, "No prepare runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortID(run.ID),
					run.StartedAt.Local().Format(time.DateTime),
					string(run.Status),
					strconv.Itoa(run.SpeciesCount),
					strconv.Itoa(run.FamilyCount),
					run.Duration().Round(time.Millisecond).String(),
					run.Error,
				})
			}
			fmt.Fprintln(out, renderTable([]column{
				{header: "Run"},
				{header: "Started"},
				{header: "Status"},
				{header: "Species", align: alignRight},
				{header: "Families", align: alignRight},
				{header: "Took", align: alignRight},
				{header: "Error"},
			}, rows))

			last, err := store.LastSucceeded(cmd.Context())
			if err != nil {
				return err
			}
			if last != nil {
				fmt.Fprintf(out, "Last successful run: %s (sha256 %s)\n", last.FinishedAt.Local().Format(time.DateTime), shortID(last.Digest))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many runs (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print runs as JSON")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
