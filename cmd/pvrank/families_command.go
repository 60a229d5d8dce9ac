package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pvrank/internal/artifact"
)

type familyRow struct {
	id      string
	members int
	names   int
	top     string
}

func newFamiliesCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "families",
		Short: "Summarize the prepared families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd.Context(), false)
			if err != nil {
				return err
			}
			rows := familyRows(result)
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No ranked families")
				return nil
			}
			total := len(rows)
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}

			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells = append(cells, []string{row.id, strconv.Itoa(row.members), strconv.Itoa(row.names), row.top})
			}
			fmt.Fprintln(out, renderTable([]column{
				{header: "Family"},
				{header: "Ranked", align: alignRight},
				{header: "Names", align: alignRight},
				{header: "First line"},
			}, cells))
			if len(rows) < total {
				fmt.Fprintf(out, "Showing %d of %d families\n", len(rows), total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many families (0 for all)")
	return cmd
}

// familyRows sorts families by ID. Ranked counts display lines, Names counts
// name-map entries pointing at the family.
func familyRows(result artifact.Result) []familyRow {
	names := make(map[string]int, len(result.Rankings))
	for _, familyID := range result.FamilyNames {
		names[familyID]++
	}

	rows := make([]familyRow, 0, len(result.Rankings))
	for id, display := range result.Rankings {
		lines := strings.Split(display, "\n")
		rows = append(rows, familyRow{
			id:      id,
			members: len(lines),
			names:   names[id],
			top:     lines[0],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })
	return rows
}
