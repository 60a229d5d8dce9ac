package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pvrank/internal/datasync"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download pokemon.json and the rankings files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			syncer := datasync.New(cfg, nil, ctx.loggerValue())
			report, err := syncer.Sync(cmd.Context(), datasync.Options{Force: force})

			p := newStatusPrinter(cmd)
			for _, res := range report.Results {
				if res.Downloaded {
					p.line(res.File.Local, statusOK, "downloaded %d bytes", res.Bytes)
				} else {
					p.line(res.File.Local, statusInfo, "already present")
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d downloaded, %d skipped\n", report.Downloaded, report.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Download files even if they already exist")
	return cmd
}
