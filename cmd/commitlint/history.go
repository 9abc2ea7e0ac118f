package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

const topViolationsLimit = 5

// createHistoryCommand creates the history command.
func createHistoryCommand(env *environment, opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent lint runs for this project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, closeStore, err := openHistory(ctx, env)
			if err != nil {
				return err
			}
			defer closeStore()

			runs, err := store.Recent(ctx, opts.projectRoot, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				_, err := fmt.Fprintf(out, "No lint runs recorded for %s\n", opts.projectRoot)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "WHEN\tSOURCE\tMESSAGES\tERRORS\tWARNINGS")
			for _, run := range runs {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
					run.CreatedAt.Local().Format(time.DateTime), run.Source, run.Messages, run.Errors, run.Warnings)
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("failed to write history: %w", err)
			}

			top, err := store.TopViolations(ctx, opts.projectRoot, topViolationsLimit)
			if err != nil {
				return err
			}
			if len(top) == 0 {
				return nil
			}

			_, _ = fmt.Fprintln(out, "\nMost frequent violations:")
			for _, vc := range top {
				_, _ = fmt.Fprintf(out, "  %4d  %s: %s\n", vc.Count, vc.Level, vc.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")

	return cmd
}
