package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tickermatch/internal/store"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted matching runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(s *store.Store) error {
				runs, err := s.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						run.CreatedAt.Local().Format(time.DateTime),
						run.Strategy,
						fmt.Sprintf("%d", run.Sponsors),
						fmt.Sprintf("%d", run.Matches),
						formatScore(run.TotalScore),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Run", "Created", "Strategy", "Sponsors", "Matches", "Total Score"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
	runsCmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")

	runsCmd.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the matches of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(s *store.Store) error {
				run, err := s.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				matches, err := s.RunMatches(cmd.Context(), run.ID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				colorize := stdoutIsTerminal()
				rows := make([][]string, 0, len(matches))
				for _, match := range matches {
					rows = append(rows, []string{
						match.SponsorID,
						match.TickerID,
						formatScore(match.Score),
						tierLabel(match.Tier, colorize),
					})
				}
				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable(
						[]string{"Sponsor", "Ticker", "Score", "Tier"},
						rows,
						[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
					))
				}
				fmt.Fprintf(out, "Run %s: %s strategy, %d matches, total score %s, elapsed %s\n",
					run.ID, run.Strategy, run.Matches, formatScore(run.TotalScore), run.Elapsed)
				return nil
			})
		},
	})

	return runsCmd
}
