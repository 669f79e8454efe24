package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickermatch/internal/assign"
	"tickermatch/internal/engine"
	"tickermatch/internal/entity"
	"tickermatch/internal/store"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var sponsorsPath string
	var tickersPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare greedy and optimal assignment on the same input",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			embedder, err := ctx.embedder()
			if err != nil {
				return err
			}
			eng := engine.New(cfg, embedder, ctx.logger())

			return ctx.withStore(func(s *store.Store) error {
				sponsors, tickers, err := loadInputs(s, cmd, sponsorsPath, tickersPath)
				if err != nil {
					return err
				}

				result, err := eng.Match(cmd.Context(), sponsors, tickers)
				if err != nil {
					return err
				}

				assignable := result.Classified
				if cfg.Matching.RejectBeforeAssignment {
					kept := make([]entity.ClassifiedPair, 0, len(assignable))
					for _, pair := range assignable {
						if pair.Tier != entity.TierRejected {
							kept = append(kept, pair)
						}
					}
					assignable = kept
				}
				printComparison(cmd, assign.Compare(assignable))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sponsorsPath, "sponsors", "", "Sponsor CSV file (name column)")
	cmd.Flags().StringVar(&tickersPath, "tickers", "", "Ticker CSV file (symbol, name, market columns)")
	return cmd
}

func printComparison(cmd *cobra.Command, c assign.Comparison) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, renderTable(
		[]string{"Strategy", "Matches", "Total Score"},
		[][]string{
			{"greedy", fmt.Sprintf("%d", len(c.Greedy)), formatScore(c.GreedyTotal)},
			{"optimal", fmt.Sprintf("%d", len(c.Optimal)), formatScore(c.OptimalTotal)},
		},
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))
	fmt.Fprintf(out, "Optimal gain: %s (%.2f%%)\n", formatScore(c.Gain()), c.GainPercent())

	if len(c.Divergences) == 0 {
		fmt.Fprintln(out, "Both strategies produced the same assignment.")
		return
	}

	rows := make([][]string, 0, len(c.Divergences))
	for _, d := range c.Divergences {
		rows = append(rows, []string{
			d.SponsorID,
			divergenceCell(d.GreedyTicker, d.GreedyScore),
			divergenceCell(d.OptimalTicker, d.OptimalScore),
		})
	}
	fmt.Fprintf(out, "%d sponsors assigned differently:\n", len(c.Divergences))
	fmt.Fprintln(out, renderTable(
		[]string{"Sponsor", "Greedy", "Optimal"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
}

func divergenceCell(ticker string, score float64) string {
	if ticker == "" {
		return "(unmatched)"
	}
	return fmt.Sprintf("%s @ %s", ticker, formatScore(score))
}
