package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tickermatch/internal/config"
	"tickermatch/internal/dataset"
	"tickermatch/internal/engine"
	"tickermatch/internal/entity"
	"tickermatch/internal/store"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var sponsorsPath string
	var tickersPath string
	var strategy string
	var noSave bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Run the matching pipeline",
		Long: "Match sponsors to tickers and print the resulting assignments.\n" +
			"Inputs come from --sponsors/--tickers CSV files, or from previously\n" +
			"imported reference data when the flags are omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strategy != "" {
				if strategy != config.StrategyGreedy && strategy != config.StrategyOptimal {
					return fmt.Errorf("unknown strategy %q (greedy or optimal)", strategy)
				}
				cfg.Matching.AssignmentStrategy = strategy
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
				if !noSave {
					if err := s.SaveRun(cmd.Context(), result); err != nil {
						return err
					}
				}

				printResult(cmd, result)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sponsorsPath, "sponsors", "", "Sponsor CSV file (name column)")
	cmd.Flags().StringVar(&tickersPath, "tickers", "", "Ticker CSV file (symbol, name, market columns)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Override assignment strategy (greedy or optimal)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist the run")
	return cmd
}

// loadInputs resolves sponsors and tickers from CSV flags first, then the
// store's imported reference data.
func loadInputs(s *store.Store, cmd *cobra.Command, sponsorsPath, tickersPath string) ([]entity.SponsorRecord, []entity.TickerRecord, error) {
	var sponsors []entity.SponsorRecord
	var tickers []entity.TickerRecord
	var err error

	if sponsorsPath != "" {
		sponsors, err = dataset.ReadSponsors(sponsorsPath)
	} else {
		sponsors, err = s.Sponsors(cmd.Context())
	}
	if err != nil {
		return nil, nil, err
	}
	if len(sponsors) == 0 {
		return nil, nil, fmt.Errorf("no sponsors available; pass --sponsors or run `tickermatch import sponsors`")
	}

	if tickersPath != "" {
		tickers, err = dataset.ReadTickers(tickersPath)
	} else {
		tickers, err = s.Tickers(cmd.Context())
	}
	if err != nil {
		return nil, nil, err
	}
	if len(tickers) == 0 {
		return nil, nil, fmt.Errorf("no tickers available; pass --tickers or run `tickermatch import tickers`")
	}
	return sponsors, tickers, nil
}

func printResult(cmd *cobra.Command, result *engine.Result) {
	out := cmd.OutOrStdout()
	colorize := stdoutIsTerminal()

	rows := make([][]string, 0, len(result.Matches))
	for _, match := range result.Matches {
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

	stats := result.Stats
	fmt.Fprintf(out, "Run %s (%s strategy)\n", result.RunID, result.Strategy)
	fmt.Fprintf(out, "  Sponsors: %d  Tickers: %d  Candidate pairs: %d (%.1f%% of cross product pruned)\n",
		stats.Sponsors, stats.Tickers, stats.CandidatePairs, stats.ReductionPercent())
	fmt.Fprintf(out, "  Pairs by tier: %d approved, %d pending, %d rejected\n",
		stats.ApprovedPairs, stats.PendingPairs, stats.RejectedPairs)
	fmt.Fprintf(out, "  Matches: %d (%.1f%% of sponsors)  Total score: %s  Elapsed: %s\n",
		stats.Matches, stats.MatchRate()*100, formatScore(stats.TotalScore), stats.Elapsed)
	if len(result.NoCandidate) > 0 {
		fmt.Fprintf(out, "  Sponsors without candidates: %d\n", len(result.NoCandidate))
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}
