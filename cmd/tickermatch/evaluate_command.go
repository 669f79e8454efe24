package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickermatch/internal/dataset"
	"tickermatch/internal/entity"
	"tickermatch/internal/evaluation"
	"tickermatch/internal/store"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var runID string
	var labelsPath string
	var minScore float64

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a run's matches against review labels",
		Long: "Evaluate compares a persisted run (the latest by default) against\n" +
			"review labels and reports precision, recall, and F1.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(s *store.Store) error {
				run, err := resolveRun(cmd, s, runID)
				if err != nil {
					return err
				}
				matches, err := s.RunMatches(cmd.Context(), run.ID)
				if err != nil {
					return err
				}

				var labels []entity.Label
				if labelsPath != "" {
					labels, err = dataset.ReadLabels(labelsPath)
				} else {
					labels, err = s.Labels(cmd.Context())
				}
				if err != nil {
					return err
				}
				if len(labels) == 0 {
					return fmt.Errorf("no labels available; pass --labels or run `tickermatch import labels`")
				}

				printMetrics(cmd, run.ID, evaluation.Evaluate(matches, labels, minScore))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Run to evaluate (defaults to the latest)")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "Label CSV file (sponsor_name, ticker, label columns)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Ignore matches below this score")
	return cmd
}

func resolveRun(cmd *cobra.Command, s *store.Store, runID string) (*store.RunRecord, error) {
	if runID != "" {
		return s.GetRun(cmd.Context(), runID)
	}
	return s.LatestRun(cmd.Context())
}

func printMetrics(cmd *cobra.Command, runID string, m evaluation.Metrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Evaluation of run %s\n", runID)
	fmt.Fprintf(out, "  Precision: %.3f (%d/%d predictions correct)\n",
		m.Precision, m.TruePositives, m.TruePositives+m.FalsePositives)
	fmt.Fprintf(out, "  Recall:    %.3f (%d/%d correct matches found)\n",
		m.Recall, m.TruePositives, m.TruePositives+m.FalseNegatives)
	fmt.Fprintf(out, "  F1 score:  %.3f\n", m.F1)
	fmt.Fprintf(out, "  Coverage:  %.1f%% of labeled sponsors received a prediction\n", m.Coverage*100)
	fmt.Fprintf(out, "  Confusion: %d true positives, %d false positives, %d false negatives\n",
		m.TruePositives, m.FalsePositives, m.FalseNegatives)
	fmt.Fprintf(out, "  Totals:    %d predictions, %d labels\n", m.TotalPredictions, m.TotalLabels)
}
