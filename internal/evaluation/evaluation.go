// Package evaluation scores a run's matches against reviewed labels.
//
// A predicted pair labeled correct is a true positive and one labeled
// incorrect is a false positive. Predictions with no label at all are
// counted as false positives too: an unreviewed prediction gets no benefit
// of the doubt. Pairs labeled unknown are excluded from the confusion
// matrix entirely. True negatives are not tracked; the universe of
// never-predicted incorrect pairs is unbounded.
package evaluation

import (
	"tickermatch/internal/entity"
)

// Metrics is the precision/recall summary of one evaluated run.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int

	Precision float64
	Recall    float64
	F1        float64

	// Coverage is the fraction of labeled sponsors that received at
	// least one prediction.
	Coverage float64

	TotalPredictions int
	TotalLabels      int
}

type pairKey struct {
	sponsor string
	ticker  string
}

// Evaluate compares matches against labels. Matches scoring below minScore
// are dropped before comparison.
func Evaluate(matches []entity.Match, labels []entity.Label, minScore float64) Metrics {
	var preds []entity.Match
	for _, m := range matches {
		if m.Score >= minScore {
			preds = append(preds, m)
		}
	}

	verdicts := make(map[pairKey]entity.Verdict, len(labels))
	labeledSponsors := make(map[string]bool, len(labels))
	for _, label := range labels {
		verdicts[pairKey{label.SponsorID, label.TickerID}] = label.Verdict
		labeledSponsors[label.SponsorID] = true
	}

	m := Metrics{
		TotalPredictions: len(preds),
		TotalLabels:      len(labels),
	}

	predicted := make(map[pairKey]bool, len(preds))
	coveredSponsors := make(map[string]bool, len(preds))
	for _, pred := range preds {
		key := pairKey{pred.SponsorID, pred.TickerID}
		predicted[key] = true
		if labeledSponsors[pred.SponsorID] {
			coveredSponsors[pred.SponsorID] = true
		}
		switch verdicts[key] {
		case entity.VerdictCorrect:
			m.TruePositives++
		case entity.VerdictUnknown:
			// Excluded from the confusion matrix.
		default:
			m.FalsePositives++
		}
	}

	for _, label := range labels {
		if label.Verdict != entity.VerdictCorrect {
			continue
		}
		if !predicted[pairKey{label.SponsorID, label.TickerID}] {
			m.FalseNegatives++
		}
	}

	if m.TruePositives+m.FalsePositives > 0 {
		m.Precision = float64(m.TruePositives) / float64(m.TruePositives+m.FalsePositives)
	}
	if m.TruePositives+m.FalseNegatives > 0 {
		m.Recall = float64(m.TruePositives) / float64(m.TruePositives+m.FalseNegatives)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if len(labeledSponsors) > 0 {
		m.Coverage = float64(len(coveredSponsors)) / float64(len(labeledSponsors))
	}
	return m
}
