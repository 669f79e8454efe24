package assign

import (
	"fmt"
	"sort"

	"tickermatch/internal/config"
	"tickermatch/internal/entity"
	"tickermatch/internal/services"
)

// Solver maps classified candidate pairs to a 1:1 matching. Each sponsor
// and each ticker appears at most once in the result. Pairing never crosses
// the candidate set: solvers select a subset of pairs, nothing more.
//
// Both implementations are deterministic: identical input yields an
// identical matching.
type Solver interface {
	Solve(pairs []entity.ClassifiedPair) []entity.Match
}

// New returns the solver named by strategy. Strategy strings follow the
// configuration enum.
func New(strategy string) (Solver, error) {
	switch strategy {
	case config.StrategyGreedy:
		return Greedy{}, nil
	case config.StrategyOptimal:
		return Optimal{}, nil
	default:
		return nil, services.Wrap(services.ErrConfiguration, "assign", "new", fmt.Sprintf("unknown assignment strategy %q", strategy), nil)
	}
}

// sortForSelection orders pairs by score descending, then sponsor ID, then
// ticker ID. The lexicographic tail makes selection order (and therefore
// the greedy result) independent of input order.
func sortForSelection(pairs []entity.ClassifiedPair) []entity.ClassifiedPair {
	out := make([]entity.ClassifiedPair, len(pairs))
	copy(out, pairs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].SponsorID != out[j].SponsorID {
			return out[i].SponsorID < out[j].SponsorID
		}
		return out[i].TickerID < out[j].TickerID
	})
	return out
}
