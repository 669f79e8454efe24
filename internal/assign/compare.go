package assign

import (
	"sort"

	"tickermatch/internal/entity"
)

// Divergence records a sponsor the two strategies assign differently. An
// empty ticker ID means that strategy left the sponsor unmatched.
type Divergence struct {
	SponsorID     string
	GreedyTicker  string
	GreedyScore   float64
	OptimalTicker string
	OptimalScore  float64
}

// Comparison is a side-by-side run of both strategies over one pair set.
type Comparison struct {
	Greedy       []entity.Match
	Optimal      []entity.Match
	GreedyTotal  float64
	OptimalTotal float64
	Divergences  []Divergence
}

// Gain is the absolute total-score improvement of optimal over greedy.
func (c Comparison) Gain() float64 {
	return c.OptimalTotal - c.GreedyTotal
}

// GainPercent is the relative improvement, zero when greedy's total is zero.
func (c Comparison) GainPercent() float64 {
	if c.GreedyTotal == 0 {
		return 0
	}
	return c.Gain() / c.GreedyTotal * 100
}

// Compare runs both solvers on the same pairs and diffs the results per
// sponsor. Divergences come back sorted by sponsor ID.
func Compare(pairs []entity.ClassifiedPair) Comparison {
	c := Comparison{
		Greedy:  Greedy{}.Solve(pairs),
		Optimal: Optimal{}.Solve(pairs),
	}
	c.GreedyTotal = entity.TotalScore(c.Greedy)
	c.OptimalTotal = entity.TotalScore(c.Optimal)

	greedyBy := matchesBySponsor(c.Greedy)
	optimalBy := matchesBySponsor(c.Optimal)

	seen := make(map[string]bool, len(greedyBy)+len(optimalBy))
	for _, p := range pairs {
		if seen[p.SponsorID] {
			continue
		}
		seen[p.SponsorID] = true
		g, gok := greedyBy[p.SponsorID]
		o, ook := optimalBy[p.SponsorID]
		if gok == ook && g.TickerID == o.TickerID {
			continue
		}
		c.Divergences = append(c.Divergences, Divergence{
			SponsorID:     p.SponsorID,
			GreedyTicker:  g.TickerID,
			GreedyScore:   g.Score,
			OptimalTicker: o.TickerID,
			OptimalScore:  o.Score,
		})
	}
	sort.Slice(c.Divergences, func(i, j int) bool {
		return c.Divergences[i].SponsorID < c.Divergences[j].SponsorID
	})
	return c
}

func matchesBySponsor(matches []entity.Match) map[string]entity.Match {
	m := make(map[string]entity.Match, len(matches))
	for _, match := range matches {
		m[match.SponsorID] = match
	}
	return m
}
