package assign

import (
	"math"
	"sort"

	"tickermatch/internal/entity"
)

// Optimal computes a maximum-weight 1:1 matching with the Kuhn-Munkres
// algorithm. Unlike Greedy it considers the whole candidate set at once,
// so its total score is never below the greedy total.
//
// Pairs with non-positive scores carry the same weight as non-candidates
// (zero), so they never displace a positive pair and never appear in the
// output. Leaving an entity unmatched is always preferred over matching it
// at zero or negative gain.
type Optimal struct{}

func (Optimal) Solve(pairs []entity.ClassifiedPair) []entity.Match {
	if len(pairs) == 0 {
		return []entity.Match{}
	}

	sponsorIDs, tickerIDs := partitionIDs(pairs)
	sponsorIdx := indexOf(sponsorIDs)
	tickerIdx := indexOf(tickerIDs)

	// Square profit matrix padded with zero cells. Padding rows and
	// columns absorb entities the solver leaves unmatched.
	n := len(sponsorIDs)
	if len(tickerIDs) > n {
		n = len(tickerIDs)
	}
	profit := make([][]float64, n)
	for i := range profit {
		profit[i] = make([]float64, n)
	}
	best := make(map[[2]string]entity.ClassifiedPair, len(pairs))
	for _, p := range pairs {
		key := [2]string{p.SponsorID, p.TickerID}
		if prev, ok := best[key]; ok && prev.Score >= p.Score {
			continue
		}
		best[key] = p
		if p.Score > 0 {
			profit[sponsorIdx[p.SponsorID]][tickerIdx[p.TickerID]] = p.Score
		}
	}

	assignment := maxWeightAssignment(profit)

	matches := make([]entity.Match, 0, len(sponsorIDs))
	for i, id := range sponsorIDs {
		j := assignment[i]
		if j < 0 || j >= len(tickerIDs) {
			continue
		}
		p, ok := best[[2]string{id, tickerIDs[j]}]
		if !ok || p.Score <= 0 {
			continue
		}
		matches = append(matches, entity.Match{
			SponsorID: p.SponsorID,
			TickerID:  p.TickerID,
			Score:     p.Score,
			Tier:      p.Tier,
		})
	}
	return matches
}

func partitionIDs(pairs []entity.ClassifiedPair) (sponsors, tickers []string) {
	sset := make(map[string]bool, len(pairs))
	tset := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if !sset[p.SponsorID] {
			sset[p.SponsorID] = true
			sponsors = append(sponsors, p.SponsorID)
		}
		if !tset[p.TickerID] {
			tset[p.TickerID] = true
			tickers = append(tickers, p.TickerID)
		}
	}
	sort.Strings(sponsors)
	sort.Strings(tickers)
	return sponsors, tickers
}

func indexOf(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// maxWeightAssignment solves the square assignment problem on profit,
// returning for each row the column it is assigned to. Internally this is
// the classic potential-based Hungarian method on negated profits.
func maxWeightAssignment(profit [][]float64) []int {
	n := len(profit)

	// 1-based potentials and column assignment, index 0 is a sentinel.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := p[j0]
			j1 := 0
			delta := math.Inf(1)
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := -profit[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	for j := 1; j <= n; j++ {
		assignment[p[j]-1] = j - 1
	}
	return assignment
}
