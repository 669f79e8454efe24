package assign

import "tickermatch/internal/entity"

// Greedy selects pairs in score order, best first, skipping any pair whose
// sponsor or ticker is already claimed. Ties on score fall back to
// lexicographic (sponsor ID, ticker ID) order.
type Greedy struct{}

func (Greedy) Solve(pairs []entity.ClassifiedPair) []entity.Match {
	ordered := sortForSelection(pairs)

	usedSponsors := make(map[string]bool, len(ordered))
	usedTickers := make(map[string]bool, len(ordered))
	matches := make([]entity.Match, 0, len(ordered))
	for _, p := range ordered {
		if usedSponsors[p.SponsorID] || usedTickers[p.TickerID] {
			continue
		}
		usedSponsors[p.SponsorID] = true
		usedTickers[p.TickerID] = true
		matches = append(matches, entity.Match{
			SponsorID: p.SponsorID,
			TickerID:  p.TickerID,
			Score:     p.Score,
			Tier:      p.Tier,
		})
	}
	return matches
}
