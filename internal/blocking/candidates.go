package blocking

import (
	"sort"

	"tickermatch/internal/entity"
)

// Candidates emits one CandidatePair per ticker sharing at least one token
// with the sponsor, with the shared-token count recorded. Pairs are sorted
// by ticker ID. A sponsor with no tokens, or whose tokens hit no bucket,
// yields nil.
func Candidates(sponsor entity.Entity, idx *Index) []entity.CandidatePair {
	if !sponsor.Blockable() {
		return nil
	}

	overlap := make(map[string]int)
	for _, token := range sponsor.Tokens {
		for _, tickerID := range idx.Lookup(token) {
			overlap[tickerID]++
		}
	}
	if len(overlap) == 0 {
		return nil
	}

	pairs := make([]entity.CandidatePair, 0, len(overlap))
	for tickerID, shared := range overlap {
		pairs = append(pairs, entity.CandidatePair{
			SponsorID:    sponsor.ID,
			TickerID:     tickerID,
			SharedTokens: shared,
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].TickerID < pairs[j].TickerID })
	return pairs
}

// Generate runs candidate generation for every sponsor against the index.
// It returns all candidate pairs plus the IDs of blockable sponsors whose
// tokens hit no bucket, in input order. Unblockable sponsors are skipped
// here; the caller accounts for them from normalization output.
func Generate(sponsors []entity.Entity, idx *Index) ([]entity.CandidatePair, []string) {
	var pairs []entity.CandidatePair
	var noCandidates []string
	for _, sponsor := range sponsors {
		if !sponsor.Blockable() {
			continue
		}
		candidates := Candidates(sponsor, idx)
		if len(candidates) == 0 {
			noCandidates = append(noCandidates, sponsor.ID)
			continue
		}
		pairs = append(pairs, candidates...)
	}
	return pairs, noCandidates
}
