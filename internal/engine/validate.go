package engine

import (
	"fmt"
	"strings"

	"tickermatch/internal/entity"
	"tickermatch/internal/services"
)

// validateInputs checks both record sets before any pipeline work runs.
// All problems are collected and reported in one error so a bad batch can
// be fixed in a single pass.
func validateInputs(sponsors []entity.SponsorRecord, tickers []entity.TickerRecord) error {
	var problems []string

	seenSponsors := make(map[string]bool, len(sponsors))
	for i, rec := range sponsors {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("sponsor %d: empty name", i))
			continue
		}
		if seenSponsors[rec.Name] {
			problems = append(problems, fmt.Sprintf("sponsor %d: duplicate name %q", i, rec.Name))
			continue
		}
		seenSponsors[rec.Name] = true
	}

	seenTickers := make(map[string]entity.TickerRecord, len(tickers))
	for i, rec := range tickers {
		if strings.TrimSpace(rec.Symbol) == "" {
			problems = append(problems, fmt.Sprintf("ticker %d: empty symbol", i))
			continue
		}
		prev, dup := seenTickers[rec.Symbol]
		if !dup {
			seenTickers[rec.Symbol] = rec
			continue
		}
		// Exact repeats are tolerated and deduplicated downstream;
		// the same symbol under a different name is a data conflict.
		if prev.Name != rec.Name {
			problems = append(problems, fmt.Sprintf("ticker %d: symbol %q listed with conflicting names %q and %q", i, rec.Symbol, prev.Name, rec.Name))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return services.Wrap(services.ErrValidation, "engine", "validate inputs",
		fmt.Sprintf("%d invalid records: %s", len(problems), strings.Join(problems, "; ")), nil)
}

// dedupTickers drops exact repeated ticker records, keeping first
// occurrence order.
func dedupTickers(tickers []entity.TickerRecord) []entity.TickerRecord {
	seen := make(map[string]bool, len(tickers))
	out := make([]entity.TickerRecord, 0, len(tickers))
	for _, rec := range tickers {
		if seen[rec.Symbol] {
			continue
		}
		seen[rec.Symbol] = true
		out = append(out, rec)
	}
	return out
}
