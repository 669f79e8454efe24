package assign

import (
	"math/rand"
	"testing"

	"tickermatch/internal/entity"
)

func pair(sponsor, ticker string, score float64) entity.ClassifiedPair {
	return entity.ClassifiedPair{
		ScoredPair: entity.ScoredPair{
			CandidatePair: entity.CandidatePair{SponsorID: sponsor, TickerID: ticker},
			Score:         score,
		},
		Tier: entity.TierPending,
	}
}

func matchSet(t *testing.T, matches []entity.Match) map[string]string {
	t.Helper()
	m := make(map[string]string, len(matches))
	for _, match := range matches {
		if _, ok := m[match.SponsorID]; ok {
			t.Fatalf("sponsor %s matched twice", match.SponsorID)
		}
		m[match.SponsorID] = match.TickerID
	}
	tickers := make(map[string]bool, len(matches))
	for _, match := range matches {
		if tickers[match.TickerID] {
			t.Fatalf("ticker %s matched twice", match.TickerID)
		}
		tickers[match.TickerID] = true
	}
	return m
}

func TestGreedyPrefersHighScoreFirst(t *testing.T) {
	pairs := []entity.ClassifiedPair{
		pair("A", "X", 0.90),
		pair("A", "Y", 0.85),
		pair("B", "X", 0.88),
		pair("B", "Y", 0.70),
	}

	got := matchSet(t, Greedy{}.Solve(pairs))
	want := map[string]string{"A": "X", "B": "Y"}
	for sponsor, ticker := range want {
		if got[sponsor] != ticker {
			t.Fatalf("greedy matched %s to %q, want %q", sponsor, got[sponsor], ticker)
		}
	}
	if total := entity.TotalScore(Greedy{}.Solve(pairs)); total != 0.90+0.70 {
		t.Fatalf("greedy total = %v, want 1.60", total)
	}
}

func TestOptimalBeatsGreedyOnCrossedPairs(t *testing.T) {
	pairs := []entity.ClassifiedPair{
		pair("A", "X", 0.90),
		pair("A", "Y", 0.85),
		pair("B", "X", 0.88),
		pair("B", "Y", 0.70),
	}

	got := matchSet(t, Optimal{}.Solve(pairs))
	want := map[string]string{"A": "Y", "B": "X"}
	for sponsor, ticker := range want {
		if got[sponsor] != ticker {
			t.Fatalf("optimal matched %s to %q, want %q", sponsor, got[sponsor], ticker)
		}
	}
	total := entity.TotalScore(Optimal{}.Solve(pairs))
	if total != 0.85+0.88 {
		t.Fatalf("optimal total = %v, want 1.73", total)
	}
}

func TestGreedyTieBreakIsLexicographic(t *testing.T) {
	pairs := []entity.ClassifiedPair{
		pair("B", "X", 0.80),
		pair("A", "X", 0.80),
		pair("A", "Y", 0.80),
	}

	got := matchSet(t, Greedy{}.Solve(pairs))
	if got["A"] != "X" {
		t.Fatalf("tie break assigned A to %q, want X", got["A"])
	}
	if got["B"] != "" {
		t.Fatalf("B should stay unmatched, got %q", got["B"])
	}
}

func TestOptimalDropsNonPositivePairs(t *testing.T) {
	pairs := []entity.ClassifiedPair{
		pair("A", "X", -0.20),
		pair("B", "Y", 0.0),
		pair("C", "Z", 0.40),
	}

	matches := Optimal{}.Solve(pairs)
	got := matchSet(t, matches)
	if len(got) != 1 || got["C"] != "Z" {
		t.Fatalf("optimal kept %v, want only C->Z", got)
	}
}

func TestOptimalNeverInventsPairs(t *testing.T) {
	// Leaving B unmatched is forced: B's only candidate is taken by A
	// at higher combined weight, and B has no edge to Y.
	pairs := []entity.ClassifiedPair{
		pair("A", "X", 0.95),
		pair("B", "X", 0.10),
		pair("A", "Y", 0.05),
	}

	got := matchSet(t, Optimal{}.Solve(pairs))
	allowed := map[string]map[string]bool{
		"A": {"X": true, "Y": true},
		"B": {"X": true},
	}
	for sponsor, ticker := range got {
		if !allowed[sponsor][ticker] {
			t.Fatalf("optimal invented pair %s->%s", sponsor, ticker)
		}
	}
	if entity.TotalScore(Optimal{}.Solve(pairs)) != 0.95+0.0 {
		// A->X alone beats A->Y + B->X (0.15).
		t.Fatalf("optimal total = %v, want 0.95", entity.TotalScore(Optimal{}.Solve(pairs)))
	}
}

func TestSolversHandleEmptyInput(t *testing.T) {
	for _, solver := range []Solver{Greedy{}, Optimal{}} {
		if got := solver.Solve(nil); len(got) != 0 {
			t.Fatalf("%T produced %d matches from empty input", solver, len(got))
		}
	}
}

func TestSolversIgnoreInputOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := []entity.ClassifiedPair{
		pair("A", "X", 0.91),
		pair("A", "Y", 0.62),
		pair("B", "X", 0.88),
		pair("B", "Z", 0.71),
		pair("C", "Y", 0.66),
		pair("C", "Z", 0.66),
		pair("D", "W", 0.55),
	}

	for _, solver := range []Solver{Greedy{}, Optimal{}} {
		want := matchSet(t, solver.Solve(base))
		for trial := 0; trial < 10; trial++ {
			shuffled := make([]entity.ClassifiedPair, len(base))
			copy(shuffled, base)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			got := matchSet(t, solver.Solve(shuffled))
			if len(got) != len(want) {
				t.Fatalf("%T shuffled run produced %d matches, want %d", solver, len(got), len(want))
			}
			for sponsor, ticker := range want {
				if got[sponsor] != ticker {
					t.Fatalf("%T shuffled run matched %s to %q, want %q", solver, sponsor, got[sponsor], ticker)
				}
			}
		}
	}
}

func TestOptimalDominatesGreedyOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sponsors := []string{"A", "B", "C", "D", "E", "F"}
	tickers := []string{"T", "U", "V", "W", "X"}

	for trial := 0; trial < 200; trial++ {
		var pairs []entity.ClassifiedPair
		for _, s := range sponsors {
			for _, tk := range tickers {
				if rng.Float64() < 0.5 {
					continue
				}
				// Scores span negative to one to cover the
				// non-positive handling.
				pairs = append(pairs, pair(s, tk, rng.Float64()*2-1))
			}
		}
		greedyTotal := entity.TotalScore(Greedy{}.Solve(pairs))
		optimalTotal := entity.TotalScore(Optimal{}.Solve(pairs))
		// The solvers emit matches in different orders, so two runs over
		// the same match set can disagree in the last float64 bit.
		if optimalTotal < greedyTotal-1e-9 {
			t.Fatalf("trial %d: optimal total %v below greedy total %v", trial, optimalTotal, greedyTotal)
		}
	}
}

func TestNewSolverStrategy(t *testing.T) {
	if _, err := New("greedy"); err != nil {
		t.Fatalf("greedy strategy: %v", err)
	}
	if _, err := New("optimal"); err != nil {
		t.Fatalf("optimal strategy: %v", err)
	}
	if _, err := New("simplex"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestCompareReportsDivergence(t *testing.T) {
	pairs := []entity.ClassifiedPair{
		pair("A", "X", 0.90),
		pair("A", "Y", 0.85),
		pair("B", "X", 0.88),
		pair("B", "Y", 0.70),
	}

	c := Compare(pairs)
	if c.GreedyTotal >= c.OptimalTotal {
		t.Fatalf("expected optimal %v above greedy %v", c.OptimalTotal, c.GreedyTotal)
	}
	if got := c.Gain(); got <= 0 {
		t.Fatalf("gain = %v, want positive", got)
	}
	if len(c.Divergences) != 2 {
		t.Fatalf("divergences = %d, want 2", len(c.Divergences))
	}
	if c.Divergences[0].SponsorID != "A" || c.Divergences[1].SponsorID != "B" {
		t.Fatalf("divergences not sorted by sponsor: %+v", c.Divergences)
	}
	if c.Divergences[0].GreedyTicker != "X" || c.Divergences[0].OptimalTicker != "Y" {
		t.Fatalf("divergence for A = %+v", c.Divergences[0])
	}
}

func TestCompareIdenticalResults(t *testing.T) {
	pairs := []entity.ClassifiedPair{
		pair("A", "X", 0.90),
		pair("B", "Y", 0.80),
	}

	c := Compare(pairs)
	if c.Gain() != 0 {
		t.Fatalf("gain = %v, want 0", c.Gain())
	}
	if len(c.Divergences) != 0 {
		t.Fatalf("divergences = %+v, want none", c.Divergences)
	}
}
