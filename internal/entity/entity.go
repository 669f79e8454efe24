package entity

// SponsorRecord is a raw sponsor row supplied by the extraction side.
type SponsorRecord struct {
	Name string
}

// TickerRecord is a raw tradeable-entity row supplied by the extraction side.
// Symbol is the unique key; Name is the listed company name used for matching.
type TickerRecord struct {
	Symbol string
	Name   string
	Market string
}

// Entity is a normalized sponsor or ticker. ID is the raw sponsor name for
// sponsors and the ticker symbol for tickers. Tokens holds the significant
// tokens derived from the name, sorted ascending and deduplicated, and is
// never modified after normalization.
type Entity struct {
	ID      string
	RawName string
	Tokens  []string
}

// Blockable reports whether the entity retained at least one significant
// token and can therefore participate in blocking.
func (e Entity) Blockable() bool {
	return len(e.Tokens) > 0
}

// CandidatePair is a (sponsor, ticker) pair that survived blocking.
// SharedTokens is always at least 1.
type CandidatePair struct {
	SponsorID    string
	TickerID     string
	SharedTokens int
}

// ScoredPair is a candidate pair with an embedding similarity score in
// [-1, 1].
type ScoredPair struct {
	CandidatePair
	Score float64
}

// Tier buckets a similarity score into a review decision.
type Tier string

const (
	TierApproved Tier = "approved"
	TierPending  Tier = "pending"
	TierRejected Tier = "rejected"
)

// ClassifiedPair is a scored pair with its confidence tier.
type ClassifiedPair struct {
	ScoredPair
	Tier Tier
}

// Match is one resolved assignment. Across a solver's output each SponsorID
// and each TickerID appears at most once.
type Match struct {
	SponsorID string
	TickerID  string
	Score     float64
	Tier      Tier
}

// Verdict is a human judgement on a sponsor→ticker pairing.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictUnknown   Verdict = "unknown"
)

// Label is one reviewed sponsor→ticker pairing used to evaluate runs.
type Label struct {
	SponsorID string
	TickerID  string
	Verdict   Verdict
}

// TotalScore sums the scores of the provided matches.
func TotalScore(matches []Match) float64 {
	var total float64
	for _, m := range matches {
		total += m.Score
	}
	return total
}
