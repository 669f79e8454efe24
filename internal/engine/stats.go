package engine

import "time"

// Stats summarizes one matching run for reporting and persistence.
type Stats struct {
	Sponsors int
	Tickers  int
	// UnblockableSponsors counts sponsors whose names normalize to an
	// empty token set. NoCandidateSponsors counts sponsors that had
	// tokens but hit no index bucket; the two are disjoint.
	UnblockableSponsors int
	NoCandidateSponsors int
	CandidatePairs      int
	ApprovedPairs       int
	PendingPairs        int
	RejectedPairs       int
	Matches             int
	TotalScore          float64
	Elapsed             time.Duration
}

// NaivePairs is the comparison count a full cross product would require.
func (s Stats) NaivePairs() int {
	return s.Sponsors * s.Tickers
}

// ReductionPercent reports how much of the cross product blocking skipped.
func (s Stats) ReductionPercent() float64 {
	naive := s.NaivePairs()
	if naive == 0 {
		return 0
	}
	return (1 - float64(s.CandidatePairs)/float64(naive)) * 100
}

// MatchRate is the fraction of sponsors that received a match.
func (s Stats) MatchRate() float64 {
	if s.Sponsors == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Sponsors)
}
