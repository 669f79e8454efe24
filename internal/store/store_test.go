package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tickermatch/internal/engine"
	"tickermatch/internal/entity"
	"tickermatch/internal/services"
	"tickermatch/internal/store"
	"tickermatch/internal/testsupport"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	result := &engine.Result{
		RunID:    "run-1",
		Strategy: "optimal",
		Matches: []entity.Match{
			{SponsorID: "Pfizer Inc", TickerID: "PFE", Score: 0.97, Tier: entity.TierApproved},
			{SponsorID: "Moderna", TickerID: "MRNA", Score: 0.72, Tier: entity.TierPending},
		},
	}
	result.Stats = engine.Stats{
		Sponsors:       2,
		Tickers:        2,
		CandidatePairs: 3,
		ApprovedPairs:  1,
		PendingPairs:   1,
		RejectedPairs:  1,
		Matches:        2,
		TotalScore:     1.69,
		Elapsed:        42 * time.Millisecond,
	}
	if err := s.SaveRun(ctx, result); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	rec, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.Strategy != "optimal" || rec.Matches != 2 || rec.TotalScore != 1.69 {
		t.Fatalf("unexpected run record %+v", rec)
	}
	if rec.Elapsed != 42*time.Millisecond {
		t.Fatalf("elapsed = %v, want 42ms", rec.Elapsed)
	}

	matches, err := s.RunMatches(ctx, "run-1")
	if err != nil {
		t.Fatalf("RunMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].SponsorID != "Moderna" || matches[1].SponsorID != "Pfizer Inc" {
		t.Fatalf("matches not ordered by sponsor: %+v", matches)
	}
	if matches[1].Tier != entity.TierApproved {
		t.Fatalf("tier lost in round trip: %+v", matches[1])
	}
}

func TestLatestRunAndList(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		result := &engine.Result{RunID: id, Strategy: "greedy"}
		if err := s.SaveRun(ctx, result); err != nil {
			t.Fatalf("SaveRun %s: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	latest, err := s.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if latest.ID != "run-c" {
		t.Fatalf("latest = %s, want run-c", latest.ID)
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Fatalf("unexpected run listing %+v", runs)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.GetRun(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing run")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound marker, got %v", err)
	}
}

func TestReferenceDataRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	sponsors := []entity.SponsorRecord{{Name: "Zeta Bio"}, {Name: "Alpha Bio"}}
	tickers := []entity.TickerRecord{
		{Symbol: "ZB", Name: "Zeta Bio", Market: "NASDAQ"},
		{Symbol: "AB", Name: "Alpha Bio", Market: "NYSE"},
	}
	if err := s.ReplaceSponsors(ctx, sponsors); err != nil {
		t.Fatalf("ReplaceSponsors: %v", err)
	}
	if err := s.ReplaceTickers(ctx, tickers); err != nil {
		t.Fatalf("ReplaceTickers: %v", err)
	}

	gotSponsors, err := s.Sponsors(ctx)
	if err != nil {
		t.Fatalf("Sponsors: %v", err)
	}
	if len(gotSponsors) != 2 || gotSponsors[0].Name != "Alpha Bio" {
		t.Fatalf("sponsors not sorted round trip: %+v", gotSponsors)
	}

	gotTickers, err := s.Tickers(ctx)
	if err != nil {
		t.Fatalf("Tickers: %v", err)
	}
	if len(gotTickers) != 2 || gotTickers[0].Symbol != "AB" || gotTickers[0].Market != "NYSE" {
		t.Fatalf("tickers round trip: %+v", gotTickers)
	}

	// Replace is a swap, not a merge.
	if err := s.ReplaceSponsors(ctx, sponsors[:1]); err != nil {
		t.Fatalf("ReplaceSponsors again: %v", err)
	}
	gotSponsors, err = s.Sponsors(ctx)
	if err != nil {
		t.Fatalf("Sponsors after replace: %v", err)
	}
	if len(gotSponsors) != 1 {
		t.Fatalf("expected 1 sponsor after replace, got %d", len(gotSponsors))
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	labels := []entity.Label{
		{SponsorID: "Pfizer Inc", TickerID: "PFE", Verdict: entity.VerdictCorrect},
		{SponsorID: "Acme Bio", TickerID: "ACME", Verdict: entity.VerdictIncorrect},
	}
	if err := s.ReplaceLabels(ctx, labels); err != nil {
		t.Fatalf("ReplaceLabels: %v", err)
	}

	got, err := s.Labels(ctx)
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(got))
	}
	if got[0].SponsorID != "Acme Bio" || got[0].Verdict != entity.VerdictIncorrect {
		t.Fatalf("labels round trip: %+v", got)
	}
}

func TestReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	first, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := first.SaveRun(ctx, &engine.Result{RunID: "persisted", Strategy: "greedy"}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	second, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer second.Close()

	if _, err := second.GetRun(ctx, "persisted"); err != nil {
		t.Fatalf("run lost across reopen: %v", err)
	}
}
