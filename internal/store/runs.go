package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tickermatch/internal/engine"
	"tickermatch/internal/entity"
	"tickermatch/internal/services"
)

// RunRecord is the persisted summary of one matching run.
type RunRecord struct {
	ID             string
	CreatedAt      time.Time
	Strategy       string
	Sponsors       int
	Tickers        int
	CandidatePairs int
	ApprovedPairs  int
	PendingPairs   int
	RejectedPairs  int
	Matches        int
	TotalScore     float64
	Elapsed        time.Duration
}

// SaveRun persists a run summary and its matches in one transaction.
func (s *Store) SaveRun(ctx context.Context, result *engine.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, created_at, strategy, sponsors, tickers, candidate_pairs,
            approved_pairs, pending_pairs, rejected_pairs, matches,
            total_score, elapsed_ms
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.RunID,
		time.Now().UTC().Format(time.RFC3339Nano),
		result.Strategy,
		result.Stats.Sponsors,
		result.Stats.Tickers,
		result.Stats.CandidatePairs,
		result.Stats.ApprovedPairs,
		result.Stats.PendingPairs,
		result.Stats.RejectedPairs,
		result.Stats.Matches,
		result.Stats.TotalScore,
		result.Stats.Elapsed.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, match := range result.Matches {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO matches (run_id, sponsor_id, ticker_id, score, tier) VALUES (?, ?, ?, ?, ?)",
			result.RunID, match.SponsorID, match.TickerID, match.Score, string(match.Tier),
		); err != nil {
			return fmt.Errorf("insert match %s: %w", match.SponsorID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run tx: %w", err)
	}
	return nil
}

// GetRun loads one run summary by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, strategy, sponsors, tickers, candidate_pairs,
                approved_pairs, pending_pairs, rejected_pairs, matches,
                total_score, elapsed_ms
         FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// LatestRun loads the most recently created run summary.
func (s *Store) LatestRun(ctx context.Context) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, strategy, sponsors, tickers, candidate_pairs,
                approved_pairs, pending_pairs, rejected_pairs, matches,
                total_score, elapsed_ms
         FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanRun(row)
}

// ListRuns returns up to limit run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, strategy, sponsors, tickers, candidate_pairs,
                approved_pairs, pending_pairs, rejected_pairs, matches,
                total_score, elapsed_ms
         FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// RunMatches loads the matches persisted for a run, ordered by sponsor ID.
func (s *Store) RunMatches(ctx context.Context, runID string) ([]entity.Match, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT sponsor_id, ticker_id, score, tier FROM matches WHERE run_id = ? ORDER BY sponsor_id", runID)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []entity.Match
	for rows.Next() {
		var m entity.Match
		var tier string
		if err := rows.Scan(&m.SponsorID, &m.TickerID, &m.Score, &tier); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.Tier = entity.Tier(tier)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var rec RunRecord
	var createdAt string
	var elapsedMS int64
	err := row.Scan(
		&rec.ID, &createdAt, &rec.Strategy, &rec.Sponsors, &rec.Tickers,
		&rec.CandidatePairs, &rec.ApprovedPairs, &rec.PendingPairs,
		&rec.RejectedPairs, &rec.Matches, &rec.TotalScore, &elapsedMS,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "scan run", "no matching run", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		rec.CreatedAt = ts
	}
	rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return &rec, nil
}
