package store

import (
	"context"
	"fmt"

	"tickermatch/internal/entity"
)

// ReplaceLabels swaps the review label set atomically.
func (s *Store) ReplaceLabels(ctx context.Context, labels []entity.Label) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin labels tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM labels"); err != nil {
		return fmt.Errorf("clear labels: %w", err)
	}
	for _, label := range labels {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO labels (sponsor_id, ticker_id, verdict) VALUES (?, ?, ?)",
			label.SponsorID, label.TickerID, string(label.Verdict),
		); err != nil {
			return fmt.Errorf("insert label %q: %w", label.SponsorID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit labels tx: %w", err)
	}
	return nil
}

// Labels loads all review labels ordered by sponsor ID.
func (s *Store) Labels(ctx context.Context) ([]entity.Label, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT sponsor_id, ticker_id, verdict FROM labels ORDER BY sponsor_id, ticker_id")
	if err != nil {
		return nil, fmt.Errorf("query labels: %w", err)
	}
	defer rows.Close()

	var labels []entity.Label
	for rows.Next() {
		var label entity.Label
		var verdict string
		if err := rows.Scan(&label.SponsorID, &label.TickerID, &verdict); err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		label.Verdict = entity.Verdict(verdict)
		labels = append(labels, label)
	}
	return labels, rows.Err()
}
