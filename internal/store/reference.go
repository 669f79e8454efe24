package store

import (
	"context"
	"fmt"

	"tickermatch/internal/entity"
)

// ReplaceSponsors swaps the sponsor reference set atomically.
func (s *Store) ReplaceSponsors(ctx context.Context, sponsors []entity.SponsorRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin sponsors tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sponsors"); err != nil {
		return fmt.Errorf("clear sponsors: %w", err)
	}
	for _, rec := range sponsors {
		if _, err := tx.ExecContext(ctx, "INSERT INTO sponsors (name) VALUES (?)", rec.Name); err != nil {
			return fmt.Errorf("insert sponsor %q: %w", rec.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sponsors tx: %w", err)
	}
	return nil
}

// ReplaceTickers swaps the ticker reference set atomically.
func (s *Store) ReplaceTickers(ctx context.Context, tickers []entity.TickerRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tickers tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tickers"); err != nil {
		return fmt.Errorf("clear tickers: %w", err)
	}
	for _, rec := range tickers {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tickers (symbol, name, market) VALUES (?, ?, ?)",
			rec.Symbol, rec.Name, rec.Market,
		); err != nil {
			return fmt.Errorf("insert ticker %q: %w", rec.Symbol, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tickers tx: %w", err)
	}
	return nil
}

// Sponsors loads the sponsor reference set ordered by name.
func (s *Store) Sponsors(ctx context.Context) ([]entity.SponsorRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM sponsors ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query sponsors: %w", err)
	}
	defer rows.Close()

	var sponsors []entity.SponsorRecord
	for rows.Next() {
		var rec entity.SponsorRecord
		if err := rows.Scan(&rec.Name); err != nil {
			return nil, fmt.Errorf("scan sponsor: %w", err)
		}
		sponsors = append(sponsors, rec)
	}
	return sponsors, rows.Err()
}

// Tickers loads the ticker reference set ordered by symbol.
func (s *Store) Tickers(ctx context.Context) ([]entity.TickerRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT symbol, name, market FROM tickers ORDER BY symbol")
	if err != nil {
		return nil, fmt.Errorf("query tickers: %w", err)
	}
	defer rows.Close()

	var tickers []entity.TickerRecord
	for rows.Next() {
		var rec entity.TickerRecord
		if err := rows.Scan(&rec.Symbol, &rec.Name, &rec.Market); err != nil {
			return nil, fmt.Errorf("scan ticker: %w", err)
		}
		tickers = append(tickers, rec)
	}
	return tickers, rows.Err()
}
