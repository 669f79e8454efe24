// Package dataset reads sponsor, ticker, and label reference files. All
// inputs are headered CSV; columns are matched by name, case-insensitively,
// so extra columns and reordered files load fine.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"tickermatch/internal/entity"
	"tickermatch/internal/services"
)

// ReadSponsors loads sponsor records from a CSV file with a "name" column.
func ReadSponsors(path string) ([]entity.SponsorRecord, error) {
	var sponsors []entity.SponsorRecord
	err := readCSV(path, []string{"name"}, func(row map[string]string) error {
		sponsors = append(sponsors, entity.SponsorRecord{Name: row["name"]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sponsors, nil
}

// ReadTickers loads ticker records from a CSV file with "symbol" and "name"
// columns. A "market" column is optional.
func ReadTickers(path string) ([]entity.TickerRecord, error) {
	var tickers []entity.TickerRecord
	err := readCSV(path, []string{"symbol", "name"}, func(row map[string]string) error {
		tickers = append(tickers, entity.TickerRecord{
			Symbol: row["symbol"],
			Name:   row["name"],
			Market: row["market"],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tickers, nil
}

// ReadLabels loads review labels from a CSV file with "sponsor_name",
// "ticker", and "label" columns. Labels must be correct, incorrect, or
// unknown.
func ReadLabels(path string) ([]entity.Label, error) {
	var labels []entity.Label
	line := 1
	err := readCSV(path, []string{"sponsor_name", "ticker", "label"}, func(row map[string]string) error {
		line++
		verdict := entity.Verdict(strings.ToLower(row["label"]))
		switch verdict {
		case entity.VerdictCorrect, entity.VerdictIncorrect, entity.VerdictUnknown:
		default:
			return services.Wrap(services.ErrValidation, "dataset", "read labels",
				fmt.Sprintf("%s line %d: label %q must be correct, incorrect, or unknown", path, line, row["label"]), nil)
		}
		labels = append(labels, entity.Label{
			SponsorID: row["sponsor_name"],
			TickerID:  row["ticker"],
			Verdict:   verdict,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// readCSV streams a headered CSV file, invoking fn with a column→value map
// per record. Missing required columns fail before any row is read.
func readCSV(path string, required []string, fn func(row map[string]string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return services.Wrap(services.ErrValidation, "dataset", "read header",
			fmt.Sprintf("%s is empty", path), nil)
	}
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return services.Wrap(services.ErrValidation, "dataset", "read header",
				fmt.Sprintf("%s is missing required column %q", path, name), nil)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		row := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(record) {
				row[name] = strings.TrimSpace(record[idx])
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}
