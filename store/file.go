package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"payrolldesk/payroll-processor/models"
)

// fieldCount is the fixed on-disk field order:
// from_date|to_date|name|hours|rate|tax_rate_percent
const fieldCount = 6

// FileStore appends pipe-delimited records to a single flat file, one
// record per line. Append is the only write mode; the file is never
// rewritten or compacted. A partial line left by a crash surfaces as a
// malformed line on the next scan.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(ctx context.Context, rec models.PayRecord) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err = f.WriteString(encodeLine(rec)); err != nil {
		return fmt.Errorf("failed to append record to %s: %w", s.path, err)
	}

	return nil
}

func encodeLine(rec models.PayRecord) string {
	fields := []string{
		rec.FromDate,
		rec.ToDate,
		rec.Name,
		formatNumber(rec.Hours),
		formatNumber(rec.Rate),
		formatNumber(rec.TaxRate * 100),
	}

	return strings.Join(fields, "|") + "\n"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Scan reads the whole file line by line. Blank lines are skipped; a
// line with the wrong field count or unparseable numbers is reported as
// malformed and skipped without aborting the scan. A missing file is an
// empty result.
func (s *FileStore) Scan(ctx context.Context) ([]models.PayRecord, []MalformedLine, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open data file %s: %w", s.path, err)
	}
	defer f.Close()

	var records []models.PayRecord
	var malformed []MalformedLine

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != fieldCount {
			malformed = append(malformed, MalformedLine{
				Lineno: lineno,
				Text:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(parts)),
			})
			continue
		}

		hours, hoursErr := strconv.ParseFloat(parts[3], 64)
		rate, rateErr := strconv.ParseFloat(parts[4], 64)
		pct, pctErr := strconv.ParseFloat(parts[5], 64)
		if hoursErr != nil || rateErr != nil || pctErr != nil {
			malformed = append(malformed, MalformedLine{
				Lineno: lineno,
				Text:   line,
				Reason: "invalid numeric data",
			})
			continue
		}

		records = append(records, models.PayRecord{
			FromDate: parts[0],
			ToDate:   parts[1],
			Name:     parts[2],
			Hours:    hours,
			Rate:     rate,
			TaxRate:  pct / 100.0,
		})
	}

	if err = scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	return records, malformed, nil
}

func (s *FileStore) Close() error {
	return nil
}
