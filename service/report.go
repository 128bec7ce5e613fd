package service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"payrolldesk/payroll-processor/models"
	"payrolldesk/payroll-processor/store"
)

// Report is the outcome of one report run: the matched records in stored
// order, their recomputed totals, and any malformed lines skipped during
// the scan.
type Report struct {
	Date      models.ReportDate
	Records   []models.PayRecord
	Totals    models.Totals
	Malformed []store.MalformedLine

	// Scanned counts every well-formed stored record, matched or not.
	Scanned int
}

// Empty reports whether the backing store has never been written to,
// as opposed to holding records that simply did not match.
func (r Report) Empty() bool {
	return r.Scanned == 0 && len(r.Malformed) == 0
}

// GenerateReport scans the store and accumulates every record matching
// the requested date. Derived pay is recomputed from the raw inputs,
// never trusted from storage.
func GenerateReport(ctx context.Context, st store.Store, date models.ReportDate) (Report, error) {
	records, malformed, err := st.Scan(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to scan pay records: %w", err)
	}

	for _, m := range malformed {
		log.Warnf("skipping malformed line %d: %s (%s)", m.Lineno, m.Text, m.Reason)
	}

	report := Report{
		Date:      date,
		Malformed: malformed,
		Scanned:   len(records),
	}

	for _, rec := range records {
		if !date.Matches(rec.FromDate) {
			continue
		}

		report.Records = append(report.Records, rec)
		report.Totals.Add(rec)
	}

	return report, nil
}

func (r Report) Show() string {
	output := strings.Builder{}

	for _, m := range r.Malformed {
		output.WriteString(fmt.Sprintf("Skipping malformed line %d: %s\n", m.Lineno, m.Text))
	}

	if r.Empty() {
		output.WriteString("No payroll data recorded yet.")
		return output.String()
	}

	if len(r.Records) == 0 {
		output.WriteString("No matching records found for the requested date.")
		return output.String()
	}

	output.WriteString(fmt.Sprintf("Found %d matching record(s).\n\n", len(r.Records)))
	output.WriteString(models.Summarize(r.Records))

	return output.String()
}
