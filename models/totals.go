package models

import (
	"fmt"
	"strings"

	"payrolldesk/payroll-processor/payroll"
)

// Totals is a running aggregate over a set of pay records, scoped either
// to one entry session or to one report run. It is never persisted;
// every summarization recomputes it from the raw records.
type Totals struct {
	Count int
	Hours float64
	Gross float64
	Tax   float64
	Net   float64
}

func (t *Totals) Add(rec PayRecord) {
	pay := payroll.Calculate(rec.Hours, rec.Rate, rec.TaxRate)

	t.Count++
	t.Hours += rec.Hours
	t.Gross += pay.Gross
	t.Tax += pay.Tax
	t.Net += pay.Net
}

func (t Totals) Show() string {
	output := strings.Builder{}

	output.WriteString(strings.Repeat("=", 72))
	output.WriteString("\nTotals:\n")
	output.WriteString(fmt.Sprintf("Total employees processed: %d\n", t.Count))
	output.WriteString(fmt.Sprintf("Total hours worked      : %.2f\n", t.Hours))
	output.WriteString(fmt.Sprintf("Total gross pay         : $%.2f\n", t.Gross))
	output.WriteString(fmt.Sprintf("Total income taxes      : $%.2f\n", t.Tax))
	output.WriteString(fmt.Sprintf("Total net pay           : $%.2f\n", t.Net))
	output.WriteString(strings.Repeat("=", 72))

	return output.String()
}

// Summarize renders each record followed by the aggregate totals, the
// shape used for both session summaries and report output.
func Summarize(records []PayRecord) string {
	totals := Totals{}
	output := strings.Builder{}

	for _, rec := range records {
		output.WriteString(rec.Show())
		output.WriteString("\n")
		totals.Add(rec)
	}

	output.WriteString("\n")
	output.WriteString(totals.Show())

	return output.String()
}
