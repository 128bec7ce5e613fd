package models

import (
	"fmt"
	"strings"
	"time"

	"payrolldesk/payroll-processor/payroll"
)

// DateLayout is the fixed mm/dd/yyyy format used everywhere a pay period
// date is entered, stored or matched.
const DateLayout = "01/02/2006"

// PayRecord is one employee's pay-period entry. Only the raw inputs are
// held; gross, tax and net are always derived through payroll.Calculate.
// TaxRate is a fraction (0.15 for 15%) — the percent form exists only at
// the storage boundary.
type PayRecord struct {
	FromDate string
	ToDate   string
	Name     string
	Hours    float64
	Rate     float64
	TaxRate  float64
}

// ValidDate reports whether s is a real calendar date in the canonical
// zero-padded mm/dd/yyyy form. The padding requirement keeps stored dates
// matchable by exact text.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}

	return t.Format(DateLayout) == s
}

func (r PayRecord) Show() string {
	pay := payroll.Calculate(r.Hours, r.Rate, r.TaxRate)

	output := strings.Builder{}
	output.WriteString(strings.Repeat("-", 72))
	output.WriteString("\n")
	output.WriteString(fmt.Sprintf("From: %s  To: %s\n", r.FromDate, r.ToDate))
	output.WriteString(fmt.Sprintf("Name: %s\n", r.Name))
	output.WriteString(fmt.Sprintf("Hours: %.2f  Rate: $%.2f  Gross: $%.2f\n", r.Hours, r.Rate, pay.Gross))
	output.WriteString(fmt.Sprintf("Tax Rate: %.2f%%  Income Tax: $%.2f  Net Pay: $%.2f\n", r.TaxRate*100, pay.Tax, pay.Net))
	output.WriteString(strings.Repeat("-", 72))

	return output.String()
}
