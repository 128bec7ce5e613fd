package payroll

import (
	"os"

	"github.com/gocarina/gocsv"
)

// Entry is one row of the exported payroll register. Dates keep their
// entered mm/dd/yyyy text and the tax rate is exported as a percent,
// matching the stored record format.
type Entry struct {
	FromDate       string  `csv:"from_date"`
	ToDate         string  `csv:"to_date"`
	Name           string  `csv:"name"`
	Hours          float64 `csv:"hours"`
	Rate           float64 `csv:"rate"`
	TaxRatePercent float64 `csv:"tax_rate_percent"`
	Gross          float64 `csv:"gross"`
	Tax            float64 `csv:"tax"`
	Net            float64 `csv:"net"`
}

type Entries []Entry

func (entries Entries) ToCSV(file *os.File) error {
	return gocsv.MarshalFile(entries, file)
}
