package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"payrolldesk/payroll-processor/payroll"
)

// WriteRegisterCSV exports the matched records as a payroll register,
// one row per record with the recomputed pay figures alongside the raw
// inputs.
func WriteRegisterCSV(report Report, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var entries payroll.Entries
	for _, rec := range report.Records {
		pay := payroll.Calculate(rec.Hours, rec.Rate, rec.TaxRate)

		entries = append(entries, payroll.Entry{
			FromDate:       rec.FromDate,
			ToDate:         rec.ToDate,
			Name:           rec.Name,
			Hours:          rec.Hours,
			Rate:           rec.Rate,
			TaxRatePercent: rec.TaxRate * 100,
			Gross:          pay.Gross,
			Tax:            pay.Tax,
			Net:            pay.Net,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create register csv %s: %w", path, err)
	}
	defer f.Close()

	if err = entries.ToCSV(f); err != nil {
		return fmt.Errorf("failed to write register csv %s: %w", path, err)
	}

	return nil
}

// WritePDF renders a finished report to an A4 PDF.
func WritePDF(report Report, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	header := fmt.Sprintf("Payroll Report for %s\n\n", report.Date)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 16)
	pdf.MultiCell(0, 10, header, "", "", false)
	pdf.MultiCell(0, 10, report.Show(), "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report pdf %s: %w", path, err)
	}

	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return nil
}
