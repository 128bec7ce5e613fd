package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"payrolldesk/payroll-processor/config"
	"payrolldesk/payroll-processor/models"
	"payrolldesk/payroll-processor/service"
	"payrolldesk/payroll-processor/store"
)

// Non-interactive report runner: prints one report for a from-date or
// for every stored record, with optional CSV/PDF export.
func main() {
	var (
		date    = flag.String("date", "", "from date to report on (mm/dd/yyyy)")
		all     = flag.Bool("all", false, "report on every stored record")
		csvPath = flag.String("csv", "", "write a payroll register csv to this path")
		pdfPath = flag.String("pdf", "", "write a report pdf to this path")
	)
	flag.Parse()

	if *date == "" && !*all {
		fmt.Fprintln(os.Stderr, "usage: report -date mm/dd/yyyy | -all [-csv path] [-pdf path]")
		os.Exit(2)
	}
	if *date != "" && !models.ValidDate(*date) {
		log.Fatalf("invalid date %q: use mm/dd/yyyy", *date)
	}

	cfg := config.Load()

	st, err := store.Open(cfg.StoreBackend, cfg.DataFile, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer st.Close()

	target := models.ExactDate(*date)
	if *all {
		target = models.AllDates()
	}

	report, err := service.GenerateReport(context.Background(), st, target)
	if err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}

	fmt.Println(report.Show())

	if *csvPath != "" {
		if err = service.WriteRegisterCSV(report, *csvPath); err != nil {
			log.Fatal(err)
		}
		log.Infof("wrote %s", *csvPath)
	}

	if *pdfPath != "" {
		if err = service.WritePDF(report, *pdfPath); err != nil {
			log.Fatal(err)
		}
		log.Infof("wrote %s", *pdfPath)
	}
}
