package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"payrolldesk/payroll-processor/config"
	"payrolldesk/payroll-processor/models"
	"payrolldesk/payroll-processor/prompt"
	"payrolldesk/payroll-processor/service"
	"payrolldesk/payroll-processor/store"
)

// sessionLog collects every record entered during this process so an
// interrupt can still print the session totals. The mutex only guards
// against the signal goroutine; the entry flow itself is sequential.
type sessionLog struct {
	mutex   sync.Mutex
	records []models.PayRecord
}

func (s *sessionLog) add(rec models.PayRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.records = append(s.records, rec)
}

func (s *sessionLog) snapshot() []models.PayRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]models.PayRecord, len(s.records))
	copy(out, s.records)

	return out
}

func showTitleMenu() string {
	menu := strings.Builder{}

	menu.WriteString("\nEmployee Payroll System\n")
	menu.WriteString("-----------------------\n")
	menu.WriteString("1 - Add Employees\n")
	menu.WriteString("2 - Generate Report (by From Date or All)\n")
	menu.WriteString("Q - Quit")

	return menu.String()
}

// addEmployees runs full record-entry rounds until the operator declines
// to continue or a confirmed quit propagates out of a reader. Every
// completed record is appended to the store before the next round.
func addEmployees(ctx context.Context, p *prompt.Prompter, st store.Store, session *sessionLog) ([]models.PayRecord, error) {
	var records []models.PayRecord

	for {
		fromDate, err := p.Date("From date (mm/dd/yyyy): ")
		if err != nil {
			return records, err
		}

		toDate, err := p.Date("To date (mm/dd/yyyy): ")
		if err != nil {
			return records, err
		}

		name, err := p.Name("Employee name (or type End to finish): ")
		if err != nil {
			return records, err
		}

		hours, err := p.Hours("Total hours worked: ")
		if err != nil {
			return records, err
		}

		rate, err := p.Rate("Hourly rate: ")
		if err != nil {
			return records, err
		}

		taxRate, err := p.TaxRate("Income tax rate (percent, e.g. 15 for 15%): ")
		if err != nil {
			return records, err
		}

		rec := models.PayRecord{
			FromDate: fromDate,
			ToDate:   toDate,
			Name:     name,
			Hours:    hours,
			Rate:     rate,
			TaxRate:  taxRate,
		}

		if err = st.Append(ctx, rec); err != nil {
			return records, fmt.Errorf("failed to save record for %s: %w", name, err)
		}

		records = append(records, rec)
		session.add(rec)

		fmt.Println(rec.Show())
		fmt.Printf("\nRecord added for %s and saved.\n", name)

		again, err := p.YesNo("Add another employee? (y/n): ")
		if err != nil {
			return records, err
		}
		if !again {
			break
		}
	}

	return records, nil
}

func generateReport(ctx context.Context, p *prompt.Prompter, st store.Store, outputDir string) error {
	fmt.Println("\n--- Generate report from stored records ---")

	date, err := p.ReportDate("Enter From Date to run report for (mm/dd/yyyy) or type All: ")
	if err != nil {
		return err
	}

	report, err := service.GenerateReport(ctx, st, date)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(report.Show())

	if len(report.Records) == 0 {
		return nil
	}

	return exportReport(p, report, outputDir)
}

func exportReport(p *prompt.Prompter, report service.Report, outputDir string) error {
	export, err := p.YesNo("\nExport this report to CSV and PDF? (y/n): ")
	if err != nil || !export {
		return err
	}

	stamp := time.Now().Format("2006-01-02")
	csvPath := filepath.Join(outputDir, fmt.Sprintf("payroll_%s.csv", stamp))
	pdfPath := filepath.Join(outputDir, fmt.Sprintf("payroll_%s.pdf", stamp))

	if err = service.WriteRegisterCSV(report, csvPath); err != nil {
		return err
	}
	if err = service.WritePDF(report, pdfPath); err != nil {
		return err
	}

	fmt.Printf("Report exported to %s and %s\n", csvPath, pdfPath)
	log.Infof("exported report for %s", report.Date)

	return nil
}

// confirmQuit wraps the final yes/no; exhausted input counts as yes so
// the process still terminates.
func confirmQuit(p *prompt.Prompter, msg string) bool {
	quit, err := p.YesNo(msg)
	if err != nil {
		return true
	}

	return quit
}

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.StoreBackend, cfg.DataFile, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer st.Close()

	p := prompt.New(os.Stdin, os.Stdout)
	session := &sessionLog{}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		// An interrupt mid-entry is an implicit quit: show what this
		// session recorded, then leave with success.
		if records := session.snapshot(); len(records) > 0 {
			fmt.Println("\n\nSession summary (records entered during this session):")
			fmt.Println(models.Summarize(records))
		}
		st.Close()
		os.Exit(0)
	}()

	ctx := context.Background()

	fmt.Println("Payroll Entry by Date Range (type End at any prompt to request quit)")

	for {
		fmt.Println(showTitleMenu())

		choice, err := p.Line("\nEnter your choice (1, 2, or Q): ")
		if err != nil {
			// Input exhausted at the menu; nothing left to confirm.
			fmt.Println("Exiting program. Goodbye!")
			return
		}

		switch strings.ToLower(choice) {
		case "1":
			records, err := addEmployees(ctx, p, st, session)
			if err == nil {
				if len(records) > 0 {
					fmt.Println("\nSession summary (records entered during this menu action):")
					fmt.Println(models.Summarize(records))
				}
				continue
			}
			if !errors.Is(err, prompt.ErrQuitRequested) {
				log.Errorf("add employees failed: %v", err)
				continue
			}
			if confirmQuit(p, "\nQuit requested. Do you want to exit the program entirely? (y/n): ") {
				fmt.Println("Exiting program. Goodbye!")
				return
			}
			fmt.Println("Returning to main menu.")

		case "2":
			err := generateReport(ctx, p, st, cfg.OutputDir)
			if err == nil {
				continue
			}
			if !errors.Is(err, prompt.ErrQuitRequested) {
				log.Errorf("report failed: %v", err)
				continue
			}
			if confirmQuit(p, "\nQuit requested. Do you want to exit the program entirely? (y/n): ") {
				fmt.Println("Exiting program. Goodbye!")
				return
			}
			fmt.Println("Returning to main menu.")

		case "q":
			if confirmQuit(p, "Are you sure you want to quit? (y/n): ") {
				fmt.Println("Exiting program. Goodbye!")
				return
			}

		default:
			fmt.Println("Invalid choice. Please enter 1, 2, or Q.")
		}
	}
}
