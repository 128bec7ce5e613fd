package store

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"payrolldesk/payroll-processor/models"
)

// payRecordRow is the database shape of a record. The tax rate is held
// as a percent, same as the flat-file format; the fraction form exists
// only in memory.
type payRecordRow struct {
	gorm.Model
	FromDate       string
	ToDate         string
	Name           string
	Hours          float64
	Rate           float64
	TaxRatePercent float64
}

func (payRecordRow) TableName() string {
	return "pay_records"
}

// DatabaseStore persists records in an embedded sqlite database.
type DatabaseStore struct {
	db *gorm.DB
}

func OpenDatabaseStore(path string) (*DatabaseStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err = db.AutoMigrate(&payRecordRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate pay records: %w", err)
	}

	return &DatabaseStore{db: db}, nil
}

func (s *DatabaseStore) Append(ctx context.Context, rec models.PayRecord) error {
	row := payRecordRow{
		FromDate:       rec.FromDate,
		ToDate:         rec.ToDate,
		Name:           rec.Name,
		Hours:          rec.Hours,
		Rate:           rec.Rate,
		TaxRatePercent: rec.TaxRate * 100,
	}

	if tx := s.db.WithContext(ctx).Create(&row); tx.Error != nil {
		return fmt.Errorf("failed to insert record for %s: %w", rec.Name, tx.Error)
	}

	return nil
}

func (s *DatabaseStore) Scan(ctx context.Context) ([]models.PayRecord, []MalformedLine, error) {
	var rows []payRecordRow

	if tx := s.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, nil, fmt.Errorf("failed to fetch records: %w", tx.Error)
	}

	records := make([]models.PayRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.PayRecord{
			FromDate: row.FromDate,
			ToDate:   row.ToDate,
			Name:     row.Name,
			Hours:    row.Hours,
			Rate:     row.Rate,
			TaxRate:  row.TaxRatePercent / 100.0,
		})
	}

	return records, nil, nil
}

func (s *DatabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
