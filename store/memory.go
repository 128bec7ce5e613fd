package store

import (
	"context"
	"sync"

	"payrolldesk/payroll-processor/models"
)

// MemoryStore keeps records for the lifetime of the process only. It
// serves sessions that do not want a durable file, and tests.
type MemoryStore struct {
	mutex   sync.Mutex
	records []models.PayRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, rec models.PayRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.records = append(s.records, rec)
	return nil
}

func (s *MemoryStore) Scan(ctx context.Context) ([]models.PayRecord, []MalformedLine, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]models.PayRecord, len(s.records))
	copy(out, s.records)

	return out, nil, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
