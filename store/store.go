// Package store persists pay records behind a single interface with
// swappable backends: an append-only flat file (default), an ephemeral
// in-memory slice, and an embedded sqlite database.
package store

import (
	"context"
	"fmt"

	"payrolldesk/payroll-processor/models"
)

// MalformedLine describes a stored line that could not be parsed during
// a scan. Lineno is 1-based. Only the file backend produces these.
type MalformedLine struct {
	Lineno int
	Text   string
	Reason string
}

type Store interface {
	// Append durably adds one record. Records are never updated or
	// deleted afterwards.
	Append(ctx context.Context, rec models.PayRecord) error

	// Scan returns every stored record in insertion order, plus any
	// malformed lines that were skipped. An empty backing store is an
	// empty result, not an error.
	Scan(ctx context.Context) ([]models.PayRecord, []MalformedLine, error)

	Close() error
}

// Open selects a backend by name. dataFile feeds the file backend,
// dbPath the sqlite backend.
func Open(backend, dataFile, dbPath string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(dataFile), nil
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return OpenDatabaseStore(dbPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
