package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYROLL_DATA_FILE", "")
	t.Setenv("PAYROLL_STORE", "")
	t.Setenv("PAYROLL_DB_PATH", "")
	t.Setenv("PAYROLL_OUTPUT_DIR", "")

	cfg := Load()

	assert.Equal(t, "employees.txt", cfg.DataFile)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Equal(t, "payroll.db", cfg.DatabasePath)
	assert.Equal(t, "output/payroll", cfg.OutputDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAYROLL_DATA_FILE", "/tmp/records.txt")
	t.Setenv("PAYROLL_STORE", "sqlite")
	t.Setenv("PAYROLL_DB_PATH", "/tmp/records.db")
	t.Setenv("PAYROLL_OUTPUT_DIR", "/tmp/out")

	cfg := Load()

	assert.Equal(t, "/tmp/records.txt", cfg.DataFile)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "/tmp/records.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}
