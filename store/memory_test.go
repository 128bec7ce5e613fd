package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrolldesk/payroll-processor/models"
)

func TestMemoryStoreAppendAndScan(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, models.PayRecord{Name: "Ada", Hours: 40, Rate: 20, TaxRate: 0.15}))
	require.NoError(t, st.Append(ctx, models.PayRecord{Name: "Grace", Hours: 20, Rate: 30, TaxRate: 0.10}))

	records, malformed, err := st.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, records, 2)
	assert.Equal(t, "Ada", records[0].Name)
	assert.Equal(t, "Grace", records[1].Name)
}

func TestMemoryStoreScanReturnsCopy(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, models.PayRecord{Name: "Ada"}))

	records, _, err := st.Scan(ctx)
	require.NoError(t, err)
	records[0].Name = "mutated"

	fresh, _, err := st.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", fresh[0].Name)
}

func TestMemoryStoreEmptyScan(t *testing.T) {
	records, malformed, err := NewMemoryStore().Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, malformed)
}

func TestOpenSelectsBackend(t *testing.T) {
	st, err := Open("memory", "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, st)

	st, err = Open("file", "employees.txt", "")
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)

	st, err = Open("", "employees.txt", "")
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)

	_, err = Open("cassandra", "", "")
	assert.Error(t, err)
}
