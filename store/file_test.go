package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrolldesk/payroll-processor/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.txt")
	st := NewFileStore(path)
	ctx := context.Background()

	first := models.PayRecord{
		FromDate: "04/20/2025",
		ToDate:   "04/26/2025",
		Name:     "Ada Lovelace",
		Hours:    40,
		Rate:     20,
		TaxRate:  0.15,
	}
	second := models.PayRecord{
		FromDate: "05/01/2025",
		ToDate:   "05/07/2025",
		Name:     "Grace Hopper",
		Hours:    37.5,
		Rate:     22.75,
		TaxRate:  0.22,
	}

	require.NoError(t, st.Append(ctx, first))
	require.NoError(t, st.Append(ctx, second))

	records, malformed, err := st.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, records, 2)

	assert.Equal(t, first.FromDate, records[0].FromDate)
	assert.Equal(t, first.ToDate, records[0].ToDate)
	assert.Equal(t, first.Name, records[0].Name)
	assert.InDelta(t, first.Hours, records[0].Hours, 1e-9)
	assert.InDelta(t, first.Rate, records[0].Rate, 1e-9)
	assert.InDelta(t, first.TaxRate, records[0].TaxRate, 1e-9)

	assert.Equal(t, second.Name, records[1].Name)
	assert.InDelta(t, second.TaxRate, records[1].TaxRate, 1e-9)
}

// One record per line, six pipe-delimited fields, tax rate as percent.
func TestFileStoreLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.txt")
	st := NewFileStore(path)

	require.NoError(t, st.Append(context.Background(), models.PayRecord{
		FromDate: "04/20/2025",
		ToDate:   "04/26/2025",
		Name:     "Ada Lovelace",
		Hours:    40,
		Rate:     20,
		TaxRate:  0.25,
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.True(t, strings.HasSuffix(content, "\n"))

	line := strings.TrimSuffix(content, "\n")
	parts := strings.Split(line, "|")
	require.Len(t, parts, 6)
	assert.Equal(t, "04/20/2025", parts[0])
	assert.Equal(t, "04/26/2025", parts[1])
	assert.Equal(t, "Ada Lovelace", parts[2])
	assert.Equal(t, "40", parts[3])
	assert.Equal(t, "20", parts[4])
	assert.Equal(t, "25", parts[5])
}

func TestFileStoreScanParsesStoredPercent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("04/20/2025|04/26/2025|Ada Lovelace|40|20.5|15\n"), 0644))

	records, malformed, err := NewFileStore(path).Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, malformed)
	require.Len(t, records, 1)

	assert.InDelta(t, 40.0, records[0].Hours, 1e-9)
	assert.InDelta(t, 20.5, records[0].Rate, 1e-9)
	assert.InDelta(t, 0.15, records[0].TaxRate, 1e-9)
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.txt")
	content := strings.Join([]string{
		"04/20/2025|04/26/2025|Ada|40|20|15",
		"04/20/2025|04/26/2025|too-few-fields|40",
		"", // blank lines are skipped silently but still numbered
		"04/20/2025|04/26/2025|Bad Hours|forty|20|15",
		"05/01/2025|05/07/2025|Grace|20|30|10",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, malformed, err := NewFileStore(path).Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Ada", records[0].Name)
	assert.Equal(t, "Grace", records[1].Name)

	require.Len(t, malformed, 2)
	assert.Equal(t, 2, malformed[0].Lineno)
	assert.Contains(t, malformed[0].Reason, "fields")
	assert.Equal(t, 4, malformed[1].Lineno)
	assert.Equal(t, "invalid numeric data", malformed[1].Reason)
}

// A crash during an append can leave a partial trailing line; the next
// scan treats it as malformed and keeps going.
func TestFileStoreTruncatedTrailingLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.txt")
	content := "04/20/2025|04/26/2025|Ada|40|20|15\n04/20/2025|04/26/2025|Gra"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, malformed, err := NewFileStore(path).Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, malformed, 1)
	assert.Equal(t, 2, malformed[0].Lineno)
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "nope", "employees.txt"))

	records, malformed, err := st.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, malformed)
}

func TestFileStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "employees.txt")
	st := NewFileStore(path)

	require.NoError(t, st.Append(context.Background(), models.PayRecord{
		FromDate: "04/20/2025",
		ToDate:   "04/26/2025",
		Name:     "Ada",
		Hours:    1,
		Rate:     1,
		TaxRate:  0,
	}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
