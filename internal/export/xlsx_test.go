package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/claims-parser/internal/claims"
)

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestBuildClaimsXLSX_SheetsAndCells(t *testing.T) {
	f, err := BuildClaimsXLSX([]*claims.ParsedDocument{sampleHCFA(), sampleEOB()})
	require.NoError(t, err)

	assert.Equal(t, "Source", cellValue(t, f, claimsSheet, "A1"))
	assert.Equal(t, "claim_a.pdf", cellValue(t, f, claimsSheet, "A2"))
	assert.Equal(t, "M54.5;E11.9", cellValue(t, f, claimsSheet, "F2"))
	assert.Equal(t, "2", cellValue(t, f, claimsSheet, "J2"))
	assert.Equal(t, "", cellValue(t, f, claimsSheet, "L2"))

	assert.Equal(t, "EOB", cellValue(t, f, claimsSheet, "B3"))
	assert.Equal(t, "ABC123", cellValue(t, f, claimsSheet, "G3"))
	assert.Equal(t, "2024-02-05", cellValue(t, f, claimsSheet, "H3"))
	assert.Equal(t, "99213", cellValue(t, f, claimsSheet, "K3"))
	assert.Equal(t, "20.00", cellValue(t, f, claimsSheet, "L3"))
	assert.Equal(t, "80.00", cellValue(t, f, claimsSheet, "M3"))

	rows, err := f.GetRows(linesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "CPT Code", rows[0][2])
	assert.Equal(t, "99213", rows[1][2])
	assert.Equal(t, "87880", rows[2][2])
	assert.Equal(t, "eob_b.pdf", rows[3][0])
	assert.Equal(t, "80.00", rows[3][8])
}

func TestBuildClaimsXLSX_Empty(t *testing.T) {
	f, err := BuildClaimsXLSX(nil)
	require.NoError(t, err)

	rows, err := f.GetRows(claimsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBuildClaimsXLSX_LongNamesTruncated(t *testing.T) {
	doc := sampleHCFA()
	doc.Fields["patient_name"] = strings.Repeat("N", 70)

	f, err := BuildClaimsXLSX([]*claims.ParsedDocument{doc})
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("N", 59)+"…", cellValue(t, f, claimsSheet, "C2"))
}

func TestExportClaimsXLSX_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.xlsx")

	require.NoError(t, ExportClaimsXLSX(path, []*claims.ParsedDocument{sampleEOB()}, discardLogger()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	assert.Equal(t, "ABC123", cellValue(t, f, claimsSheet, "G2"))
}
