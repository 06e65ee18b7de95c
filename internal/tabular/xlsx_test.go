package tabular

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gyeh/namecleaner/internal/model"
)

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.xlsx")
	tbl := &model.Table{
		Columns: []string{"id", "company_name", "note"},
		Rows: [][]string{
			{"1", "Apple Inc.", "x"},
			{"2", "Tesla, Inc.", ""},
		},
	}

	require.NoError(t, Write(path, FormatXLSX, tbl))

	got, format, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)
	assert.Equal(t, tbl, got)
}

func TestReadXLSX_EmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadXLSX(path)
	assert.Error(t, err)
}

func TestReadXLSX_RowWiderThanHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"company_name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Acme", "extra"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadXLSX(path)
	assert.Error(t, err)
}

func TestReadXLSX_Missing(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

