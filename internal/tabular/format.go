// Package tabular reads and writes header-row tables as CSV, Parquet or XLSX.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gyeh/namecleaner/internal/model"
)

// Format identifies an on-disk table encoding.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatXLSX    Format = "xlsx"
)

// DetectFormat picks a format from the file extension. Anything that is not
// .parquet or .xlsx is read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Read loads the whole table at path using the format implied by its extension.
func Read(path string) (*model.Table, Format, error) {
	format := DetectFormat(path)
	var (
		t   *model.Table
		err error
	)
	switch format {
	case FormatParquet:
		t, err = ReadParquet(path)
	case FormatXLSX:
		t, err = ReadXLSX(path)
	default:
		t, err = ReadCSVFile(path)
	}
	if err != nil {
		return nil, format, err
	}
	return t, format, nil
}

// Write persists t to path in the given format.
func Write(path string, format Format, t *model.Table) error {
	switch format {
	case FormatCSV:
		return WriteCSVFile(path, t)
	case FormatParquet:
		return WriteParquet(path, t)
	case FormatXLSX:
		return WriteXLSX(path, t)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
