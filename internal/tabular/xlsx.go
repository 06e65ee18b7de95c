package tabular

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/namecleaner/internal/model"
)

const xlsxSheet = "Sheet1"

// ReadXLSX loads the first sheet of a workbook. The first row is the header;
// excelize drops trailing empty cells, so short rows are padded with "".
func ReadXLSX(path string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("xlsx sheet %q has no header row", sheets[0])
	}

	header := rows[0]
	t := &model.Table{Columns: header}
	for i, rec := range rows[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("xlsx row %d has %d cells, header has %d", i+2, len(rec), len(header))
		}
		out := make([]string, len(header))
		copy(out, rec)
		t.Rows = append(t.Rows, out)
	}
	return t, nil
}

// WriteXLSX writes t to the default sheet of a new workbook, header first.
func WriteXLSX(path string, t *model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, t.Columns); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, rec := range t.Rows {
		if err := setRow(f, i+2, rec); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx file: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(xlsxSheet, cell, &vals)
}
