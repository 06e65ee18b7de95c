package tabular

import (
	"fmt"
	"strings"

	"github.com/gyeh/namecleaner/internal/model"
)

// MissingColumnError reports that a required column is absent from a table.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column '%s' not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// ValidateColumn checks that t has a column named exactly column.
func ValidateColumn(t *model.Table, column string) error {
	if t.ColumnIndex(column) < 0 {
		return &MissingColumnError{
			Column:    column,
			Available: append([]string(nil), t.Columns...),
		}
	}
	return nil
}
