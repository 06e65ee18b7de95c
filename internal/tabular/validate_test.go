package tabular

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/namecleaner/internal/model"
)

func TestValidateColumn(t *testing.T) {
	tbl := &model.Table{Columns: []string{"id", "company_name"}}
	assert.NoError(t, ValidateColumn(tbl, "company_name"))

	err := ValidateColumn(tbl, "Company_Name")
	require.Error(t, err)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Company_Name", missing.Column)
	assert.Equal(t, []string{"id", "company_name"}, missing.Available)
	assert.Contains(t, err.Error(), "'Company_Name' not found")
}
