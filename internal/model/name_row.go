package model

import "github.com/google/uuid"

// NameRow is one cleaned company name ready for COPY into cleaning.company_names.
type NameRow struct {
	RunID           int64
	LoadBatchID     uuid.UUID
	SourceRowNumber int64
	SourceRowHash   []byte
	RawName         string
	CleanedName     string
	Suffix          *string // first recognized suffix on the raw name, if any
}

// NameRowColumns returns the ordered column names for COPY into cleaning.company_names.
func NameRowColumns() []string {
	return []string{
		"run_id",
		"load_batch_id",
		"source_row_number",
		"source_row_hash",
		"raw_name",
		"cleaned_name",
		"suffix",
	}
}

// CopyValues returns the row values in the same order as NameRowColumns(),
// suitable for pgx CopyFromSource.
func (r *NameRow) CopyValues() []any {
	return []any{
		r.RunID,
		r.LoadBatchID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.RawName,
		r.CleanedName,
		r.Suffix,
	}
}
