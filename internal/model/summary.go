package model

import "time"

// CleanSummary captures metrics from a single clean run.
type CleanSummary struct {
	RunID             string
	InputPath         string
	OutputPath        string
	Format            string
	Column            string
	DerivedColumn     string
	RowsRead          int64
	RowsChanged       int64 // rows whose cleaned value differs from the trimmed raw value
	RowsWritten       int64
	DurationLoad      time.Duration
	DurationTransform time.Duration
	DurationWrite     time.Duration
	DurationTotal     time.Duration
}

// LoadSummary captures metrics from a single Postgres load run.
type LoadSummary struct {
	FilePath      string
	FileSHA256    string
	RunID         int64
	LoadBatchID   string
	Skipped       bool
	RowsRead      int64
	RowsLoaded    int64
	RowsChanged   int64
	DurationStage time.Duration
	DurationTotal time.Duration
}
