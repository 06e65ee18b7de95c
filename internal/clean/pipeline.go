// Package clean applies company-name normalization to one column of a table
// file and writes the augmented table.
package clean

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/normalize"
	"github.com/gyeh/namecleaner/internal/tabular"
)

// Pipeline phases reported in PipelineError.
const (
	PhaseLoad     = "load"
	PhaseValidate = "validate"
	PhaseWrite    = "write"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes load → validate → transform → write for cfg.InputPath.
// The output uses the input's format regardless of the output extension.
// When validation fails no output file is created.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.CleanSummary, error) {
	totalStart := time.Now()
	runID := uuid.New().String()
	log = log.With().Str("run_id", runID).Logger()

	// Phase 1: Load
	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Phase: PhaseLoad, Err: err}
	}
	log.Info().Str("file", cfg.InputPath).Msg("loading table")
	loadStart := time.Now()
	tbl, format, err := tabular.Read(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseLoad, Err: err}
	}
	loadDur := time.Since(loadStart)
	log.Info().
		Str("format", string(format)).
		Int("rows", tbl.Len()).
		Int("columns", len(tbl.Columns)).
		Dur("duration", loadDur).
		Msg("table loaded")

	// Phase 2: Validate
	if err := tabular.ValidateColumn(tbl, cfg.Column); err != nil {
		return nil, &PipelineError{Phase: PhaseValidate, Err: err}
	}

	// Phase 3: Transform
	transformStart := time.Now()
	derived := model.DerivedColumn(cfg.Column)
	out, changed := Transform(tbl, cfg.Column)
	transformDur := time.Since(transformStart)
	log.Info().
		Str("column", cfg.Column).
		Str("derived_column", derived).
		Int64("rows_changed", changed).
		Dur("duration", transformDur).
		Msg("names cleaned")

	// Phase 4: Write
	writeStart := time.Now()
	if err := tabular.Write(cfg.OutputPath, format, out); err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}
	writeDur := time.Since(writeStart)

	summary := &model.CleanSummary{
		RunID:             runID,
		InputPath:         cfg.InputPath,
		OutputPath:        cfg.OutputPath,
		Format:            string(format),
		Column:            cfg.Column,
		DerivedColumn:     derived,
		RowsRead:          int64(tbl.Len()),
		RowsChanged:       changed,
		RowsWritten:       int64(out.Len()),
		DurationLoad:      loadDur,
		DurationTransform: transformDur,
		DurationWrite:     writeDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_written", summary.RowsWritten).
		Str("output", summary.OutputPath).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("clean pipeline complete")

	return summary, nil
}

// Transform returns a copy of tbl with cleaned values of column stored in
// the derived column, plus the number of rows whose cleaned value differs
// from the trimmed raw value. column must exist in tbl.
func Transform(tbl *model.Table, column string) (*model.Table, int64) {
	raw, _ := tbl.Column(column)
	cleaned := make([]string, len(raw))
	var changed int64
	for i, v := range raw {
		cleaned[i] = normalize.CompanyName(v)
		if cleaned[i] != strings.TrimSpace(v) {
			changed++
		}
	}
	return tbl.WithColumn(model.DerivedColumn(column), cleaned), changed
}
