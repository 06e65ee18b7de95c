package clean

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/tabular"
)

// Process runs the pipeline and prints a one-line status to w instead of
// returning the error. It reports the number of rows processed and whether
// the run succeeded.
func Process(ctx context.Context, w io.Writer, log zerolog.Logger, cfg *config.Config) (int64, bool) {
	summary, err := Run(ctx, log, cfg)
	if err != nil {
		log.Error().Err(err).Str("phase", Phase(err)).Msg("clean failed")
	}
	Report(w, summary, err)
	if err != nil {
		return 0, false
	}
	return summary.RowsWritten, true
}

// Report prints the status line for a finished Run.
func Report(w io.Writer, summary *model.CleanSummary, err error) {
	if err != nil {
		fmt.Fprintf(w, "Error processing file: %s\n", Describe(err))
		return
	}
	fmt.Fprintf(w, "Processed %d companies and saved to %s\n", summary.RowsWritten, summary.OutputPath)
}

// Describe renders a pipeline error as a human-readable diagnostic.
func Describe(err error) string {
	var missing *tabular.MissingColumnError
	if errors.As(err, &missing) {
		return fmt.Sprintf("Column '%s' not found in input file", missing.Column)
	}
	var pe *PipelineError
	if errors.As(err, &pe) {
		switch pe.Phase {
		case PhaseLoad:
			return fmt.Sprintf("could not load input: %v", pe.Err)
		case PhaseWrite:
			return fmt.Sprintf("could not write output: %v", pe.Err)
		}
	}
	return err.Error()
}

// Phase returns the phase a Run error belongs to, or "" if err did not come
// from Run.
func Phase(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Phase
	}
	return ""
}
