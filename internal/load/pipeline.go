package load

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/namecleaner/internal/clean"
	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/db"
	"github.com/gyeh/namecleaner/internal/model"
	embedsql "github.com/gyeh/namecleaner/internal/sql"
)

// Load pipeline phases reported in clean.PipelineError.
const (
	PhasePreflight = "preflight"
	PhaseStage     = "stage"
	PhaseFinalize  = "finalize"
)

// Run executes preflight → stage → finalize for cfg.InputPath.
func Run(ctx context.Context, pool db.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.InputPath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.InputPath, cfg.Column, cfg.Force)
	if err != nil {
		return nil, &clean.PipelineError{Phase: PhasePreflight, Err: err}
	}
	log = log.With().Int64("run_id", pf.RunID).Str("load_batch_id", pf.LoadBatchID.String()).Logger()

	if pf.AlreadyLoaded {
		log.Info().
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-load)")
		return &model.LoadSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			RunID:         pf.RunID,
			LoadBatchID:   pf.LoadBatchID.String(),
			Skipped:       true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	if err := UpdateStatus(ctx, pool, pf.RunID, "staging"); err != nil {
		return nil, &clean.PipelineError{Phase: PhaseStage, Err: err}
	}
	stageResult, err := Stage(ctx, pool, log, pf)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.RunID, "failed")
		return nil, &clean.PipelineError{Phase: PhaseStage, Err: err}
	}

	// Phase 3: Finalize
	if _, err := pool.Exec(ctx, embedsql.FinalizeRun, pf.RunID, stageResult.RowsLoaded, pf.LoadBatchID); err != nil {
		_ = UpdateStatus(ctx, pool, pf.RunID, "failed")
		return nil, &clean.PipelineError{Phase: PhaseFinalize, Err: fmt.Errorf("finalize run: %w", err)}
	}

	summary := &model.LoadSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		RunID:         pf.RunID,
		LoadBatchID:   pf.LoadBatchID.String(),
		RowsRead:      stageResult.RowsRead,
		RowsLoaded:    stageResult.RowsLoaded,
		RowsChanged:   stageResult.RowsChanged,
		DurationStage: stageResult.Duration,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_loaded", summary.RowsLoaded).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
