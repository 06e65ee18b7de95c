package load

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/gyeh/namecleaner/internal/db"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/normalize"
)

const stageBufferSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead    int64
	RowsLoaded  int64
	RowsChanged int64
	Duration    time.Duration
}

// Stage cleans every name in the preflight table and COPY-loads the results
// into cleaning.company_names via a channel-backed CopyFromSource.
func Stage(ctx context.Context, pool db.Pool, log zerolog.Logger, pf *PreflightResult) (*StageResult, error) {
	start := time.Now()

	col := pf.Table.ColumnIndex(pf.Column)
	ch := make(chan *model.NameRow, stageBufferSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsChanged int64

	// Producer goroutine: raw row → NameRow → channel
	go func() {
		defer close(ch)
		for i, rec := range pf.Table.Rows {
			rowNum := int64(i + 1)
			raw := rec[col]
			row := &model.NameRow{
				RunID:           pf.RunID,
				LoadBatchID:     pf.LoadBatchID,
				SourceRowNumber: rowNum,
				SourceRowHash:   normalize.RowHash(rowNum, rec...),
				RawName:         raw,
				CleanedName:     normalize.CompanyName(raw),
			}
			if s, ok := normalize.TrailingSuffix(raw); ok {
				row.Suffix = &s
			}
			rowsRead++
			if row.CleanedName != strings.TrimSpace(raw) {
				rowsChanged++
			}

			select {
			case ch <- row:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewChannelSource(ch)
	rowsLoaded, err := pool.CopyFrom(ctx,
		pgx.Identifier{"cleaning", "company_names"},
		model.NameRowColumns(),
		source,
	)

	// COPY may stop early on error; drain so the producer can finish.
	for range ch {
	}
	if prodErr := <-errCh; prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_loaded", rowsLoaded).
		Int64("rows_changed", rowsChanged).
		Str("duration", dur.String()).
		Msg("staging complete")

	return &StageResult{
		RowsRead:    rowsRead,
		RowsLoaded:  rowsLoaded,
		RowsChanged: rowsChanged,
		Duration:    dur,
	}, nil
}
