// Package load cleans a table's company names and bulk-loads them into Postgres.
package load

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/gyeh/namecleaner/internal/db"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/normalize"
	embedsql "github.com/gyeh/namecleaner/internal/sql"
	"github.com/gyeh/namecleaner/internal/tabular"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	FilePath   string
	FileSHA256 string
	FileSize   int64
	Column     string
	// RunID is the cleaning.runs primary key, shared by every load of the
	// same (sha256, column) pair.
	RunID int64
	// LoadBatchID identifies this attempt; rows are tagged with it.
	LoadBatchID uuid.UUID
	// AlreadyLoaded is true when the run already has status "loaded" and
	// force mode is off.
	AlreadyLoaded bool
	Table         *model.Table
}

// Preflight hashes and reads the file, validates the name column, and
// registers (or re-opens) the run.
func Preflight(ctx context.Context, pool db.Pool, log zerolog.Logger, filePath, column string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	tbl, format, err := tabular.Read(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight read: %w", err)
	}
	if err := tabular.ValidateColumn(tbl, column); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("format", string(format)).
		Str("sha256", sha).
		Int("rows", tbl.Len()).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	runID, alreadyLoaded, err := registerRun(ctx, pool, filePath, sha, column, stat.Size(), force)
	if err != nil {
		return nil, fmt.Errorf("preflight register run: %w", err)
	}

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		Column:        column,
		RunID:         runID,
		LoadBatchID:   uuid.New(),
		AlreadyLoaded: alreadyLoaded,
		Table:         tbl,
	}, nil
}

func registerRun(ctx context.Context, pool db.Pool, filePath, sha, column string, size int64, force bool) (int64, bool, error) {
	var runID int64
	err := pool.QueryRow(ctx, embedsql.RegisterRun, filepath.Base(filePath), sha, column, size).Scan(&runID)
	if err == nil {
		return runID, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("register run: %w", err)
	}

	// ON CONFLICT DO NOTHING returned no row: the file was seen before.
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupRun, sha, column).Scan(&runID, &status); err != nil {
		return 0, false, fmt.Errorf("lookup existing run: %w", err)
	}
	if !force && status == "loaded" {
		return runID, true, nil
	}

	if err := UpdateStatus(ctx, pool, runID, "pending"); err != nil {
		return 0, false, fmt.Errorf("reset run status: %w", err)
	}
	if _, err := pool.Exec(ctx, embedsql.DeleteRunNames, runID); err != nil {
		return 0, false, fmt.Errorf("delete previous names: %w", err)
	}
	return runID, false, nil
}

// UpdateStatus updates the cleaning.runs status.
func UpdateStatus(ctx context.Context, pool db.Pool, runID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, status)
	return err
}
