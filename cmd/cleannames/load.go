package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/clean"
	"github.com/gyeh/namecleaner/internal/db"
	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/load"
	"github.com/gyeh/namecleaner/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Clean a table's company names and COPY them into Postgres",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", "", "Input table: .csv, .parquet or .xlsx (required)")
	f.BoolVar(&cfg.Force, "force", false, "Re-load even if this file and column were already loaded")
	addColumnFlag(loadCmd)
	_ = loadCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := cmd.Context()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		log.Error().Err(err).Str("phase", clean.Phase(err)).Msg("load failed")
		pool.Close()
		switch clean.Phase(err) {
		case load.PhasePreflight:
			os.Exit(exitcode.ValidationError)
		default:
			os.Exit(exitcode.CopyError)
		}
	}

	if summary.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "Already loaded as run %d, skipped (use --force to re-load)\n", summary.RunID)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Load complete: run %d, %d names loaded, %d changed (%.1fs)\n",
		summary.RunID, summary.RowsLoaded, summary.RowsChanged, summary.DurationTotal.Seconds())
	return nil
}
