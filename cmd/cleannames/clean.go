package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/clean"
	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/logging"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Write a copy of a table with a cleaned_<column> column",
	RunE:  runClean,
}

func init() {
	f := cleanCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", "", "Input table: .csv, .parquet or .xlsx (required)")
	f.StringVar(&cfg.OutputPath, "out", "", "Output path, written in the input's format (required)")
	addColumnFlag(cleanCmd)
	_ = cleanCmd.MarkFlagRequired("in")
	_ = cleanCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := clean.Run(cmd.Context(), log, &cfg)
	clean.Report(cmd.OutOrStdout(), summary, err)
	if err != nil {
		log.Error().Err(err).Str("phase", clean.Phase(err)).Msg("clean failed")
		os.Exit(cleanExitCode(err))
	}
	return nil
}

func cleanExitCode(err error) int {
	switch clean.Phase(err) {
	case clean.PhaseValidate:
		return exitcode.ValidationError
	case clean.PhaseWrite:
		return exitcode.WriteError
	default:
		return exitcode.LoadError
	}
}
