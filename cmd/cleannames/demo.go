package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/clean"
	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/logging"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/tabular"
)

const (
	demoInput  = "sample_companies.csv"
	demoOutput = "cleaned_companies.csv"
)

var demoDir string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write the built-in sample companies and clean them",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoDir, "dir", ".", "Directory for sample_companies.csv and cleaned_companies.csv")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := demo(cmd.Context(), cmd.OutOrStdout(), log, demoDir); err != nil {
		log.Error().Err(err).Str("phase", clean.Phase(err)).Msg("demo failed")
		os.Exit(cleanExitCode(err))
	}
	return nil
}

// demo writes the sample companies into dir and cleans them into
// cleaned_companies.csv, printing the status line to w.
func demo(ctx context.Context, w io.Writer, log zerolog.Logger, dir string) error {
	in := filepath.Join(dir, demoInput)
	if err := tabular.WriteCSVFile(in, model.SampleTable(model.DefaultColumn)); err != nil {
		return &clean.PipelineError{Phase: clean.PhaseWrite, Err: fmt.Errorf("write sample file: %w", err)}
	}

	demoCfg := &config.Config{
		InputPath:  in,
		OutputPath: filepath.Join(dir, demoOutput),
		Column:     model.DefaultColumn,
	}
	summary, err := clean.Run(ctx, log, demoCfg)
	clean.Report(w, summary, err)
	return err
}
