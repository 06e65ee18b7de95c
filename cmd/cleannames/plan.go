package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/clean"
	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/logging"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/normalize"
	"github.com/gyeh/namecleaner/internal/tabular"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and suffix stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", "", "Input table: .csv, .parquet or .xlsx (required)")
	f.IntVar(&cfg.SampleRows, "sample", 10, "Number of before/after pairs to print")
	addColumnFlag(planCmd)
	_ = planCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	if err := writePlan(cmd.OutOrStdout(), cfg.InputPath, cfg.Column, cfg.SampleRows); err != nil {
		log.Error().Err(err).Str("phase", clean.Phase(err)).Msg("plan failed")
		os.Exit(cleanExitCode(err))
	}
	return nil
}

// writePlan prints file facts, the trailing-suffix distribution of column,
// and the first sample rows as raw → cleaned pairs.
func writePlan(w io.Writer, path, column string, sample int) error {
	sha, err := normalize.FileHash(path)
	if err != nil {
		return &clean.PipelineError{Phase: clean.PhaseLoad, Err: err}
	}
	stat, err := os.Stat(path)
	if err != nil {
		return &clean.PipelineError{Phase: clean.PhaseLoad, Err: err}
	}
	tbl, format, err := tabular.Read(path)
	if err != nil {
		return &clean.PipelineError{Phase: clean.PhaseLoad, Err: err}
	}
	if err := tabular.ValidateColumn(tbl, column); err != nil {
		return &clean.PipelineError{Phase: clean.PhaseValidate, Err: err}
	}

	names, _ := tbl.Column(column)
	out, changed := clean.Transform(tbl, column)
	cleaned, _ := out.Column(model.DerivedColumn(column))

	counts := make(map[string]int)
	for _, raw := range names {
		if s, ok := normalize.TrailingSuffix(raw); ok {
			counts[s]++
		} else {
			counts[""]++
		}
	}

	fmt.Fprintln(w, "=== cleannames plan ===")
	fmt.Fprintf(w, "File:       %s\n", path)
	fmt.Fprintf(w, "Format:     %s\n", format)
	fmt.Fprintf(w, "SHA-256:    %s\n", sha)
	fmt.Fprintf(w, "Size:       %d bytes\n", stat.Size())
	fmt.Fprintf(w, "Total rows: %d\n", tbl.Len())
	fmt.Fprintf(w, "Columns:    %v\n", tbl.Columns)
	fmt.Fprintf(w, "Column:     %s\n", column)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Trailing suffix distribution:")
	for _, name := range normalize.SuffixRules() {
		if c := counts[name]; c > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", name, c)
		}
	}
	fmt.Fprintf(w, "  %-14s %d\n", "(none)", counts[""])
	fmt.Fprintf(w, "\nRows changed: %d of %d\n", changed, len(names))

	if sample > len(names) {
		sample = len(names)
	}
	if sample > 0 {
		fmt.Fprintf(w, "\nFirst %d rows:\n", sample)
		for i := 0; i < sample; i++ {
			fmt.Fprintf(w, "  %q → %q\n", names[i], cleaned[i])
		}
	}
	fmt.Fprintln(w, "\nColumn validation: OK")
	return nil
}
