package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/logging"
	"github.com/gyeh/namecleaner/internal/normalize"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [NAME...]",
	Short: "Print cleaned company names (reads stdin lines when no names are given)",
	RunE:  runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := normalizeNames(cmd.OutOrStdout(), cmd.InOrStdin(), args); err != nil {
		log.Error().Err(err).Msg("normalize failed")
		os.Exit(exitcode.LoadError)
	}
	return nil
}

func normalizeNames(w io.Writer, r io.Reader, args []string) error {
	if len(args) > 0 {
		for _, name := range args {
			fmt.Fprintln(w, normalize.CompanyName(name))
		}
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fmt.Fprintln(w, normalize.CompanyName(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read names: %w", err)
	}
	return nil
}
