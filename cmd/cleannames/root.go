package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/model"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "cleannames",
	Short: "Company name cleaner for CSV, Parquet and XLSX files",
	Long: "Strips legal-entity suffixes (Inc., Corp., LLC, Co., Ltd. ...) from a company name column " +
		"and writes the table back with a cleaned_<column> column, or loads the cleaned names into Postgres.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfigFile,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&configPath, "config", "", "YAML config file (column, log_format, log_level)")
}

// addColumnFlag registers --column on a subcommand.
func addColumnFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cfg.Column, "column", model.DefaultColumn, "Column holding company names")
}

// loadConfigFile merges --config into cfg. Flags set on the command line win.
func loadConfigFile(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return nil
	}
	explicit := cfg
	if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("column") {
		cfg.Column = explicit.Column
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = explicit.LogFormat
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = explicit.LogLevel
	}
	return nil
}
