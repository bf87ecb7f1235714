// Package main provides the qquotes CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qmichel/qquotes/internal/config"
	"github.com/qmichel/qquotes/internal/logging"
	"github.com/qmichel/qquotes/internal/repo"
	"github.com/qmichel/qquotes/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

// verbosity holds the -v count; it raises terminal log verbosity only,
// the log file always records info and above.
var verbosity int

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qquotes",
	Short: "Store quotes",
	Long: `qquotes stores short quotes (author and text) in a single JSON file.

Quotes are added interactively, listed as an aligned table and deleted by
their generated id. Paths for the data file and the log file come from
~/.config/qquotes/config.toml and fall back to the home directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Shows details about the results of running qquotes (repeatable)")
	rootCmd.Version = Version
}

// app bundles what every subcommand needs.
type app struct {
	cfg  config.Config
	log  *slog.Logger
	repo *repo.Repository
}

// setupApp loads config, wires the logger and opens the repository.
// Config problems degrade to defaults and are only reported as warnings.
func setupApp() *app {
	cfg, warn := config.Load()

	logger := logging.New(verbosity, config.ExpandPath(cfg.PathLogFile))
	if warn != nil {
		logger.Warn(warn.Error())
	}
	logger.Debug("app_setup",
		"log_file", cfg.PathLogFile,
		"data_file", cfg.PathDataFile)

	st := store.New(config.ExpandPath(cfg.PathDataFile))
	return &app{
		cfg:  cfg,
		log:  logger,
		repo: repo.New(st, logger),
	}
}

// fail logs the error on both sinks and exits. The terminal sink shows
// errors at every verbosity level.
func (a *app) fail(err error) {
	a.log.Error(err.Error())
	os.Exit(ExitError)
}
