package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/config"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cloudbill",
	Short: "Cloud billing metrics dashboard",
	Long: `cloudbill serves an interactive dashboard over a static cloud billing table.

Filter rows by monthly cost and traffic window and compare the overage ratio
across customer segments, promotions, weekdays and traffic windows, in the
browser or from the terminal.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// cfg is loaded once before any command runs.
var cfg *config.Config

var (
	flagDataset  string
	flagDatabase string
	flagLogLevel string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDataset, "dataset", "", "CSV dataset path (default: embedded mock table)")
	pf.StringVar(&flagDatabase, "db", "", "libsql database URL to read the dataset from")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the environment, then lets flags override it.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDataset != "" {
		c.DatasetPath = flagDataset
	}
	if flagDatabase != "" {
		c.Database.URL = flagDatabase
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
	logger.Setup(os.Stderr, c.Log.Level, c.Log.Format)
	cfg = c
	return nil
}
