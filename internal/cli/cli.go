package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbruckner/tourwatch/internal/config"
	"github.com/mbruckner/tourwatch/internal/logging"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitChanges = 2
)

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tourwatch",
		Short: "Track changes to the Alpenverein Heidelberg tour listing",
		Long: `tourwatch scrapes the Alpenverein Heidelberg tour search results,
keeps a snapshot of all listed tours, and reports which tours were added,
removed, or modified since the last run.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(flagVerbose)
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

// Execute runs the CLI.
func Execute() {
	defer logging.Sync()
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(ExitError)
	}
}
