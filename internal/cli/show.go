package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbruckner/tourwatch/internal/report"
	"github.com/mbruckner/tourwatch/internal/storage"
)

var flagShowFormat string

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the tours from the stored snapshot",
		RunE:  runShow,
	}

	cmd.Flags().StringVar(&flagShowFormat, "format", "text", "Output format: text or json")
	addFilterFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagShowFormat != "text" && flagShowFormat != "json" {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagShowFormat)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	snapshot, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if snapshot == nil {
		return fmt.Errorf("no snapshot found, run 'tourwatch check' first")
	}

	f, err := filterFromFlags()
	if err != nil {
		return err
	}
	tours := f.Apply(snapshot.Tours)

	if flagShowFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), tours)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot from %s (%s)\n\n", snapshot.Timestamp, snapshot.URL)
	report.WriteTours(cmd.OutOrStdout(), tours, flagVerbose)
	return nil
}
