package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbruckner/tourwatch/internal/config"
	"github.com/mbruckner/tourwatch/internal/logging"
	"github.com/mbruckner/tourwatch/internal/notifier"
	"github.com/mbruckner/tourwatch/internal/report"
	"github.com/mbruckner/tourwatch/internal/scraper"
	"github.com/mbruckner/tourwatch/internal/storage"
	"github.com/mbruckner/tourwatch/internal/tour"
)

var (
	flagCheckFormat string
	flagNoChangelog bool
	flagNotify      string
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fetch the tour listing and report changes since the last run",
		RunE:  runCheck,
	}

	cmd.Flags().StringVar(&flagCheckFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagNoChangelog, "no-changelog", false, "Skip appending the markdown change log")
	cmd.Flags().StringVar(&flagNotify, "notify", "", "Announcement channel: none, dryrun, twitter, telegram (overrides config)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logging.L()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagCheckFormat != "text" && flagCheckFormat != "json" {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagCheckFormat)
	}
	notifierName := cfg.Notifier
	if flagNotify != "" {
		notifierName = flagNotify
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(cfg.URL, cfg.HTTP.Timeout, cfg.HTTP.UserAgent)

	log.Debugw("fetching tour listing", "url", sc.URL())
	started := time.Now()
	current, err := sc.FetchTours()
	if err != nil {
		return fmt.Errorf("fetching tours: %w", err)
	}
	log.Infow("fetched tour listing", "tours", len(current), "took", time.Since(started).Round(time.Millisecond))

	previous, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	now := time.Now()
	snapshot := tour.NewSnapshot(cfg.URL, current, now)
	if err := store.SaveSnapshot(snapshot); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	log.Debugw("saved snapshot", "path", store.SnapshotPath(), "tours", snapshot.TourCount)

	if previous == nil {
		// First run: nothing to diff against.
		if flagCheckFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), snapshot)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "First run: captured %d tours, nothing to compare against yet.\n", snapshot.TourCount)
		return nil
	}

	delta := tour.Diff(previous.Index(), current)
	deltaReport := &storage.DeltaReport{
		Timestamp:         snapshot.Timestamp,
		PreviousTimestamp: previous.Timestamp,
		Summary:           delta.Summary(),
		Changes:           delta,
	}

	if err := store.SaveDelta(deltaReport); err != nil {
		return fmt.Errorf("saving delta: %w", err)
	}

	if !flagNoChangelog && !delta.Empty() {
		path, err := report.AppendChangeLog(cfg.ChangelogDir, delta, now)
		if err != nil {
			return fmt.Errorf("writing changelog: %w", err)
		}
		log.Infow("appended change log", "path", path)
	}

	if len(delta.Added) > 0 {
		if err := announce(notifierName, cfg, delta.Added); err != nil {
			// Announcements are best effort, the snapshot is already saved.
			log.Warnw("notification failed", "error", err)
		}
	}

	if flagCheckFormat == "json" {
		if err := writeJSON(cmd.OutOrStdout(), deltaReport); err != nil {
			return err
		}
	} else {
		report.WriteDelta(cmd.OutOrStdout(), delta, flagVerbose)
	}

	if !delta.Empty() {
		logging.Sync()
		os.Exit(ExitChanges)
	}
	return nil
}

// announce posts added tours to the selected channel.
func announce(name string, cfg *config.Config, added []tour.Tour) error {
	var n notifier.Notifier
	switch name {
	case "", "none":
		return nil
	case "dryrun":
		n = notifier.NewDryRunNotifier(os.Stdout)
	case "twitter":
		var err error
		if n, err = notifier.NewTwitterNotifier(); err != nil {
			return err
		}
	case "telegram":
		var err error
		if n, err = notifier.NewTelegramNotifier(cfg.Telegram.ChatID); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown notifier: %s", name)
	}
	return n.Notify(added)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
