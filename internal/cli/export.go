package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbruckner/tourwatch/internal/filter"
	"github.com/mbruckner/tourwatch/internal/report"
	"github.com/mbruckner/tourwatch/internal/scraper"
	"github.com/mbruckner/tourwatch/internal/storage"
	"github.com/mbruckner/tourwatch/internal/tour"
)

var (
	flagExportOutput string
	flagExportFetch  bool

	flagFilterDates    string
	flagFilterTitles   string
	flagFilterTypes    string
	flagFilterLeaders  string
	flagFilterUpcoming bool
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tours to an ICS calendar file",
		Long:  `Export the stored tour snapshot (or a fresh fetch) as an iCalendar file.`,
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&flagExportOutput, "output", "o", "tours.ics", "Output file path")
	cmd.Flags().BoolVar(&flagExportFetch, "fetch", false, "Fetch the listing instead of using the stored snapshot")
	addFilterFlags(cmd)

	return cmd
}

// addFilterFlags registers the tour filter flags shared by show and export.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFilterDates, "dates", "", "Date range filter, e.g. '01.03.26-15.03.26' or '01.03.26'")
	cmd.Flags().StringVar(&flagFilterTitles, "title", "", "Comma-separated title terms (substring match)")
	cmd.Flags().StringVar(&flagFilterTypes, "type", "", "Comma-separated tour type terms, e.g. 'Skitour'")
	cmd.Flags().StringVar(&flagFilterLeaders, "leader", "", "Comma-separated leader name terms")
	cmd.Flags().BoolVar(&flagFilterUpcoming, "upcoming", false, "Only tours that have not ended yet")
}

// filterFromFlags builds a tour filter from the shared filter flags.
func filterFromFlags() (*filter.Filter, error) {
	f := filter.New()
	if flagFilterDates != "" {
		from, to, err := filter.ParseDateRange(flagFilterDates)
		if err != nil {
			return nil, fmt.Errorf("invalid --dates: %w", err)
		}
		f.DateFrom, f.DateTo = from, to
	}
	f.Titles = filter.ParseTerms(flagFilterTitles)
	f.Types = filter.ParseTerms(flagFilterTypes)
	f.Leaders = filter.ParseTerms(flagFilterLeaders)
	f.UpcomingOnly = flagFilterUpcoming
	return f, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var tours []tour.Tour
	if flagExportFetch {
		sc := scraper.New(cfg.URL, cfg.HTTP.Timeout, cfg.HTTP.UserAgent)
		if tours, err = sc.FetchTours(); err != nil {
			return fmt.Errorf("fetching tours: %w", err)
		}
	} else {
		store, err := storage.New(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		snapshot, err := store.LoadSnapshot()
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		if snapshot == nil {
			return fmt.Errorf("no snapshot found, run 'tourwatch check' first or use --fetch")
		}
		tours = snapshot.Tours
	}

	f, err := filterFromFlags()
	if err != nil {
		return err
	}
	tours = f.Apply(tours)

	if len(tours) == 0 {
		return fmt.Errorf("no tours match the given filters")
	}

	file, err := os.Create(flagExportOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	count, err := report.WriteICS(tours, file)
	if err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tours to %s\n", count, flagExportOutput)
	return nil
}
