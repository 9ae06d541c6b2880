// Package cli implements the cobra command tree. Commands drive the
// query services; they render whatever table comes back and never see
// error values from the services, only a nil table. Failures reach the
// user through the wired reporter.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
	"github.com/cosmolabs/cosmo-cli/internal/reporting"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// Services the commands run against, wired in by the composition root.
var (
	simbadService driving.SimbadService
	vizierService driving.VizierService
	gaiaService   driving.GaiaService
	irsaService   driving.IrsaService
	sdssService   driving.SdssService
	nedService    driving.NedService
	mastService   driving.MastService
	xmatchService driving.XMatchService

	historyStore driven.HistoryStore
	configStore  driven.ConfigStore

	// failures collects reports so history records can carry the
	// failure summary. The composition root includes it in the
	// reporter fan-out.
	failures *reporting.Memory
)

// Global flags.
var (
	verboseFlag   bool
	jsonFlag      bool
	configDirFlag string
)

// errNoResult signals a query that produced no table. The failure
// itself has already been reported.
var errNoResult = errors.New("no result")

var rootCmd = &cobra.Command{
	Use:   "cosmo",
	Short: "Query astronomical archives from the command line",
	Long: `cosmo is a uniform front door to astronomical archives.
It resolves object names through SIMBAD and Sesame, runs catalog and
region searches against VizieR, SDSS and NED, executes ADQL at the
Gaia archive, fetches IRSA dust statistics, searches and downloads
MAST data products, and cross-matches tables at CDS.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output results as JSON")
	// Parsed again by the composition root before the stores are built.
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.cosmo)")
}

// Services bundles everything the command tree needs.
type Services struct {
	Simbad driving.SimbadService
	Vizier driving.VizierService
	Gaia   driving.GaiaService
	Irsa   driving.IrsaService
	Sdss   driving.SdssService
	Ned    driving.NedService
	Mast   driving.MastService
	XMatch driving.XMatchService

	History  driven.HistoryStore
	Config   driven.ConfigStore
	Failures *reporting.Memory
}

// Wire installs the services the commands delegate to.
func Wire(s Services) {
	simbadService = s.Simbad
	vizierService = s.Vizier
	gaiaService = s.Gaia
	irsaService = s.Irsa
	sdssService = s.Sdss
	nedService = s.Ned
	mastService = s.Mast
	xmatchService = s.XMatch
	historyStore = s.History
	configStore = s.Config
	failures = s.Failures
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// recordHistory appends one history entry for a finished query.
func recordHistory(ctx context.Context, archive, op, target string, table *domain.Table, start time.Time) {
	if historyStore == nil {
		return
	}

	rec := domain.QueryRecord{
		ID:       uuid.NewString(),
		Archive:  archive,
		Op:       op,
		Target:   target,
		OK:       table != nil,
		Duration: time.Since(start),
		When:     start,
	}
	if table == nil {
		rec.Detail = lastFailure()
	}

	if err := historyStore.Append(ctx, rec); err != nil {
		logger.Warn("recording history: %v", err)
	}
}

// lastFailure returns the most recent report summary, if any.
func lastFailure() string {
	if failures == nil {
		return ""
	}
	reports := failures.Reports()
	if len(reports) == 0 {
		return ""
	}
	return reports[len(reports)-1].Err.Error()
}
