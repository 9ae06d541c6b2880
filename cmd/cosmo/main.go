package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cosmolabs/cosmo-cli/internal/adapters/driven/config/file"
	"github.com/cosmolabs/cosmo-cli/internal/adapters/driven/storage/memory"
	"github.com/cosmolabs/cosmo-cli/internal/adapters/driven/storage/sqlite"
	"github.com/cosmolabs/cosmo-cli/internal/adapters/driving/cli"
	"github.com/cosmolabs/cosmo-cli/internal/archives/gaia"
	"github.com/cosmolabs/cosmo-cli/internal/archives/irsa"
	"github.com/cosmolabs/cosmo-cli/internal/archives/mast"
	"github.com/cosmolabs/cosmo-cli/internal/archives/ned"
	"github.com/cosmolabs/cosmo-cli/internal/archives/sdss"
	"github.com/cosmolabs/cosmo-cli/internal/archives/sesame"
	"github.com/cosmolabs/cosmo-cli/internal/archives/simbad"
	"github.com/cosmolabs/cosmo-cli/internal/archives/vizier"
	"github.com/cosmolabs/cosmo-cli/internal/archives/xmatch"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/services"
	"github.com/cosmolabs/cosmo-cli/internal/reporting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// --config-dir is read before cobra runs so the stores can be
	// built with it. Cobra parses it again later as a global flag.
	configDir := ""
	for i, arg := range os.Args {
		if arg == "--config-dir" && i+1 < len(os.Args) {
			configDir = os.Args[i+1]
		} else if strings.HasPrefix(arg, "--config-dir=") {
			configDir = strings.TrimPrefix(arg, "--config-dir=")
		}
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	timeout := time.Duration(cfg.GetInt(file.KeyTimeoutSeconds)) * time.Second
	endpoint := func(archive, fallback string) string {
		if override := cfg.GetString(file.KeyEndpointPrefix + archive); override != "" {
			return override
		}
		return fallback
	}

	resolver := sesame.New(endpoint("sesame", sesame.DefaultEndpoint), timeout)

	simbadClient := simbad.New(endpoint("simbad", simbad.DefaultEndpoint), timeout)
	vizierClient := vizier.New(endpoint("vizier", vizier.DefaultEndpoint), timeout, cfg.GetInt(file.KeyVizierRowLimit))
	gaiaClient := gaia.New(endpoint("gaia", gaia.DefaultEndpoint), timeout)
	irsaClient := irsa.New(endpoint("irsa", irsa.DefaultEndpoint), timeout)
	sdssClient := sdss.New(endpoint("sdss", sdss.DefaultEndpoint), timeout)
	nedClient := ned.New(endpoint("ned", ned.DefaultEndpoint), timeout)
	mastClient := mast.New(endpoint("mast", mast.DefaultEndpoint),
		cfg.GetString(file.KeyMastToken), mastDownloadDir(cfg), timeout)
	xmatchClient := xmatch.New(endpoint("xmatch", xmatch.DefaultEndpoint), timeout)

	failures := reporting.NewMemory()
	reporter := reporting.NewFanout(reporting.NewConsole(), reporting.NewLog(), failures)

	history, closeHistory, err := newHistoryStore(cfg)
	if err != nil {
		return err
	}
	defer closeHistory()

	cli.Wire(cli.Services{
		Simbad:   services.NewSimbadService(simbadClient, resolver, reporter),
		Vizier:   services.NewVizierService(vizierClient, resolver, reporter),
		Gaia:     services.NewGaiaService(gaiaClient, reporter),
		Irsa:     services.NewIrsaService(irsaClient, resolver, reporter),
		Sdss:     services.NewSdssService(sdssClient, resolver, reporter),
		Ned:      services.NewNedService(nedClient, reporter),
		Mast:     services.NewMastService(mastClient, reporter),
		XMatch:   services.NewXMatchService(xmatchClient, reporter),
		History:  history,
		Config:   cfg,
		Failures: failures,
	})

	return cli.Execute()
}

// newHistoryStore picks the persistent store unless history is
// disabled in configuration.
func newHistoryStore(cfg driven.ConfigStore) (driven.HistoryStore, func(), error) {
	if val, ok := cfg.Get(file.KeyHistoryEnabled); ok {
		if enabled, isBool := val.(bool); isBool && !enabled {
			store := memory.NewHistoryStore()
			return store, func() {}, nil
		}
	}

	store, err := sqlite.NewStore(cfg.GetString(file.KeyDataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("opening history store: %w", err)
	}
	return store.HistoryStore(), func() { store.Close() }, nil
}

func mastDownloadDir(cfg driven.ConfigStore) string {
	if dir := cfg.GetString(file.KeyMastDownloadDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mast-products"
	}
	return home + "/.cosmo/mast-products"
}
