package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure GaiaService implements the interface.
var _ driving.GaiaService = (*GaiaService)(nil)

const gaiaComponent = "GaiaService"

// GaiaService wraps the ESA Gaia archive TAP service for ADQL queries.
type GaiaService struct {
	client   driven.GaiaClient
	reporter driven.Reporter
}

// NewGaiaService creates a Gaia query service.
func NewGaiaService(client driven.GaiaClient, reporter driven.Reporter) *GaiaService {
	return &GaiaService{
		client:   client,
		reporter: reporter,
	}
}

// QueryADQL submits an ADQL query to the Gaia archive. When async is
// set the query runs as an asynchronous job and the call blocks until
// the job finishes.
func (s *GaiaService) QueryADQL(ctx context.Context, adql string, async bool) *domain.Table {
	const op = "QueryADQL"

	if err := requireArg("adql", adql); err != nil {
		report(s.reporter, gaiaComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("gaia: adql (async=%t): %s", async, adql)
	var (
		table *domain.Table
		err   error
	)
	if async {
		table, err = s.client.QueryADQLAsync(ctx, adql)
	} else {
		table, err = s.client.QueryADQL(ctx, adql)
	}
	if err != nil {
		report(s.reporter, gaiaComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
