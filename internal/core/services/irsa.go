package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure IrsaService implements the interface.
var _ driving.IrsaService = (*IrsaService)(nil)

const irsaComponent = "IrsaService"

// dustRadius is the fixed lookup radius for reddening queries.
var dustRadius = domain.Angle{Value: 2, Unit: domain.Arcmin}

// IrsaService wraps the IRSA dust service for E(B-V) reddening lookups.
type IrsaService struct {
	client   driven.IrsaClient
	resolver driven.NameResolver
	reporter driven.Reporter
}

// NewIrsaService creates an IRSA dust query service.
func NewIrsaService(client driven.IrsaClient, resolver driven.NameResolver, reporter driven.Reporter) *IrsaService {
	return &IrsaService{
		client:   client,
		resolver: resolver,
		reporter: reporter,
	}
}

// QueryTable returns the reddening statistics within 2 arcmin of a
// named object or a decimal-degree coordinate pair.
func (s *IrsaService) QueryTable(ctx context.Context, center string) *domain.Table {
	const op = "QueryTable"

	if err := requireArg("center", center); err != nil {
		report(s.reporter, irsaComponent, op, domain.ReportArgument, err)
		return nil
	}

	coord, err := resolveCenter(ctx, s.resolver, center)
	if err != nil {
		report(s.reporter, irsaComponent, op, domain.ReportDelegation, err)
		return nil
	}

	logger.Debug("irsa: dust at %s", coord)
	table, err := s.client.QueryTable(ctx, coord, dustRadius)
	if err != nil {
		report(s.reporter, irsaComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
