package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure VizierService implements the interface.
var _ driving.VizierService = (*VizierService)(nil)

const vizierComponent = "VizierService"

// VizierService wraps the VizieR catalog service for catalog-scoped
// cone searches.
type VizierService struct {
	client   driven.VizierClient
	resolver driven.NameResolver
	reporter driven.Reporter
}

// NewVizierService creates a VizieR query service.
func NewVizierService(client driven.VizierClient, resolver driven.NameResolver, reporter driven.Reporter) *VizierService {
	return &VizierService{
		client:   client,
		resolver: resolver,
		reporter: reporter,
	}
}

// QueryRegion searches one VizieR catalog (e.g. "I/345/gaia2") around
// a named object or a decimal-degree coordinate pair.
func (s *VizierService) QueryRegion(ctx context.Context, catalog, center string, radius domain.Angle) *domain.Table {
	const op = "QueryRegion"

	if err := requireArg("catalog", catalog); err != nil {
		report(s.reporter, vizierComponent, op, domain.ReportArgument, err)
		return nil
	}
	if err := requireArg("center", center); err != nil {
		report(s.reporter, vizierComponent, op, domain.ReportArgument, err)
		return nil
	}
	if err := requireArg("radius", radius); err != nil {
		report(s.reporter, vizierComponent, op, domain.ReportArgument, err)
		return nil
	}

	coord, err := resolveCenter(ctx, s.resolver, center)
	if err != nil {
		report(s.reporter, vizierComponent, op, domain.ReportDelegation, err)
		return nil
	}

	logger.Debug("vizier: catalog %q around %s radius %s", catalog, coord, radius)
	table, err := s.client.QueryRegion(ctx, catalog, coord, radius)
	if err != nil {
		report(s.reporter, vizierComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
