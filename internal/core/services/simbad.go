package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure SimbadService implements the interface.
var _ driving.SimbadService = (*SimbadService)(nil)

const simbadComponent = "SimbadService"

// SimbadService wraps the SIMBAD astronomical database, which provides
// basic data, cross-identifications and measurements for objects
// outside the solar system.
type SimbadService struct {
	client   driven.SimbadClient
	resolver driven.NameResolver
	reporter driven.Reporter
}

// NewSimbadService creates a SIMBAD query service.
func NewSimbadService(client driven.SimbadClient, resolver driven.NameResolver, reporter driven.Reporter) *SimbadService {
	return &SimbadService{
		client:   client,
		resolver: resolver,
		reporter: reporter,
	}
}

// QueryObject resolves a single object name, optionally requesting
// extra output fields. Returns nil if the query failed; the failure
// detail goes to the reporting sink.
func (s *SimbadService) QueryObject(ctx context.Context, name string, fields []string) *domain.Table {
	const op = "QueryObject"

	if err := requireArg("name", name); err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("simbad: resolving object %q", name)
	table, err := s.client.QueryObject(ctx, name, fields)
	if err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}

// QueryObjects resolves several object names in a single call.
func (s *SimbadService) QueryObjects(ctx context.Context, names []string, fields []string) *domain.Table {
	const op = "QueryObjects"

	if err := requireArg("names", names); err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("simbad: resolving %d objects", len(names))
	table, err := s.client.QueryObjects(ctx, names, fields)
	if err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}

// QueryRegion lists objects within radius of a named object or a
// decimal-degree coordinate pair.
func (s *SimbadService) QueryRegion(ctx context.Context, center string, radius domain.Angle, fields []string) *domain.Table {
	const op = "QueryRegion"

	if err := requireArg("center", center); err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportArgument, err)
		return nil
	}
	if err := requireArg("radius", radius); err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportArgument, err)
		return nil
	}

	coord, err := resolveCenter(ctx, s.resolver, center)
	if err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportDelegation, err)
		return nil
	}

	logger.Debug("simbad: region %s radius %s", coord, radius)
	table, err := s.client.QueryRegion(ctx, coord, radius, fields)
	if err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}

// QueryCatalog lists objects belonging to a named catalog.
func (s *SimbadService) QueryCatalog(ctx context.Context, catalog string) *domain.Table {
	const op = "QueryCatalog"

	if err := requireArg("catalog", catalog); err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("simbad: catalog %q", catalog)
	table, err := s.client.QueryCatalog(ctx, catalog)
	if err != nil {
		report(s.reporter, simbadComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
