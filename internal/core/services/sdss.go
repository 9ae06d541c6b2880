package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure SdssService implements the interface.
var _ driving.SdssService = (*SdssService)(nil)

const sdssComponent = "SdssService"

// SdssService wraps the Sloan Digital Sky Survey for region-based
// photometry and spectroscopy searches.
type SdssService struct {
	client   driven.SdssClient
	resolver driven.NameResolver
	reporter driven.Reporter
}

// NewSdssService creates an SDSS query service.
func NewSdssService(client driven.SdssClient, resolver driven.NameResolver, reporter driven.Reporter) *SdssService {
	return &SdssService{
		client:   client,
		resolver: resolver,
		reporter: reporter,
	}
}

// QueryRegion performs a radial search around a named object or a
// decimal-degree coordinate pair. When spectro is set, spectroscopy
// records are returned instead of photometry.
func (s *SdssService) QueryRegion(ctx context.Context, center string, radius domain.Angle, spectro bool) *domain.Table {
	const op = "QueryRegion"

	if err := requireArg("center", center); err != nil {
		report(s.reporter, sdssComponent, op, domain.ReportArgument, err)
		return nil
	}
	if err := requireArg("radius", radius); err != nil {
		report(s.reporter, sdssComponent, op, domain.ReportArgument, err)
		return nil
	}

	coord, err := resolveCenter(ctx, s.resolver, center)
	if err != nil {
		report(s.reporter, sdssComponent, op, domain.ReportDelegation, err)
		return nil
	}

	logger.Debug("sdss: region %s radius %s spectro=%t", coord, radius, spectro)
	table, err := s.client.QueryRegion(ctx, coord, radius, spectro)
	if err != nil {
		report(s.reporter, sdssComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
