package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure NedService implements the interface.
var _ driving.NedService = (*NedService)(nil)

const nedComponent = "NedService"

// NedService wraps the NASA/IPAC Extragalactic Database for object
// metadata lookups.
type NedService struct {
	client   driven.NedClient
	reporter driven.Reporter
}

// NewNedService creates a NED query service.
func NewNedService(client driven.NedClient, reporter driven.Reporter) *NedService {
	return &NedService{
		client:   client,
		reporter: reporter,
	}
}

// QueryObject returns basic metadata for an extragalactic object.
func (s *NedService) QueryObject(ctx context.Context, name string) *domain.Table {
	const op = "QueryObject"

	if err := requireArg("name", name); err != nil {
		report(s.reporter, nedComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("ned: object %q", name)
	table, err := s.client.QueryObject(ctx, name)
	if err != nil {
		report(s.reporter, nedComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
