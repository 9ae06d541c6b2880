package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure MastService implements the interface.
var _ driving.MastService = (*MastService)(nil)

const mastComponent = "MastService"

// MastService wraps the MAST observations archive for mission-based
// searches and product downloads.
type MastService struct {
	client   driven.MastClient
	reporter driven.Reporter
}

// NewMastService creates a MAST query service.
func NewMastService(client driven.MastClient, reporter driven.Reporter) *MastService {
	return &MastService{
		client:   client,
		reporter: reporter,
	}
}

// QueryObject searches archived observations by object name.
func (s *MastService) QueryObject(ctx context.Context, name string) *domain.Table {
	const op = "QueryObject"

	if err := requireArg("name", name); err != nil {
		report(s.reporter, mastComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("mast: object %q", name)
	table, err := s.client.QueryObject(ctx, name)
	if err != nil {
		report(s.reporter, mastComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}

// Download fetches at most limit entries from a product table and
// returns the download manifest. A limit below one downloads a single
// product.
func (s *MastService) Download(ctx context.Context, products *domain.Table, limit int) *domain.Table {
	const op = "Download"

	if err := requireArg("products", products); err != nil {
		report(s.reporter, mastComponent, op, domain.ReportArgument, err)
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	logger.Debug("mast: downloading up to %d of %d products", limit, products.NumRows())
	table, err := s.client.DownloadProducts(ctx, products.Head(limit))
	if err != nil {
		report(s.reporter, mastComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
