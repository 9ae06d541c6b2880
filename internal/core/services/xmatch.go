package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driving"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Ensure XMatchService implements the interface.
var _ driving.XMatchService = (*XMatchService)(nil)

const xmatchComponent = "XMatchService"

// XMatchService wraps the CDS XMatch service for pairing two catalogs
// by angular separation.
type XMatchService struct {
	client   driven.XMatchClient
	reporter driven.Reporter
}

// NewXMatchService creates a cross-match service.
func NewXMatchService(client driven.XMatchClient, reporter driven.Reporter) *XMatchService {
	return &XMatchService{
		client:   client,
		reporter: reporter,
	}
}

// Match pairs entries of two tables whose positions lie within
// maxDistance of each other. Column names are forwarded exactly as
// supplied; the remote service decides whether they exist.
func (s *XMatchService) Match(ctx context.Context, left, right *domain.Table, maxDistance domain.Angle,
	raLeft, decLeft, raRight, decRight string) *domain.Table {
	const op = "Match"

	if err := requireArg("left", left); err != nil {
		report(s.reporter, xmatchComponent, op, domain.ReportArgument, err)
		return nil
	}
	if err := requireArg("right", right); err != nil {
		report(s.reporter, xmatchComponent, op, domain.ReportArgument, err)
		return nil
	}
	if err := requireArg("maxDistance", maxDistance); err != nil {
		report(s.reporter, xmatchComponent, op, domain.ReportArgument, err)
		return nil
	}

	logger.Debug("xmatch: %d x %d rows within %s", left.NumRows(), right.NumRows(), maxDistance)
	table, err := s.client.Match(ctx, left, right, maxDistance, raLeft, decLeft, raRight, decRight)
	if err != nil {
		report(s.reporter, xmatchComponent, op, domain.ReportDelegation, err)
		return nil
	}
	return table
}
