package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

// requireArg checks the precondition shared by every operation: a
// required argument must be non-empty. It returns nil when the value
// carries content and an ErrEmptyArgument failure otherwise.
func requireArg(name string, value any) error {
	empty := value == nil
	switch v := value.(type) {
	case string:
		empty = strings.TrimSpace(v) == ""
	case []string:
		empty = len(v) == 0
	case domain.Angle:
		empty = v.IsZero()
	case *domain.Table:
		empty = v.IsEmpty()
	}
	if empty {
		return fmt.Errorf("argument %q: %w", name, domain.ErrEmptyArgument)
	}
	return nil
}

// report builds the failure record for one operation and routes it to
// the sink. Failures never travel back to the service caller, and the
// sink alone presents them; a log sink belongs in the fan-out.
func report(sink driven.Reporter, component, op string, kind domain.ReportKind, err error) {
	rec := domain.Report{
		ID:        uuid.NewString(),
		Module:    domain.Module,
		Component: component,
		Op:        op,
		Kind:      kind,
		Err:       err,
		Time:      time.Now(),
	}
	if sink != nil {
		sink.Report(rec)
	}
}

// resolveCenter coerces a center argument into a coordinate: a decimal
// degree pair parses directly, anything else goes through the name
// resolver. Resolution failures count as delegation failures.
func resolveCenter(ctx context.Context, resolver driven.NameResolver, center string) (domain.SkyCoord, error) {
	if coord, err := domain.ParseSkyCoord(center); err == nil {
		return coord, nil
	}
	coord, err := resolver.Resolve(ctx, center)
	if err != nil {
		return domain.SkyCoord{}, fmt.Errorf("resolving %q: %w", center, err)
	}
	return coord, nil
}
