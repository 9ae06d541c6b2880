package driving

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// SimbadService exposes SIMBAD lookups to external actors.
type SimbadService interface {
	// QueryObject resolves one object name.
	QueryObject(ctx context.Context, name string, fields []string) *domain.Table

	// QueryObjects resolves several object names at once.
	QueryObjects(ctx context.Context, names []string, fields []string) *domain.Table

	// QueryRegion lists objects around a named object or coordinate.
	QueryRegion(ctx context.Context, center string, radius domain.Angle, fields []string) *domain.Table

	// QueryCatalog lists objects belonging to a named catalog.
	QueryCatalog(ctx context.Context, catalog string) *domain.Table
}

// VizierService exposes VizieR catalog cone searches.
type VizierService interface {
	// QueryRegion searches one catalog around a named object or coordinate.
	QueryRegion(ctx context.Context, catalog, center string, radius domain.Angle) *domain.Table
}

// GaiaService exposes ADQL execution against the Gaia archive.
type GaiaService interface {
	// QueryADQL runs an ADQL query, asynchronously when async is set.
	QueryADQL(ctx context.Context, adql string, async bool) *domain.Table
}

// IrsaService exposes IRSA dust-reddening lookups.
type IrsaService interface {
	// QueryTable returns reddening statistics around a named object or
	// coordinate.
	QueryTable(ctx context.Context, center string) *domain.Table
}

// SdssService exposes SDSS radial searches.
type SdssService interface {
	// QueryRegion searches photometry, or spectroscopy when spectro is set.
	QueryRegion(ctx context.Context, center string, radius domain.Angle, spectro bool) *domain.Table
}

// NedService exposes NED extragalactic object lookups.
type NedService interface {
	// QueryObject returns basic metadata for an object name.
	QueryObject(ctx context.Context, name string) *domain.Table
}

// MastService exposes MAST archive searches and product downloads.
type MastService interface {
	// QueryObject searches archived observations by object name.
	QueryObject(ctx context.Context, name string) *domain.Table

	// Download fetches at most limit products and returns the manifest.
	Download(ctx context.Context, products *domain.Table, limit int) *domain.Table
}

// XMatchService exposes catalog cross-matching.
type XMatchService interface {
	// Match pairs entries of two tables by angular proximity.
	Match(ctx context.Context, left, right *domain.Table, maxDistance domain.Angle,
		raLeft, decLeft, raRight, decRight string) *domain.Table
}
