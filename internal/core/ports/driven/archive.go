package driven

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// The archive client ports. Each port is the opaque capability set of
// one external archive; the capabilities in play across the family are
// resolve-by-name, resolve-by-region, resolve-by-catalog, execute-query,
// download-products and cross-match. Clients own all query mechanics
// (transports, formats, pagination); core treats every method as one
// blocking call that either yields a table or fails.

// NameResolver translates a human-readable object name into catalog
// coordinates. Used by services for the name-to-coordinate coercion
// before region queries.
type NameResolver interface {
	// Resolve returns the ICRS coordinate for an object name.
	Resolve(ctx context.Context, name string) (domain.SkyCoord, error)
}

// SimbadClient is the SIMBAD astronomical database capability set.
type SimbadClient interface {
	// QueryObject resolves a single object name, optionally requesting
	// extra output fields.
	QueryObject(ctx context.Context, name string, fields []string) (*domain.Table, error)

	// QueryObjects resolves several object names in one call.
	QueryObjects(ctx context.Context, names []string, fields []string) (*domain.Table, error)

	// QueryRegion lists objects within radius of a coordinate.
	QueryRegion(ctx context.Context, center domain.SkyCoord, radius domain.Angle, fields []string) (*domain.Table, error)

	// QueryCatalog lists objects belonging to a named catalog.
	QueryCatalog(ctx context.Context, catalog string) (*domain.Table, error)
}

// VizierClient is the VizieR catalog service capability set.
type VizierClient interface {
	// QueryRegion performs a cone search within one VizieR catalog,
	// e.g. "I/345/gaia2".
	QueryRegion(ctx context.Context, catalog string, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error)
}

// GaiaClient is the ESA Gaia archive TAP capability set.
type GaiaClient interface {
	// QueryADQL executes an ADQL query synchronously.
	QueryADQL(ctx context.Context, adql string) (*domain.Table, error)

	// QueryADQLAsync submits an ADQL query as an asynchronous job and
	// blocks until the job completes, then fetches its results.
	QueryADQLAsync(ctx context.Context, adql string) (*domain.Table, error)
}

// IrsaClient is the IRSA dust-reddening capability set.
type IrsaClient interface {
	// QueryTable returns the E(B-V) reddening statistics around a
	// coordinate.
	QueryTable(ctx context.Context, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error)
}

// SdssClient is the Sloan Digital Sky Survey capability set.
type SdssClient interface {
	// QueryRegion performs a radial search; spectro selects
	// spectroscopy instead of photometry.
	QueryRegion(ctx context.Context, center domain.SkyCoord, radius domain.Angle, spectro bool) (*domain.Table, error)
}

// NedClient is the NASA/IPAC Extragalactic Database capability set.
type NedClient interface {
	// QueryObject returns basic metadata for an extragalactic object.
	QueryObject(ctx context.Context, name string) (*domain.Table, error)
}

// MastClient is the MAST observations archive capability set.
type MastClient interface {
	// QueryObject searches archived observations by object name.
	QueryObject(ctx context.Context, name string) (*domain.Table, error)

	// DownloadProducts fetches the listed products and returns a
	// manifest table describing what was retrieved.
	DownloadProducts(ctx context.Context, products *domain.Table) (*domain.Table, error)
}

// XMatchClient is the CDS cross-matching capability set.
type XMatchClient interface {
	// Match pairs entries of two tables by angular proximity. Column
	// names are forwarded exactly as supplied by the caller.
	Match(ctx context.Context, left, right *domain.Table, maxDistance domain.Angle,
		raLeft, decLeft, raRight, decRight string) (*domain.Table, error)
}
