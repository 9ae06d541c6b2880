// Package vizier binds the VizieR TAP service for catalog-scoped cone
// searches.
package vizier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

const (
	// DefaultEndpoint is the public TAPVizieR service.
	DefaultEndpoint = "https://tapvizier.cds.unistra.fr/TAPVizieR/tap"

	// DefaultRowLimit bounds the rows a cone search may return.
	DefaultRowLimit = 10000
)

// Ensure Client implements the port.
var _ driven.VizierClient = (*Client)(nil)

// Client queries VizieR catalogs through TAP.
type Client struct {
	tap      *tap.Client
	rowLimit int
}

// New creates a VizieR client. A rowLimit below one uses
// DefaultRowLimit.
func New(endpoint string, timeout time.Duration, rowLimit int) *Client {
	if rowLimit < 1 {
		rowLimit = DefaultRowLimit
	}
	return &Client{
		tap:      tap.New(endpoint, timeout),
		rowLimit: rowLimit,
	}
}

// QueryRegion performs a cone search within one catalog. VizieR tables
// expose positions through the RAJ2000/DEJ2000 convention.
func (c *Client) QueryRegion(ctx context.Context, catalog string, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error) {
	table := strings.ReplaceAll(strings.TrimSpace(catalog), `"`, "")
	adql := fmt.Sprintf(
		`SELECT TOP %d * FROM "%s" WHERE CONTAINS(POINT('ICRS', RAJ2000, DEJ2000), CIRCLE('ICRS', %f, %f, %f)) = 1`,
		c.rowLimit, table, center.RA, center.Dec, radius.Degrees())
	return c.tap.Sync(ctx, adql)
}
