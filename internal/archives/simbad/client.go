// Package simbad binds the SIMBAD TAP service.
package simbad

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

// DefaultEndpoint is the public SIMBAD TAP service.
const DefaultEndpoint = "https://simbad.cds.unistra.fr/simbad/sim-tap"

// baseColumns are the columns every lookup returns; extra fields are
// appended verbatim as additional output columns.
const baseColumns = "main_id, ra, dec, otype, coo_bibcode"

// Ensure Client implements the port.
var _ driven.SimbadClient = (*Client)(nil)

// Client queries SIMBAD through its TAP interface.
type Client struct {
	tap *tap.Client
}

// New creates a SIMBAD client.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{tap: tap.New(endpoint, timeout)}
}

func selectColumns(fields []string) string {
	cols := baseColumns
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			cols += ", " + f
		}
	}
	return cols
}

// QueryObject resolves a single object name.
func (c *Client) QueryObject(ctx context.Context, name string, fields []string) (*domain.Table, error) {
	adql := fmt.Sprintf(
		"SELECT %s FROM basic JOIN ident ON ident.oidref = basic.oid WHERE ident.id = %s",
		selectColumns(fields), tap.QuoteLiteral(name))
	return c.tap.Sync(ctx, adql)
}

// QueryObjects resolves several object names in one query.
func (c *Client) QueryObjects(ctx context.Context, names []string, fields []string) (*domain.Table, error) {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, tap.QuoteLiteral(n))
	}
	adql := fmt.Sprintf(
		"SELECT %s FROM basic JOIN ident ON ident.oidref = basic.oid WHERE ident.id IN (%s)",
		selectColumns(fields), strings.Join(quoted, ", "))
	return c.tap.Sync(ctx, adql)
}

// QueryRegion lists objects inside a cone.
func (c *Client) QueryRegion(ctx context.Context, center domain.SkyCoord, radius domain.Angle, fields []string) (*domain.Table, error) {
	adql := fmt.Sprintf(
		"SELECT %s FROM basic WHERE CONTAINS(POINT('ICRS', ra, dec), CIRCLE('ICRS', %f, %f, %f)) = 1",
		selectColumns(fields), center.RA, center.Dec, radius.Degrees())
	return c.tap.Sync(ctx, adql)
}

// QueryCatalog lists objects whose identifier belongs to a catalog.
// Catalog membership is an identifier prefix in SIMBAD's ident table.
func (c *Client) QueryCatalog(ctx context.Context, catalog string) (*domain.Table, error) {
	prefix := strings.ReplaceAll(strings.TrimSpace(catalog), "'", "''")
	adql := fmt.Sprintf(
		"SELECT %s FROM basic JOIN ident ON ident.oidref = basic.oid WHERE ident.id LIKE '%s %%'",
		baseColumns, prefix)
	return c.tap.Sync(ctx, adql)
}
