// Package ned binds the NASA/IPAC Extragalactic Database TAP service.
package ned

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

// DefaultEndpoint is the public NED TAP service.
const DefaultEndpoint = "https://ned.ipac.caltech.edu/tap"

// Ensure Client implements the port.
var _ driven.NedClient = (*Client)(nil)

// Client queries NED through its TAP interface.
type Client struct {
	tap *tap.Client
}

// New creates a NED client.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{tap: tap.New(endpoint, timeout)}
}

// QueryObject returns the object directory entry for a preferred name.
func (c *Client) QueryObject(ctx context.Context, name string) (*domain.Table, error) {
	adql := fmt.Sprintf("SELECT * FROM objdir WHERE prefname = %s", tap.QuoteLiteral(name))
	return c.tap.Sync(ctx, adql)
}
