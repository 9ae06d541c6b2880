// Package sdss binds the SDSS SkyServer search tools for radial
// photometry and spectroscopy queries.
package sdss

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cosmolabs/cosmo-cli/internal/archives/csvio"
	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

const (
	// DefaultEndpoint is the DR17 SkyServer web service base.
	DefaultEndpoint = "https://skyserver.sdss.org/dr17/SkyServerWS"

	// rowLimit bounds what one radial search may return.
	rowLimit = 5000
)

// spectroQuery joins SpecObj against the nearby-object function; the
// radius placeholder is in arcminutes.
const spectroQuery = "SELECT TOP %d s.* FROM SpecObj AS s JOIN dbo.fGetNearbySpecObjEq(%f, %f, %f) AS n ON s.specObjID = n.specObjID"

// Ensure Client implements the port.
var _ driven.SdssClient = (*Client)(nil)

// Client queries SkyServer.
type Client struct {
	endpoint string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// New creates an SDSS client.
func New(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = tap.DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(2), 1),
	}
}

// QueryRegion performs a radial search. Photometry goes through the
// RadialSearch tool; spectroscopy through an SQL search over SpecObj.
func (c *Client) QueryRegion(ctx context.Context, center domain.SkyCoord, radius domain.Angle, spectro bool) (*domain.Table, error) {
	if spectro {
		return c.spectroSearch(ctx, center, radius)
	}
	return c.radialSearch(ctx, center, radius)
}

func (c *Client) radialSearch(ctx context.Context, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error) {
	params := url.Values{
		"ra":     {fmt.Sprintf("%f", center.RA)},
		"dec":    {fmt.Sprintf("%f", center.Dec)},
		"radius": {fmt.Sprintf("%f", radius.Degrees()*60)},
		"format": {"csv"},
		"limit":  {fmt.Sprintf("%d", rowLimit)},
	}
	return c.get(ctx, "/SearchTools/RadialSearch", params)
}

func (c *Client) spectroSearch(ctx context.Context, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error) {
	cmd := fmt.Sprintf(spectroQuery, rowLimit, center.RA, center.Dec, radius.Degrees()*60)
	params := url.Values{
		"cmd":    {cmd},
		"format": {"csv"},
	}
	return c.get(ctx, "/SearchTools/SqlSearch", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*domain.Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building skyserver request: %w", err)
	}

	logger.Debug("sdss: GET %s", path)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return nil, err
	}
	return csvio.Read(resp.Body)
}
