// Package sesame binds the CDS Sesame name resolver. Sesame fronts
// SIMBAD, NED and VizieR and is the coercion step that turns an object
// name into an ICRS coordinate.
package sesame

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// DefaultEndpoint is the public Sesame service.
const DefaultEndpoint = "https://cds.unistra.fr/cgi-bin/nph-sesame"

// Ensure Client implements the port.
var _ driven.NameResolver = (*Client)(nil)

// Client resolves object names through the Sesame plain-text interface.
type Client struct {
	endpoint string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// New creates a Sesame client. A zero timeout uses tap.DefaultTimeout.
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

// Resolve returns the ICRS coordinate for an object name. The "-op"
// option asks all services in order and the plain-text reply carries
// the position on a "%J" line.
func (c *Client) Resolve(ctx context.Context, name string) (domain.SkyCoord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.SkyCoord{}, err
	}

	u := c.endpoint + "/-op/A?" + url.QueryEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.SkyCoord{}, fmt.Errorf("building sesame request: %w", err)
	}

	logger.Debug("sesame: resolving %q", name)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.SkyCoord{}, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return domain.SkyCoord{}, err
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "%J ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		ra, errRA := strconv.ParseFloat(fields[1], 64)
		dec, errDec := strconv.ParseFloat(fields[2], 64)
		if errRA != nil || errDec != nil {
			continue
		}
		return domain.SkyCoord{RA: ra, Dec: dec}, nil
	}
	if err := scanner.Err(); err != nil {
		return domain.SkyCoord{}, fmt.Errorf("reading sesame reply: %w", err)
	}

	return domain.SkyCoord{}, fmt.Errorf("%w: sesame has no position for %q", domain.ErrNotFound, name)
}
