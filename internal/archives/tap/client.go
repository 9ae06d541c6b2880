// Package tap provides the shared synchronous TAP query client used by
// the SIMBAD, VizieR, Gaia and NED bindings. The client posts an ADQL
// string to a service's sync endpoint, requests CSV output, and maps
// HTTP statuses onto the domain sentinels. ADQL itself is never
// interpreted here; the remote services own query semantics.
package tap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cosmolabs/cosmo-cli/internal/archives/csvio"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

const (
	// DefaultTimeout is the fixed client-level HTTP timeout.
	DefaultTimeout = 10 * time.Second

	// requestRate is the proactive per-service throttle. The CDS and
	// ESA services ask unauthenticated clients to stay under a few
	// requests per second.
	requestRate = 2.0

	// errSnippet caps how much of an error body travels into messages.
	errSnippet = 200
)

// Client executes synchronous TAP queries against one service.
type Client struct {
	endpoint string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// New creates a TAP client for a service base URL such as
// "https://simbad.cds.unistra.fr/simbad/sim-tap". A zero timeout uses
// DefaultTimeout.
func New(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(requestRate), 1),
	}
}

// Endpoint returns the service base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// HTTPClient returns the underlying HTTP client, shared with bindings
// that add their own endpoints beside /sync (the Gaia async job flow).
func (c *Client) HTTPClient() *http.Client {
	return c.httpc
}

// Wait blocks until the proactive throttle admits another request.
func (c *Client) Wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// Sync runs one ADQL query through the service's synchronous endpoint.
func (c *Client) Sync(ctx context.Context, adql string) (*domain.Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{
		"REQUEST": {"doQuery"},
		"LANG":    {"ADQL"},
		"FORMAT":  {"csv"},
		"QUERY":   {adql},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/sync",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building TAP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	logger.Debug("tap: POST %s/sync", c.endpoint)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := ClassifyStatus(resp); err != nil {
		return nil, err
	}
	return csvio.Read(resp.Body)
}

// ClassifyStatus maps a non-200 response onto the domain sentinels,
// carrying a snippet of the body for diagnosis. A 200 returns nil.
func ClassifyStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, errSnippet))
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrRemoteQuery, detail)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, detail)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, detail)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, detail)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", domain.ErrUnavailable, detail)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// QuoteLiteral escapes a string for use inside an ADQL string literal.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
