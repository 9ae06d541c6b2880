// Package xmatch binds the CDS cross-match service. Both input tables
// are uploaded as CSV in a single multipart request and the matched
// pairs come back as CSV.
package xmatch

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cosmolabs/cosmo-cli/internal/archives/csvio"
	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

// DefaultEndpoint is the public CDS cross-match sync endpoint.
const DefaultEndpoint = "http://cdsxmatch.u-strasbg.fr/xmatch/api/v1/sync"

var _ driven.XMatchClient = (*Client)(nil)

// Client runs positional cross-matches at CDS.
type Client struct {
	endpoint string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// New creates a cross-match client against endpoint.
func New(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = tap.DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(2), 1),
	}
}

// Match uploads both tables and returns the rows matched within
// maxDistance. Column names are passed through to the service as
// given; the service rejects names absent from the uploads.
func (c *Client) Match(ctx context.Context, left, right *domain.Table, maxDistance domain.Angle,
	raLeft, decLeft, raRight, decRight string) (*domain.Table, error) {

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"request":        "xmatch",
		"distMaxArcsec":  fmt.Sprintf("%g", maxDistance.Arcseconds()),
		"RESPONSEFORMAT": "csv",
		"cat1":           "upload1",
		"cat2":           "upload2",
		"colRA1":         raLeft,
		"colDec1":        decLeft,
		"colRA2":         raRight,
		"colDec2":        decRight,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}
	if err := attachTable(mw, "upload1", left); err != nil {
		return nil, err
	}
	if err := attachTable(mw, "upload2", right); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalising upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("building cross-match request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return nil, err
	}

	table, err := csvio.Read(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding cross-match reply: %w", err)
	}
	return table, nil
}

func attachTable(mw *multipart.Writer, name string, t *domain.Table) error {
	part, err := mw.CreateFormFile(name, name+".csv")
	if err != nil {
		return fmt.Errorf("attaching %s: %w", name, err)
	}
	var buf strings.Builder
	if err := csvio.Write(&buf, t); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if _, err := part.Write([]byte(buf.String())); err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}
