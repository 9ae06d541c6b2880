// Package irsa binds the IRSA Galactic dust service for E(B-V)
// reddening lookups. The service replies with a small XML statistics
// document which is flattened into a two-column table.
package irsa

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// DefaultEndpoint is the public IRSA dust service.
const DefaultEndpoint = "https://irsa.ipac.caltech.edu/cgi-bin/DUST/nph-dust"

// Ensure Client implements the port.
var _ driven.IrsaClient = (*Client)(nil)

// Client queries the IRSA dust service.
type Client struct {
	endpoint string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// New creates an IRSA dust client.
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

// dustResults mirrors the service's XML reply. Only the statistics
// relevant to reddening are mapped; everything else is ignored.
type dustResults struct {
	XMLName xml.Name     `xml:"results"`
	Status  string       `xml:"status,attr"`
	Message string       `xml:"message"`
	Results []dustResult `xml:"result"`
}

type dustResult struct {
	Desc  string    `xml:"desc"`
	Stats dustStats `xml:"statistics"`
}

type dustStats struct {
	RefPixelValueSFD   string `xml:"refPixelValueSFD"`
	RefPixelValueSandF string `xml:"refPixelValueSandF"`
	MeanValueSFD       string `xml:"meanValueSFD"`
	MeanValueSandF     string `xml:"meanValueSandF"`
	StdSFD             string `xml:"stdSFD"`
	StdSandF           string `xml:"stdSandF"`
	MaxValueSFD        string `xml:"maxValueSFD"`
	MinValueSFD        string `xml:"minValueSFD"`
}

// QueryTable returns the reddening statistics around a coordinate.
func (c *Client) QueryTable(ctx context.Context, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"locstr":  {fmt.Sprintf("%f %f equ j2000", center.RA, center.Dec)},
		"regSize": {fmt.Sprintf("%f", radius.Degrees())},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building dust request: %w", err)
	}

	logger.Debug("irsa: dust lookup at %s", center)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return nil, err
	}

	var results dustResults
	if err := xml.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding dust reply: %w", err)
	}
	if results.Status != "" && results.Status != "ok" {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemoteQuery, strings.TrimSpace(results.Message))
	}

	return flatten(results), nil
}

// flatten turns the per-section statistics into (section, statistic,
// value) rows, dropping empty entries.
func flatten(results dustResults) *domain.Table {
	table := &domain.Table{Columns: []string{"section", "statistic", "value"}}
	for _, res := range results.Results {
		section := strings.TrimSpace(res.Desc)
		add := func(stat, value string) {
			value = strings.TrimSpace(value)
			if value != "" {
				table.Rows = append(table.Rows, []string{section, stat, value})
			}
		}
		add("refPixelValueSFD", res.Stats.RefPixelValueSFD)
		add("refPixelValueSandF", res.Stats.RefPixelValueSandF)
		add("meanValueSFD", res.Stats.MeanValueSFD)
		add("meanValueSandF", res.Stats.MeanValueSandF)
		add("stdSFD", res.Stats.StdSFD)
		add("stdSandF", res.Stats.StdSandF)
		add("maxValueSFD", res.Stats.MaxValueSFD)
		add("minValueSFD", res.Stats.MinValueSFD)
	}
	return table
}
