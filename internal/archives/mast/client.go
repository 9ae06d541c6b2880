// Package mast binds the MAST observations archive: the Mashup invoke
// API for searches and the file endpoint for product downloads.
// Authenticated access uses a static API token, carried by an oauth2
// token source on the HTTP client.
package mast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

const (
	// DefaultEndpoint is the public MAST API base.
	DefaultEndpoint = "https://mast.stsci.edu/api"

	// coneRadiusDeg is the search radius used for object queries.
	coneRadiusDeg = 0.2
)

// Ensure Client implements the port.
var _ driven.MastClient = (*Client)(nil)

// Client queries the MAST archive.
type Client struct {
	endpoint    string
	downloadDir string
	httpc       *http.Client
	limiter     *rate.Limiter
}

// New creates a MAST client. When token is non-empty, requests carry
// it as a bearer credential. Downloads land in downloadDir.
func New(endpoint, token, downloadDir string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = tap.DefaultTimeout
	}

	httpc := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpc = oauth2.NewClient(context.Background(), ts)
		httpc.Timeout = timeout
	}

	return &Client{
		endpoint:    strings.TrimRight(endpoint, "/"),
		downloadDir: downloadDir,
		httpc:       httpc,
		limiter:     rate.NewLimiter(rate.Limit(2), 1),
	}
}

// mashupRequest is the envelope the invoke endpoint expects.
type mashupRequest struct {
	Service string         `json:"service"`
	Params  map[string]any `json:"params"`
	Format  string         `json:"format"`
}

// mashupResponse is the envelope it returns. Data rows arrive as
// loosely typed objects keyed by field name.
type mashupResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
	Fields []struct {
		Name string `json:"name"`
	} `json:"fields"`
	Data []map[string]any `json:"data"`

	// Name lookups reply with a different shape.
	ResolvedCoordinate []struct {
		RA  float64 `json:"ra"`
		Dec float64 `json:"decl"`
	} `json:"resolvedCoordinate"`
}

// QueryObject resolves the name through Mast.Name.Lookup and then runs
// a CAOM cone search around the resolved position.
func (c *Client) QueryObject(ctx context.Context, name string) (*domain.Table, error) {
	lookup, err := c.invoke(ctx, mashupRequest{
		Service: "Mast.Name.Lookup",
		Params:  map[string]any{"input": name, "format": "json"},
		Format:  "json",
	})
	if err != nil {
		return nil, err
	}
	if len(lookup.ResolvedCoordinate) == 0 {
		return nil, fmt.Errorf("%w: MAST cannot resolve %q", domain.ErrNotFound, name)
	}
	coord := lookup.ResolvedCoordinate[0]
	logger.Debug("mast: %q resolved to %f %f", name, coord.RA, coord.Dec)

	cone, err := c.invoke(ctx, mashupRequest{
		Service: "Mast.Caom.Cone",
		Params:  map[string]any{"ra": coord.RA, "dec": coord.Dec, "radius": coneRadiusDeg},
		Format:  "json",
	})
	if err != nil {
		return nil, err
	}
	return cone.table(), nil
}

func (c *Client) invoke(ctx context.Context, request mashupRequest) (*mashupResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encoding mashup request: %w", err)
	}
	form := url.Values{"request": {string(payload)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v0/invoke",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building invoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return nil, err
	}

	var decoded mashupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding mashup reply: %w", err)
	}
	if decoded.Status == "ERROR" {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemoteQuery, decoded.Msg)
	}
	return &decoded, nil
}

// table converts a mashup data payload into a domain table.
func (r *mashupResponse) table() *domain.Table {
	table := &domain.Table{}
	for _, f := range r.Fields {
		table.Columns = append(table.Columns, f.Name)
	}
	for _, obj := range r.Data {
		row := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			row[i] = stringify(obj[col])
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// DownloadProducts fetches each product's file and returns a manifest
// of (uri, local path, status) rows. One failed file does not abort
// the rest; its manifest row carries the error.
func (c *Client) DownloadProducts(ctx context.Context, products *domain.Table) (*domain.Table, error) {
	uriCol := products.ColumnIndex("dataURI")
	if uriCol < 0 {
		return nil, fmt.Errorf("%w: product table has no dataURI column", domain.ErrRemoteQuery)
	}
	if err := os.MkdirAll(c.downloadDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating download directory: %w", err)
	}

	manifest := &domain.Table{Columns: []string{"uri", "local_path", "status"}}
	for _, row := range products.Rows {
		// CSV-sourced tables may carry ragged rows.
		if uriCol >= len(row) || row[uriCol] == "" {
			manifest.Rows = append(manifest.Rows, []string{"", "", "ERROR: row has no dataURI value"})
			continue
		}
		uri := row[uriCol]
		local, err := c.downloadFile(ctx, uri)
		status := "COMPLETE"
		if err != nil {
			status = "ERROR: " + err.Error()
			logger.Warn("mast: download %s failed: %v", uri, err)
		}
		manifest.Rows = append(manifest.Rows, []string{uri, local, status})
	}
	return manifest, nil
}

func (c *Client) downloadFile(ctx context.Context, uri string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	u := c.endpoint + "/v0.1/Download/file?uri=" + url.QueryEscape(uri)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return "", err
	}

	name := path.Base(uri)
	if name == "" || name == "." || name == "/" {
		name = "product"
	}
	local := filepath.Join(c.downloadDir, name)

	out, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", local, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return local, fmt.Errorf("writing %s: %w", local, err)
	}
	// A short write can surface only at close.
	if err := out.Close(); err != nil {
		return local, fmt.Errorf("writing %s: %w", local, err)
	}
	return local, nil
}
