// Package gaia binds the ESA Gaia archive TAP service, including its
// asynchronous job flow for long-running ADQL queries.
package gaia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cosmolabs/cosmo-cli/internal/archives/csvio"
	"github.com/cosmolabs/cosmo-cli/internal/archives/tap"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

const (
	// DefaultEndpoint is the public Gaia archive TAP service.
	DefaultEndpoint = "https://gea.esac.esa.int/tap-server/tap"

	// defaultPollInterval paces the async job phase checks.
	defaultPollInterval = time.Second
)

// Ensure Client implements the port.
var _ driven.GaiaClient = (*Client)(nil)

// Client executes ADQL against the Gaia archive.
type Client struct {
	tap  *tap.Client
	poll time.Duration
}

// New creates a Gaia client.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		tap:  tap.New(endpoint, timeout),
		poll: defaultPollInterval,
	}
}

// SetPollInterval overrides the async phase-check pacing. Used in tests.
func (c *Client) SetPollInterval(d time.Duration) {
	if d > 0 {
		c.poll = d
	}
}

// QueryADQL runs a query through the synchronous endpoint.
func (c *Client) QueryADQL(ctx context.Context, adql string) (*domain.Table, error) {
	return c.tap.Sync(ctx, adql)
}

// QueryADQLAsync submits the query as a UWS job, waits for completion
// and fetches the result. The job URL comes from the submission
// redirect.
func (c *Client) QueryADQLAsync(ctx context.Context, adql string) (*domain.Table, error) {
	if err := c.tap.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{
		"REQUEST": {"doQuery"},
		"LANG":    {"ADQL"},
		"FORMAT":  {"csv"},
		"PHASE":   {"RUN"},
		"QUERY":   {adql},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tap.Endpoint()+"/async",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building job submission: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.tap.HTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	jobURL := resp.Request.URL.String()
	if err := tap.ClassifyStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	resp.Body.Close()
	logger.Debug("gaia: job %s submitted", jobURL)

	if err := c.waitForJob(ctx, jobURL); err != nil {
		return nil, err
	}
	return c.fetchResult(ctx, jobURL)
}

// waitForJob polls the job phase until it completes or fails.
func (c *Client) waitForJob(ctx context.Context, jobURL string) error {
	for {
		phase, err := c.jobPhase(ctx, jobURL)
		if err != nil {
			return err
		}
		logger.Debug("gaia: job phase %s", phase)

		switch phase {
		case "COMPLETED":
			return nil
		case "ERROR", "ABORTED":
			return fmt.Errorf("%w: job finished in phase %s", domain.ErrRemoteQuery, phase)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.poll):
		}
	}
}

func (c *Client) jobPhase(ctx context.Context, jobURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL+"/phase", nil)
	if err != nil {
		return "", fmt.Errorf("building phase request: %w", err)
	}
	resp, err := c.tap.HTTPClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return "", err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", fmt.Errorf("reading job phase: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) fetchResult(ctx context.Context, jobURL string) (*domain.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL+"/results/result", nil)
	if err != nil {
		return nil, fmt.Errorf("building result request: %w", err)
	}
	resp, err := c.tap.HTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := tap.ClassifyStatus(resp); err != nil {
		return nil, err
	}
	return csvio.Read(resp.Body)
}
