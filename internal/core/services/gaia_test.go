package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// mockGaiaClient implements driven.GaiaClient.
type mockGaiaClient struct {
	table *domain.Table
	err   error

	syncCalls  int
	asyncCalls int
	gotADQL    string
}

func (m *mockGaiaClient) QueryADQL(_ context.Context, adql string) (*domain.Table, error) {
	m.syncCalls++
	m.gotADQL = adql
	return m.table, m.err
}

func (m *mockGaiaClient) QueryADQLAsync(_ context.Context, adql string) (*domain.Table, error) {
	m.asyncCalls++
	m.gotADQL = adql
	return m.table, m.err
}

func TestGaiaQueryADQL_Sync(t *testing.T) {
	want := sampleTable()
	client := &mockGaiaClient{table: want}
	reporter := &spyReporter{}
	svc := NewGaiaService(client, reporter)

	adql := "SELECT TOP 10 source_id FROM gaiadr3.gaia_source"
	got := svc.QueryADQL(context.Background(), adql, false)

	require.NotNil(t, got)
	assert.Same(t, want, got)
	assert.Equal(t, adql, client.gotADQL, "query must be forwarded verbatim")
	assert.Equal(t, 1, client.syncCalls)
	assert.Zero(t, client.asyncCalls)
	assert.Empty(t, reporter.reports)
}

func TestGaiaQueryADQL_Async(t *testing.T) {
	client := &mockGaiaClient{table: sampleTable()}
	svc := NewGaiaService(client, &spyReporter{})

	got := svc.QueryADQL(context.Background(), "SELECT 1", true)

	require.NotNil(t, got)
	assert.Equal(t, 1, client.asyncCalls)
	assert.Zero(t, client.syncCalls)
}

func TestGaiaQueryADQL_EmptyQuery(t *testing.T) {
	client := &mockGaiaClient{table: sampleTable()}
	reporter := &spyReporter{}
	svc := NewGaiaService(client, reporter)

	got := svc.QueryADQL(context.Background(), "", false)

	assert.Nil(t, got)
	assert.Zero(t, client.syncCalls+client.asyncCalls)
	require.Len(t, reporter.reports, 1)
	rep := reporter.reports[0]
	assert.Equal(t, domain.ReportArgument, rep.Kind)
	assert.Equal(t, "GaiaService", rep.Component)
	assert.Equal(t, "QueryADQL", rep.Op)
}

func TestGaiaQueryADQL_RemoteError(t *testing.T) {
	cause := errors.New("gaia: syntax error near FORM")
	client := &mockGaiaClient{err: cause}
	reporter := &spyReporter{}
	svc := NewGaiaService(client, reporter)

	got := svc.QueryADQL(context.Background(), "SELECT * FORM t", false)

	assert.Nil(t, got)
	require.Len(t, reporter.reports, 1)
	assert.Equal(t, domain.ReportDelegation, reporter.reports[0].Kind)
	assert.ErrorIs(t, reporter.reports[0].Err, cause)
}
