package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// mockIrsaClient implements driven.IrsaClient.
type mockIrsaClient struct {
	table *domain.Table
	err   error

	calls     int
	gotCenter domain.SkyCoord
	gotRadius domain.Angle
}

func (m *mockIrsaClient) QueryTable(_ context.Context, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error) {
	m.calls++
	m.gotCenter = center
	m.gotRadius = radius
	return m.table, m.err
}

func TestIrsaQueryTable_Success(t *testing.T) {
	want := &domain.Table{Columns: []string{"statistic", "value"}, Rows: [][]string{{"mean E(B-V)", "0.062"}}}
	client := &mockIrsaClient{table: want}
	resolver := &mockResolver{coord: domain.SkyCoord{RA: 10.684, Dec: 41.268}}
	svc := NewIrsaService(client, resolver, &spyReporter{})

	got := svc.QueryTable(context.Background(), "M31")

	require.NotNil(t, got)
	assert.Same(t, want, got)
	assert.Equal(t, domain.Angle{Value: 2, Unit: domain.Arcmin}, client.gotRadius,
		"reddening lookups use the fixed 2 arcmin radius")
}

func TestIrsaQueryTable_EmptyCenter(t *testing.T) {
	client := &mockIrsaClient{table: sampleTable()}
	reporter := &spyReporter{}
	svc := NewIrsaService(client, &mockResolver{}, reporter)

	got := svc.QueryTable(context.Background(), "")

	assert.Nil(t, got)
	assert.Zero(t, client.calls)
	require.Len(t, reporter.reports, 1)
	assert.Equal(t, domain.ReportArgument, reporter.reports[0].Kind)
	assert.Equal(t, "IrsaService", reporter.reports[0].Component)
	assert.Equal(t, "QueryTable", reporter.reports[0].Op)
}

func TestIrsaQueryTable_ResolverError(t *testing.T) {
	client := &mockIrsaClient{table: sampleTable()}
	resolver := &mockResolver{err: errors.New("sesame: no match")}
	reporter := &spyReporter{}
	svc := NewIrsaService(client, resolver, reporter)

	got := svc.QueryTable(context.Background(), "Unknown Object")

	assert.Nil(t, got)
	assert.Zero(t, client.calls)
	require.Len(t, reporter.reports, 1)
	assert.Equal(t, domain.ReportDelegation, reporter.reports[0].Kind)
}
