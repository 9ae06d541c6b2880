package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// mockVizierClient implements driven.VizierClient.
type mockVizierClient struct {
	table *domain.Table
	err   error

	calls      int
	gotCatalog string
	gotCenter  domain.SkyCoord
	gotRadius  domain.Angle
}

func (m *mockVizierClient) QueryRegion(_ context.Context, catalog string, center domain.SkyCoord, radius domain.Angle) (*domain.Table, error) {
	m.calls++
	m.gotCatalog = catalog
	m.gotCenter = center
	m.gotRadius = radius
	return m.table, m.err
}

func TestVizierQueryRegion_Success(t *testing.T) {
	want := sampleTable()
	client := &mockVizierClient{table: want}
	resolver := &mockResolver{coord: domain.SkyCoord{RA: 10.684, Dec: 41.268}}
	reporter := &spyReporter{}
	svc := NewVizierService(client, resolver, reporter)

	radius := domain.Angle{Value: 10, Unit: domain.Arcmin}
	got := svc.QueryRegion(context.Background(), "I/345/gaia2", "M31", radius)

	require.NotNil(t, got)
	assert.Same(t, want, got)
	assert.Equal(t, "I/345/gaia2", client.gotCatalog)
	assert.Equal(t, radius, client.gotRadius)
	assert.Equal(t, 1, resolver.calls)
	assert.Empty(t, reporter.reports)
}

func TestVizierQueryRegion_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		center  string
		radius  domain.Angle
	}{
		{name: "empty catalog", catalog: "", center: "M31", radius: domain.Angle{Value: 1, Unit: domain.Arcmin}},
		{name: "empty center", catalog: "I/345/gaia2", center: "", radius: domain.Angle{Value: 1, Unit: domain.Arcmin}},
		{name: "zero radius", catalog: "I/345/gaia2", center: "M31", radius: domain.Angle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockVizierClient{table: sampleTable()}
			reporter := &spyReporter{}
			svc := NewVizierService(client, &mockResolver{}, reporter)

			got := svc.QueryRegion(context.Background(), tt.catalog, tt.center, tt.radius)

			assert.Nil(t, got)
			assert.Zero(t, client.calls)
			require.Len(t, reporter.reports, 1)
			rep := reporter.reports[0]
			assert.Equal(t, domain.ReportArgument, rep.Kind)
			assert.Equal(t, "VizierService", rep.Component)
			assert.Equal(t, "QueryRegion", rep.Op)
		})
	}
}

func TestVizierQueryRegion_ClientError(t *testing.T) {
	client := &mockVizierClient{err: errors.New("vizier: 503")}
	reporter := &spyReporter{}
	svc := NewVizierService(client, &mockResolver{}, reporter)

	got := svc.QueryRegion(context.Background(), "I/345/gaia2", "10.0 20.0", domain.Angle{Value: 1, Unit: domain.Arcmin})

	assert.Nil(t, got)
	require.Len(t, reporter.reports, 1)
	assert.Equal(t, domain.ReportDelegation, reporter.reports[0].Kind)
}
