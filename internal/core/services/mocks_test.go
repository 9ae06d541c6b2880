package services

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// --- Shared test doubles ---

// spyReporter captures every report routed to the sink.
type spyReporter struct {
	reports []domain.Report
}

func (r *spyReporter) Report(rep domain.Report) {
	r.reports = append(r.reports, rep)
}

// mockResolver implements driven.NameResolver.
type mockResolver struct {
	coord domain.SkyCoord
	err   error
	calls int
}

func (m *mockResolver) Resolve(_ context.Context, _ string) (domain.SkyCoord, error) {
	m.calls++
	if m.err != nil {
		return domain.SkyCoord{}, m.err
	}
	return m.coord, nil
}

// sampleTable builds a small result table for delegation tests.
func sampleTable() *domain.Table {
	return &domain.Table{
		Columns: []string{"main_id", "ra", "dec"},
		Rows:    [][]string{{"M  31", "10.684", "41.268"}},
	}
}
