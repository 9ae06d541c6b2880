package reporting

import (
	"sync"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
	"github.com/cosmolabs/cosmo-cli/internal/logger"
)

// Log forwards reports to the verbose log.
type Log struct{}

var _ driven.Reporter = (*Log)(nil)

// NewLog creates a log reporter.
func NewLog() *Log { return &Log{} }

// Report logs the report summary.
func (l *Log) Report(rec domain.Report) {
	logger.Warn("%s", rec.Summary())
}

// Memory records reports in order. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	reports []domain.Report
}

var _ driven.Reporter = (*Memory)(nil)

// NewMemory creates an in-memory reporter.
func NewMemory() *Memory { return &Memory{} }

// Report appends the report.
func (m *Memory) Report(rec domain.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, rec)
}

// Reports returns a copy of everything recorded so far.
func (m *Memory) Reports() []domain.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Report, len(m.reports))
	copy(out, m.reports)
	return out
}

// Len returns the number of recorded reports.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reports)
}

// Fanout delivers each report to every sink in order.
type Fanout struct {
	sinks []driven.Reporter
}

var _ driven.Reporter = (*Fanout)(nil)

// NewFanout creates a fan-out reporter over sinks.
func NewFanout(sinks ...driven.Reporter) *Fanout {
	return &Fanout{sinks: sinks}
}

// Report forwards the report to all sinks.
func (f *Fanout) Report(rec domain.Report) {
	for _, s := range f.sinks {
		s.Report(rec)
	}
}
