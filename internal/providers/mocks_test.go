package providers

import (
	"crmdigest/internal/models"
	"fmt"
	"time"
)

// local mocks to avoid an import cycle with testutil

type nopTestLogger struct{}

func (m *nopTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *nopTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *nopTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *nopTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *nopTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *nopTestLogger) Close()                                        {}

// debugLogger keeps formatted debug lines.
type debugLogger struct {
	nopTestLogger
	lines []string
}

func (m *debugLogger) Debugf(_ TypeEnum, format string, args ...interface{}) {
	m.lines = append(m.lines, fmt.Sprintf(format, args...))
}

type mockMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            int
	misses          int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration)  { m.durationCalls++ }
func (m *mockMetrics) IncCacheHits()                                     { m.hits++ }
func (m *mockMetrics) IncCacheMisses()                                   { m.misses++ }
func (m *mockMetrics) ObserveCrmFetch(_ string, _ time.Duration, _ error) {}
func (m *mockMetrics) IncDegradedSource(_ string)                        {}
func (m *mockMetrics) IncReportRuns(_ string)                            {}
func (m *mockMetrics) IncEmailsSent(_ string)                            {}
func (m *mockMetrics) SetLastReportTotals(_ models.Totals)               {}
func (m *mockMetrics) SetLastSuccess(_ time.Time)                        {}
