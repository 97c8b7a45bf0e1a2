package testutil

import (
	"context"
	"crmdigest/internal/analytics"
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns the number of entries logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}

// MockMetrics implements providers.MetricsProviderInterface and keeps counts
// keyed by label.
type MockMetrics struct {
	mu         sync.Mutex
	Fetches    map[string]int
	FetchErrs  map[string]int
	Degraded   map[string]int
	Runs       map[string]int
	Emails     map[string]int
	LastTotals models.Totals
	LastOkAt   time.Time
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Fetches:   make(map[string]int),
		FetchErrs: make(map[string]int),
		Degraded:  make(map[string]int),
		Runs:      make(map[string]int),
		Emails:    make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}

func (m *MockMetrics) ObserveCrmFetch(resource string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fetches[resource]++
	if err != nil {
		m.FetchErrs[resource]++
	}
}

func (m *MockMetrics) IncDegradedSource(resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Degraded[resource]++
}

func (m *MockMetrics) IncReportRuns(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Runs[outcome]++
}

func (m *MockMetrics) IncEmailsSent(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Emails[outcome]++
}

func (m *MockMetrics) SetLastReportTotals(totals models.Totals) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastTotals = totals
}

func (m *MockMetrics) SetLastSuccess(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastOkAt = at
}

// MockCrmClient implements crm.ClientInterface with fixed data or errors.
type MockCrmClient struct {
	mu            sync.Mutex
	Deals         []models.Deal
	Activities    []models.Activity
	Notes         []models.Note
	Users         []models.User
	Pipelines     []models.Pipeline
	Errs          map[string]error
	Windows       []analytics.Window
	PingCalls     int
	BlockActivity chan struct{}
}

func (m *MockCrmClient) fail(resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Errs == nil {
		return nil
	}
	return m.Errs[resource]
}

func (m *MockCrmClient) FetchDeals(_ context.Context) ([]models.Deal, error) {
	if err := m.fail("deals"); err != nil {
		return nil, err
	}
	return m.Deals, nil
}

func (m *MockCrmClient) FetchActivities(ctx context.Context, w analytics.Window) ([]models.Activity, error) {
	m.mu.Lock()
	m.Windows = append(m.Windows, w)
	block := m.BlockActivity
	m.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := m.fail("activities"); err != nil {
		return nil, err
	}
	return m.Activities, nil
}

func (m *MockCrmClient) FetchNotes(_ context.Context, _ analytics.Window) ([]models.Note, error) {
	if err := m.fail("notes"); err != nil {
		return nil, err
	}
	return m.Notes, nil
}

func (m *MockCrmClient) FetchUsers(_ context.Context) ([]models.User, error) {
	if err := m.fail("users"); err != nil {
		return nil, err
	}
	return m.Users, nil
}

func (m *MockCrmClient) FetchPipelines(_ context.Context) ([]models.Pipeline, error) {
	if err := m.fail("pipelines"); err != nil {
		return nil, err
	}
	return m.Pipelines, nil
}

func (m *MockCrmClient) Ping(_ context.Context) (*models.User, error) {
	m.mu.Lock()
	m.PingCalls++
	m.mu.Unlock()
	if err := m.fail("ping"); err != nil {
		return nil, err
	}
	return &models.User{ID: 1, Name: "Token Owner"}, nil
}

// SentMail is one message captured by MockTransport.
type SentMail struct {
	Subject    string
	Html       string
	Recipients []string
}

// MockTransport implements mail.TransportInterface.
type MockTransport struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (m *MockTransport) Send(_ context.Context, subject, html string, recipients []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if len(recipients) == 0 {
		return models.ErrNoRecipients
	}
	m.Sent = append(m.Sent, SentMail{Subject: subject, Html: html, Recipients: recipients})
	return nil
}

// MockReportService implements services.ReportServiceInterface.
type MockReportService struct {
	mu          sync.Mutex
	Report      *models.Report
	Html        string
	Err         error
	BuildDays   []time.Time
	SendDays    []time.Time
	DailyCalls  int
	State       models.RunState
	PutStates   []models.RunState
	Loc         *time.Location
	YesterdayAt time.Time
}

func (m *MockReportService) Build(_ context.Context, day time.Time) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BuildDays = append(m.BuildDays, day)
	return m.Report, m.Err
}

func (m *MockReportService) Render(_ *models.Report) (string, error) {
	return m.Html, nil
}

func (m *MockReportService) Send(_ context.Context, day time.Time) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDays = append(m.SendDays, day)
	return m.Report, m.Err
}

func (m *MockReportService) SendDaily(_ context.Context) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DailyCalls++
	return m.Report, m.Err
}

func (m *MockReportService) CheckConnection(_ context.Context) error {
	return nil
}

func (m *MockReportService) Yesterday() time.Time {
	return m.YesterdayAt
}

func (m *MockReportService) Location() *time.Location {
	if m.Loc == nil {
		return time.UTC
	}
	return m.Loc
}

func (m *MockReportService) LastRun() models.RunState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.State
}

func (m *MockReportService) PutLastRun(state models.RunState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.State = state
	m.PutStates = append(m.PutStates, state)
}
