package internal

import (
	"crmdigest/internal/controllers"
	"crmdigest/internal/structures"
	"crmdigest/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type idleScheduler struct{}

func (s *idleScheduler) Init() error        { return nil }
func (s *idleScheduler) Stop()              {}
func (s *idleScheduler) NextRun() time.Time { return time.Time{} }
func (s *idleScheduler) Restore() error     { return nil }
func (s *idleScheduler) Persist() error     { return nil }

func TestNewHandler_Surface(t *testing.T) {
	conf := &structures.Config{AppName: "CrmDailyDigest"}
	svc := &testutil.MockReportService{}
	health := controllers.NewHealthController(conf, svc, &idleScheduler{})
	rc := controllers.NewReportController(&testutil.MockLogger{}, svc, testutil.NewMockCache(), &idleScheduler{})

	h := NewHandler(health, conf, &testutil.MockLogger{}, InitRoutes(rc), testutil.NewMockMetrics())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewHandler_MetricsEndpoint(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}
	svc := &testutil.MockReportService{}
	health := controllers.NewHealthController(conf, svc, &idleScheduler{})
	rc := controllers.NewReportController(&testutil.MockLogger{}, svc, testutil.NewMockCache(), &idleScheduler{})

	h := NewHandler(health, conf, &testutil.MockLogger{}, InitRoutes(rc), testutil.NewMockMetrics())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
