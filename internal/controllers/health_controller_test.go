package controllers

import (
	"crmdigest/internal/models"
	"crmdigest/internal/structures"
	"crmdigest/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthConf() *structures.Config {
	return &structures.Config{AppName: "CrmDailyDigest"}
}

func TestHealth_ReturnsRunning(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	svc := &testutil.MockReportService{
		Loc:   loc,
		State: models.RunState{LastReportDate: "2025-03-10", Totals: models.Totals{CallsMade: 3}},
	}
	next := time.Date(2025, time.March, 12, 13, 30, 0, 0, time.UTC)
	hc := NewHealthController(healthConf(), svc, &mockScheduler{next: next})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["status"])
	assert.Equal(t, "CrmDailyDigest", resp["service"])
	assert.Equal(t, "EST", resp["timezone"])
	assert.Equal(t, "2025-03-12T08:30:00-05:00", resp["next_run"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")

	lastRun, ok := resp["last_run"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2025-03-10", lastRun["last_report_date"])
}

func TestHealth_NoScheduleGivesNullNextRun(t *testing.T) {
	hc := NewHealthController(healthConf(), &testutil.MockReportService{}, &mockScheduler{})

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp, "next_run")
	assert.Nil(t, resp["next_run"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(healthConf(), &testutil.MockReportService{}, &mockScheduler{})

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0h0m0s"},
		{90 * time.Second, "0h1m30s"},
		{26*time.Hour + 5*time.Minute + 7*time.Second, "26h5m7s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatDuration(tt.d))
	}
}
