package controllers

import (
	"crmdigest/internal/models"
	"crmdigest/internal/testutil"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var controllerLoc = time.FixedZone("EST", -5*60*60)

func newReportController() (*ReportController, *testutil.MockReportService, *testutil.MockCache) {
	rc, svc, cache, _ := newReportControllerWithScheduler()
	return rc, svc, cache
}

func newReportControllerWithScheduler() (*ReportController, *testutil.MockReportService, *testutil.MockCache, *mockScheduler) {
	svc := &testutil.MockReportService{
		Loc:         controllerLoc,
		YesterdayAt: time.Date(2025, time.March, 10, 0, 0, 0, 0, controllerLoc),
		Report: &models.Report{
			DateLabel: "Monday, March 10, 2025",
			Totals:    models.Totals{CallsMade: 2},
			ByOwner:   []models.OwnerStat{{OwnerID: "5", Name: "Ann", CallsMade: 2}},
		},
		Html: "<html>digest</html>",
	}
	cache := testutil.NewMockCache()
	scheduler := &mockScheduler{}
	return NewReportController(&testutil.MockLogger{}, svc, cache, scheduler), svc, cache, scheduler
}

func TestGetReport_DefaultsToYesterdayAndCaches(t *testing.T) {
	rc, svc, cache := newReportController()

	rr := httptest.NewRecorder()
	rc.GetReport(rr, httptest.NewRequest(http.MethodGet, "/report", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var report models.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "Monday, March 10, 2025", report.DateLabel)
	assert.Equal(t, 2, report.Totals.CallsMade)

	require.Len(t, svc.BuildDays, 1)
	assert.Equal(t, svc.YesterdayAt, svc.BuildDays[0])
	assert.Contains(t, cache.Data, "report:2025-03-10")

	rr = httptest.NewRecorder()
	rc.GetReport(rr, httptest.NewRequest(http.MethodGet, "/report", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, svc.BuildDays, 1)
}

func TestGetReport_ExplicitDate(t *testing.T) {
	rc, svc, _ := newReportController()

	rr := httptest.NewRecorder()
	rc.GetReport(rr, httptest.NewRequest(http.MethodGet, "/report?date=2025-03-01", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.BuildDays, 1)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, controllerLoc), svc.BuildDays[0])
}

func TestGetReport_TodayIsNotCached(t *testing.T) {
	rc, _, cache := newReportController()

	rr := httptest.NewRecorder()
	rc.GetReport(rr, httptest.NewRequest(http.MethodGet, "/report?date=2025-03-11", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, cache.Data, "report:2025-03-11")
}

func TestGetReport_BadDate(t *testing.T) {
	rc, svc, _ := newReportController()

	rr := httptest.NewRecorder()
	rc.GetReport(rr, httptest.NewRequest(http.MethodGet, "/report?date=03/10/2025", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.BuildDays)
}

func TestGetReport_SourceUnavailable(t *testing.T) {
	rc, svc, cache := newReportController()
	svc.Err = fmt.Errorf("%w: deals: HTTP 500", models.ErrSourceUnavailable)

	rr := httptest.NewRecorder()
	rc.GetReport(rr, httptest.NewRequest(http.MethodGet, "/report", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Empty(t, cache.Data)
}

func TestPreview_RendersHtml(t *testing.T) {
	rc, _, _ := newReportController()

	rr := httptest.NewRecorder()
	rc.Preview(rr, httptest.NewRequest(http.MethodGet, "/report/preview?date=2025-03-10", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<html>digest</html>", rr.Body.String())
}

func TestPreview_BuildError(t *testing.T) {
	rc, svc, _ := newReportController()
	svc.Err = errors.New("boom")

	rr := httptest.NewRecorder()
	rc.Preview(rr, httptest.NewRequest(http.MethodGet, "/report/preview", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSendTestEmail_Success(t *testing.T) {
	rc, svc, cache := newReportController()
	cache.Set("report:2025-03-10", []byte(`{"stale":true}`))

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp sendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Test email sent successfully", resp.Message)
	assert.Equal(t, "Monday, March 10, 2025", resp.Date)

	require.Len(t, svc.SendDays, 1)
	assert.Equal(t, svc.YesterdayAt, svc.SendDays[0])
	assert.NotContains(t, cache.Data, "report:2025-03-10")
}

func TestSendTestEmail_Failure(t *testing.T) {
	rc, svc, _ := newReportController()
	svc.Err = fmt.Errorf("%w: users: HTTP 401", models.ErrSourceUnavailable)

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp sendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "HTTP 401")
}

func TestSendTestEmail_InProgress(t *testing.T) {
	rc, svc, _ := newReportController()
	svc.Err = models.ErrRunInProgress

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestSendTestEmail_PersistsRunState(t *testing.T) {
	rc, _, _, scheduler := newReportControllerWithScheduler()

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, scheduler.persists)
}

func TestSendTestEmail_PersistsFailedRun(t *testing.T) {
	rc, svc, _, scheduler := newReportControllerWithScheduler()
	svc.Err = fmt.Errorf("%w: deals: HTTP 500", models.ErrSourceUnavailable)

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, 1, scheduler.persists)
}

func TestSendTestEmail_SkippedRunIsNotPersisted(t *testing.T) {
	rc, svc, _, scheduler := newReportControllerWithScheduler()
	svc.Err = models.ErrRunInProgress

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, 0, scheduler.persists)
}

func TestSendTestEmail_PersistErrorKeepsSuccess(t *testing.T) {
	rc, _, _, scheduler := newReportControllerWithScheduler()
	scheduler.persistErr = errors.New("read-only file system")

	rr := httptest.NewRecorder()
	rc.SendTestEmail(rr, httptest.NewRequest(http.MethodPost, "/send-test-email", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, scheduler.persists)
}
