package controllers

import (
	"crmdigest/internal/analytics"
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"crmdigest/internal/services"
	"crmdigest/internal/statistic/interfaces"
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

type ReportController struct {
	logger    providers.Logger
	service   services.ReportServiceInterface
	cache     providers.CacheProviderInterface
	scheduler interfaces.SchedulerInterface
}

type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Date    string `json:"date,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewReportController(logger providers.Logger, service services.ReportServiceInterface, cache providers.CacheProviderInterface, scheduler interfaces.SchedulerInterface) *ReportController {
	return &ReportController{
		logger:    logger,
		service:   service,
		cache:     cache,
		scheduler: scheduler,
	}
}

func reportCacheKey(day time.Time) string {
	return "report:" + day.Format(analytics.DateLayout)
}

// reportDay reads ?date=YYYY-MM-DD in the report timezone, defaulting to yesterday.
func (rc *ReportController) reportDay(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return rc.service.Yesterday(), true
	}
	day, err := time.ParseInLocation(analytics.DateLayout, raw, rc.service.Location())
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrRunInProgress):
		return http.StatusConflict
	case errors.Is(err, models.ErrSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// serveFromCacheOrCompute answers from the cache when possible. Only closed
// days are stored; today's report still changes.
func (rc *ReportController) serveFromCacheOrCompute(w http.ResponseWriter, day time.Time, compute func() (any, error)) {
	cacheKey := reportCacheKey(day)
	if data, ok := rc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		rc.logger.Errorf(providers.TypeGet, "Building report for %s failed: %s", day.Format(analytics.DateLayout), err)
		http.Error(w, http.StatusText(statusFor(err)), statusFor(err))
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if !day.After(rc.service.Yesterday()) {
		rc.cache.Set(cacheKey, gson)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (rc *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	day, ok := rc.reportDay(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rc.serveFromCacheOrCompute(w, day, func() (any, error) {
		return rc.service.Build(r.Context(), day)
	})
}

// Preview renders the digest email for a day without sending it.
func (rc *ReportController) Preview(w http.ResponseWriter, r *http.Request) {
	day, ok := rc.reportDay(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	report, err := rc.service.Build(r.Context(), day)
	if err != nil {
		rc.logger.Errorf(providers.TypeGet, "Preview for %s failed: %s", day.Format(analytics.DateLayout), err)
		http.Error(w, http.StatusText(statusFor(err)), statusFor(err))
		return
	}
	html, err := rc.service.Render(report)
	if err != nil {
		rc.logger.Errorf(providers.TypeGet, "Preview render failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// SendTestEmail runs yesterday's report and mails it immediately. The run
// state is written to disk like after a scheduled run.
func (rc *ReportController) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	day := rc.service.Yesterday()
	report, err := rc.service.Send(r.Context(), day)
	if !errors.Is(err, models.ErrRunInProgress) {
		if perr := rc.scheduler.Persist(); perr != nil {
			rc.logger.Errorf(providers.TypePost, "Persist run state failed: %s", perr)
		}
	}
	if err != nil {
		rc.logger.Errorf(providers.TypePost, "Test email failed: %s", err)
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrRunInProgress) {
			status = http.StatusConflict
		}
		writeJSON(w, status, sendResponse{Success: false, Error: err.Error()})
		return
	}

	rc.cache.Del(reportCacheKey(day))
	rc.logger.Infof(providers.TypePost, "Test email sent for %s", report.DateLabel)
	writeJSON(w, http.StatusOK, sendResponse{
		Success: true,
		Message: "Test email sent successfully",
		Date:    report.DateLabel,
	})
}
