package providers

import (
	"crmdigest/internal/models"
	"crmdigest/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveCrmFetch(resource string, duration time.Duration, err error)
	IncDegradedSource(resource string)
	IncReportRuns(outcome string)
	IncEmailsSent(outcome string)
	SetLastReportTotals(totals models.Totals)
	SetLastSuccess(at time.Time)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	crmRequests     *prometheus.CounterVec
	crmDuration     *prometheus.HistogramVec
	degraded        *prometheus.CounterVec
	reportRuns      *prometheus.CounterVec
	emailsSent      *prometheus.CounterVec
	reportTotals    *prometheus.GaugeVec
	lastSuccess     prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveCrmFetch(resource string, duration time.Duration, err error) {
	m.crmRequests.WithLabelValues(resource, outcome(err)).Inc()
	m.crmDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncDegradedSource(resource string) {
	m.degraded.WithLabelValues(resource).Inc()
}

func (m *MetricsProvider) IncReportRuns(outcome string) {
	m.reportRuns.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncEmailsSent(outcome string) {
	m.emailsSent.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) SetLastReportTotals(totals models.Totals) {
	m.reportTotals.WithLabelValues("calls_made").Set(float64(totals.CallsMade))
	m.reportTotals.WithLabelValues("notes_created").Set(float64(totals.NotesCreated))
	m.reportTotals.WithLabelValues("deal_movements").Set(float64(totals.DealMovements))
	m.reportTotals.WithLabelValues("activities_done").Set(float64(totals.ActivitiesDone))
	m.reportTotals.WithLabelValues("deals_won").Set(float64(totals.DealsWon))
	m.reportTotals.WithLabelValues("deals_lost").Set(float64(totals.DealsLost))
}

func (m *MetricsProvider) SetLastSuccess(at time.Time) {
	m.lastSuccess.Set(float64(at.Unix()))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crmdigest_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crmdigest_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crmdigest_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crmdigest_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		crmRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crmdigest_crm_requests_total",
			Help: "CRM fetches by resource and outcome",
		}, []string{"resource", "outcome"}),

		crmDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crmdigest_crm_request_duration_seconds",
			Help:    "CRM fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource"}),

		degraded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crmdigest_degraded_sources_total",
			Help: "Optional sources replaced by an empty collection",
		}, []string{"resource"}),

		reportRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crmdigest_report_runs_total",
			Help: "Report runs by outcome",
		}, []string{"outcome"}),

		emailsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crmdigest_emails_sent_total",
			Help: "Digest emails by outcome",
		}, []string{"outcome"}),

		reportTotals: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "crmdigest_last_report_total",
			Help: "Team totals of the last successful report",
		}, []string{"counter"}),

		lastSuccess: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "crmdigest_last_success_timestamp_seconds",
			Help: "Unix time of the last successful report run",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) ObserveCrmFetch(_ string, _ time.Duration, _ error) {}
func (n *noopMetrics) IncDegradedSource(_ string)                        {}
func (n *noopMetrics) IncReportRuns(_ string)                            {}
func (n *noopMetrics) IncEmailsSent(_ string)                            {}
func (n *noopMetrics) SetLastReportTotals(_ models.Totals)               {}
func (n *noopMetrics) SetLastSuccess(_ time.Time)                        {}
