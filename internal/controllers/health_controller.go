package controllers

import (
	"crmdigest/internal/models"
	"crmdigest/internal/services"
	"crmdigest/internal/statistic/interfaces"
	"crmdigest/internal/structures"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	conf      *structures.Config
	service   services.ReportServiceInterface
	scheduler interfaces.SchedulerInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string          `json:"status"`
	Service       string          `json:"service"`
	Uptime        string          `json:"uptime"`
	UptimeSeconds float64         `json:"uptime_seconds"`
	NextRun       *time.Time      `json:"next_run"`
	Timezone      string          `json:"timezone"`
	LastRun       models.RunState `json:"last_run"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "running",
		Service:       hc.conf.AppName,
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Timezone:      hc.service.Location().String(),
		LastRun:       hc.service.LastRun(),
	}
	if next := hc.scheduler.NextRun(); !next.IsZero() {
		next = next.In(hc.service.Location())
		resp.NextRun = &next
	}

	writeJSON(w, http.StatusOK, resp)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func NewHealthController(conf *structures.Config, service services.ReportServiceInterface, scheduler interfaces.SchedulerInterface) *HealthController {
	return &HealthController{
		conf:      conf,
		service:   service,
		scheduler: scheduler,
		startTime: time.Now(),
	}
}
