package models

import "time"

// RunState describes the most recent report run. It is the only thing the
// service keeps across restarts.
type RunState struct {
	LastRunAt      time.Time `json:"last_run_at"`
	LastSuccessAt  time.Time `json:"last_success_at"`
	LastError      string    `json:"last_error,omitempty"`
	LastReportDate string    `json:"last_report_date,omitempty"`
	Totals         Totals    `json:"totals"`
}
