package models

import "time"

type Totals struct {
	CallsMade      int `json:"calls_made"`
	NotesCreated   int `json:"notes_created"`
	DealMovements  int `json:"deal_movements"`
	ActivitiesDone int `json:"activities_done"`
	DealsWon       int `json:"deals_won"`
	DealsLost      int `json:"deals_lost"`
}

type ReportDetails struct {
	WonDeals  []Deal         `json:"won_deals"`
	LostDeals []Deal         `json:"lost_deals"`
	Calls     []CallActivity `json:"call_activities"`
	Notes     []EnrichedNote `json:"notes"`
	Movements []Movement     `json:"deal_movements"`
}

// Report is the finished digest for one calendar day.
type Report struct {
	Date      time.Time     `json:"date"`
	DateLabel string        `json:"date_label"`
	Totals    Totals        `json:"total_stats"`
	ByOwner   []OwnerStat   `json:"by_owner"`
	Details   ReportDetails `json:"detailed_data"`
}
