package analytics

import (
	"crmdigest/internal/models"
	"time"
)

const DateLabelLayout = "Monday, January 2, 2006"

func DateLabel(day time.Time) string {
	return day.Format(DateLabelLayout)
}

// Assemble packages one day's collections into a Report. Totals are the raw
// collection sizes, so records without an owner still count.
func Assemble(day time.Time, src Sources, stats []models.OwnerStat) *models.Report {
	if stats == nil {
		stats = make([]models.OwnerStat, 0)
	}
	return &models.Report{
		Date:      day,
		DateLabel: DateLabel(day),
		Totals: models.Totals{
			CallsMade:      len(src.Calls),
			NotesCreated:   len(src.Notes),
			DealMovements:  len(src.Movements),
			ActivitiesDone: len(src.Completed),
			DealsWon:       len(src.Won),
			DealsLost:      len(src.Lost),
		},
		ByOwner: stats,
		Details: models.ReportDetails{
			WonDeals:  orEmpty(src.Won),
			LostDeals: orEmpty(src.Lost),
			Calls:     orEmpty(src.Calls),
			Notes:     orEmpty(src.Notes),
			Movements: orEmpty(src.Movements),
		},
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
