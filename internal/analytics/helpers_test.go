package analytics

import (
	"crmdigest/internal/models"
	"time"
)

var testLoc = time.FixedZone("EST", -5*60*60)

// reportDay is the day every fixture reports on.
var reportDay = time.Date(2025, time.March, 10, 0, 0, 0, 0, testLoc)

func at(hour, min int) models.Timestamp {
	return models.NewTimestamp(reportDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute))
}

func dayWindow() Window {
	return DayWindow(reportDay, testLoc)
}
