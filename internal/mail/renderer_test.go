package mail

import (
	"crmdigest/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *models.Report {
	return &models.Report{
		Date:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		DateLabel: "Monday, March 10, 2025",
		Totals:    models.Totals{CallsMade: 3, NotesCreated: 2, DealMovements: 1, ActivitiesDone: 4, DealsWon: 1},
		ByOwner: []models.OwnerStat{
			{OwnerID: "5", Name: "Ann <Sales>", CallsMade: 3, DealsWon: 1},
		},
		Details: models.ReportDetails{
			WonDeals:  []models.Deal{{ID: 1, Title: "Condo 12B", Value: 1500, Currency: "CAD", Owner: models.EmbeddedOwner(5, "Ann")}},
			LostDeals: []models.Deal{},
			Calls:     []models.CallActivity{{Activity: models.Activity{Subject: "Outgoing Call"}, DealTitle: "Condo 12B"}},
			Notes: []models.EnrichedNote{{
				Content:   "Client wants a second viewing",
				DealTitle: "Condo 12B",
				AddTime:   models.NewTimestamp(time.Date(2025, time.March, 10, 16, 0, 0, 0, time.UTC)),
			}},
			Movements: []models.Movement{{DealTitle: "Condo 12B", PipelineName: "Resale", Description: "Deal updated"}},
		},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2025, time.March, 11, 8, 30, 0, 0, time.UTC) }
	return r
}

func TestRenderer_Sections(t *testing.T) {
	html, err := newTestRenderer(t).Render(testReport())
	require.NoError(t, err)

	assert.Contains(t, html, "Monday, March 10, 2025")
	assert.Contains(t, html, "Performance by Team Member")
	assert.Contains(t, html, "Ann &lt;Sales&gt;")
	assert.Contains(t, html, "<strong>3 phone calls</strong>")
	assert.Contains(t, html, "Deal outcomes")
	assert.NotContains(t, html, "deals lost</strong>")
	assert.Contains(t, html, "1500.00 CAD")
	assert.Contains(t, html, "Outgoing Call (Condo 12B)")
	assert.Contains(t, html, "2025-03-10 16:00")
	assert.Contains(t, html, "Condo 12B in Resale: Deal updated")
	assert.Contains(t, html, "Report generated at 2025-03-11 08:30:00 UTC")
	assert.NotContains(t, html, "<h2>Deals Lost</h2>")
}

func TestRenderer_EmptyReport(t *testing.T) {
	report := &models.Report{DateLabel: "Sunday, March 9, 2025", ByOwner: []models.OwnerStat{}}

	html, err := newTestRenderer(t).Render(report)
	require.NoError(t, err)

	assert.NotContains(t, html, "Performance by Team Member")
	assert.NotContains(t, html, "Deal outcomes")
	assert.Contains(t, html, "<strong>0 phone calls</strong>")
}

func TestRenderer_Subject(t *testing.T) {
	assert.Equal(t, "Daily Analytics Report - Monday, March 10, 2025", newTestRenderer(t).Subject(testReport()))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("  short "))

	long := strings.Repeat("é", excerptRunes+10)
	out := excerpt(long)
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Equal(t, excerptRunes+1, len([]rune(out)))
}
