package analytics

import "crmdigest/internal/models"

// Records are the raw collections fetched for one report run. Optional
// sources that failed to load are empty, never nil-checked downstream.
type Records struct {
	Deals      []models.Deal
	Activities []models.Activity
	Notes      []models.Note
	Users      []models.User
	Pipelines  []models.Pipeline
}

// Collect runs the filters, enrichers and deriver over one day of records.
func Collect(w Window, rec Records, pipelineID models.ID) Sources {
	deals := ScopeDeals(DedupeDeals(rec.Deals), pipelineID)
	dealsByID := DealsByID(deals)
	activities := ScopeActivities(DedupeActivities(rec.Activities), dealsByID, pipelineID)

	return Sources{
		Calls:     AttachDeals(CallActivities(activities), dealsByID),
		Notes:     EnrichNotes(NotesInWindow(DedupeNotes(rec.Notes), w), dealsByID, NoteScope{PipelineID: pipelineID}),
		Movements: DeriveMovements(deals, w, rec.Pipelines),
		Completed: CompletedActivities(activities, w),
		Won:       WonDeals(deals, w),
		Lost:      LostDeals(deals, w),
	}
}

// Build produces the report for window w.
func Build(w Window, rec Records, pipelineID models.ID) *models.Report {
	src := Collect(w, rec, pipelineID)
	return Assemble(w.Start, src, Aggregate(src, rec.Users))
}
