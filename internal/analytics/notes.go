package analytics

import "crmdigest/internal/models"

const (
	NoDealTitle        = "No Deal Associated"
	defaultNoteContent = "Note added"
)

// NoteScope restricts enrichment to one pipeline. The zero value means no
// restriction.
type NoteScope struct {
	PipelineID models.ID
}

func (s NoteScope) scoped() bool {
	return s.PipelineID.Valid()
}

// EnrichNote joins a note to its deal. Notes on deals missing from dealsByID
// are dropped, as are deal-less notes when scoping to a pipeline. Note
// activity on a deal is credited to the deal owner; the author is used only
// when there is no deal or the deal has no owner.
func EnrichNote(note models.Note, dealsByID map[models.ID]models.Deal, scope NoteScope) (models.EnrichedNote, bool) {
	en := models.EnrichedNote{
		ID:      note.ID,
		Content: note.Content,
		DealID:  note.DealID,
		Author:  note.Owner,
		AddTime: note.AddTime,
	}
	if en.Content == "" {
		en.Content = defaultNoteContent
	}

	if !note.DealID.Valid() {
		if scope.scoped() {
			return models.EnrichedNote{}, false
		}
		en.DealTitle = NoDealTitle
		en.Owner = note.Owner
		return en, true
	}

	deal, ok := dealsByID[note.DealID]
	if !ok {
		return models.EnrichedNote{}, false
	}
	if scope.scoped() && deal.PipelineID != scope.PipelineID {
		return models.EnrichedNote{}, false
	}

	en.DealTitle = deal.Title
	en.Owner = deal.Owner
	if en.Owner.IsAbsent() {
		en.Owner = note.Owner
	}
	return en, true
}

func EnrichNotes(notes []models.Note, dealsByID map[models.ID]models.Deal, scope NoteScope) []models.EnrichedNote {
	out := make([]models.EnrichedNote, 0, len(notes))
	for _, n := range notes {
		if en, ok := EnrichNote(n, dealsByID, scope); ok {
			out = append(out, en)
		}
	}
	return out
}
