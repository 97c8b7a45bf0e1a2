package analytics

import (
	"crmdigest/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteDeals() map[models.ID]models.Deal {
	return DealsByID([]models.Deal{
		{ID: 1, Title: "Condo 12B", PipelineID: 1, Owner: models.EmbeddedOwner(5, "Ann")},
		{ID: 2, Title: "Ownerless", PipelineID: 1},
		{ID: 3, Title: "Other pipeline", PipelineID: 2, Owner: models.EmbeddedOwner(6, "Bob")},
	})
}

func TestEnrichNote_CreditsDealOwner(t *testing.T) {
	note := models.Note{ID: 9, Content: "Sent floor plans", DealID: 1, Owner: models.RawOwner(8), AddTime: at(11, 0)}
	en, ok := EnrichNote(note, noteDeals(), NoteScope{})

	require.True(t, ok)
	assert.Equal(t, "Condo 12B", en.DealTitle)
	id, _ := Normalize(en.Owner)
	assert.Equal(t, models.OwnerID("5"), id)
	author, _ := Normalize(en.Author)
	assert.Equal(t, models.OwnerID("8"), author)
	assert.Equal(t, "Sent floor plans", en.Content)
}

func TestEnrichNote_NoDeal(t *testing.T) {
	note := models.Note{ID: 9, Owner: models.RawOwner(8)}
	en, ok := EnrichNote(note, noteDeals(), NoteScope{})

	require.True(t, ok)
	assert.Equal(t, NoDealTitle, en.DealTitle)
	assert.Equal(t, "Note added", en.Content)
	id, _ := Normalize(en.Owner)
	assert.Equal(t, models.OwnerID("8"), id)
}

func TestEnrichNote_NoDealExcludedWhenScoped(t *testing.T) {
	_, ok := EnrichNote(models.Note{ID: 9, Owner: models.RawOwner(8)}, noteDeals(), NoteScope{PipelineID: 1})
	assert.False(t, ok)
}

func TestEnrichNote_UnknownDeal(t *testing.T) {
	_, ok := EnrichNote(models.Note{ID: 9, DealID: 404}, noteDeals(), NoteScope{})
	assert.False(t, ok)
}

func TestEnrichNote_DealOutsideScope(t *testing.T) {
	_, ok := EnrichNote(models.Note{ID: 9, DealID: 3}, noteDeals(), NoteScope{PipelineID: 1})
	assert.False(t, ok)
}

func TestEnrichNote_OwnerlessDealFallsBackToAuthor(t *testing.T) {
	en, ok := EnrichNote(models.Note{ID: 9, DealID: 2, Owner: models.RawOwner(8)}, noteDeals(), NoteScope{})
	require.True(t, ok)
	id, _ := Normalize(en.Owner)
	assert.Equal(t, models.OwnerID("8"), id)
}

func TestEnrichNotes_DropsUnmatched(t *testing.T) {
	notes := []models.Note{{ID: 1, DealID: 1}, {ID: 2, DealID: 404}, {ID: 3}}
	assert.Len(t, EnrichNotes(notes, noteDeals(), NoteScope{}), 2)
}
