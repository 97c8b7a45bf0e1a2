package analytics

import (
	"crmdigest/internal/models"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// dedupe drops records whose id was already seen, keeping the first.
// Records without a usable id are always kept.
func dedupe[T any](items []T, id func(T) models.ID) []T {
	seen := roaring.New()
	out := make([]T, 0, len(items))
	for _, it := range items {
		key := id(it)
		if !key.Valid() || key > math.MaxUint32 {
			out = append(out, it)
			continue
		}
		if seen.CheckedAdd(uint32(key)) {
			out = append(out, it)
		}
	}
	return out
}

func DedupeDeals(deals []models.Deal) []models.Deal {
	return dedupe(deals, func(d models.Deal) models.ID { return d.ID })
}

func DedupeActivities(activities []models.Activity) []models.Activity {
	return dedupe(activities, func(a models.Activity) models.ID { return a.ID })
}

func DedupeNotes(notes []models.Note) []models.Note {
	return dedupe(notes, func(n models.Note) models.ID { return n.ID })
}
