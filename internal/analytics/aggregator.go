package analytics

import (
	"crmdigest/internal/models"
	"sort"
)

// Sources are the filtered collections of one report day.
type Sources struct {
	Calls     []models.CallActivity
	Notes     []models.EnrichedNote
	Movements []models.Movement
	Completed []models.Activity
	Won       []models.Deal
	Lost      []models.Deal
}

// Aggregate produces one OwnerStat per owner with at least one event,
// ordered by total activity, descending. Owners keep their order of first
// appearance on ties. A record whose owner cannot be resolved is counted
// by no one.
func Aggregate(src Sources, users []models.User) []models.OwnerStat {
	dir := newDirectory(users)
	stats := make(map[models.OwnerID]*models.OwnerStat)
	embedded := make(map[models.OwnerID]string)
	order := make([]models.OwnerID, 0)

	owner := func(ref models.OwnerRef) *models.OwnerStat {
		id, ok := Normalize(ref)
		if !ok {
			return nil
		}
		st, seen := stats[id]
		if !seen {
			st = &models.OwnerStat{OwnerID: id}
			stats[id] = st
			order = append(order, id)
		}
		if ref.IsEmbedded() && ref.Name() != "" {
			if _, named := embedded[id]; !named {
				embedded[id] = ref.Name()
			}
		}
		return st
	}

	for _, c := range src.Calls {
		if st := owner(c.Owner); st != nil {
			st.CallsMade++
		}
	}
	for _, n := range src.Notes {
		if st := owner(n.Owner); st != nil {
			st.NotesCreated++
		}
	}
	for _, m := range src.Movements {
		if st := owner(m.Owner); st != nil {
			st.DealMovements++
		}
	}
	for _, a := range src.Completed {
		if st := owner(a.Owner); st != nil {
			st.ActivitiesDone++
		}
	}
	for _, d := range src.Won {
		if st := owner(d.Owner); st != nil {
			st.DealsWon++
		}
	}
	for _, d := range src.Lost {
		if st := owner(d.Owner); st != nil {
			st.DealsLost++
		}
	}

	result := make([]models.OwnerStat, 0, len(order))
	for _, id := range order {
		st := stats[id]
		if st.IsEmpty() {
			continue
		}
		st.Name = dir.name(id, embedded[id])
		result = append(result, *st)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total() > result[j].Total()
	})
	return result
}
