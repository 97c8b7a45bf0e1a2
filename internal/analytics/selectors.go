package analytics

import "crmdigest/internal/models"

// CallActivities keeps the activities classified as calls.
func CallActivities(activities []models.Activity) []models.Activity {
	calls := make([]models.Activity, 0)
	for _, a := range activities {
		if IsCall(a) {
			calls = append(calls, a)
		}
	}
	return calls
}

// CompletedActivities keeps activities marked done inside the window.
// The done flag alone would count work completed on any earlier day.
func CompletedActivities(activities []models.Activity, w Window) []models.Activity {
	done := make([]models.Activity, 0)
	for _, a := range activities {
		if bool(a.Done) && w.Contains(a.MarkedAsDoneTime) {
			done = append(done, a)
		}
	}
	return done
}

func WonDeals(deals []models.Deal, w Window) []models.Deal {
	won := make([]models.Deal, 0)
	for _, d := range deals {
		if d.Status == models.DealWon && w.Contains(d.WonTime) {
			won = append(won, d)
		}
	}
	return won
}

func LostDeals(deals []models.Deal, w Window) []models.Deal {
	lost := make([]models.Deal, 0)
	for _, d := range deals {
		if d.Status == models.DealLost && w.Contains(d.LostTime) {
			lost = append(lost, d)
		}
	}
	return lost
}

// NotesInWindow keeps notes added inside the window.
func NotesInWindow(notes []models.Note, w Window) []models.Note {
	kept := make([]models.Note, 0)
	for _, n := range notes {
		if w.Contains(n.AddTime) {
			kept = append(kept, n)
		}
	}
	return kept
}

// ScopeDeals keeps deals of one pipeline; 0 keeps everything.
func ScopeDeals(deals []models.Deal, pipelineID models.ID) []models.Deal {
	if !pipelineID.Valid() {
		return deals
	}
	scoped := make([]models.Deal, 0)
	for _, d := range deals {
		if d.PipelineID == pipelineID {
			scoped = append(scoped, d)
		}
	}
	return scoped
}

// ScopeActivities keeps activities logged against a deal in dealsByID when a
// pipeline is selected. Activities without a deal are dropped in that case.
func ScopeActivities(activities []models.Activity, dealsByID map[models.ID]models.Deal, pipelineID models.ID) []models.Activity {
	if !pipelineID.Valid() {
		return activities
	}
	scoped := make([]models.Activity, 0)
	for _, a := range activities {
		if _, ok := dealsByID[a.DealID]; ok && a.DealID.Valid() {
			scoped = append(scoped, a)
		}
	}
	return scoped
}

func DealsByID(deals []models.Deal) map[models.ID]models.Deal {
	m := make(map[models.ID]models.Deal, len(deals))
	for _, d := range deals {
		if d.ID.Valid() {
			m[d.ID] = d
		}
	}
	return m
}

// AttachDeals pairs every call with the title of its deal, if known.
func AttachDeals(calls []models.Activity, dealsByID map[models.ID]models.Deal) []models.CallActivity {
	out := make([]models.CallActivity, 0, len(calls))
	for _, c := range calls {
		ca := models.CallActivity{Activity: c}
		if d, ok := dealsByID[c.DealID]; ok && c.DealID.Valid() {
			ca.DealTitle = d.Title
		}
		out = append(out, ca)
	}
	return out
}
