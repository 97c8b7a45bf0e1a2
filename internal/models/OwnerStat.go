package models

type OwnerStat struct {
	OwnerID        OwnerID `json:"owner_id"`
	Name           string  `json:"name"`
	CallsMade      int     `json:"calls_made"`
	NotesCreated   int     `json:"notes_created"`
	DealMovements  int     `json:"deal_movements"`
	ActivitiesDone int     `json:"activities_done"`
	DealsWon       int     `json:"deals_won"`
	DealsLost      int     `json:"deals_lost"`
}

// Total is the sum of all six counters.
func (s OwnerStat) Total() int {
	return s.CallsMade + s.NotesCreated + s.DealMovements + s.ActivitiesDone + s.DealsWon + s.DealsLost
}

func (s OwnerStat) IsEmpty() bool {
	return s.Total() == 0
}
