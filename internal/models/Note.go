package models

type Note struct {
	ID      ID        `json:"id"`
	Content string    `json:"content"`
	DealID  ID        `json:"deal_id"`
	Owner   OwnerRef  `json:"user_id"`
	AddTime Timestamp `json:"add_time"`
}

// EnrichedNote is a note joined to its deal. Owner is the attribution owner
// (the deal owner when the note hangs off a deal); Author is who wrote it.
type EnrichedNote struct {
	ID        ID        `json:"id"`
	Content   string    `json:"content"`
	DealID    ID        `json:"deal_id"`
	DealTitle string    `json:"deal_title"`
	Owner     OwnerRef  `json:"deal_owner"`
	Author    OwnerRef  `json:"user_id"`
	AddTime   Timestamp `json:"add_time"`
}
