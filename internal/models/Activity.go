package models

// Activity is a CRM activity (call, meeting, task, email...). Owner is the
// assignee.
type Activity struct {
	ID               ID        `json:"id"`
	Type             string    `json:"type"`
	KeyString        string    `json:"key_string"`
	Subject          string    `json:"subject"`
	Note             string    `json:"note"`
	Done             Flag      `json:"done"`
	DueDate          Timestamp `json:"due_date"`
	MarkedAsDoneTime Timestamp `json:"marked_as_done_time"`
	DealID           ID        `json:"deal_id"`
	Owner            OwnerRef  `json:"user_id"`
}

// CallActivity is an activity classified as a phone call, with the title of
// the deal it was logged against (empty when none).
type CallActivity struct {
	Activity
	DealTitle string `json:"deal_title"`
}
