package models

type DealStatus string

const (
	DealOpen    DealStatus = "open"
	DealWon     DealStatus = "won"
	DealLost    DealStatus = "lost"
	DealDeleted DealStatus = "deleted"
)

type Deal struct {
	ID         ID         `json:"id"`
	Title      string     `json:"title"`
	Status     DealStatus `json:"status"`
	Value      float64    `json:"value"`
	Currency   string     `json:"currency"`
	WonTime    Timestamp  `json:"won_time"`
	LostTime   Timestamp  `json:"lost_time"`
	LostReason string     `json:"lost_reason"`
	UpdateTime Timestamp  `json:"update_time"`
	PipelineID ID         `json:"pipeline_id"`
	Owner      OwnerRef   `json:"user_id"`
}

type Pipeline struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ActiveFlag Flag   `json:"active_flag"`
}

// Movement is a synthetic event for a deal updated inside the report window.
type Movement struct {
	ID           string    `json:"id"`
	DealID       ID        `json:"deal_id"`
	DealTitle    string    `json:"deal_title"`
	Owner        OwnerRef  `json:"deal_owner"`
	Description  string    `json:"change_description"`
	ChangeDate   Timestamp `json:"change_date"`
	PipelineID   ID        `json:"pipeline_id"`
	PipelineName string    `json:"pipeline_name"`
}
