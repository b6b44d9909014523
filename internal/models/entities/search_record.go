package entities

import "time"

// SearchRecord is one row of the search_history table.
type SearchRecord struct {
	ID          int64     `db:"id" json:"id"`
	Filters     string    `db:"filters" json:"filters"`
	ResultCount int       `db:"result_count" json:"result_count"`
	DurationMs  int64     `db:"duration_ms" json:"duration_ms"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
