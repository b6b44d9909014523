package gorm

import "time"

// CachedFlight is one normalized flight persisted after a search so recently
// seen flights stay queryable after they land. Last write wins on fr24_id.
type CachedFlight struct {
	FR24ID   string    `gorm:"column:fr24_id;primaryKey;type:text"`
	Payload  string    `gorm:"column:payload;type:text;not null"`
	CachedAt time.Time `gorm:"column:cached_at;not null"`
}

// TableName specifies the table name for GORM
func (CachedFlight) TableName() string {
	return "flights_cache"
}
