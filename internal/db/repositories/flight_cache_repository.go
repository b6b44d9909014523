package repositories

import (
	"context"
	"encoding/json"
	"time"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fr24/spotter/internal/logging"
	"fr24/spotter/internal/models/dtos"
	gormModels "fr24/spotter/internal/models/gorm"
)

// FlightCacheRepository persists normalized flights keyed by fr24_id so that
// recently seen flights remain queryable after they land.
type FlightCacheRepository struct {
	db *gormlib.DB
}

// NewFlightCacheRepository creates a new flight cache repository
func NewFlightCacheRepository(db *gormlib.DB) *FlightCacheRepository {
	return &FlightCacheRepository{db: db}
}

// SaveAll upserts the given flights. On fr24_id conflict the payload and
// cached_at timestamp are replaced, so the last search wins.
func (r *FlightCacheRepository) SaveAll(ctx context.Context, flights []dtos.Flight) error {
	if len(flights) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]gormModels.CachedFlight, 0, len(flights))
	for _, f := range flights {
		payload, err := json.Marshal(f)
		if err != nil {
			logging.Warn("Skipping uncacheable flight", "fr24_id", f.FR24ID, "error", err.Error())
			continue
		}
		rows = append(rows, gormModels.CachedFlight{
			FR24ID:   f.FR24ID,
			Payload:  string(payload),
			CachedAt: now,
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fr24_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "cached_at"}),
		}).
		CreateInBatches(rows, 100).Error
}

// GetAll returns every cached flight. Rows whose payload no longer parses
// are skipped rather than failing the whole read.
func (r *FlightCacheRepository) GetAll(ctx context.Context) ([]dtos.Flight, error) {
	var rows []gormModels.CachedFlight
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	flights := make([]dtos.Flight, 0, len(rows))
	for _, row := range rows {
		var f dtos.Flight
		if err := json.Unmarshal([]byte(row.Payload), &f); err != nil {
			logging.Warn("Dropping unreadable cache row", "fr24_id", row.FR24ID, "error", err.Error())
			continue
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// Prune deletes entries last cached before now minus the retention window
// and returns the number of rows removed.
func (r *FlightCacheRepository) Prune(ctx context.Context, days int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -days)

	res := r.db.WithContext(ctx).
		Where("cached_at < ?", threshold).
		Delete(&gormModels.CachedFlight{})

	return res.RowsAffected, res.Error
}
