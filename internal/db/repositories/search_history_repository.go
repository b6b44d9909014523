package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/models/entities"
)

// SearchHistoryRepository records every successful search so operators can
// see what people look for. Failures here never fail a search.
type SearchHistoryRepository struct {
	db *sqlx.DB
}

func NewSearchHistoryRepository(db *sqlx.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

func (r *SearchHistoryRepository) Insert(ctx context.Context, filtersJSON string, resultCount int, durationMs int64) error {
	_, err := r.db.ExecContext(ctx, constants.InsertSearchHistory,
		filtersJSON, resultCount, durationMs, time.Now().UTC())
	return err
}

func (r *SearchHistoryRepository) Recent(ctx context.Context, limit int) ([]entities.SearchRecord, error) {
	records := []entities.SearchRecord{}
	err := r.db.SelectContext(ctx, &records, constants.SelectRecentSearches, limit)
	return records, err
}
