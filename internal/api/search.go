package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/logging"
	"fr24/spotter/internal/models/dtos"
)

// SearchFlightsHandler handles POST /api/v1/flights/search.
//
// Request-shape errors (empty filter, inverted duration bounds) are rejected
// before any external call. A failed live-feed fetch and recovered panics are
// the only 500s; everything else inside the search degrades per candidate.
func SearchFlightsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				logging.Error("Panic during flight search", "panic", fmt.Sprintf("%v", rec))
				respondWithError(w, http.StatusInternalServerError,
					fmt.Sprintf("%s: %v", constants.MsgInternalError, rec))
			}
		}()

		var filter dtos.FlightFilter
		if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		if !filter.HasAnyFilter() {
			respondWithError(w, http.StatusBadRequest, constants.MsgNoFilters)
			return
		}

		if filter.MinDurationH != nil && filter.MaxDurationH != nil &&
			*filter.MinDurationH > *filter.MaxDurationH {
			respondWithError(w, http.StatusBadRequest, constants.MsgDurationBounds)
			return
		}

		limit := constants.DefaultSearchLimit
		if qs := r.URL.Query().Get("limit"); qs != "" {
			if n, err := strconv.Atoi(qs); err == nil && n > 0 {
				limit = n
			}
		}

		ctx := r.Context()

		// Retention sweep before the search; a failed sweep never blocks it.
		if removed, err := deps.Repo.FlightCache.Prune(ctx, constants.CacheRetentionDays); err != nil {
			logging.Warn("Cache prune failed", "error", err.Error())
		} else if removed > 0 {
			deps.Metrics.AddPrunedRows(removed)
			logging.Info("Pruned stale cached flights", "removed", removed)
		}

		flights, err := deps.Services.Search.Search(ctx, &filter, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if err := deps.Repo.FlightCache.SaveAll(ctx, flights); err != nil {
			logging.Warn("Failed to cache search results", "error", err.Error())
		}

		result := flights
		if filter.IncludePast {
			result = appendPastFlights(r, deps, result)
		}

		recordSearchHistory(r, deps, &filter, len(result), time.Since(initTime))

		respondWithSuccess(w, http.StatusOK, &dtos.FlightSearchResult{
			Count:   len(result),
			Flights: result,
		})
	}
}

// appendPastFlights merges already-landed cached flights into the result,
// skipping identifiers the live search already returned.
func appendPastFlights(r *http.Request, deps *Dependencies, result []dtos.Flight) []dtos.Flight {
	cached, err := deps.Repo.FlightCache.GetAll(r.Context())
	if err != nil {
		logging.Warn("Failed to read cached flights", "error", err.Error())
		return result
	}

	seen := make(map[string]bool, len(result))
	for _, f := range result {
		seen[f.FR24ID] = true
	}
	for _, f := range cached {
		if f.IsPast && !seen[f.FR24ID] {
			result = append(result, f)
		}
	}
	return result
}

func recordSearchHistory(r *http.Request, deps *Dependencies, filter *dtos.FlightFilter, resultCount int, took time.Duration) {
	filtersJSON, err := json.Marshal(filter)
	if err != nil {
		return
	}
	if err := deps.Repo.History.Insert(r.Context(), string(filtersJSON), resultCount, took.Milliseconds()); err != nil {
		logging.Warn("Failed to record search history", "error", err.Error())
	}
}

// SearchHistoryHandler handles GET /api/v1/search/history
func SearchHistoryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if qs := r.URL.Query().Get("limit"); qs != "" {
			if n, err := strconv.Atoi(qs); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		records, err := deps.Repo.History.Recent(r.Context(), limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, http.StatusOK, &records)
	}
}
