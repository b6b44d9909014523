package services

import (
	"context"
	"time"

	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/logging"
	"fr24/spotter/internal/metrics"
	"fr24/spotter/internal/models/dtos"
	"fr24/spotter/internal/providers"
)

// SearchService runs one flight search: fetch the live list, prefilter on
// cheap fields, enrich surviving candidates with detail lookups under a
// wall-clock budget, and return everything that matches the full filter.
// Single-threaded and synchronous; the deadline is advisory and checked
// between lookups only.
type SearchService struct {
	provider providers.FlightProvider
	metrics  *metrics.MetricsRegistry
}

func NewSearchService(provider providers.FlightProvider, metricsReg *metrics.MetricsRegistry) *SearchService {
	return &SearchService{
		provider: provider,
		metrics:  metricsReg,
	}
}

// Search returns up to limit matching flights. The only fatal error is a
// total failure to retrieve the live list; detail-lookup failures degrade
// the individual candidate to feed-only fields. Partial results on deadline
// are returned, not an error.
func (s *SearchService) Search(ctx context.Context, filter *dtos.FlightFilter, limit int) ([]dtos.Flight, error) {
	if limit <= 0 {
		limit = constants.DefaultSearchLimit
	}

	start := time.Now()
	hasDuration := filter.HasDurationFilter()
	needsDetails := filter.NeedsDetails()

	budget := time.Duration(constants.DefaultDeadlineSeconds) * time.Second
	if hasDuration && !needsDetails {
		// Duration-only searches do nothing but detail lookups, so they get
		// a longer leash.
		budget = time.Duration(constants.DurationOnlyDeadlineSeconds) * time.Second
	}
	deadline := start.Add(budget)

	raws, err := s.provider.GetLiveFlights(ctx)
	if err != nil {
		s.metrics.IncSearch("feed_error")
		return nil, err
	}

	// Prefilter on fields the feed alone carries. Country, city and duration
	// checks would reject nearly everything before enrichment, so they wait
	// for the detail loop.
	candidates := make([]dtos.RawFlight, 0, len(raws))
	for _, raw := range raws {
		base := NormalizeFlight(raw, nil)
		if MatchesPrefilter(&base, filter) {
			candidates = append(candidates, raw)
		}
	}

	scanLimit := scanLimitFor(limit, hasDuration, needsDetails)
	if scanLimit > len(candidates) {
		scanLimit = len(candidates)
	}

	results := make([]dtos.Flight, 0, limit)
	scanned := 0
	for _, raw := range candidates[:scanLimit] {
		if time.Now().After(deadline) {
			s.metrics.IncSearchDeadline()
			logging.Warn("Search deadline reached, returning partial results",
				"scanned", scanned,
				"matched", len(results),
			)
			break
		}
		scanned++

		flightID, _ := firstValue(raw["id"], raw["flight_id"]).(string)
		details, err := s.provider.GetFlightDetails(ctx, flightID)
		if err != nil {
			// Non-fatal: the candidate continues with feed-only fields.
			s.metrics.IncDetailLookup("error")
			logging.Debug("Detail lookup failed", "fr24_id", flightID, "error", err.Error())
		} else {
			s.metrics.IncDetailLookup("ok")
		}

		flight := NormalizeFlight(raw, details)
		if MatchesFilter(&flight, filter, false) {
			results = append(results, flight)
			if len(results) >= limit {
				break
			}
		}
	}

	s.metrics.IncSearch("ok")
	s.metrics.ObserveSearchDuration(time.Since(start).Seconds())

	logging.Info("Flight search completed",
		"live_flights", len(raws),
		"candidates", len(candidates),
		"scanned", scanned,
		"matched", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return results, nil
}

// scanLimitFor caps how many prefiltered candidates are attempted for detail
// lookup. Route and country filters match sparsely, so they get the widest
// scan; duration-only filters a narrower one.
func scanLimitFor(limit int, hasDuration, needsDetails bool) int {
	switch {
	case needsDetails:
		return maxInt(limit*12, 1200)
	case hasDuration:
		return maxInt(limit*8, 800)
	default:
		return maxInt(limit*4, 220)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
