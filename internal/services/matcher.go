package services

import (
	"strings"

	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/models/dtos"
)

// Filter matching is pure: no state, immutable inputs. All text checks are
// case-insensitive substring containment. An unset filter field always
// passes; a set filter field against an absent record field never does.

// MatchesPrefilter checks only the fields the live feed reliably carries on
// its own: aircraft type and airline/callsign/flight number. Country, city
// and duration need a detail lookup and are deferred to MatchesFilter.
func MatchesPrefilter(flight *dtos.Flight, filter *dtos.FlightFilter) bool {
	if filter.AircraftICAO != "" && !containsMatch(flight.AircraftICAO, filter.AircraftICAO) {
		return false
	}

	if filter.Airline != "" && !matchesAirline(flight, filter.Airline) {
		return false
	}

	return true
}

// MatchesFilter reports whether the flight satisfies every set filter field.
// skipDuration ignores the duration bounds even when set.
func MatchesFilter(flight *dtos.Flight, filter *dtos.FlightFilter, skipDuration bool) bool {
	if !skipDuration && filter.MinDurationH != nil {
		if flight.ScheduledDurationMin == nil || float64(*flight.ScheduledDurationMin) < *filter.MinDurationH*60 {
			return false
		}
	}

	if !skipDuration && filter.MaxDurationH != nil {
		if flight.ScheduledDurationMin == nil || float64(*flight.ScheduledDurationMin) > *filter.MaxDurationH*60 {
			return false
		}
	}

	if filter.DepartureCountry != "" {
		if !containsMatch(normalizeCountryPtr(flight.DepartureCountry), normalizeCountry(filter.DepartureCountry)) {
			return false
		}
	}

	if filter.DepartureCityOrAirport != "" {
		if !containsMatch(flight.DepartureCity, filter.DepartureCityOrAirport) &&
			!containsMatch(flight.DepartureAirport, filter.DepartureCityOrAirport) &&
			!containsMatch(flight.DepartureAirportICAO, filter.DepartureCityOrAirport) {
			return false
		}
	}

	if filter.ArrivalCountry != "" {
		if !containsMatch(normalizeCountryPtr(flight.ArrivalCountry), normalizeCountry(filter.ArrivalCountry)) {
			return false
		}
	}

	if filter.ArrivalAirport != "" {
		if !containsMatch(flight.ArrivalAirport, filter.ArrivalAirport) &&
			!containsMatch(flight.ArrivalAirportICAO, filter.ArrivalAirport) {
			return false
		}
	}

	if filter.AircraftICAO != "" && !containsMatch(flight.AircraftICAO, filter.AircraftICAO) {
		return false
	}

	if filter.Airline != "" && !matchesAirline(flight, filter.Airline) {
		return false
	}

	return true
}

// matchesAirline accepts a hit on the airline display string, the callsign
// or the flight number, so a carrier code like "SU" or "AFL" matches via the
// callsign prefix even when the airline name field is absent.
func matchesAirline(flight *dtos.Flight, expected string) bool {
	return containsMatch(flight.Airline, expected) ||
		containsMatch(flight.Callsign, expected) ||
		containsMatch(flight.FlightNumber, expected)
}

func containsMatch(source *string, expected string) bool {
	if expected == "" {
		return true
	}
	if source == nil || *source == "" {
		return false
	}
	return strings.Contains(strings.ToLower(*source), strings.ToLower(expected))
}

// normalizeCountry lowercases, trims and resolves Russian-language aliases
// to the canonical English name. Unknown values pass through as-is.
func normalizeCountry(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if canonical, ok := constants.CountryAliases[lower]; ok {
		return canonical
	}
	return lower
}

func normalizeCountryPtr(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := normalizeCountry(*value)
	return &normalized
}
