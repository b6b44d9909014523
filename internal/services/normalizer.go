package services

import (
	"strconv"
	"strings"

	"fr24/spotter/internal/models/dtos"
)

// NormalizeFlight reconciles one raw flight record, plus an optional detail
// document, into the canonical flight record. The providers disagree on
// field names, so every output field is resolved through a fixed ordered
// chain of alternative keys: feed-array key first, flat library-client key
// next, nested detail path last. Missing or null sub-objects degrade to
// absent fields; this function never fails.
func NormalizeFlight(raw dtos.RawFlight, details dtos.FlightDetails) dtos.Flight {
	data := map[string]any(raw)
	d := map[string]any(details)

	airport := getMap(d, "airport")
	depDetail := getMap(airport, "origin")
	arrDetail := getMap(airport, "destination")

	depPos := getMap(depDetail, "position")
	arrPos := getMap(arrDetail, "position")
	depRegion := getMap(depPos, "region")
	arrRegion := getMap(arrPos, "region")
	depCountry := getMap(depPos, "country")
	arrCountry := getMap(arrPos, "country")
	depCode := getMap(depDetail, "code")
	arrCode := getMap(arrDetail, "code")

	airline := getMap(d, "airline")
	airlineCode := getMap(airline, "code")

	identification := getMap(d, "identification")
	identNumber := getMap(identification, "number")

	aircraft := getMap(d, "aircraft")
	aircraftModel := getMap(aircraft, "model")

	status := getMap(d, "status")

	statusText := strings.ToLower(derefOr(safeStr(firstValue(data["status"], status["text"])), ""))
	isPast := strings.Contains(statusText, "landed") || strings.Contains(statusText, "arrived")

	return dtos.Flight{
		FR24ID:       derefOr(safeStr(firstValue(data["id"], data["flight_id"])), "unknown"),
		FlightNumber: safeStr(firstValue(data["number"], data["flight"], data["flight_number"], identNumber["default"])),
		Callsign:     safeStr(firstValue(data["callsign"], identification["callsign"])),
		Airline: joinAirline(
			firstValue(data["airline_name"], airline["name"]),
			firstValue(data["airline_icao"], airlineCode["icao"]),
			firstValue(data["airline_iata"], airlineCode["iata"]),
		),
		AircraftICAO:         safeStr(firstValue(data["aircraft_code"], data["aircraft_icao"], aircraftModel["code"])),
		DepartureAirport:     safeStr(firstValue(data["origin_airport_iata"], data["airport_origin_code_iata"], depCode["iata"])),
		DepartureAirportICAO: safeStr(firstValue(data["origin_airport_icao"], data["airport_origin_code_icao"], depCode["icao"])),
		DepartureCity:        safeStr(firstValue(data["origin_city"], data["airport_origin_city"], depRegion["city"])),
		DepartureCountry:     safeStr(firstValue(data["origin_country"], data["airport_origin_country_name"], depCountry["name"])),
		ArrivalAirport:       safeStr(firstValue(data["destination_airport_iata"], data["airport_destination_code_iata"], arrCode["iata"])),
		ArrivalAirportICAO:   safeStr(firstValue(data["destination_airport_icao"], data["airport_destination_code_icao"], arrCode["icao"])),
		ArrivalCity:          safeStr(firstValue(data["destination_city"], data["airport_destination_city"], arrRegion["city"])),
		ArrivalCountry:       safeStr(firstValue(data["destination_country"], data["airport_destination_country_name"], arrCountry["name"])),
		ScheduledDurationMin: extractDurationMin(data, d),
		IsPast:               isPast,
	}
}

// extractDurationMin derives the scheduled duration in minutes. Attempts, in
// order: scheduled departure/arrival timestamps (nested detail schedule,
// then flat raw fields), actual ("real") timestamps, a raw duration field,
// and finally a small set of duration-like keys in time.other. Each attempt
// is accepted only when strictly positive; otherwise the next one runs. The
// result is positive minutes or absent, never zero or negative.
func extractDurationMin(data, details map[string]any) *int {
	timeObj := getMap(details, "time")

	scheduled := getMap(timeObj, "scheduled")
	depTS := firstValue(scheduled["departure"], data["time_scheduled"], data["scheduled_departure"])
	arrTS := firstValue(scheduled["arrival"], data["time_estimated"], data["scheduled_arrival"])
	if min := timestampDeltaMin(depTS, arrTS); min != nil {
		return min
	}

	real := getMap(timeObj, "real")
	if min := timestampDeltaMin(real["departure"], real["arrival"]); min != nil {
		return min
	}

	if v, ok := asNumber(data["duration"]); ok && v > 0 {
		return intPtr(durationToMinutes(v))
	}

	other := getMap(timeObj, "other")
	for _, key := range []string{"eta", "duration", "delay"} {
		if v, ok := asNumber(other[key]); ok && v > 0 {
			return intPtr(durationToMinutes(v))
		}
	}

	return nil
}

func timestampDeltaMin(dep, arr any) *int {
	depTS, depOK := normalizeTimestamp(dep)
	arrTS, arrOK := normalizeTimestamp(arr)
	if !depOK || !arrOK {
		return nil
	}
	delta := int((arrTS - depTS) / 60)
	if delta <= 0 {
		return nil
	}
	return intPtr(delta)
}

// normalizeTimestamp accepts either a unix timestamp or a sub-object whose
// "timestamp"/"time" key carries one. Values beyond 1e10 are millisecond
// timestamps and are scaled down to seconds.
func normalizeTimestamp(v any) (int64, bool) {
	if m, ok := v.(map[string]any); ok {
		v = firstValue(m["timestamp"], m["time"])
	}
	num, ok := asNumber(v)
	if !ok {
		return 0, false
	}
	if num > 10_000_000_000 {
		num = num / 1000
	}
	return int64(num), true
}

// durationToMinutes applies the seconds-vs-minutes heuristic: values over
// 1000 are seconds, anything smaller is already minutes.
func durationToMinutes(v float64) int {
	if v > 1000 {
		return int(v / 60)
	}
	return int(v)
}

// joinAirline builds the airline display string: name plus ICAO and IATA
// codes joined by spaces, absent when no part exists.
func joinAirline(parts ...any) *string {
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := safeStr(part); s != nil {
			items = append(items, *s)
		}
	}
	if len(items) == 0 {
		return nil
	}
	joined := strings.Join(items, " ")
	return &joined
}

// getMap resolves a nested sub-object, returning nil for anything that is
// missing, null, or not an object. Lookups on a nil map are safe.
func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

// firstValue returns the first argument that is neither nil nor an empty
// string.
func firstValue(vals ...any) any {
	for _, v := range vals {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

// safeStr renders a raw value as a trimmed string pointer, nil when the
// value is missing or trims down to nothing.
func safeStr(v any) *string {
	var text string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		text = t
	case float64:
		text = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		text = strconv.Itoa(t)
	case int64:
		text = strconv.FormatInt(t, 10)
	default:
		return nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &text
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func intPtr(v int) *int {
	return &v
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
