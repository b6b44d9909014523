package dtos

// FlightFilter carries the user's search criteria. Every field is optional
// and all set fields must match (conjunctive). An all-empty filter is
// rejected before any external call is made.
type FlightFilter struct {
	MinDurationH           *float64 `json:"min_duration_h"`
	MaxDurationH           *float64 `json:"max_duration_h"`
	DepartureCountry       string   `json:"departure_country"`
	DepartureCityOrAirport string   `json:"departure_city_or_airport"`
	ArrivalCountry         string   `json:"arrival_country"`
	ArrivalAirport         string   `json:"arrival_airport"`
	AircraftICAO           string   `json:"aircraft_icao"`
	Airline                string   `json:"airline"`
	IncludePast            bool     `json:"include_past"`
}

// HasAnyFilter reports whether at least one criterion is set. IncludePast on
// its own is not a criterion.
func (f *FlightFilter) HasAnyFilter() bool {
	return f.MinDurationH != nil ||
		f.MaxDurationH != nil ||
		f.DepartureCountry != "" ||
		f.DepartureCityOrAirport != "" ||
		f.ArrivalCountry != "" ||
		f.ArrivalAirport != "" ||
		f.AircraftICAO != "" ||
		f.Airline != ""
}

// HasDurationFilter reports whether either duration bound is set.
func (f *FlightFilter) HasDurationFilter() bool {
	return f.MinDurationH != nil || f.MaxDurationH != nil
}

// NeedsDetails reports whether matching requires fields that usually only
// appear in the per-flight detail lookup (countries, cities, ICAO codes).
func (f *FlightFilter) NeedsDetails() bool {
	return f.DepartureCountry != "" ||
		f.DepartureCityOrAirport != "" ||
		f.ArrivalCountry != "" ||
		f.ArrivalAirport != ""
}
