package dtos

// RawFlight is one flight as delivered by a provider, before normalization.
// Providers disagree on field names (the positional feed array, the flat
// library-client object, nested detail documents), so the raw record stays a
// generic map and the normalizer resolves each field through an ordered key
// fallback chain.
type RawFlight map[string]any

// FlightDetails is the nested clickhandler document for a single flight.
// Any of its sub-objects (airport, airline, identification, aircraft,
// status, time) may be missing or null.
type FlightDetails map[string]any

// Flight is the canonical, shape-independent flight record used for
// filtering, display and caching. Optional fields are nil pointers and
// serialize as null.
type Flight struct {
	FR24ID               string  `json:"fr24_id"`
	FlightNumber         *string `json:"flight_number"`
	Callsign             *string `json:"callsign"`
	Airline              *string `json:"airline"`
	AircraftICAO         *string `json:"aircraft_icao"`
	DepartureAirport     *string `json:"departure_airport"`
	DepartureAirportICAO *string `json:"departure_airport_icao"`
	DepartureCity        *string `json:"departure_city"`
	DepartureCountry     *string `json:"departure_country"`
	ArrivalAirport       *string `json:"arrival_airport"`
	ArrivalAirportICAO   *string `json:"arrival_airport_icao"`
	ArrivalCity          *string `json:"arrival_city"`
	ArrivalCountry       *string `json:"arrival_country"`
	ScheduledDurationMin *int    `json:"scheduled_duration_min"`
	IsPast               bool    `json:"is_past"`
}
