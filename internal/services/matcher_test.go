package services

import (
	"testing"

	"fr24/spotter/internal/models/dtos"
)

func strPtr(s string) *string { return &s }

func intVal(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleFlight() dtos.Flight {
	return dtos.Flight{
		FR24ID:               "1",
		FlightNumber:         strPtr("SU100"),
		Callsign:             strPtr("AFL100"),
		Airline:              strPtr("Aeroflot"),
		AircraftICAO:         strPtr("B738"),
		DepartureAirport:     strPtr("SVO"),
		DepartureCity:        strPtr("Moscow"),
		DepartureCountry:     strPtr("Russia"),
		ArrivalAirport:       strPtr("AYT"),
		ArrivalCity:          strPtr("Antalya"),
		ArrivalCountry:       strPtr("Turkey"),
		ScheduledDurationMin: intVal(180),
	}
}

func TestHasAnyFilter_FalseWhenEmpty(t *testing.T) {
	f := dtos.FlightFilter{}
	if f.HasAnyFilter() {
		t.Error("Expected empty filter to report no criteria")
	}

	// IncludePast alone is not a filter criterion
	f.IncludePast = true
	if f.HasAnyFilter() {
		t.Error("Expected include_past alone to report no criteria")
	}
}

func TestHasAnyFilter_TrueWithOneField(t *testing.T) {
	cases := map[string]dtos.FlightFilter{
		"min_duration": {MinDurationH: floatPtr(1)},
		"max_duration": {MaxDurationH: floatPtr(5)},
		"dep_country":  {DepartureCountry: "Russia"},
		"dep_city":     {DepartureCityOrAirport: "Moscow"},
		"arr_country":  {ArrivalCountry: "Turkey"},
		"arr_airport":  {ArrivalAirport: "AYT"},
		"aircraft":     {AircraftICAO: "B738"},
		"airline":      {Airline: "Aeroflot"},
	}

	for name, filter := range cases {
		if !filter.HasAnyFilter() {
			t.Errorf("%s: expected filter to report a criterion", name)
		}
	}
}

func TestMatchesFilter_AircraftAirlineAndDuration(t *testing.T) {
	flight := sampleFlight()
	filter := dtos.FlightFilter{
		AircraftICAO: "b738",
		Airline:      "aero",
		MinDurationH: floatPtr(2),
		MaxDurationH: floatPtr(4),
	}

	if !MatchesFilter(&flight, &filter, false) {
		t.Error("Expected 180 min B738 Aeroflot flight to match")
	}
}

func TestMatchesFilter_AbsentDurationFailsActiveBound(t *testing.T) {
	flight := sampleFlight()
	flight.ScheduledDurationMin = nil

	if MatchesFilter(&flight, &dtos.FlightFilter{MinDurationH: floatPtr(1)}, false) {
		t.Error("Expected absent duration to fail an active min bound")
	}
	if MatchesFilter(&flight, &dtos.FlightFilter{MaxDurationH: floatPtr(10)}, false) {
		t.Error("Expected absent duration to fail an active max bound")
	}
}

func TestMatchesFilter_SkipDurationMode(t *testing.T) {
	flight := sampleFlight()
	flight.ScheduledDurationMin = nil

	filter := dtos.FlightFilter{MinDurationH: floatPtr(1), AircraftICAO: "B738"}
	if !MatchesFilter(&flight, &filter, true) {
		t.Error("Expected skipDuration to ignore the duration bound")
	}
}

func TestMatchesFilter_DurationBoundEdges(t *testing.T) {
	flight := sampleFlight()

	if MatchesFilter(&flight, &dtos.FlightFilter{MinDurationH: floatPtr(3.5)}, false) {
		t.Error("Expected 180 min to fail a 3.5h minimum")
	}
	if MatchesFilter(&flight, &dtos.FlightFilter{MaxDurationH: floatPtr(2.5)}, false) {
		t.Error("Expected 180 min to fail a 2.5h maximum")
	}
	if !MatchesFilter(&flight, &dtos.FlightFilter{MinDurationH: floatPtr(3), MaxDurationH: floatPtr(3)}, false) {
		t.Error("Expected 180 min to sit exactly on a 3h..3h window")
	}
}

func TestMatchesFilter_CountryAliasRussian(t *testing.T) {
	flight := sampleFlight()

	if !MatchesFilter(&flight, &dtos.FlightFilter{DepartureCountry: "Россия"}, false) {
		t.Error(`Expected "Россия" to match departure country Russia`)
	}
	if !MatchesFilter(&flight, &dtos.FlightFilter{DepartureCountry: "РФ"}, false) {
		t.Error(`Expected "РФ" to match departure country Russia`)
	}
	if !MatchesFilter(&flight, &dtos.FlightFilter{ArrivalCountry: "турция"}, false) {
		t.Error(`Expected "турция" to match arrival country Turkey`)
	}
	if MatchesFilter(&flight, &dtos.FlightFilter{DepartureCountry: "германия"}, false) {
		t.Error(`Expected "германия" not to match departure country Russia`)
	}
}

func TestMatchesFilter_CountryUnknownAliasPassesThrough(t *testing.T) {
	flight := sampleFlight()
	if !MatchesFilter(&flight, &dtos.FlightFilter{DepartureCountry: "  RUSSIA "}, false) {
		t.Error("Expected unknown alias to fall back to lower/trim containment")
	}
}

func TestMatchesFilter_AirlineByCallsignPrefix(t *testing.T) {
	flight := sampleFlight()
	flight.Callsign = strPtr("AFL1200")
	flight.FlightNumber = strPtr("SU1200")
	flight.Airline = strPtr("Aeroflot")

	if !MatchesFilter(&flight, &dtos.FlightFilter{Airline: "AFL"}, false) {
		t.Error("Expected AFL to match via the callsign prefix")
	}
	if !MatchesFilter(&flight, &dtos.FlightFilter{Airline: "su12"}, false) {
		t.Error("Expected su12 to match via the flight number")
	}
}

func TestMatchesFilter_AirlineAbsentEverywhere(t *testing.T) {
	flight := sampleFlight()
	flight.Airline = nil
	flight.Callsign = nil
	flight.FlightNumber = nil

	if MatchesFilter(&flight, &dtos.FlightFilter{Airline: "AFL"}, false) {
		t.Error("Expected an airline filter to fail when all three fields are absent")
	}
}

func TestMatchesFilter_DepartureCityOrAirport(t *testing.T) {
	flight := sampleFlight()
	flight.DepartureAirportICAO = strPtr("UUEE")

	for _, query := range []string{"mosc", "svo", "uuee"} {
		if !MatchesFilter(&flight, &dtos.FlightFilter{DepartureCityOrAirport: query}, false) {
			t.Errorf("Expected %q to match city, IATA or ICAO", query)
		}
	}
	if MatchesFilter(&flight, &dtos.FlightFilter{DepartureCityOrAirport: "led"}, false) {
		t.Error("Expected led not to match any departure field")
	}
}

func TestMatchesFilter_ArrivalAirportCodesOnly(t *testing.T) {
	flight := sampleFlight()
	flight.ArrivalAirportICAO = strPtr("LTAI")

	if !MatchesFilter(&flight, &dtos.FlightFilter{ArrivalAirport: "ayt"}, false) {
		t.Error("Expected IATA code to match the arrival airport filter")
	}
	if !MatchesFilter(&flight, &dtos.FlightFilter{ArrivalAirport: "ltai"}, false) {
		t.Error("Expected ICAO code to match the arrival airport filter")
	}
	// Arrival city deliberately does not participate in this filter.
	if MatchesFilter(&flight, &dtos.FlightFilter{ArrivalAirport: "antalya"}, false) {
		t.Error("Expected the arrival city not to match the arrival airport filter")
	}
}

func TestMatchesPrefilter_ChecksOnlyFeedFields(t *testing.T) {
	flight := sampleFlight()
	// Country filters are deferred to the detail phase, so the prefilter
	// must pass a flight whose country would not match.
	filter := dtos.FlightFilter{
		DepartureCountry: "Germany",
		AircraftICAO:     "B738",
	}
	if !MatchesPrefilter(&flight, &filter) {
		t.Error("Expected prefilter to ignore the country criterion")
	}

	if MatchesPrefilter(&flight, &dtos.FlightFilter{AircraftICAO: "A320"}) {
		t.Error("Expected prefilter to reject on aircraft type")
	}
	if MatchesPrefilter(&flight, &dtos.FlightFilter{Airline: "Lufthansa"}) {
		t.Error("Expected prefilter to reject on airline text")
	}
}
