package providers

import (
	"context"
	"fmt"

	"fr24/spotter/internal/models/dtos"
)

// FlightProvider defines the interface for live flight data sources
type FlightProvider interface {
	// GetLiveFlights fetches the list of currently airborne flights
	GetLiveFlights(ctx context.Context) ([]dtos.RawFlight, error)

	// GetFlightDetails fetches the detail document for one flight
	GetFlightDetails(ctx context.Context, flightID string) (dtos.FlightDetails, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
