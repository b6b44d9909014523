package providers

import (
	"context"

	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/logging"
	"fr24/spotter/internal/models/dtos"
)

// FailoverProvider composes a primary and an optional fallback provider.
// The orchestrator only ever sees the FlightProvider interface; which source
// actually answered is a provider concern.
type FailoverProvider struct {
	primary  FlightProvider
	fallback FlightProvider
}

// NewFailoverProvider wires the failover chain. fallback may be nil.
func NewFailoverProvider(primary, fallback FlightProvider) *FailoverProvider {
	return &FailoverProvider{primary: primary, fallback: fallback}
}

// GetProviderType returns the provider type identifier
func (p *FailoverProvider) GetProviderType() string {
	return "fr24_failover"
}

// GetLiveFlights tries the primary source and falls back once. Total
// failure here is the one error that aborts a whole search.
func (p *FailoverProvider) GetLiveFlights(ctx context.Context) ([]dtos.RawFlight, error) {
	flights, err := p.primary.GetLiveFlights(ctx)
	if err == nil {
		return flights, nil
	}

	logging.Warn("Primary flight feed failed",
		"provider", p.primary.GetProviderType(),
		"error", err.Error(),
	)

	if p.fallback != nil {
		flights, ferr := p.fallback.GetLiveFlights(ctx)
		if ferr == nil {
			return flights, nil
		}
		logging.Error("Fallback flight feed failed",
			"provider", p.fallback.GetProviderType(),
			"error", ferr.Error(),
		)
	}

	return nil, &ProviderError{
		Code:    constants.ErrCodeFeedUnavailable,
		Message: constants.MsgFeedUnavailable,
		Err:     err,
	}
}

// GetFlightDetails tries the primary source and falls back once. Callers
// treat any error as "no details available" and continue.
func (p *FailoverProvider) GetFlightDetails(ctx context.Context, flightID string) (dtos.FlightDetails, error) {
	details, err := p.primary.GetFlightDetails(ctx, flightID)
	if err == nil {
		return details, nil
	}

	if p.fallback != nil {
		if details, ferr := p.fallback.GetFlightDetails(ctx, flightID); ferr == nil {
			return details, nil
		}
	}

	return nil, &ProviderError{
		Code:    constants.ErrCodeDetailsUnavailable,
		Message: constants.GetErrorMessage(constants.ErrCodeDetailsUnavailable),
		Err:     err,
	}
}
