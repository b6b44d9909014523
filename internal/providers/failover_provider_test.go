package providers

import (
	"context"
	"errors"
	"testing"

	"fr24/spotter/internal/models/dtos"
)

type stubProvider struct {
	flights    []dtos.RawFlight
	flightsErr error
	details    dtos.FlightDetails
	detailsErr error
}

func (s *stubProvider) GetLiveFlights(ctx context.Context) ([]dtos.RawFlight, error) {
	return s.flights, s.flightsErr
}

func (s *stubProvider) GetFlightDetails(ctx context.Context, flightID string) (dtos.FlightDetails, error) {
	return s.details, s.detailsErr
}

func (s *stubProvider) GetProviderType() string { return "stub" }

func TestFailoverProvider_PrimarySucceeds(t *testing.T) {
	primary := &stubProvider{flights: []dtos.RawFlight{{"id": "p1"}}}
	fallback := &stubProvider{flights: []dtos.RawFlight{{"id": "f1"}}}

	provider := NewFailoverProvider(primary, fallback)
	flights, err := provider.GetLiveFlights(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(flights) != 1 || flights[0]["id"] != "p1" {
		t.Errorf("Expected the primary result, got %v", flights)
	}
}

func TestFailoverProvider_FallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubProvider{flightsErr: errors.New("feed down")}
	fallback := &stubProvider{flights: []dtos.RawFlight{{"id": "f1"}}}

	provider := NewFailoverProvider(primary, fallback)
	flights, err := provider.GetLiveFlights(context.Background())
	if err != nil {
		t.Fatalf("Expected fallback to rescue, got %v", err)
	}
	if len(flights) != 1 || flights[0]["id"] != "f1" {
		t.Errorf("Expected the fallback result, got %v", flights)
	}
}

func TestFailoverProvider_BothFail(t *testing.T) {
	primary := &stubProvider{flightsErr: errors.New("feed down")}
	fallback := &stubProvider{flightsErr: errors.New("api down")}

	provider := NewFailoverProvider(primary, fallback)
	_, err := provider.GetLiveFlights(context.Background())
	if err == nil {
		t.Fatal("Expected an error when both sources fail")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected a ProviderError, got %T", err)
	}
}

func TestFailoverProvider_NoFallbackConfigured(t *testing.T) {
	primary := &stubProvider{flightsErr: errors.New("feed down")}

	provider := NewFailoverProvider(primary, nil)
	_, err := provider.GetLiveFlights(context.Background())
	if err == nil {
		t.Fatal("Expected an error when the only source fails")
	}
}

func TestFailoverProvider_DetailsFallBack(t *testing.T) {
	primary := &stubProvider{detailsErr: errors.New("clickhandler down")}
	fallback := &stubProvider{details: dtos.FlightDetails{"status": map[string]any{"text": "Landed"}}}

	provider := NewFailoverProvider(primary, fallback)
	details, err := provider.GetFlightDetails(context.Background(), "x1")
	if err != nil {
		t.Fatalf("Expected fallback details, got %v", err)
	}
	if details == nil {
		t.Fatal("Expected a detail document")
	}
}
