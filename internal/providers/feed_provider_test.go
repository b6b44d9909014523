package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fr24/spotter/internal/common"
)

const feedPayload = `{
	"full_count": 14000,
	"version": 4,
	"2f1c64a3": ["508ABC", 55.97, 37.41, 220, 36000, 450, "7421", "T-UUEE1", "B738", "VP-BZB", 1700000000, "SVO", "AYT", "SU2146", 0, 0, "AFL2146", 0],
	"stats": {"total": {"ads-b": 9000}}
}`

func newFeedProvider(feedURL, detailsURL string) *FeedProvider {
	return &FeedProvider{
		FeedURL:    feedURL,
		DetailsURL: detailsURL,
		Client:     &http.Client{},
		cache:      common.NewCacheService(60, 120),
	}
}

func TestFeedProvider_GetLiveFlights_ParsesPositionalArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("bounds") != "90,-90,-180,180" {
			t.Errorf("Expected global bounds parameter, got %s", r.URL.Query().Get("bounds"))
		}
		w.Write([]byte(feedPayload))
	}))
	defer server.Close()

	provider := newFeedProvider(server.URL, server.URL)

	flights, err := provider.GetLiveFlights(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// full_count, version and stats entries must be skipped
	if len(flights) != 1 {
		t.Fatalf("Expected 1 flight, got %d", len(flights))
	}

	raw := flights[0]
	if raw["id"] != "2f1c64a3" {
		t.Errorf("Expected id 2f1c64a3, got %v", raw["id"])
	}
	if raw["aircraft_code"] != "B738" {
		t.Errorf("Expected aircraft B738, got %v", raw["aircraft_code"])
	}
	if raw["origin_airport_iata"] != "SVO" {
		t.Errorf("Expected origin SVO, got %v", raw["origin_airport_iata"])
	}
	if raw["destination_airport_iata"] != "AYT" {
		t.Errorf("Expected destination AYT, got %v", raw["destination_airport_iata"])
	}
	if raw["number"] != "SU2146" {
		t.Errorf("Expected number SU2146, got %v", raw["number"])
	}
	if raw["callsign"] != "AFL2146" {
		t.Errorf("Expected callsign AFL2146, got %v", raw["callsign"])
	}
}

func TestFeedProvider_GetLiveFlights_MemoizesFeed(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(feedPayload))
	}))
	defer server.Close()

	provider := newFeedProvider(server.URL, server.URL)
	ctx := context.Background()

	if _, err := provider.GetLiveFlights(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := provider.GetLiveFlights(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if calls != 1 {
		t.Errorf("Expected one upstream call for two reads, got %d", calls)
	}
}

func TestFeedProvider_GetLiveFlights_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	provider := newFeedProvider(server.URL, server.URL)

	_, err := provider.GetLiveFlights(context.Background())
	if err == nil {
		t.Fatal("Expected an error for a non-2xx feed response")
	}
	if _, ok := err.(*ProviderError); !ok {
		t.Errorf("Expected a ProviderError, got %T", err)
	}
}

func TestFeedProvider_GetFlightDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("flight") != "2f1c64a3" {
			t.Errorf("Expected flight query parameter, got %s", r.URL.Query().Get("flight"))
		}
		w.Write([]byte(`{"identification": {"callsign": "AFL2146"}, "status": {"text": "Landed 14:22"}}`))
	}))
	defer server.Close()

	provider := newFeedProvider(server.URL, server.URL)

	details, err := provider.GetFlightDetails(context.Background(), "2f1c64a3")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ident, ok := details["identification"].(map[string]any)
	if !ok || ident["callsign"] != "AFL2146" {
		t.Errorf("Expected nested identification document, got %v", details["identification"])
	}
}

func TestFeedProvider_GetFlightDetails_EmptyID(t *testing.T) {
	provider := newFeedProvider("http://unused", "http://unused")

	_, err := provider.GetFlightDetails(context.Background(), "")
	if err == nil {
		t.Error("Expected error for empty flight ID")
	}
}
