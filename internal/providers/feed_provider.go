package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/sync/singleflight"

	"fr24/spotter/internal/common"
	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/models/dtos"
)

const (
	feedCacheKey    = "fr24:feed"
	feedCacheTTL    = 15 * time.Second
	detailsCacheTTL = 60 * time.Second
)

// Positions inside one positional feed array.
const (
	feedIdxAircraftCode = 8
	feedIdxRegistration = 9
	feedIdxTimestamp    = 10
	feedIdxOriginIATA   = 11
	feedIdxDestIATA     = 12
	feedIdxNumber       = 13
	feedIdxCallsign     = 16
	feedMinFields       = 17
)

// FeedProvider fetches live flights from the FlightRadar24 feed.js endpoint
// (one positional array per flight) and per-flight details from the
// clickhandler endpoint. Responses are memoized for a few seconds through
// the shared cache; concurrent cache misses collapse into a single upstream
// call via singleflight.
type FeedProvider struct {
	FeedURL    string
	DetailsURL string
	Client     *http.Client

	cache common.CacheInterface
	group singleflight.Group
}

// NewFeedProvider creates the direct feed provider
func NewFeedProvider(cache common.CacheInterface) *FeedProvider {
	feedURL := os.Getenv("FR24_FEED_URL")
	if feedURL == "" {
		feedURL = "https://data-cloud.flightradar24.com/zones/fcgi/feed.js"
	}
	detailsURL := os.Getenv("FR24_DETAILS_URL")
	if detailsURL == "" {
		detailsURL = "https://data-live.flightradar24.com/clickhandler/"
	}

	return &FeedProvider{
		FeedURL:    feedURL,
		DetailsURL: detailsURL,
		Client: &http.Client{
			Timeout: 12 * time.Second,
		},
		cache: cache,
	}
}

// GetProviderType returns the provider type identifier
func (p *FeedProvider) GetProviderType() string {
	return "fr24_feed"
}

// GetLiveFlights fetches and parses the global live feed
func (p *FeedProvider) GetLiveFlights(ctx context.Context) ([]dtos.RawFlight, error) {
	body, err := p.cache.GetOrSet(feedCacheKey, feedCacheTTL, func() (any, error) {
		raw, err, _ := p.group.Do(feedCacheKey, func() (any, error) {
			return p.fetchFeedBody(ctx)
		})
		return raw, err
	})
	if err != nil {
		return nil, err
	}

	text, ok := body.(string)
	if !ok {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
		}
	}

	return parseFeed([]byte(text))
}

// GetFlightDetails fetches the clickhandler document for one flight
func (p *FeedProvider) GetFlightDetails(ctx context.Context, flightID string) (dtos.FlightDetails, error) {
	if flightID == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "flight ID cannot be empty",
		}
	}

	key := "fr24:details:" + flightID
	body, err := p.cache.GetOrSet(key, detailsCacheTTL, func() (any, error) {
		return p.fetchDetailsBody(ctx, flightID)
	})
	if err != nil {
		return nil, err
	}

	text, ok := body.(string)
	if !ok {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
		}
	}

	var details dtos.FlightDetails
	if err := json.Unmarshal([]byte(text), &details); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "failed to decode flight details",
			Err:     err,
		}
	}
	return details, nil
}

func (p *FeedProvider) fetchFeedBody(ctx context.Context) (string, error) {
	params := url.Values{
		"bounds":    {"90,-90,-180,180"},
		"faa":       {"1"},
		"satellite": {"1"},
		"mlat":      {"1"},
		"flarm":     {"1"},
		"adsb":      {"1"},
		"gnd":       {"1"},
		"air":       {"1"},
		"vehicles":  {"0"},
		"estimated": {"1"},
		"maxage":    {"14400"},
		"gliders":   {"1"},
		"stats":     {"0"},
	}

	return p.doGET(ctx, p.FeedURL+"?"+params.Encode())
}

func (p *FeedProvider) fetchDetailsBody(ctx context.Context, flightID string) (string, error) {
	return p.doGET(ctx, p.DetailsURL+"?flight="+url.QueryEscape(flightID))
}

func (p *FeedProvider) doGET(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code := constants.ErrCodeNetworkError
		if resp.StatusCode == http.StatusTooManyRequests {
			code = constants.ErrCodeRateLimited
		}
		return "", &ProviderError{
			Code:    code,
			Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, rawURL),
			Details: string(bodyBytes),
		}
	}

	return string(bodyBytes), nil
}

// parseFeed turns the feed.js payload into raw flight records. Top-level
// entries that are not positional arrays of at least feedMinFields elements
// (full_count, version, stats) are skipped.
func parseFeed(body []byte) ([]dtos.RawFlight, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "failed to decode live feed",
			Err:     err,
		}
	}

	flights := make([]dtos.RawFlight, 0, len(payload))
	for key, value := range payload {
		var fields []any
		if err := json.Unmarshal(value, &fields); err != nil {
			continue
		}
		if len(fields) < feedMinFields {
			continue
		}
		flights = append(flights, dtos.RawFlight{
			"id":                       key,
			"aircraft_code":            fields[feedIdxAircraftCode],
			"registration":             fields[feedIdxRegistration],
			"timestamp":                fields[feedIdxTimestamp],
			"origin_airport_iata":      fields[feedIdxOriginIATA],
			"destination_airport_iata": fields[feedIdxDestIATA],
			"number":                   fields[feedIdxNumber],
			"callsign":                 fields[feedIdxCallsign],
		})
	}
	return flights, nil
}
