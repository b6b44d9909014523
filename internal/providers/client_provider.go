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

	"fr24/spotter/internal/constants"
	"fr24/spotter/internal/models/dtos"
)

// ClientProvider is the fallback flight source: the authenticated FR24 API,
// which returns flights as an object list instead of positional arrays. Its
// response fields are mapped onto the flat library-style key names the
// normalizer resolves, so downstream code never sees the difference.
type ClientProvider struct {
	BaseURL    string
	DetailsURL string
	APIToken   string
	Client     *http.Client
}

// NewClientProvider creates the object-list fallback provider. Returns nil
// when no API token is configured, which disables the fallback path.
func NewClientProvider() *ClientProvider {
	token := os.Getenv("FR24_API_TOKEN")
	if token == "" {
		return nil
	}

	baseURL := os.Getenv("FR24_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://fr24api.flightradar24.com/api"
	}
	detailsURL := os.Getenv("FR24_DETAILS_URL")
	if detailsURL == "" {
		detailsURL = "https://data-live.flightradar24.com/clickhandler/"
	}

	return &ClientProvider{
		BaseURL:    baseURL,
		DetailsURL: detailsURL,
		APIToken:   token,
		Client: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

// GetProviderType returns the provider type identifier
func (p *ClientProvider) GetProviderType() string {
	return "fr24_api_client"
}

type clientFlightEntry struct {
	FR24ID       string `json:"fr24_id"`
	Flight       string `json:"flight"`
	Callsign     string `json:"callsign"`
	Type         string `json:"type"`
	Registration string `json:"reg"`
	OrigIATA     string `json:"orig_iata"`
	OrigICAO     string `json:"orig_icao"`
	DestIATA     string `json:"dest_iata"`
	DestICAO     string `json:"dest_icao"`
	PaintedAs    string `json:"painted_as"`
	Timestamp    string `json:"timestamp"`
}

type clientFlightsResponse struct {
	Data []clientFlightEntry `json:"data"`
}

// GetLiveFlights fetches the global flight list from the authenticated API
func (p *ClientProvider) GetLiveFlights(ctx context.Context) ([]dtos.RawFlight, error) {
	endpoint := p.BaseURL + "/live/flight-positions/full?bounds=" + url.QueryEscape("90,-90,-180,180")

	body, err := p.doGET(ctx, endpoint, true)
	if err != nil {
		return nil, err
	}

	var payload clientFlightsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "failed to decode flight list",
			Err:     err,
		}
	}

	flights := make([]dtos.RawFlight, 0, len(payload.Data))
	for _, entry := range payload.Data {
		flights = append(flights, dtos.RawFlight{
			"flight_id":                     entry.FR24ID,
			"flight":                        entry.Flight,
			"callsign":                      entry.Callsign,
			"aircraft_icao":                 entry.Type,
			"registration":                  entry.Registration,
			"airport_origin_code_iata":      entry.OrigIATA,
			"airport_origin_code_icao":      entry.OrigICAO,
			"airport_destination_code_iata": entry.DestIATA,
			"airport_destination_code_icao": entry.DestICAO,
			"airline_icao":                  entry.PaintedAs,
		})
	}
	return flights, nil
}

// GetFlightDetails fetches the clickhandler document, same as the direct
// provider. The authenticated API has no equivalent of the nested detail
// document.
func (p *ClientProvider) GetFlightDetails(ctx context.Context, flightID string) (dtos.FlightDetails, error) {
	if flightID == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "flight ID cannot be empty",
		}
	}

	body, err := p.doGET(ctx, p.DetailsURL+"?flight="+url.QueryEscape(flightID), false)
	if err != nil {
		return nil, err
	}

	var details dtos.FlightDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "failed to decode flight details",
			Err:     err,
		}
	}
	return details, nil
}

func (p *ClientProvider) doGET(ctx context.Context, rawURL string, authenticated bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+p.APIToken)
		req.Header.Set("Accept-Version", "v1")
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{
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
		return nil, &ProviderError{
			Code:    code,
			Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, rawURL),
			Details: string(bodyBytes),
		}
	}

	return bodyBytes, nil
}
