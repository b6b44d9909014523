package constants

// Flight Provider Error Codes
// These constants define specific error scenarios for the FlightRadar24
// data providers.

const (
	ErrCodeFeedUnavailable    = "FEED_UNAVAILABLE"
	ErrCodeDetailsUnavailable = "DETAILS_UNAVAILABLE"
	ErrCodeNetworkError       = "NETWORK_ERROR"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInvalidDataFormat  = "INVALID_DATA_FORMAT"
)

// Human-readable messages corresponding to error codes

var ProviderErrorMessages = map[string]string{
	ErrCodeFeedUnavailable:    "The FlightRadar24 live feed could not be retrieved",
	ErrCodeDetailsUnavailable: "Flight details could not be retrieved",
	ErrCodeNetworkError:       "Unable to connect to FlightRadar24",
	ErrCodeRateLimited:        "Rate limit exceeded. Please try again later",
	ErrCodeInvalidDataFormat:  "The provider returned data in an unexpected format",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := ProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
