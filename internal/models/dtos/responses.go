package dtos

import "time"

type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// FlightSearchResult is the payload of a successful search.
type FlightSearchResult struct {
	Count   int      `json:"count"`
	Flights []Flight `json:"flights"`
}
