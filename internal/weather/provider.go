package weather

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable is returned when both provider endpoint versions
// failed to serve a forecast.
var ErrUpstreamUnavailable = errors.New("weather provider unavailable")

// EndpointSource tags which endpoint version served a forecast, so callers
// can observe the fallback path without inspecting control flow.
type EndpointSource string

const (
	SourcePrimary  EndpointSource = "primary"
	SourceFallback EndpointSource = "fallback"
)

// ForecastResult is a tagged fetch outcome: the payload plus which endpoint
// version produced it.
type ForecastResult struct {
	Provider string
	Source   EndpointSource
	Payload  ForecastPayload
}

// Provider abstracts a daily-forecast data source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, coord Coordinate) (ForecastResult, error)
}
