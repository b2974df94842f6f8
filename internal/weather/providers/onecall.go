package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/i474232898/crop-prediction-api/internal/weather"
)

const (
	defaultPrimaryURL  = "https://api.openweathermap.org/data/3.0/onecall"
	defaultFallbackURL = "https://api.openweathermap.org/data/2.5/onecall"

	// placeholderAPIKey keeps calls going out when no key is configured; the
	// provider rejects them and the failure surfaces as a normal upstream error.
	placeholderAPIKey = "placeholder-api-key"
)

// Options configures a OneCallProvider. Zero values fall back to the real
// OpenWeatherMap endpoints and default breaker settings.
type Options struct {
	APIKey      string
	PrimaryURL  string
	FallbackURL string

	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration
}

// OneCallProvider implements weather.Provider against the OpenWeatherMap
// One Call API. It tries the 3.0 endpoint first and falls back once to the
// older 2.5 endpoint with identical parameters. The two generations are
// briefly co-available while the provider deprecates the older one, so this
// is a compatibility shim, not a resilience mechanism.
type OneCallProvider struct {
	name        string
	apiKey      string
	primaryURL  string
	fallbackURL string
	httpCfg     HTTPClientConfig

	primaryCB  *gobreaker.CircuitBreaker
	fallbackCB *gobreaker.CircuitBreaker

	log zerolog.Logger
}

func NewOneCallProvider(client *http.Client, opts Options, log zerolog.Logger) *OneCallProvider {
	if opts.PrimaryURL == "" {
		opts.PrimaryURL = defaultPrimaryURL
	}
	if opts.FallbackURL == "" {
		opts.FallbackURL = defaultFallbackURL
	}
	if opts.APIKey == "" {
		opts.APIKey = placeholderAPIKey
	}
	if opts.BreakerMaxRequests == 0 {
		opts.BreakerMaxRequests = 5
	}
	if opts.BreakerInterval == 0 {
		opts.BreakerInterval = 1 * time.Minute
	}
	if opts.BreakerTimeout == 0 {
		opts.BreakerTimeout = 2 * time.Minute
	}

	newBreaker := func(name string) *gobreaker.CircuitBreaker {
		return gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: opts.BreakerMaxRequests,
			Interval:    opts.BreakerInterval,
			Timeout:     opts.BreakerTimeout,
		})
	}

	return &OneCallProvider{
		name:        "openweathermap",
		apiKey:      opts.APIKey,
		primaryURL:  opts.PrimaryURL,
		fallbackURL: opts.FallbackURL,
		httpCfg:     HTTPClientConfig{Client: client},
		primaryCB:   newBreaker("onecall-primary"),
		fallbackCB:  newBreaker("onecall-fallback"),
		log:         log,
	}
}

func (p *OneCallProvider) Name() string {
	return p.name
}

// Fetch retrieves the daily forecast for a coordinate. Any primary failure
// (network error, non-2xx status, undecodable body) triggers exactly one
// call to the fallback endpoint; if that fails too, the fallback's error is
// the one propagated.
func (p *OneCallProvider) Fetch(ctx context.Context, coord weather.Coordinate) (weather.ForecastResult, error) {
	payload, err := p.fetchEndpoint(ctx, p.primaryURL, p.primaryCB, coord)
	if err == nil {
		return weather.ForecastResult{
			Provider: p.name,
			Source:   weather.SourcePrimary,
			Payload:  payload,
		}, nil
	}

	p.log.Warn().
		Err(err).
		Float64("lat", coord.Latitude).
		Float64("lon", coord.Longitude).
		Msg("primary onecall endpoint failed; trying fallback")

	payload, ferr := p.fetchEndpoint(ctx, p.fallbackURL, p.fallbackCB, coord)
	if ferr != nil {
		p.log.Error().
			Err(ferr).
			Float64("lat", coord.Latitude).
			Float64("lon", coord.Longitude).
			Msg("fallback onecall endpoint failed")
		return weather.ForecastResult{}, fmt.Errorf("%w: %v", weather.ErrUpstreamUnavailable, ferr)
	}

	return weather.ForecastResult{
		Provider: p.name,
		Source:   weather.SourceFallback,
		Payload:  payload,
	}, nil
}

func (p *OneCallProvider) fetchEndpoint(
	ctx context.Context,
	baseURL string,
	cb *gobreaker.CircuitBreaker,
	coord weather.Coordinate,
) (weather.ForecastPayload, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", coord.Latitude))
		values.Set("lon", fmt.Sprintf("%f", coord.Longitude))
		values.Set("exclude", "minutely,hourly,alerts")
		values.Set("units", "metric")
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.httpCfg, cb, buildRequest)
	if err != nil {
		return weather.ForecastPayload{}, err
	}
	defer resp.Body.Close()

	var payload weather.ForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		// A body that is not JSON at all counts as a failed call; a valid
		// body merely missing the daily array decodes fine and yields an
		// empty forecast downstream.
		return weather.ForecastPayload{}, fmt.Errorf("decode onecall response: %w", err)
	}

	return payload, nil
}
