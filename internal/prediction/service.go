package prediction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/i474232898/crop-prediction-api/internal/soil"
	"github.com/i474232898/crop-prediction-api/internal/weather"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Service runs the prediction pipeline: fetch forecast, restrict it to the
// requested window, normalize it, and merge in the soil snapshot. It holds no
// per-request state; every entity lives and dies within one Predict call.
type Service struct {
	provider weather.Provider
	soil     soil.Provider
	realKey  bool
	log      zerolog.Logger
}

// NewService creates a Service. realKey records whether a real provider API
// key was configured; it is reported in response metadata, not acted upon.
func NewService(provider weather.Provider, soilProvider soil.Provider, realKey bool, log zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		soil:     soilProvider,
		realKey:  realKey,
		log:      log,
	}
}

// Predict executes the full pipeline for one validated input.
//
// An inverted date range is passed through and yields an empty forecast list
// rather than an error. Upstream failure (both endpoint versions) aborts the
// whole request; there is no partial weather response.
func (s *Service) Predict(ctx context.Context, in Input) (CombinedPrediction, error) {
	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.UTC)
	if err != nil {
		return CombinedPrediction{}, fmt.Errorf("%w: startDate %q", ErrInvalidDate, in.StartDate)
	}
	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.UTC)
	if err != nil {
		return CombinedPrediction{}, fmt.Errorf("%w: endDate %q", ErrInvalidDate, in.EndDate)
	}

	coord := in.Coordinate()

	res, err := s.provider.Fetch(ctx, coord)
	if err != nil {
		return CombinedPrediction{}, err
	}

	s.log.Debug().
		Str("provider", res.Provider).
		Str("source", string(res.Source)).
		Int("rawDays", len(res.Payload.Daily)).
		Msg("forecast fetched")

	window := weather.NewDateRange(start, end)
	daily := weather.Normalize(weather.FilterWindow(res.Payload.Daily, window))

	snap := s.soil.Snapshot(coord)

	return Compose(in, res, daily, snap, s.realKey), nil
}
