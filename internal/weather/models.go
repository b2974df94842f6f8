package weather

import (
	"time"
)

// Coordinate is a validated geographic point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DateRange is an inclusive UTC instant window covering whole calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange expands two calendar dates to their inclusive UTC day
// boundaries: start at 00:00:00, end at 23:59:59. An inverted range is
// allowed; it simply matches nothing.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC),
	}
}

// Contains reports whether ts falls inside the window, bounds included.
func (r DateRange) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}

// RawDailyForecast is one provider-native daily record from a One Call
// response. Optional fields are pointers because the provider omits them
// when no data is available (e.g. no rain that day).
type RawDailyForecast struct {
	Dt   int64        `json:"dt"`
	Temp RawDailyTemp `json:"temp"`
	Rain *float64     `json:"rain"`
	Pop  *float64     `json:"pop"`
}

// RawDailyTemp is the daily temperature block of a One Call record.
type RawDailyTemp struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// ForecastPayload is the subset of a One Call response body the pipeline
// consumes. A body without a daily array decodes to a nil Daily slice, which
// downstream treats as an empty forecast rather than a failure.
type ForecastPayload struct {
	Lat      float64            `json:"lat"`
	Lon      float64            `json:"lon"`
	Timezone string             `json:"timezone"`
	Daily    []RawDailyForecast `json:"daily"`
}

// DailyForecast is the canonical per-day record. Nil pointers marshal to
// JSON null, which is the defined representation for data the provider
// omitted.
type DailyForecast struct {
	DateUTC                  string   `json:"dateUtc"`
	TemperatureMinC          *float64 `json:"temperatureMinC"`
	TemperatureMaxC          *float64 `json:"temperatureMaxC"`
	PrecipitationMm          *float64 `json:"precipitationMm"`
	PrecipitationProbability *float64 `json:"precipitationProbability"`
}
