package weather

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func epoch(y int, m time.Month, d, hh, mm, ss int) int64 {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC).Unix()
}

func f64(v float64) *float64 {
	return &v
}

func TestFilterWindowInclusiveBounds(t *testing.T) {
	window := NewDateRange(day(2024, time.June, 1), day(2024, time.June, 3))

	daily := []RawDailyForecast{
		{Dt: epoch(2024, time.May, 31, 23, 59, 59)},
		{Dt: epoch(2024, time.June, 1, 0, 0, 0)},
		{Dt: epoch(2024, time.June, 3, 23, 59, 59)},
		{Dt: epoch(2024, time.June, 4, 0, 0, 0)},
	}

	got := FilterWindow(daily, window)
	require.Len(t, got, 2)
	assert.Equal(t, epoch(2024, time.June, 1, 0, 0, 0), got[0].Dt)
	assert.Equal(t, epoch(2024, time.June, 3, 23, 59, 59), got[1].Dt)
}

func TestFilterWindowThreeOfFiveDays(t *testing.T) {
	window := NewDateRange(day(2024, time.June, 1), day(2024, time.June, 3))

	var daily []RawDailyForecast
	for d := 1; d <= 5; d++ {
		daily = append(daily, RawDailyForecast{Dt: epoch(2024, time.June, d, 12, 0, 0)})
	}

	got := Normalize(FilterWindow(daily, window))
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-01", got[0].DateUTC)
	assert.Equal(t, "2024-06-02", got[1].DateUTC)
	assert.Equal(t, "2024-06-03", got[2].DateUTC)
}

func TestFilterWindowSingleDay(t *testing.T) {
	window := NewDateRange(day(2024, time.June, 2), day(2024, time.June, 2))

	daily := []RawDailyForecast{
		{Dt: epoch(2024, time.June, 1, 12, 0, 0)},
		{Dt: epoch(2024, time.June, 2, 12, 0, 0)},
		{Dt: epoch(2024, time.June, 3, 12, 0, 0)},
	}

	got := FilterWindow(daily, window)
	require.Len(t, got, 1)
	assert.Equal(t, epoch(2024, time.June, 2, 12, 0, 0), got[0].Dt)

	// The provider has no entry for the requested day.
	empty := FilterWindow([]RawDailyForecast{{Dt: epoch(2024, time.June, 9, 12, 0, 0)}}, window)
	assert.Empty(t, empty)
}

func TestFilterWindowInvertedRange(t *testing.T) {
	window := NewDateRange(day(2024, time.June, 5), day(2024, time.June, 1))

	daily := []RawDailyForecast{
		{Dt: epoch(2024, time.June, 2, 12, 0, 0)},
		{Dt: epoch(2024, time.June, 3, 12, 0, 0)},
	}

	// Inverted ranges are passed through, not rejected; nothing matches.
	assert.Empty(t, FilterWindow(daily, window))
}

func TestFilterWindowEmptyInput(t *testing.T) {
	window := NewDateRange(day(2024, time.June, 1), day(2024, time.June, 3))
	assert.Empty(t, FilterWindow(nil, window))
}

func TestNormalizeKeepsValuesAndOrder(t *testing.T) {
	daily := []RawDailyForecast{
		{
			Dt:   epoch(2024, time.June, 1, 12, 0, 0),
			Temp: RawDailyTemp{Min: f64(28.1), Max: f64(39.4)},
			Rain: f64(1.2),
			Pop:  f64(0.4),
		},
		{
			Dt:   epoch(2024, time.June, 2, 12, 0, 0),
			Temp: RawDailyTemp{Min: f64(27.0), Max: f64(38.2)},
		},
	}

	got := Normalize(daily)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-06-01", got[0].DateUTC)
	require.NotNil(t, got[0].TemperatureMinC)
	assert.Equal(t, 28.1, *got[0].TemperatureMinC)
	require.NotNil(t, got[0].PrecipitationMm)
	assert.Equal(t, 1.2, *got[0].PrecipitationMm)
	require.NotNil(t, got[0].PrecipitationProbability)
	assert.Equal(t, 0.4, *got[0].PrecipitationProbability)

	assert.Equal(t, "2024-06-02", got[1].DateUTC)
}

func TestNormalizeMissingOptionalFieldsBecomeNull(t *testing.T) {
	daily := []RawDailyForecast{
		{Dt: epoch(2024, time.June, 1, 12, 0, 0)},
	}

	got := Normalize(daily)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].TemperatureMinC)
	assert.Nil(t, got[0].TemperatureMaxC)
	assert.Nil(t, got[0].PrecipitationMm)
	assert.Nil(t, got[0].PrecipitationProbability)

	// Absent data is JSON null, not zero.
	raw, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"precipitationMm":null`)
	assert.NotContains(t, string(raw), `"precipitationMm":0`)
}
