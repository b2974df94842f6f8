package weather

import "time"

// FilterWindow returns the raw daily entries whose timestamp falls inside the
// range, preserving provider order. Providers return daily records already
// sorted ascending, so no re-sort happens here. No matches yields an empty
// slice, never an error.
func FilterWindow(daily []RawDailyForecast, r DateRange) []RawDailyForecast {
	out := make([]RawDailyForecast, 0, len(daily))
	for _, d := range daily {
		if r.Contains(time.Unix(d.Dt, 0).UTC()) {
			out = append(out, d)
		}
	}
	return out
}

// Normalize maps raw daily entries to canonical DailyForecast records.
// Optional fields the provider omitted stay nil and marshal to JSON null;
// a missing rain figure means "no data", not zero.
func Normalize(daily []RawDailyForecast) []DailyForecast {
	out := make([]DailyForecast, 0, len(daily))
	for _, d := range daily {
		out = append(out, DailyForecast{
			DateUTC:                  time.Unix(d.Dt, 0).UTC().Format("2006-01-02"),
			TemperatureMinC:          d.Temp.Min,
			TemperatureMaxC:          d.Temp.Max,
			PrecipitationMm:          d.Rain,
			PrecipitationProbability: d.Pop,
		})
	}
	return out
}
