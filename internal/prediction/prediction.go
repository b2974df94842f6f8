package prediction

import (
	"github.com/i474232898/crop-prediction-api/internal/soil"
	"github.com/i474232898/crop-prediction-api/internal/weather"
)

// Input is the validated request payload. Date strings are kept verbatim;
// parsing happens in the pipeline so malformed dates surface as a parse
// failure there, not in validation.
type Input struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}

// Coordinate returns the geographic point described by the input.
func (in Input) Coordinate() weather.Coordinate {
	return weather.Coordinate{Latitude: in.Latitude, Longitude: in.Longitude}
}

// Meta describes how a prediction was produced.
type Meta struct {
	Request        Input  `json:"request"`
	Provider       string `json:"provider"`
	EndpointSource string `json:"endpointSource"`
	RealKeyUsed    bool   `json:"realKeyUsed"`
}

// WeatherReport is the weather section of a combined prediction.
type WeatherReport struct {
	Location       weather.Coordinate      `json:"location"`
	Timezone       string                  `json:"timezone"`
	DailyForecasts []weather.DailyForecast `json:"dailyForecasts"`
}

// CombinedPrediction is the response root: request metadata, the windowed
// normalized forecast, and the soil snapshot.
type CombinedPrediction struct {
	Meta    Meta          `json:"meta"`
	Weather WeatherReport `json:"weather"`
	Soil    soil.Snapshot `json:"soil"`
}

// Compose assembles the final record from already-processed parts. It is a
// pure function: malformed upstream values were resolved to nulls by the
// normalizer before this point, so there is nothing left to fail on.
func Compose(
	in Input,
	res weather.ForecastResult,
	daily []weather.DailyForecast,
	snap soil.Snapshot,
	realKey bool,
) CombinedPrediction {
	return CombinedPrediction{
		Meta: Meta{
			Request:        in,
			Provider:       res.Provider,
			EndpointSource: string(res.Source),
			RealKeyUsed:    realKey,
		},
		Weather: WeatherReport{
			Location: weather.Coordinate{
				Latitude:  res.Payload.Lat,
				Longitude: res.Payload.Lon,
			},
			Timezone:       res.Payload.Timezone,
			DailyForecasts: daily,
		},
		Soil: snap,
	}
}
