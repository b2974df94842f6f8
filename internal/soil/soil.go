package soil

import (
	"github.com/i474232898/crop-prediction-api/internal/weather"
)

// Snapshot is a fixed-shape soil property record for one location.
type Snapshot struct {
	PH            float64 `json:"ph"`
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	OrganicMatter float64 `json:"organicMatter"`
	Source        string  `json:"source"`
}

// Provider is the seam a real soil data source will eventually fill. The
// composer only depends on this contract.
type Provider interface {
	Snapshot(coord weather.Coordinate) Snapshot
}

// PlaceholderProvider returns the same snapshot for every coordinate, tagged
// so consumers can tell no real source is wired up yet.
type PlaceholderProvider struct{}

func NewPlaceholderProvider() *PlaceholderProvider {
	return &PlaceholderProvider{}
}

func (p *PlaceholderProvider) Snapshot(_ weather.Coordinate) Snapshot {
	return Snapshot{
		PH:            6.5,
		Nitrogen:      120,
		Phosphorus:    45,
		Potassium:     80,
		OrganicMatter: 2.5,
		Source:        "placeholder",
	}
}
