// Package export renders a computed water-surface profile as CSV, JSON, or
// an HTML report for download and display. The engine itself never
// serializes anything; all presentation concerns live here.
package export

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

// Summary holds aggregate statistics over a profile's stations for the
// report header.
type Summary struct {
	StationCount int     `json:"station_count"`
	MinDepth     float64 `json:"min_depth"`
	MaxDepth     float64 `json:"max_depth"`
	MeanDepth    float64 `json:"mean_depth"`
	MinVelocity  float64 `json:"min_velocity"`
	MaxVelocity  float64 `json:"max_velocity"`
	MeanVelocity float64 `json:"mean_velocity"`
	MaxFroude    float64 `json:"max_froude"`
}

// Summarize computes aggregate statistics over the profile's stations.
func Summarize(p *hydraulics.WaterSurfaceProfile) Summary {
	n := len(p.Stations)
	if n == 0 {
		return Summary{}
	}

	depths := make([]float64, n)
	velocities := make([]float64, n)
	froudes := make([]float64, n)
	for i, s := range p.Stations {
		depths[i] = s.Depth
		velocities[i] = s.Velocity
		froudes[i] = s.Froude
	}

	return Summary{
		StationCount: n,
		MinDepth:     floats.Min(depths),
		MaxDepth:     floats.Max(depths),
		MeanDepth:    stat.Mean(depths, nil),
		MinVelocity:  floats.Min(velocities),
		MaxVelocity:  floats.Max(velocities),
		MeanVelocity: stat.Mean(velocities, nil),
		MaxFroude:    floats.Max(froudes),
	}
}
