// Package units handles display conversion between metric and imperial
// values. The engine computes in whichever unit system the parameters carry;
// this package only converts and labels results for presentation.
package units

import "github.com/tmcasey/channelflow/pkg/hydraulics"

const (
	feetPerMeter       = 3.28084
	cubicFeetPerCubicM = 35.3147
)

// Labels holds the display unit labels for one unit system.
type Labels struct {
	Length    string
	Velocity  string
	Discharge string
	Energy    string
	Slope     string
}

// LabelsFor returns the display labels for the given unit system.
func LabelsFor(system hydraulics.UnitSystem) Labels {
	if system == hydraulics.UnitsImperial {
		return Labels{
			Length:    "ft",
			Velocity:  "ft/s",
			Discharge: "ft³/s",
			Energy:    "ft",
			Slope:     "ft/ft",
		}
	}
	return Labels{
		Length:    "m",
		Velocity:  "m/s",
		Discharge: "m³/s",
		Energy:    "m",
		Slope:     "m/m",
	}
}

// ConvertLength converts a length value between unit systems.
func ConvertLength(v float64, from, to hydraulics.UnitSystem) float64 {
	switch {
	case from == to:
		return v
	case to == hydraulics.UnitsImperial:
		return v * feetPerMeter
	default:
		return v / feetPerMeter
	}
}

// ConvertVelocity converts a velocity value between unit systems.
func ConvertVelocity(v float64, from, to hydraulics.UnitSystem) float64 {
	return ConvertLength(v, from, to)
}

// ConvertDischarge converts a volumetric flow rate between unit systems.
func ConvertDischarge(v float64, from, to hydraulics.UnitSystem) float64 {
	switch {
	case from == to:
		return v
	case to == hydraulics.UnitsImperial:
		return v * cubicFeetPerCubicM
	default:
		return v / cubicFeetPerCubicM
	}
}
