package units

import (
	"math"
	"testing"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

func TestConvertLength(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to hydraulics.UnitSystem
		want     float64
	}{
		{"identity metric", 2.5, hydraulics.UnitsMetric, hydraulics.UnitsMetric, 2.5},
		{"meters to feet", 1, hydraulics.UnitsMetric, hydraulics.UnitsImperial, 3.28084},
		{"feet to meters", 3.28084, hydraulics.UnitsImperial, hydraulics.UnitsMetric, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertLength(tt.value, tt.from, tt.to); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ConvertLength = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestConvertDischargeRoundTrip(t *testing.T) {
	v := 50.0
	ft := ConvertDischarge(v, hydraulics.UnitsMetric, hydraulics.UnitsImperial)
	back := ConvertDischarge(ft, hydraulics.UnitsImperial, hydraulics.UnitsMetric)
	if math.Abs(back-v) > 1e-9 {
		t.Errorf("round trip = %g, want %g", back, v)
	}
}

func TestLabelsFor(t *testing.T) {
	if l := LabelsFor(hydraulics.UnitsMetric); l.Discharge != "m³/s" || l.Length != "m" {
		t.Errorf("metric labels = %+v", l)
	}
	if l := LabelsFor(hydraulics.UnitsImperial); l.Discharge != "ft³/s" || l.Length != "ft" {
		t.Errorf("imperial labels = %+v", l)
	}
}
