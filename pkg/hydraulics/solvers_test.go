package hydraulics

import (
	"math"
	"testing"
)

func rectParams(t *testing.T) ChannelParams {
	t.Helper()
	return ChannelParams{
		Geometry:  mustGeometry(NewRectangular(10)),
		Roughness: 0.03,
		BedSlope:  0.001,
		Discharge: 50,
		Length:    1000,
		Units:     UnitsMetric,
	}
}

func TestCriticalDepthRectangularClosedForm(t *testing.T) {
	p := rectParams(t)

	yc, converged := CriticalDepth(p)
	if !converged {
		t.Fatal("closed form reported unconverged")
	}

	// yc = (q²/g)^(1/3) with q = 5 m²/s.
	want := math.Cbrt(25.0 / 9.81)
	if math.Abs(yc-want) > 1e-9 {
		t.Errorf("yc = %g, want %g", yc, want)
	}
	if math.Abs(yc-1.366) > 1e-3 {
		t.Errorf("yc = %g, want ~1.366 m", yc)
	}
}

func TestCriticalDepthTriangularClosedForm(t *testing.T) {
	p := ChannelParams{
		Geometry:  mustGeometry(NewTriangular(2)),
		Roughness: 0.025,
		BedSlope:  0.002,
		Discharge: 10,
		Length:    500,
		Units:     UnitsMetric,
	}

	yc, converged := CriticalDepth(p)
	if !converged {
		t.Fatal("closed form reported unconverged")
	}
	want := math.Pow(2*100/(9.81*4), 0.2)
	if math.Abs(yc-want) > 1e-9 {
		t.Errorf("yc = %g, want %g", yc, want)
	}
	if fr := p.froude(yc); math.Abs(fr-1) > 1e-6 {
		t.Errorf("Froude at closed-form yc = %g, want 1", fr)
	}
}

func TestCriticalDepthIterativeShapes(t *testing.T) {
	tests := []struct {
		name string
		geom ChannelGeometry
		q    float64
	}{
		{"trapezoidal", mustGeometry(NewTrapezoidal(5, 2)), 30},
		{"circular", mustGeometry(NewCircular(2)), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ChannelParams{
				Geometry:  tt.geom,
				Roughness: 0.015,
				BedSlope:  0.002,
				Discharge: tt.q,
				Length:    500,
				Units:     UnitsMetric,
			}
			yc, converged := CriticalDepth(p)
			if !converged {
				t.Fatalf("solver hit iteration cap, yc = %g", yc)
			}
			if fr := p.froude(yc); math.Abs(fr-1) > 1e-3 {
				t.Errorf("Froude at yc = %g, want within 1e-3 of 1", fr)
			}
		})
	}
}

func TestNormalDepthSatisfiesManning(t *testing.T) {
	tests := []struct {
		name string
		p    ChannelParams
	}{
		{"rectangular", rectParams(t)},
		{
			"trapezoidal",
			ChannelParams{
				Geometry:  mustGeometry(NewTrapezoidal(5, 2)),
				Roughness: 0.025,
				BedSlope:  0.0015,
				Discharge: 30,
				Length:    800,
				Units:     UnitsMetric,
			},
		},
		{
			"imperial rectangular",
			ChannelParams{
				Geometry:  mustGeometry(NewRectangular(30)),
				Roughness: 0.03,
				BedSlope:  0.001,
				Discharge: 1500,
				Length:    3000,
				Units:     UnitsImperial,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yc, _ := CriticalDepth(tt.p)
			yn, converged := NormalDepth(tt.p, yc)
			if !converged {
				t.Fatalf("solver hit iteration cap, yn = %g", yn)
			}
			got := tt.p.manningDischarge(yn)
			if rel := math.Abs(got-tt.p.Discharge) / tt.p.Discharge; rel > 1e-3 {
				t.Errorf("Manning discharge at yn = %g (target %g), relative error %g", got, tt.p.Discharge, rel)
			}
		})
	}
}

func TestNormalDepthMildChannel(t *testing.T) {
	p := rectParams(t)
	yc, _ := CriticalDepth(p)
	yn, _ := NormalDepth(p, yc)

	// n=0.03 on a 0.1% slope is a mild channel: yn well above yc.
	if yn <= yc {
		t.Errorf("expected mild channel, yn = %g <= yc = %g", yn, yc)
	}
}
