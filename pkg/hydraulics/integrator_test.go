package hydraulics

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"testing"
)

func TestComputeValidatesInput(t *testing.T) {
	base := rectParams(t)

	tests := []struct {
		name    string
		mutate  func(*ChannelParams)
		wantErr error
	}{
		{"zero discharge", func(p *ChannelParams) { p.Discharge = 0 }, ErrInvalidInput},
		{"negative slope", func(p *ChannelParams) { p.BedSlope = -0.001 }, ErrInvalidInput},
		{"zero roughness", func(p *ChannelParams) { p.Roughness = 0 }, ErrInvalidInput},
		{"zero length", func(p *ChannelParams) { p.Length = 0 }, ErrInvalidInput},
		{"bad units", func(p *ChannelParams) { p.Units = "furlongs" }, ErrInvalidInput},
		{"broken geometry", func(p *ChannelParams) { p.Geometry.BottomWidth = 0 }, ErrConfiguration},
		{
			"circular boundary depth above diameter",
			func(p *ChannelParams) {
				p.Geometry = ChannelGeometry{Shape: ShapeCircular, Diameter: 2}
				p.DownstreamDepth = 2.5
			},
			ErrGeometricDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			if _, err := Compute(p); !errors.Is(err, tt.wantErr) {
				t.Errorf("Compute error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeMildChannelDefaultBoundary(t *testing.T) {
	p := rectParams(t)

	profile, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if profile.ChannelClass != ClassMild {
		t.Fatalf("channel class = %q, want mild", profile.ChannelClass)
	}
	if len(profile.Stations) < 2 {
		t.Fatalf("profile has %d stations", len(profile.Stations))
	}
	if !sort.SliceIsSorted(profile.Stations, func(i, j int) bool {
		return profile.Stations[i].Station < profile.Stations[j].Station
	}) {
		t.Error("stations not sorted ascending by position")
	}

	// No boundary on a mild channel: control is the downstream end at
	// critical depth.
	last := profile.Stations[len(profile.Stations)-1]
	if math.Abs(last.Station-p.Length) > 1e-9 {
		t.Errorf("downstream station at x=%g, want %g", last.Station, p.Length)
	}
	if math.Abs(last.Depth-profile.CriticalDepth) > 1e-6 {
		t.Errorf("downstream depth = %g, want critical depth %g", last.Depth, profile.CriticalDepth)
	}
	if profile.CurveType != CurveM2 {
		t.Errorf("curve type = %q, want M2", profile.CurveType)
	}

	// Marching upstream the subcritical surface rises toward normal depth.
	first := profile.Stations[0]
	if first.Depth <= last.Depth {
		t.Errorf("upstream depth %g not above downstream depth %g", first.Depth, last.Depth)
	}
	for _, s := range profile.Stations {
		if s.Depth <= 0 || math.IsNaN(s.Depth) {
			t.Fatalf("invalid depth %g at station %g", s.Depth, s.Station)
		}
		if s.CriticalDepth != profile.CriticalDepth || s.NormalDepth != profile.NormalDepth {
			t.Fatalf("reference depths not carried on station %g", s.Station)
		}
	}

	// Upstream marches only ever add head, so the balance target can never
	// drop below the critical minimum.
	if profile.Choking {
		t.Error("mild default-boundary profile should not choke")
	}
	if profile.Jump != nil {
		t.Error("subcritical profile should not contain a jump")
	}
}

func TestComputeSteepChannelDefaultBoundary(t *testing.T) {
	p := ChannelParams{
		Geometry:  mustGeometry(NewRectangular(3)),
		Roughness: 0.012,
		BedSlope:  0.03,
		Discharge: 10,
		Length:    300,
		Units:     UnitsMetric,
	}

	profile, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if profile.ChannelClass != ClassSteep {
		t.Fatalf("channel class = %q, want steep", profile.ChannelClass)
	}
	if profile.NormalDepth >= profile.CriticalDepth {
		t.Fatalf("steep channel should have yn < yc, got yn=%g yc=%g",
			profile.NormalDepth, profile.CriticalDepth)
	}

	// Steep channels are controlled from upstream: the march starts at x=0
	// at normal depth.
	first := profile.Stations[0]
	if math.Abs(first.Station) > 1e-9 {
		t.Errorf("upstream station at x=%g, want 0", first.Station)
	}
	if math.Abs(first.Depth-profile.NormalDepth) > 1e-6 {
		t.Errorf("upstream depth = %g, want normal depth %g", first.Depth, profile.NormalDepth)
	}
	if profile.CurveType != CurveS2 {
		t.Errorf("curve type = %q, want S2", profile.CurveType)
	}
}

func TestComputeCustomBoundaryMarchesUpstream(t *testing.T) {
	p := rectParams(t)
	p.UpstreamDepth = 2.0
	p.DownstreamDepth = 3.5

	profile, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// With both boundaries supplied the downstream depth controls.
	last := profile.Stations[len(profile.Stations)-1]
	if math.Abs(last.Station-p.Length) > 1e-9 || math.Abs(last.Depth-3.5) > 1e-9 {
		t.Errorf("march should start from downstream boundary, got x=%g depth=%g",
			last.Station, last.Depth)
	}
	// 3.5 is above normal depth on this mild channel: an M1 backwater.
	if profile.CurveType != CurveM1 {
		t.Errorf("curve type = %q, want M1", profile.CurveType)
	}
}

func TestComputeSupercriticalInflowProducesJump(t *testing.T) {
	p := rectParams(t)
	// Shallow supercritical inflow on a mild channel rises through critical
	// depth and must jump.
	p.UpstreamDepth = 0.5

	profile, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if profile.Jump == nil {
		t.Fatal("expected a hydraulic jump on supercritical inflow into a mild reach")
	}
	j := profile.Jump
	if j.UpstreamFroude <= 1 {
		t.Errorf("jump upstream Froude = %g, want > 1", j.UpstreamFroude)
	}
	if j.DownstreamDepth <= j.UpstreamDepth {
		t.Errorf("sequent depth %g not above upstream depth %g", j.DownstreamDepth, j.UpstreamDepth)
	}
	if j.Station <= 0 || j.Station > p.Length {
		t.Errorf("jump station %g outside reach", j.Station)
	}
	if j.EnergyLoss <= 0 {
		t.Errorf("jump energy loss = %g, want > 0", j.EnergyLoss)
	}
}

func TestComputeFlagsUnconvergedRefinement(t *testing.T) {
	profile, err := Compute(rectParams(t))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// The march starts at critical depth, where dE/dy vanishes: the capped
	// small-step refinement cannot recover a full station's friction head
	// there, so the profile must report the miss instead of failing.
	if profile.SolverConverged {
		t.Error("near-critical march reported SolverConverged=true")
	}
}

func TestComputeChokingOnSupercriticalInflow(t *testing.T) {
	p := rectParams(t)
	p.UpstreamDepth = 0.5

	profile, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Marching downstream the balance target sheds friction head each
	// station; the shallow inflow's losses push it below the critical
	// minimum energy before the jump, which the choking flag records.
	if !profile.Choking {
		t.Error("high-loss supercritical approach did not set the choking flag")
	}
	if profile.Jump == nil {
		t.Error("choked approach should still resolve through a jump")
	}
}

func TestComputeIdempotent(t *testing.T) {
	p := rectParams(t)

	first, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	second, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical parameters produced different profiles")
	}
}

func TestComputeStationCount(t *testing.T) {
	profile, err := Compute(rectParams(t))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// 100 steps over the reach plus the starting station.
	if len(profile.Stations) != ProfileStations+1 {
		t.Errorf("station count = %d, want %d", len(profile.Stations), ProfileStations+1)
	}
}
