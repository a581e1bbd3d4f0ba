package hydraulics

import "fmt"

// UnitSystem selects the gravitational constant and the Manning conversion
// coefficient. The engine is unit-aware only through those two constants;
// display conversion is the caller's concern.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// Physical constants per unit system.
const (
	GravityMetric    = 9.81 // m/s²
	GravityImperial  = 32.2 // ft/s²
	ManningKMetric   = 1.0  // Manning coefficient, SI
	ManningKImperial = 1.49 // Manning coefficient, US customary
)

// Numerical constants for the solvers and the standard step integrator.
// These are fixed-iteration methods: when a loop reaches its cap it returns
// the best estimate it has and flags the result as unconverged.
const (
	// MaxIterations caps every root-finding and step-refinement loop.
	MaxIterations = 50

	// FroudeTolerance is the convergence criterion |Fr - 1| for the critical
	// depth search, and the matching relative-discharge criterion for the
	// normal depth search.
	FroudeTolerance = 1e-4

	// EnergyTolerance is the relative specific-energy balance criterion for
	// one standard step.
	EnergyTolerance = 1e-3

	// RefineDepthStep is the depth increment used inside step refinement.
	RefineDepthStep = 0.001

	// TrialNudge is the initial depth offset applied when forming the trial
	// depth for the next station.
	TrialNudge = 0.01

	// ProfileStations is the number of marching steps along the reach; the
	// station spacing is Length / ProfileStations.
	ProfileStations = 100
)

// ChannelParams is the immutable input record for one profile computation.
// Zero, one, or both boundary depths may be supplied; supplying both is the
// custom boundary condition case and marches upstream from the downstream
// depth.
type ChannelParams struct {
	Geometry  ChannelGeometry `json:"geometry" yaml:"geometry"`
	Roughness float64         `json:"roughness" yaml:"roughness"`   // Manning n
	BedSlope  float64         `json:"bed_slope" yaml:"bed-slope"`   // longitudinal slope S0
	Discharge float64         `json:"discharge" yaml:"discharge"`   // Q
	Length    float64         `json:"length" yaml:"length"`         // reach length L
	Units     UnitSystem      `json:"units" yaml:"units"`

	// Optional boundary depths. Zero means "not supplied".
	UpstreamDepth   float64 `json:"upstream_depth,omitempty" yaml:"upstream-depth,omitempty"`
	DownstreamDepth float64 `json:"downstream_depth,omitempty" yaml:"downstream-depth,omitempty"`
}

// Gravity returns the gravitational constant for the parameter set's unit
// system.
func (p ChannelParams) Gravity() float64 {
	if p.Units == UnitsImperial {
		return GravityImperial
	}
	return GravityMetric
}

// ManningK returns the Manning conversion coefficient for the parameter
// set's unit system.
func (p ChannelParams) ManningK() float64 {
	if p.Units == UnitsImperial {
		return ManningKImperial
	}
	return ManningKMetric
}

// Validate fails fast on inputs that would make the computation meaningless.
// Geometry configuration problems wrap ErrConfiguration; everything else
// wraps ErrInvalidInput.
func (p ChannelParams) Validate() error {
	if err := p.Geometry.Validate(); err != nil {
		return err
	}
	if p.Units != UnitsMetric && p.Units != UnitsImperial {
		return fmt.Errorf("%w: unit system must be %q or %q, got %q", ErrInvalidInput, UnitsMetric, UnitsImperial, p.Units)
	}
	if p.Roughness <= 0 {
		return fmt.Errorf("%w: Manning roughness must be > 0, got %g", ErrInvalidInput, p.Roughness)
	}
	if p.BedSlope <= 0 {
		return fmt.Errorf("%w: bed slope must be > 0, got %g", ErrInvalidInput, p.BedSlope)
	}
	if p.Discharge <= 0 {
		return fmt.Errorf("%w: discharge must be > 0, got %g", ErrInvalidInput, p.Discharge)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: reach length must be > 0, got %g", ErrInvalidInput, p.Length)
	}
	if p.UpstreamDepth < 0 || p.DownstreamDepth < 0 {
		return fmt.Errorf("%w: boundary depths must not be negative", ErrInvalidInput)
	}
	maxDepth := p.Geometry.MaxDepth()
	if p.UpstreamDepth >= maxDepth {
		return fmt.Errorf("%w: upstream depth %g exceeds conduit diameter", ErrGeometricDomain, p.UpstreamDepth)
	}
	if p.DownstreamDepth >= maxDepth {
		return fmt.Errorf("%w: downstream depth %g exceeds conduit diameter", ErrGeometricDomain, p.DownstreamDepth)
	}
	return nil
}
