package hydraulics

// ChannelClass labels a reach by the relation of normal to critical depth.
type ChannelClass string

const (
	ClassMild     ChannelClass = "mild"     // yn > yc, downstream control
	ClassSteep    ChannelClass = "steep"    // yn < yc, upstream control
	ClassCritical ChannelClass = "critical" // yn == yc
)

// CurveType is the classical gradually-varied-flow profile label.
type CurveType string

const (
	CurveM1      CurveType = "M1"
	CurveM2      CurveType = "M2"
	CurveM3      CurveType = "M3"
	CurveS1      CurveType = "S1"
	CurveS2      CurveType = "S2"
	CurveS3      CurveType = "S3"
	CurveC1      CurveType = "C1"
	CurveC2      CurveType = "C2"
	CurveC3      CurveType = "C3"
	CurveUnknown CurveType = "unknown"
)

// JumpType classifies a hydraulic jump by its upstream Froude number.
type JumpType string

const (
	JumpUndular     JumpType = "undular"     // Fr1 < 1.7
	JumpWeak        JumpType = "weak"        // 1.7 – 2.5
	JumpOscillating JumpType = "oscillating" // 2.5 – 4.5
	JumpSteady      JumpType = "steady"      // 4.5 – 9.0
	JumpStrong      JumpType = "strong"      // > 9.0
)

// FlowState is the computed flow condition at one station along the reach.
type FlowState struct {
	Station        float64 `json:"station" msgpack:"station"`
	Depth          float64 `json:"depth" msgpack:"depth"`
	Velocity       float64 `json:"velocity" msgpack:"velocity"`
	Froude         float64 `json:"froude" msgpack:"froude"`
	SpecificEnergy float64 `json:"specific_energy" msgpack:"specific_energy"`
	CriticalDepth  float64 `json:"critical_depth" msgpack:"critical_depth"`
	NormalDepth    float64 `json:"normal_depth" msgpack:"normal_depth"`
	TopWidth       float64 `json:"top_width" msgpack:"top_width"`
}

// HydraulicJump describes a supercritical-to-subcritical transition found in
// the profile. Absence of a jump is represented by a nil pointer on the
// profile, not by a zero value.
type HydraulicJump struct {
	Station         float64  `json:"station" msgpack:"station"`
	UpstreamDepth   float64  `json:"upstream_depth" msgpack:"upstream_depth"`
	DownstreamDepth float64  `json:"downstream_depth" msgpack:"downstream_depth"`
	EnergyLoss      float64  `json:"energy_loss" msgpack:"energy_loss"`
	UpstreamFroude  float64  `json:"upstream_froude" msgpack:"upstream_froude"`
	Type            JumpType `json:"type" msgpack:"type"`
}

// WaterSurfaceProfile is the complete result of one computation: the station
// sequence ordered ascending by position, the reference depths, and the
// profile-level classifications and diagnostics.
type WaterSurfaceProfile struct {
	Params ChannelParams `json:"params" msgpack:"params"`

	Stations []FlowState `json:"stations" msgpack:"stations"`

	CurveType     CurveType    `json:"curve_type" msgpack:"curve_type"`
	ChannelClass  ChannelClass `json:"channel_class" msgpack:"channel_class"`
	CriticalDepth float64      `json:"critical_depth" msgpack:"critical_depth"`
	NormalDepth   float64      `json:"normal_depth" msgpack:"normal_depth"`

	// Choking is set when any station's specific energy falls below the
	// minimum energy needed to pass the discharge. It is a global signal for
	// the whole profile.
	Choking bool `json:"choking" msgpack:"choking"`

	Jump *HydraulicJump `json:"jump,omitempty" msgpack:"jump,omitempty"`

	// SolverConverged is false when any depth solve or step refinement hit
	// its iteration cap and returned a best-effort estimate.
	SolverConverged bool `json:"solver_converged" msgpack:"solver_converged"`
}
