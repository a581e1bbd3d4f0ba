package hydraulics

import "math"

// SequentDepth returns the downstream conjugate depth paired with upstream
// depth y1 and upstream Froude number fr1 across a hydraulic jump, from the
// momentum equation for a rectangular section:
//
//	y2 = (y1/2) * (sqrt(1 + 8*Fr1²) - 1)
//
// For non-rectangular shapes the same relation is applied as an
// approximation; the rigorous non-rectangular momentum balance is not
// implemented.
func SequentDepth(y1, fr1 float64) float64 {
	return (y1 / 2) * (math.Sqrt(1+8*fr1*fr1) - 1)
}

// JumpEnergyLoss returns the head lost across a jump between depths y1 and
// y2: (y2-y1)³ / (4*y1*y2).
func JumpEnergyLoss(y1, y2 float64) float64 {
	d := y2 - y1
	return d * d * d / (4 * y1 * y2)
}

// ClassifyJump labels a jump by its upstream Froude number.
func ClassifyJump(fr1 float64) JumpType {
	switch {
	case fr1 < 1.7:
		return JumpUndular
	case fr1 <= 2.5:
		return JumpWeak
	case fr1 <= 4.5:
		return JumpOscillating
	case fr1 <= 9.0:
		return JumpSteady
	default:
		return JumpStrong
	}
}

// NewHydraulicJump assembles the jump record for a transition detected at
// the given station with upstream depth y1 and upstream Froude number fr1.
func NewHydraulicJump(station, y1, fr1 float64) HydraulicJump {
	y2 := SequentDepth(y1, fr1)
	return HydraulicJump{
		Station:         station,
		UpstreamDepth:   y1,
		DownstreamDepth: y2,
		EnergyLoss:      JumpEnergyLoss(y1, y2),
		UpstreamFroude:  fr1,
		Type:            ClassifyJump(fr1),
	}
}
