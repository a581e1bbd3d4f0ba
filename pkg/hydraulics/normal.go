package hydraulics

import "math"

// NormalDepth finds the depth at which Manning's equation balances the
// parameter set's discharge for its slope and roughness. There is no closed
// form for any shape, so the search is always iterative: it seeds at the
// supplied critical depth estimate and adjusts by the sign of the discharge
// error, halving the step on each sign reversal. When the iteration cap is
// reached the best estimate is returned with converged=false.
func NormalDepth(p ChannelParams, criticalEstimate float64) (depth float64, converged bool) {
	seed := criticalEstimate
	if seed <= 0 {
		seed = 1
	}

	y := p.Geometry.clampDepth(seed)
	step := seed / 2
	prevSign := 0
	for i := 0; i < MaxIterations; i++ {
		diff := (p.manningDischarge(y) - p.Discharge) / p.Discharge
		if math.Abs(diff) < FroudeTolerance {
			return y, true
		}
		sign := 1
		if diff < 0 {
			sign = -1
		}
		if prevSign != 0 && sign != prevSign {
			step /= 2
		}
		prevSign = sign
		// Conveyance grows with depth: too little discharge means go deeper.
		if sign < 0 {
			y += step
		} else {
			y -= step
		}
		y = p.Geometry.clampDepth(y)
	}
	return y, false
}
